package token

import "testing"

func TestPositionString(t *testing.T) {
	p := At(0, 0)
	want := "1:1 - 1:1"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSpan(t *testing.T) {
	a := At(2, 3)
	b := At(5, 1)
	got := Span(a, b)
	want := Position{StartLine: 2, StartCol: 3, EndLine: 5, EndCol: 1}
	if got != want {
		t.Errorf("Span() = %+v, want %+v", got, want)
	}
}

func TestSpanKeepsEarlierStart(t *testing.T) {
	a := At(5, 0)
	b := At(1, 0)
	got := Span(a, b)
	if got.StartLine != 1 {
		t.Errorf("Span() StartLine = %d, want 1", got.StartLine)
	}
	if got.EndLine != 5 {
		t.Errorf("Span() EndLine = %d, want 5", got.EndLine)
	}
}

func TestKindName(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EvalIn, "'('"},
		{BodyOut, "'}'"},
		{Word, "word"},
		{Kind(999), "?"},
	}
	for _, tt := range tests {
		if got := tt.kind.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestTokenName(t *testing.T) {
	tok := Token{Kind: Word, Str: "foo"}
	want := `word "foo"`
	if got := tok.Name(); got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}
