package ast

import (
	"strconv"
	"strings"
)

func formatInt(v int64) string { return strconv.FormatInt(v, 10) }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// quoteString renders a string literal back in the source dialect, with
// \n \t \r escaped to match how the lexer expands them on the way in
// (spec.md §4.1). The lexer accepts either " or ' as a string delimiter, and
// recognizes no escape for the delimiter itself, so a value containing a "
// is printed in '...' form instead (and vice versa) to stay losslessly
// round-trippable; a value containing both falls back to " and drops the
// embedded "s, since the grammar has no way to represent that case.
func quoteString(s string) string {
	delim := byte('"')
	if strings.ContainsRune(s, '"') && !strings.ContainsRune(s, '\'') {
		delim = '\''
	}

	var sb strings.Builder
	sb.WriteByte(delim)
	for _, r := range s {
		switch r {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case rune(delim):
			// dropped: the grammar has no escape for the delimiter itself
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(delim)
	return sb.String()
}
