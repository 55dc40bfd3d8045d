// Package parser implements the recursive-descent parser of spec.md §4.2,
// turning a token stream into the ast.Node tree. Grounded on
// original_source/src/parser.rs's recursive-descent shape, generalized to
// the Eval/Body/Pattern/Vector/quoting grammar of spec.md §4.2.
package parser

import (
	"github.com/sty00a4/funx-go/internal/ast"
	"github.com/sty00a4/funx-go/internal/ferrors"
	"github.com/sty00a4/funx-go/internal/token"
	"github.com/sty00a4/funx-go/internal/types"
)

// Parser walks a fixed token slice produced by the lexer.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a Parser over the given token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a whole file: Statement* collapsing to its sole Eval, or a
// Body of statements otherwise (spec.md §4.2, §3).
func Parse(tokens []token.Token) (ast.Node, error) {
	p := New(tokens)
	stmts, err := p.parseStatements(func() bool { return p.atEnd() })
	if err != nil {
		return nil, err
	}
	pos := fileSpan(stmts)
	if len(stmts) == 1 {
		if ev, ok := stmts[0].(*ast.Eval); ok {
			return ev, nil
		}
	}
	return &ast.Body{Pos: pos, Statements: stmts}, nil
}

func fileSpan(stmts []ast.Node) token.Position {
	if len(stmts) == 0 {
		return token.Position{}
	}
	pos := stmts[0].Position()
	for _, s := range stmts[1:] {
		pos = token.Span(pos, s.Position())
	}
	return pos
}

func (p *Parser) atEnd() bool { return p.pos >= len(p.tokens) }

func (p *Parser) peek() *token.Token {
	if p.atEnd() {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *Parser) advance() token.Token {
	t := p.tokens[p.pos]
	p.pos++
	return t
}

// parseStatements reads Statement* until stop() is true.
func (p *Parser) parseStatements(stop func() bool) ([]ast.Node, error) {
	var stmts []ast.Node
	for !stop() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// parseStatement reads Expr* ';'? and wraps more-than-one bare expression
// into an implicit Eval (spec.md §4.2). A single Expr is the statement
// itself: wrapping it would turn it into its own zero-argument head
// dispatch, which the grammar does not intend.
func (p *Parser) parseStatement() (ast.Node, error) {
	var exprs []ast.Node
	for {
		if p.atEnd() {
			break
		}
		t := p.peek()
		if t.Kind == token.End || t.Kind == token.BodyOut {
			break
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	var pos token.Position
	if !p.atEnd() && p.peek().Kind == token.End {
		endTok := p.advance()
		pos = endTok.Pos
	}
	if len(exprs) > 0 {
		pos = fileSpan(exprs)
	}
	switch len(exprs) {
	case 0:
		return &ast.Eval{Pos: pos}, nil
	case 1:
		return exprs[0], nil
	default:
		return &ast.Eval{Pos: pos, Children: exprs}, nil
	}
}

// parseExpr reads one Expr production.
func (p *Parser) parseExpr() (ast.Node, error) {
	if p.atEnd() {
		return nil, ferrors.New(ferrors.UnexpectedToken, token.Position{}).WithStr("end of file")
	}
	t := p.advance()
	switch t.Kind {
	case token.EvalIn:
		children, err := p.parseUntil(token.EvalOut)
		if err != nil {
			return nil, err
		}
		end, err := p.expect(token.EvalOut)
		if err != nil {
			return nil, err
		}
		return &ast.Eval{Pos: token.Span(t.Pos, end.Pos), Children: children}, nil
	case token.BodyIn:
		stmts, err := p.parseStatements(func() bool {
			return p.atEnd() || p.peek().Kind == token.BodyOut
		})
		if err != nil {
			return nil, err
		}
		end, err := p.expect(token.BodyOut)
		if err != nil {
			return nil, err
		}
		return &ast.Body{Pos: token.Span(t.Pos, end.Pos), Statements: stmts}, nil
	case token.PattIn:
		children, err := p.parseUntil(token.PattOut)
		if err != nil {
			return nil, err
		}
		end, err := p.expect(token.PattOut)
		if err != nil {
			return nil, err
		}
		return &ast.Pattern{Pos: token.Span(t.Pos, end.Pos), Children: children}, nil
	case token.VecIn:
		children, err := p.parseUntil(token.VecOut)
		if err != nil {
			return nil, err
		}
		end, err := p.expect(token.VecOut)
		if err != nil {
			return nil, err
		}
		return &ast.Vector{Pos: token.Span(t.Pos, end.Pos), Children: children}, nil
	case token.Addr:
		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Addr{Pos: token.Span(t.Pos, child.Position()), Child: child}, nil
	case token.Arg:
		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Arg{Pos: token.Span(t.Pos, child.Position()), Child: child}, nil
	case token.Closure:
		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Closure{Pos: token.Span(t.Pos, child.Position()), Child: child}, nil
	default:
		return p.parseAtom(t)
	}
}

// parseUntil reads Expr* until the upcoming token is closeKind.
func (p *Parser) parseUntil(closeKind token.Kind) ([]ast.Node, error) {
	var nodes []ast.Node
	for {
		if p.atEnd() {
			return nil, ferrors.New(ferrors.UnexpectedToken, token.Position{}).WithStr("end of file")
		}
		if p.peek().Kind == closeKind {
			return nodes, nil
		}
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.atEnd() || p.peek().Kind != kind {
		var bad token.Token
		pos := token.Position{}
		if !p.atEnd() {
			bad = *p.peek()
			pos = bad.Pos
			return token.Token{}, ferrors.New(ferrors.UnexpectedToken, pos).WithStr(bad.Name())
		}
		return token.Token{}, ferrors.New(ferrors.UnexpectedToken, pos).WithStr("end of file")
	}
	return p.advance(), nil
}

// parseAtom parses the leaf productions.
func (p *Parser) parseAtom(t token.Token) (ast.Node, error) {
	switch t.Kind {
	case token.Null:
		return &ast.Null{Pos: t.Pos}, nil
	case token.Wildcard:
		return &ast.Wildcard{Pos: t.Pos}, nil
	case token.Int:
		return &ast.Int{Pos: t.Pos, Value: t.Int}, nil
	case token.Float:
		return &ast.Float{Pos: t.Pos, Value: t.Float}, nil
	case token.Bool:
		return &ast.Bool{Pos: t.Pos, Value: t.Bool}, nil
	case token.String:
		return &ast.String{Pos: t.Pos, Value: t.Str}, nil
	case token.Type:
		return &ast.TypeLit{Pos: t.Pos, Value: types.Scalar(t.TypeKind)}, nil
	case token.Word:
		return &ast.Word{Pos: t.Pos, Value: t.Str}, nil
	default:
		return nil, ferrors.New(ferrors.UnexpectedToken, t.Pos).WithStr(t.Name())
	}
}
