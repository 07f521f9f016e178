// Package parser is the front-end producing the ast package's node shapes
// from template source text. analyzer.Analyze calls Parse; past that call
// the analyzer works only through the ast.Node interfaces it produces.
package parser

import (
	"fmt"

	"github.com/viant/tshape/ast"
	"github.com/viant/tshape/token"
)

// ParseError reports a syntactic problem in the template source.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
}

// Parse parses template source into an *ast.Template, or returns a
// *ParseError describing the first problem encountered.
func Parse(src []byte) (*ast.Template, error) {
	p := &parser{scan: newScanner(src)}
	p.advance()
	body, err := p.parseBody(token.EOF)
	if err != nil {
		return nil, err
	}
	return ast.NewTemplate(0, body), nil
}

type parser struct {
	scan *scanner
	tok  token.Token
}

func (p *parser) advance() {
	p.tok = p.scan.Scan()
}

func (p *parser) fail(msg string) error {
	return &ParseError{Offset: p.tok.Offset, Message: msg}
}

func (p *parser) expect(k token.Kind, what string) error {
	if p.tok.Kind != k {
		return p.fail("expected " + what)
	}
	p.advance()
	return nil
}

// parseBody parses statements until EOF or a tag whose keyword is in stop.
func (p *parser) parseBody(stop ...token.Kind) ([]ast.Node, error) {
	var body []ast.Node
	for {
		if p.tok.Kind == token.EOF {
			return body, nil
		}
		if p.tok.Kind == token.TEXT {
			p.advance()
			continue // raw text contributes nothing to the analysis surface
		}
		if p.tok.Kind == token.OPEN_VAR {
			p.advance()
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.CLOSE_VAR, "}}"); err != nil {
				return nil, err
			}
			body = append(body, &ast.EmitExpression{Expr: expr})
			continue
		}
		if p.tok.Kind == token.OPEN_TAG {
			// peek the keyword without consuming OPEN_TAG permanently
			save := p.tok
			p.advance()
			for _, s := range stop {
				if p.tok.Kind == s {
					// rewind the scanner to the keyword and restore OPEN_TAG so
					// the caller can consume both
					p.scan.rdOffset = p.tok.Offset
					p.scan.next()
					p.tok = save
					return body, nil
				}
			}
			stmt, err := p.parseTag()
			if err != nil {
				return nil, err
			}
			body = append(body, stmt)
			continue
		}
		return nil, p.fail("unexpected token")
	}
}

// parseTag parses the content of a single `{% ... %}` block, having already
// consumed OPEN_TAG.
func (p *parser) parseTag() (ast.Node, error) {
	switch p.tok.Kind {
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.SET:
		return p.parseSet()
	case token.WITH:
		return p.parseWith()
	}
	return nil, p.fail("unknown tag")
}

func (p *parser) closeTag() error {
	return p.expect(token.CLOSE_TAG, "%}")
}

func (p *parser) parseIf() (ast.Node, error) {
	p.advance() // 'if'
	test, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.closeTag(); err != nil {
		return nil, err
	}
	cons, err := p.parseBody(token.ELIF, token.ELSE, token.ENDIF)
	if err != nil {
		return nil, err
	}
	node := &ast.If{Test: test, Consequence: ast.NewBlock(0, cons)}
	if err := p.expect(token.OPEN_TAG, "{%"); err != nil {
		return nil, err
	}
	switch p.tok.Kind {
	case token.ELIF:
		alt, err := p.parseIf()
		if err != nil {
			return nil, err
		}
		node.Alternative = alt
		return node, nil
	case token.ELSE:
		p.advance()
		if err := p.closeTag(); err != nil {
			return nil, err
		}
		altBody, err := p.parseBody(token.ENDIF)
		if err != nil {
			return nil, err
		}
		node.Alternative = ast.NewBlock(0, altBody)
		if err := p.expect(token.OPEN_TAG, "{%"); err != nil {
			return nil, err
		}
		if err := p.expect(token.ENDIF, "endif"); err != nil {
			return nil, err
		}
		return node, p.closeTag()
	case token.ENDIF:
		p.advance()
		return node, p.closeTag()
	}
	return nil, p.fail("expected elif, else, or endif")
}

func (p *parser) parseFor() (ast.Node, error) {
	p.advance() // 'for'
	target, err := p.parseForTarget()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.IN, "in"); err != nil {
		return nil, err
	}
	// parseOr, not parseExpr: a trailing `if` is the loop filter, not a ternary
	iter, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	var filter ast.Node
	if p.tok.Kind == token.IF {
		p.advance()
		filter, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if err := p.closeTag(); err != nil {
		return nil, err
	}
	body, err := p.parseBody(token.ENDFOR, token.ELSE)
	if err != nil {
		return nil, err
	}
	node := &ast.For{Target: target, Iter: iter, Filter: filter, Body: ast.NewBlock(0, body)}
	if err := p.expect(token.OPEN_TAG, "{%"); err != nil {
		return nil, err
	}
	if p.tok.Kind == token.ELSE {
		p.advance()
		if err := p.closeTag(); err != nil {
			return nil, err
		}
		elseBody, err := p.parseBody(token.ENDFOR)
		if err != nil {
			return nil, err
		}
		node.Else = ast.NewBlock(0, elseBody)
		if err := p.expect(token.OPEN_TAG, "{%"); err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.ENDFOR, "endfor"); err != nil {
		return nil, err
	}
	return node, p.closeTag()
}

func (p *parser) parseForTarget() (ast.Node, error) {
	if p.tok.Kind != token.IDENT {
		return nil, p.fail("expected loop variable")
	}
	first := ast.NewIdentifier(ast.Pos(p.tok.Offset), p.tok.Literal)
	p.advance()
	if p.tok.Kind != token.COMMA {
		return first, nil
	}
	names := []*ast.Identifier{first}
	for p.tok.Kind == token.COMMA {
		p.advance()
		if p.tok.Kind != token.IDENT {
			return nil, p.fail("expected loop variable")
		}
		names = append(names, ast.NewIdentifier(ast.Pos(p.tok.Offset), p.tok.Literal))
		p.advance()
	}
	return &ast.TupleTarget{Names: names}, nil
}

func (p *parser) parseSet() (ast.Node, error) {
	p.advance() // 'set'
	if p.tok.Kind != token.IDENT {
		return nil, p.fail("expected identifier")
	}
	target := ast.NewIdentifier(ast.Pos(p.tok.Offset), p.tok.Literal)
	p.advance()
	if p.tok.Kind == token.ASSIGN {
		p.advance()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.closeTag(); err != nil {
			return nil, err
		}
		return &ast.Set{Target: target, Rhs: rhs}, nil
	}
	// scoped-set: `{% set target %} body {% endset %}`
	if err := p.closeTag(); err != nil {
		return nil, err
	}
	body, err := p.parseBody(token.ENDSET)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.OPEN_TAG, "{%"); err != nil {
		return nil, err
	}
	if err := p.expect(token.ENDSET, "endset"); err != nil {
		return nil, err
	}
	return &ast.ScopedSet{Target: target, Body: ast.NewBlock(0, body)}, p.closeTag()
}

func (p *parser) parseWith() (ast.Node, error) {
	p.advance() // 'with'
	if p.tok.Kind != token.IDENT {
		return nil, p.fail("expected identifier")
	}
	target := ast.NewIdentifier(ast.Pos(p.tok.Offset), p.tok.Literal)
	p.advance()
	if err := p.expect(token.ASSIGN, "="); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.closeTag(); err != nil {
		return nil, err
	}
	body, err := p.parseBody(token.ENDWITH)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.OPEN_TAG, "{%"); err != nil {
		return nil, err
	}
	if err := p.expect(token.ENDWITH, "endwith"); err != nil {
		return nil, err
	}
	return &ast.With{Target: target, Value: value, Body: ast.NewBlock(0, body)}, p.closeTag()
}
