package parser

import (
	"github.com/viant/tshape/ast"
	"github.com/viant/tshape/token"
)

// parseExpr is the grammar's entry point: a ternary conditional over an
// or-expression, e.g. `a if cond else b`.
func (p *parser) parseExpr() (ast.Node, error) {
	value, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != token.IF {
		return value, nil
	}
	p.advance()
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.ELSE, "else"); err != nil {
		return nil, err
	}
	alt, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.CondExpr{Cond: cond, Then: value, Else: alt}, nil
}

func (p *parser) parseOr() (ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == token.OR {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: "or", Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (ast.Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == token.AND {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: "and", Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseNot() (ast.Node, error) {
	if p.tok.Kind == token.NOT {
		p.advance()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: "not", Operand: operand}, nil
	}
	return p.parseCompare()
}

var compareOps = map[token.Kind]string{
	token.EQ:  "==",
	token.NEQ: "!=",
	token.LT:  "<",
	token.GT:  ">",
	token.LE:  "<=",
	token.GE:  ">=",
}

func (p *parser) parseCompare() (ast.Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := compareOps[p.tok.Kind]
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseConcat() (ast.Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == token.TILDE {
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: "~", Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAdditive() (ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == token.PLUS || p.tok.Kind == token.MINUS {
		op := "+"
		if p.tok.Kind == token.MINUS {
			op = "-"
		}
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

var termOps = map[token.Kind]string{
	token.STAR:   "*",
	token.SLASH:  "/",
	token.PCT:    "%",
	token.DSLASH: "//",
}

func (p *parser) parseTerm() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := termOps[p.tok.Kind]
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (ast.Node, error) {
	if p.tok.Kind == token.MINUS {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: "-", Operand: operand}, nil
	}
	return p.parsePostfix()
}

// parsePostfix handles attribute access, subscripts, calls, filters, and
// `is` tests chained onto a primary expression, left to right.
func (p *parser) parsePostfix() (ast.Node, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.Kind {
		case token.DOT:
			p.advance()
			if p.tok.Kind != token.IDENT {
				return nil, p.fail("expected attribute name")
			}
			expr = &ast.Attribute{Base: expr, Name: p.tok.Literal}
			p.advance()
		case token.LBRACKET:
			p.advance()
			idx, isStr, isInt, err := p.parseSubscriptIndex()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RBRACKET, "]"); err != nil {
				return nil, err
			}
			expr = &ast.Subscript{Base: expr, Index: idx, IsStr: isStr, IsInt: isInt}
		case token.LPAREN:
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			expr = &ast.MacroCall{Callee: expr, Args: args}
		case token.PIPE:
			p.advance()
			if p.tok.Kind != token.IDENT {
				return nil, p.fail("expected filter name")
			}
			name := p.tok.Literal
			p.advance()
			var args []ast.Node
			if p.tok.Kind == token.LPAREN {
				args, err = p.parseArgs()
				if err != nil {
					return nil, err
				}
			}
			expr = &ast.FilterApplication{Expr: expr, Name: name, Args: args}
		case token.IS:
			p.advance()
			if p.tok.Kind != token.IDENT {
				return nil, p.fail("expected test name")
			}
			name := p.tok.Literal
			p.advance()
			var args []ast.Node
			if p.tok.Kind == token.LPAREN {
				args, err = p.parseArgs()
				if err != nil {
					return nil, err
				}
			}
			expr = &ast.Test{Expr: expr, Name: name, Args: args}
		default:
			return expr, nil
		}
	}
}

// parseSubscriptIndex reports whether the index is a bare string/int literal,
// alongside the parsed index expression (still fully parsed so a
// non-literal index's own identifiers are later analyzed as reads).
func (p *parser) parseSubscriptIndex() (ast.Node, bool, bool, error) {
	idx, err := p.parseExpr()
	if err != nil {
		return nil, false, false, err
	}
	lit, ok := idx.(*ast.Literal)
	isStr := ok && lit.Kind == ast.StringLiteral
	isInt := ok && lit.Kind == ast.IntLiteral
	return idx, isStr, isInt, nil
}

func (p *parser) parseArgs() ([]ast.Node, error) {
	if err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}
	var args []ast.Node
	for p.tok.Kind != token.RPAREN {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.tok.Kind == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	if err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *parser) parsePrimary() (ast.Node, error) {
	switch p.tok.Kind {
	case token.IDENT:
		id := ast.NewIdentifier(ast.Pos(p.tok.Offset), p.tok.Literal)
		p.advance()
		return id, nil
	case token.STRING:
		lit := ast.NewLiteral(ast.Pos(p.tok.Offset), ast.StringLiteral, p.tok.Literal)
		p.advance()
		return lit, nil
	case token.INT:
		lit := ast.NewLiteral(ast.Pos(p.tok.Offset), ast.IntLiteral, p.tok.Literal)
		p.advance()
		return lit, nil
	case token.FLOAT:
		lit := ast.NewLiteral(ast.Pos(p.tok.Offset), ast.FloatLiteral, p.tok.Literal)
		p.advance()
		return lit, nil
	case token.TRUE, token.FALSE:
		lit := ast.NewLiteral(ast.Pos(p.tok.Offset), ast.BoolLiteral, p.tok.Literal)
		p.advance()
		return lit, nil
	case token.NONE:
		lit := ast.NewLiteral(ast.Pos(p.tok.Offset), ast.NullLiteral, "none")
		p.advance()
		return lit, nil
	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, p.fail("expected expression")
}
