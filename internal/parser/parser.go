package parser

import (
	"fmt"

	"github.com/pemberton-lang/gsv-go/gsv"
)

// ParseError reports a syntax problem, distinct from and never confused
// with gsv.EvalError: a formula that fails to parse never reaches the
// evaluator at all.
type ParseError struct {
	Message string
	Pos     int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Message)
}

// Parse reads a formula in the textual notation documented in
// SPEC_FULL.md §4.8 and returns its gsv.Expression.
//
//	~ φ            negation
//	<> φ           epistemic possibility
//	[] φ           epistemic necessity
//	φ & ψ          conjunction
//	φ | ψ          disjunction
//	φ -> ψ         conditional
//	Ex v . φ       existential quantification
//	All v . φ      universal quantification
//	P(t1, ..., tn) predication
//	t1 = t2        identity
func Parse(input string) (gsv.Expression, error) {
	p := &parser{tokens: tokenize(input)}
	expr, err := p.parseImplication()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != TokEOF {
		return nil, &ParseError{Message: fmt.Sprintf("unexpected trailing input %q", tok.Text), Pos: tok.Pos}
	}
	return expr, nil
}

func tokenize(input string) []Token {
	t := NewTokenizer(input)
	var tokens []Token
	for {
		tok := t.Next()
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			break
		}
	}
	return tokens
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) peekNext() Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // trailing TokEOF sentinel
	}
	return p.tokens[p.pos+1]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) expect(tt TokenType, what string) (Token, error) {
	tok := p.peek()
	if tok.Type != tt {
		return tok, &ParseError{Message: fmt.Sprintf("expected %s, found %q", what, tok.Text), Pos: tok.Pos}
	}
	return p.next(), nil
}

// parseImplication := disjunction ('->' implication)?   (right-associative)
func (p *parser) parseImplication() (gsv.Expression, error) {
	left, err := p.parseDisjunction()
	if err != nil {
		return nil, err
	}
	if p.peek().Type == TokArrow {
		p.next()
		right, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		return gsv.If(left, right), nil
	}
	return left, nil
}

// parseDisjunction := conjunction ('|' conjunction)*
func (p *parser) parseDisjunction() (gsv.Expression, error) {
	left, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokOr {
		p.next()
		right, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		left = gsv.Or(left, right)
	}
	return left, nil
}

// parseConjunction := unary ('&' unary)*
func (p *parser) parseConjunction() (gsv.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokAnd {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = gsv.And(left, right)
	}
	return left, nil
}

// parseUnary handles prefix operators and quantifiers, all of which
// bind as tightly as an atom — a quantifier's scope is narrow (just the
// next unary), so `Ex x.P(x) & Q(x)` parses as `And(Exists(x,P(x)),
// Q(x))`, matching how dynamic conjunction is meant to sequence updates.
func (p *parser) parseUnary() (gsv.Expression, error) {
	switch p.peek().Type {
	case TokNot:
		p.next()
		scope, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return gsv.Not(scope), nil

	case TokDiamond:
		p.next()
		scope, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return gsv.Possible(scope), nil

	case TokBox:
		p.next()
		scope, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return gsv.Necessary(scope), nil

	case TokIdent:
		if tok := p.peek(); tok.Text == "Ex" || tok.Text == "All" {
			return p.parseQuantification()
		}
		return p.parseAtom()

	default:
		return p.parseAtom()
	}
}

func (p *parser) parseQuantification() (gsv.Expression, error) {
	kw := p.next() // "Ex" or "All"
	variable, err := p.expect(TokIdent, "bound variable")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokDot, "'.'"); err != nil {
		return nil, err
	}
	scope, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if kw.Text == "Ex" {
		return gsv.Exists(variable.Text, scope), nil
	}
	return gsv.ForAll(variable.Text, scope), nil
}

// parseAtom := IDENT '(' term (',' term)* ')'   -- predication
//
//	| term '=' term                    -- identity
//	| '(' implication ')'
func (p *parser) parseAtom() (gsv.Expression, error) {
	if p.peek().Type == TokLParen {
		p.next()
		expr, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokRParen, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	}

	if p.peek().Type == TokIdent && p.peekNext().Type == TokLParen {
		name := p.next()
		p.next() // '('
		args := []gsv.Term{}
		if p.peek().Type != TokRParen {
			for {
				term, err := p.parseTerm()
				if err != nil {
					return nil, err
				}
				args = append(args, term)
				if p.peek().Type != TokComma {
					break
				}
				p.next()
			}
		}
		if _, err := p.expect(TokRParen, "')'"); err != nil {
			return nil, err
		}
		return gsv.Pred(name.Text, args...), nil
	}

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokEquals, "'='"); err != nil {
		return nil, err
	}
	right, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return gsv.Eq(left, right), nil
}

func (p *parser) parseTerm() (gsv.Term, error) {
	tok, err := p.expect(TokIdent, "term")
	if err != nil {
		return gsv.Term{}, err
	}
	if isVariable(tok.Text) {
		return gsv.Var(tok.Text), nil
	}
	return gsv.Const(tok.Text), nil
}
