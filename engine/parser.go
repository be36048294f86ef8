package engine

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Expression is an operator applied to operands. An empty Op with a single operand denotes the operand itself.
type Expression struct {
	Op   string
	Args []Number
}

func (e Expression) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = format(a)
	}
	switch len(args) {
	case 1:
		if e.Op == "" {
			return args[0]
		}
		return fmt.Sprintf("%s %s", e.Op, args[0])
	case 2:
		return fmt.Sprintf("%s %s %s", args[0], e.Op, args[1])
	default:
		return fmt.Sprintf("%s(%s)", e.Op, strings.Join(args, ", "))
	}
}

func format(n Number) string {
	if n == nil {
		return atomNull
	}
	return n.String()
}

const atomNull = "null"

// InvalidLiteralError is returned when a numeric literal can't be read as its kind.
type InvalidLiteralError struct {
	Literal string
	Err     error
}

func (e InvalidLiteralError) Error() string {
	return fmt.Sprintf("invalid literal: %s: %v", e.Literal, e.Err)
}

func (e InvalidLiteralError) Unwrap() error {
	return e.Err
}

// UnexpectedTokenError is returned when the parser meets a token it doesn't expect.
type UnexpectedTokenError struct {
	Actual Token
}

func (e UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token: %s", e.Actual)
}

// ParseNumber reads a numeric literal.
//
// The optional suffix selects the kind: b for Int8, s for Int16, i for Int32, l for Int64,
// g for BigInt (BigDecimal if the literal has a fraction or an exponent), f for Float32, and d for Float64.
// Without a suffix, an integer literal is the narrowest of Int32, Int64, or BigInt that holds it
// and a literal with a fraction or an exponent is a BigDecimal. "null" is the absent operand.
func ParseNumber(s string) (Number, error) {
	if s == atomNull {
		return nil, nil
	}

	body, suffix := s, rune(0)
	if n := len(s); n > 0 && isSuffix(rune(s[n-1])) {
		body, suffix = s[:n-1], rune(s[n-1])|0x20 // lower case
	}
	fractional := strings.ContainsAny(body, ".eE")

	n, err := parseNumber(body, suffix, fractional)
	if err != nil {
		return nil, InvalidLiteralError{Literal: s, Err: err}
	}
	return n, nil
}

func parseNumber(body string, suffix rune, fractional bool) (Number, error) {
	switch suffix {
	case 'b', 's', 'i', 'l':
		if fractional {
			return nil, strconv.ErrSyntax
		}
		return parseFixed(body, suffix)
	case 'g':
		if fractional {
			return ParseBigDecimal(body)
		}
		return ParseBigInt(body)
	case 'f':
		f, err := strconv.ParseFloat(body, 32)
		if err != nil {
			return nil, err
		}
		return Float32(f), nil
	case 'd':
		f, err := strconv.ParseFloat(body, 64)
		if err != nil {
			return nil, err
		}
		return Float64(f), nil
	default:
		if fractional {
			return ParseBigDecimal(body)
		}
		if i, err := strconv.ParseInt(body, 10, 32); err == nil {
			return Int32(i), nil
		}
		if i, err := strconv.ParseInt(body, 10, 64); err == nil {
			return Int64(i), nil
		}
		return ParseBigInt(body)
	}
}

func parseFixed(body string, suffix rune) (Number, error) {
	bitSize := map[rune]int{'b': 8, 's': 16, 'i': 32, 'l': 64}[suffix]
	i, err := strconv.ParseInt(body, 10, bitSize)
	if err != nil {
		return nil, err
	}
	switch bitSize {
	case 8:
		return Int8(i), nil
	case 16:
		return Int16(i), nil
	case 32:
		return Int32(i), nil
	default:
		return Int64(i), nil
	}
}

// ParseExpression reads an operand, a unary operator followed by an operand,
// or a binary operator between two operands.
func ParseExpression(s string) (Expression, error) {
	l := NewLexer(bufio.NewReader(strings.NewReader(s)))
	var tokens []Token
	for {
		t, err := l.Next()
		if err != nil {
			return Expression{}, err
		}
		tokens = append(tokens, t)
		if t.Kind == TokenEOS {
			break
		}
	}

	p := parser{tokens: tokens}
	e, err := p.expression()
	if err != nil {
		return Expression{}, err
	}
	if t := p.current(); t.Kind != TokenEOS {
		return Expression{}, UnexpectedTokenError{Actual: t}
	}
	return e, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) current() Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() Token {
	t := p.tokens[p.pos]
	if t.Kind != TokenEOS {
		p.pos++
	}
	return t
}

func (p *parser) expression() (Expression, error) {
	if op, ok := p.operator(); ok {
		x, err := p.operand()
		if err != nil {
			return Expression{}, err
		}
		return Expression{Op: op, Args: []Number{x}}, nil
	}

	x, err := p.operand()
	if err != nil {
		return Expression{}, err
	}

	if p.current().Kind == TokenEOS {
		return Expression{Args: []Number{x}}, nil
	}

	op, ok := p.operator()
	if !ok {
		return Expression{}, UnexpectedTokenError{Actual: p.current()}
	}

	y, err := p.operand()
	if err != nil {
		return Expression{}, err
	}
	return Expression{Op: op, Args: []Number{x, y}}, nil
}

// operator consumes an operator if the current token is one.
// A sign immediately followed by a digit is an operator only after an operand.
func (p *parser) operator() (string, bool) {
	switch t := p.current(); t.Kind {
	case TokenGraphic:
		p.advance()
		return t.Val, true
	case TokenIdent:
		if t.Val == atomNull {
			return "", false
		}
		p.advance()
		return t.Val, true
	case TokenSign:
		if p.pos == 0 {
			return "", false
		}
		p.advance()
		return t.Val, true
	default:
		return "", false
	}
}

func (p *parser) operand() (Number, error) {
	switch t := p.advance(); t.Kind {
	case TokenSign:
		n := p.advance()
		if n.Kind != TokenNumber {
			return nil, UnexpectedTokenError{Actual: n}
		}
		return ParseNumber(t.Val + n.Val)
	case TokenNumber:
		return ParseNumber(t.Val)
	case TokenIdent:
		if t.Val != atomNull {
			return nil, UnexpectedTokenError{Actual: t}
		}
		return nil, nil
	default:
		return nil, UnexpectedTokenError{Actual: t}
	}
}
