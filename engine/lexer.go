package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Lexer turns bytes into tokens.
type Lexer struct {
	input  *bufio.Reader
	tokens []Token
	pos    int
	width  int
}

// NewLexer creates a lexer with an input.
func NewLexer(input *bufio.Reader) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next token.
func (l *Lexer) Next() (Token, error) {
	state := l.init
	for state != nil && len(l.tokens) == 0 {
		r, err := l.next()
		if err != nil {
			return Token{}, err
		}
		state, err = state(r)
		if err != nil {
			return Token{}, err
		}
	}

	var t Token
	t, l.tokens = l.tokens[0], l.tokens[1:]
	return t, nil
}

const etx = 0x2

func (l *Lexer) next() (rune, error) {
	r, w, err := l.input.ReadRune()
	switch err {
	case nil:
		break
	case io.EOF:
		r = etx
		w = 1
	default:
		return 0, err
	}
	l.width = w
	l.pos += l.width
	return r, nil
}

func (l *Lexer) backup() {
	_ = l.input.UnreadRune()
	l.pos -= l.width
}

func (l *Lexer) emit(t Token) {
	l.tokens = append(l.tokens, t)
}

// Token is a smallest meaningful unit of an expression.
type Token struct {
	Kind TokenKind
	Val  string
}

func (t Token) String() string {
	return fmt.Sprintf("<%s %s>", t.Kind, t.Val)
}

// TokenKind is a type of Token.
type TokenKind byte

const (
	// TokenEOS represents an end of token stream.
	TokenEOS TokenKind = iota

	// TokenNumber represents a numeric literal with an optional kind suffix.
	TokenNumber

	// TokenIdent represents an identifier token.
	TokenIdent

	// TokenGraphic represents a graphical token.
	TokenGraphic

	// TokenSign represents a plus/minus immediately followed by a digit.
	TokenSign

	tokenKindLen
)

func (k TokenKind) String() string {
	return [tokenKindLen]string{
		TokenEOS:     "eos",
		TokenNumber:  "number",
		TokenIdent:   "ident",
		TokenGraphic: "graphical",
		TokenSign:    "sign",
	}[k]
}

// UnexpectedRuneError is returned when the lexer meets a rune it can't handle.
type UnexpectedRuneError struct {
	rune rune
}

func (e UnexpectedRuneError) Error() string {
	return fmt.Sprintf("unexpected rune: %s(0x%x)", string(e.rune), e.rune)
}

type lexState func(rune) (lexState, error)

func (l *Lexer) init(r rune) (lexState, error) {
	switch {
	case r == etx:
		l.emit(Token{Kind: TokenEOS})
		return nil, nil
	case unicode.IsSpace(r):
		return l.init, nil
	case r == '+' || r == '-':
		var b strings.Builder
		_, _ = b.WriteRune(r)
		return l.sign(&b)
	case isDigit(r):
		var b strings.Builder
		_, _ = b.WriteRune(r)
		return l.integer(&b)
	case isGraphic(r):
		var b strings.Builder
		_, _ = b.WriteRune(r)
		return l.graphic(&b)
	case unicode.IsLetter(r):
		var b strings.Builder
		_, _ = b.WriteRune(r)
		return l.ident(&b)
	default:
		return nil, UnexpectedRuneError{rune: r}
	}
}

func (l *Lexer) sign(b *strings.Builder) (lexState, error) {
	return func(r rune) (lexState, error) {
		switch {
		case isDigit(r):
			l.backup()
			l.emit(Token{Kind: TokenSign, Val: b.String()})
			return nil, nil
		case isGraphic(r):
			_, _ = b.WriteRune(r)
			return l.graphic(b)
		default:
			l.backup()
			l.emit(Token{Kind: TokenGraphic, Val: b.String()})
			return nil, nil
		}
	}, nil
}

func (l *Lexer) graphic(b *strings.Builder) (lexState, error) {
	return func(r rune) (lexState, error) {
		switch {
		case isGraphic(r):
			_, _ = b.WriteRune(r)
			return l.graphic(b)
		default:
			l.backup()
			l.emit(Token{Kind: TokenGraphic, Val: b.String()})
			return nil, nil
		}
	}, nil
}

func (l *Lexer) ident(b *strings.Builder) (lexState, error) {
	return func(r rune) (lexState, error) {
		switch {
		case unicode.IsLetter(r), isDigit(r), r == '_':
			_, _ = b.WriteRune(r)
			return l.ident(b)
		default:
			l.backup()
			l.emit(Token{Kind: TokenIdent, Val: b.String()})
			return nil, nil
		}
	}, nil
}

func (l *Lexer) integer(b *strings.Builder) (lexState, error) {
	return func(r rune) (lexState, error) {
		switch {
		case isDigit(r):
			_, _ = b.WriteRune(r)
			return l.integer(b)
		case r == '.':
			_, _ = b.WriteRune(r)
			return l.fractionBegin(b)
		case r == 'e' || r == 'E':
			_, _ = b.WriteRune(r)
			return l.exponentBegin(b)
		default:
			return l.suffix(b, r)
		}
	}, nil
}

func (l *Lexer) fractionBegin(b *strings.Builder) (lexState, error) {
	return func(r rune) (lexState, error) {
		switch {
		case isDigit(r):
			_, _ = b.WriteRune(r)
			return l.fraction(b)
		default:
			return nil, UnexpectedRuneError{rune: r}
		}
	}, nil
}

func (l *Lexer) fraction(b *strings.Builder) (lexState, error) {
	return func(r rune) (lexState, error) {
		switch {
		case isDigit(r):
			_, _ = b.WriteRune(r)
			return l.fraction(b)
		case r == 'e' || r == 'E':
			_, _ = b.WriteRune(r)
			return l.exponentBegin(b)
		default:
			return l.suffix(b, r)
		}
	}, nil
}

func (l *Lexer) exponentBegin(b *strings.Builder) (lexState, error) {
	return func(r rune) (lexState, error) {
		switch {
		case r == '+' || r == '-':
			_, _ = b.WriteRune(r)
			return l.exponentSign(b)
		case isDigit(r):
			_, _ = b.WriteRune(r)
			return l.exponent(b)
		default:
			return nil, UnexpectedRuneError{rune: r}
		}
	}, nil
}

func (l *Lexer) exponentSign(b *strings.Builder) (lexState, error) {
	return func(r rune) (lexState, error) {
		switch {
		case isDigit(r):
			_, _ = b.WriteRune(r)
			return l.exponent(b)
		default:
			return nil, UnexpectedRuneError{rune: r}
		}
	}, nil
}

func (l *Lexer) exponent(b *strings.Builder) (lexState, error) {
	return func(r rune) (lexState, error) {
		switch {
		case isDigit(r):
			_, _ = b.WriteRune(r)
			return l.exponent(b)
		default:
			return l.suffix(b, r)
		}
	}, nil
}

// suffix ends a numeric literal with an optional kind suffix.
func (l *Lexer) suffix(b *strings.Builder, r rune) (lexState, error) {
	switch {
	case isSuffix(r):
		_, _ = b.WriteRune(r)
		return l.end(b)
	case unicode.IsLetter(r), r == '_', r == '.':
		return nil, UnexpectedRuneError{rune: r}
	default:
		l.backup()
		l.emit(Token{Kind: TokenNumber, Val: b.String()})
		return nil, nil
	}
}

func (l *Lexer) end(b *strings.Builder) (lexState, error) {
	return func(r rune) (lexState, error) {
		switch {
		case unicode.IsLetter(r), isDigit(r), r == '_', r == '.':
			return nil, UnexpectedRuneError{rune: r}
		default:
			l.backup()
			l.emit(Token{Kind: TokenNumber, Val: b.String()})
			return nil, nil
		}
	}, nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isGraphic(r rune) bool {
	return strings.ContainsRune("#$&*+-./:<=>?@^~\\%", r)
}

func isSuffix(r rune) bool {
	return strings.ContainsRune("bBsSiIlLgGfFdD", r)
}
