package engine

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer_Next(t *testing.T) {
	tests := []struct {
		input  string
		tokens []Token
		err    error
	}{
		{input: ``, tokens: []Token{{Kind: TokenEOS}}},
		{input: `  42 `, tokens: []Token{{Kind: TokenNumber, Val: `42`}, {Kind: TokenEOS}}},
		{input: `42L`, tokens: []Token{{Kind: TokenNumber, Val: `42L`}, {Kind: TokenEOS}}},
		{input: `1.5`, tokens: []Token{{Kind: TokenNumber, Val: `1.5`}, {Kind: TokenEOS}}},
		{input: `1.5e-3f`, tokens: []Token{{Kind: TokenNumber, Val: `1.5e-3f`}, {Kind: TokenEOS}}},
		{input: `2E10`, tokens: []Token{{Kind: TokenNumber, Val: `2E10`}, {Kind: TokenEOS}}},
		{input: `-3`, tokens: []Token{{Kind: TokenSign, Val: `-`}, {Kind: TokenNumber, Val: `3`}, {Kind: TokenEOS}}},
		{input: `- 3`, tokens: []Token{{Kind: TokenGraphic, Val: `-`}, {Kind: TokenNumber, Val: `3`}, {Kind: TokenEOS}}},
		{input: `3-2`, tokens: []Token{{Kind: TokenNumber, Val: `3`}, {Kind: TokenSign, Val: `-`}, {Kind: TokenNumber, Val: `2`}, {Kind: TokenEOS}}},
		{input: `1 <=> 2`, tokens: []Token{{Kind: TokenNumber, Val: `1`}, {Kind: TokenGraphic, Val: `<=>`}, {Kind: TokenNumber, Val: `2`}, {Kind: TokenEOS}}},
		{input: `abs null`, tokens: []Token{{Kind: TokenIdent, Val: `abs`}, {Kind: TokenIdent, Val: `null`}, {Kind: TokenEOS}}},
		{input: `7 % 2s`, tokens: []Token{{Kind: TokenNumber, Val: `7`}, {Kind: TokenGraphic, Val: `%`}, {Kind: TokenNumber, Val: `2s`}, {Kind: TokenEOS}}},

		{input: `1.`, err: UnexpectedRuneError{rune: etx}},
		{input: `1.x`, err: UnexpectedRuneError{rune: 'x'}},
		{input: `1e`, err: UnexpectedRuneError{rune: etx}},
		{input: `1e+`, err: UnexpectedRuneError{rune: etx}},
		{input: `12abc`, err: UnexpectedRuneError{rune: 'a'}},
		{input: `5bx`, err: UnexpectedRuneError{rune: 'x'}},
		{input: `(`, err: UnexpectedRuneError{rune: '('}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewLexer(bufio.NewReader(strings.NewReader(tt.input)))
			var tokens []Token
			for {
				tok, err := l.Next()
				if err != nil {
					assert.Equal(t, tt.err, err)
					return
				}
				tokens = append(tokens, tok)
				if tok.Kind == TokenEOS {
					break
				}
			}
			assert.NoError(t, tt.err)
			assert.Equal(t, tt.tokens, tokens)
		})
	}
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "<number 42>", Token{Kind: TokenNumber, Val: "42"}.String())
	assert.Equal(t, "<graphical <=>>", Token{Kind: TokenGraphic, Val: "<=>"}.String())
}
