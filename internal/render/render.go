// Package render serialises an expanded token stream back into host-language
// source text.
package render

import (
	"strings"

	"github.com/piravelha/luaproc/internal/token"
)

// Render joins token lexemes with a single space, except that no space is
// inserted on either side of a Newline token — Newline tokens already carry
// their own trailing indentation, so inserting another space would double it.
func Render(tokens []token.Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 && tokens[i-1].Kind != token.Newline && t.Kind != token.Newline {
			b.WriteString(" ")
		}
		b.WriteString(t.Lexeme)
	}
	return b.String()
}
