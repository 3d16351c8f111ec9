package macro

import (
	"github.com/piravelha/luaproc/internal/debugcontext"
	"github.com/piravelha/luaproc/internal/token"
)

// paste replaces every maximal run Name ## Name (## Name)* with a single
// Name token whose lexeme is the concatenation of the component lexemes, no
// separators inserted. A "##" adjacent to anything but a Name on both sides
// is left alone. The synthesized token's Location is a Span covering the
// pasted identifier's full width, not just the first component's point
// location — a diagnostic about "ABC" should underline all three letters,
// not only where "A" started.
func paste(tokens []token.Token) []token.Token {
	var out []token.Token
	i := 0
	for i < len(tokens) {
		if tokens[i].Kind == token.Name && i+2 < len(tokens) &&
			tokens[i+1].Kind == token.Paste && tokens[i+2].Kind == token.Name {
			lexeme := tokens[i].Lexeme
			start := tokens[i].Loc
			j := i
			for j+2 < len(tokens) && tokens[j+1].Kind == token.Paste && tokens[j+2].Kind == token.Name {
				lexeme += tokens[j+2].Lexeme
				j += 2
			}
			loc := debugcontext.Span(start.FilePath(), start.Line(), start.Column(), len(lexeme))
			out = append(out, token.New(token.Name, lexeme, loc))
			i = j + 1
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}
