// Package lexer tokenises folded source text into the tagged vocabulary
// defined by internal/token, using an ordered table of regular expressions:
// the first rule that matches at the current position wins. Order encodes
// priority, not just documentation — Property precedes Name so ".foo" is
// never a macro invocation site, and MacroName precedes Name so "foo!" is an
// invocation while "foo" is an ordinary identifier.
package lexer

import (
	"fmt"
	"regexp"

	"github.com/piravelha/luaproc/internal/debugcontext"
	"github.com/piravelha/luaproc/internal/token"
)

type rule struct {
	re   *regexp.Regexp
	kind token.Kind
}

// rules is tried top-to-bottom at every position; the first match wins. No
// backtracking across rules, and no attempt is made to find the longest
// match among multiple candidates.
var rules = []rule{
	{regexp.MustCompile(`^(\.|:)\s*[a-zA-Z_]\w*`), token.Property},
	{regexp.MustCompile(`^\.\.\.`), token.Vararg},
	{regexp.MustCompile(`^#\.\.\.`), token.TaggedVararg},
	{regexp.MustCompile(`^#[a-zA-Z_]\w*#`), token.Stringify},
	{regexp.MustCompile(`^##`), token.Paste},
	{regexp.MustCompile(`^[a-zA-Z_]\w*!`), token.MacroName},
	{regexp.MustCompile(`^[a-zA-Z_]\w*`), token.Name},
	{regexp.MustCompile(`^-?\d+(\.\d+)?`), token.Number},
	{regexp.MustCompile(`^"([^"\\]|\\.)*"`), token.String},
	{regexp.MustCompile(`^#define\b`), token.DefineDirective},
	{regexp.MustCompile(`^#ifdef\b`), token.Ifdef},
	{regexp.MustCompile(`^#ifndef\b`), token.Ifndef},
	{regexp.MustCompile(`^#endif\b`), token.Endif},
	{regexp.MustCompile(`^#undef\b`), token.Undef},
	{regexp.MustCompile(`^#end\b`), token.EndDefine},
	{regexp.MustCompile(`^[+\-*/!@#$%^&:=~<>?.]+`), token.Special},
	{regexp.MustCompile(`^[()\[\]{}]`), token.Brace},
	{regexp.MustCompile(`^[,;]`), token.Delimiter},
	{regexp.MustCompile(`^(\r?\n[\t ]*)+`), token.Newline},
}

// Error reports a lex failure: no rule matched at Loc. Tokens holds every
// token accumulated before the failure, for diagnostic display.
type Error struct {
	Tokens    []token.Token
	Loc       debugcontext.Location
	Remaining string
}

func (e *Error) Error() string {
	preview := e.Remaining
	if len(preview) > 20 {
		preview = preview[:20] + "..."
	}
	return fmt.Sprintf("%s: no lex rule matches %q", e.Loc.String(), preview)
}

// Lex tokenises source, which is assumed to already be line-folded. filePath
// is recorded on every token's Location so later diagnostics can point back
// into the original file.
func Lex(filePath, source string) ([]token.Token, error) {
	var tokens []token.Token
	pos, line, col := 0, 1, 1

	for pos < len(source) {
		for pos < len(source) && (source[pos] == ' ' || source[pos] == '\t') {
			pos++
			col++
		}
		if pos >= len(source) {
			break
		}

		rest := source[pos:]
		matched := false
		for _, r := range rules {
			loc := r.re.FindStringIndex(rest)
			if loc == nil || loc[0] != 0 {
				continue
			}

			lexeme := rest[:loc[1]]
			tokens = append(tokens, token.New(r.kind, lexeme, debugcontext.Loc(filePath, line, col)))
			line, col = advance(line, col, lexeme)
			pos += len(lexeme)
			matched = true
			break
		}

		if !matched {
			return tokens, &Error{
				Tokens:    tokens,
				Loc:       debugcontext.Loc(filePath, line, col),
				Remaining: rest,
			}
		}
	}

	return tokens, nil
}

// advance computes the line and column following lexeme, honoring any
// embedded newlines (Newline tokens span more than one line at once, and a
// String token may too — per the string rule's non-excluding character
// class).
func advance(line, col int, lexeme string) (int, int) {
	for i := 0; i < len(lexeme); i++ {
		if lexeme[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
