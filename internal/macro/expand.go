package macro

import (
	"strconv"
	"strings"

	"github.com/piravelha/luaproc/internal/debugcontext"
	"github.com/piravelha/luaproc/internal/render"
	"github.com/piravelha/luaproc/internal/token"
)

// Expand consumes a token sequence against env, resolving every macro
// invocation, conditional, paste, and stringification. dbg may be nil; when
// non-nil, malformed directives are recorded as warnings rather than
// silently vanishing.
func Expand(tokens []token.Token, env *Env, dbg *debugcontext.DebugContext) []token.Token {
	return expand(tokens, env, dbg, map[string]struct{}{})
}

// expand is the left-to-right cursor loop: undef, value macro, function
// macro, conditional, define, tried in order at each position. hide names
// macros currently being substituted
// along the current recursive expansion chain — a self-referential or
// mutually-recursive macro will find its own name hidden and fall through
// to ordinary emission instead of looping forever.
func expand(tokens []token.Token, env *Env, dbg *debugcontext.DebugContext, hide map[string]struct{}) []token.Token {
	var out []token.Token
	c := 0
	for c < len(tokens) {
		t := tokens[c]

		if t.Kind == token.Undef {
			if c+1 < len(tokens) && tokens[c+1].Kind == token.MacroName {
				env.Undef(tokens[c+1].Lexeme)
				c += 2
				continue
			}
			malformed(dbg, t, "#undef without a macro name")
			c++
			continue
		}

		if matched, consumed, result := matchValueMacro(tokens, c, env, hide, dbg); matched {
			out = append(out, result...)
			c += consumed
			continue
		}

		if matched, consumed, result := matchFunctionMacro(tokens, c, env, hide, dbg); matched {
			out = append(out, result...)
			c += consumed
			continue
		}

		if t.Kind == token.Ifdef || t.Kind == token.Ifndef {
			if c+1 >= len(tokens) || tokens[c+1].Kind != token.MacroName {
				malformed(dbg, t, "conditional without a macro name")
				c++
				continue
			}
			cond := env.Defined(tokens[c+1].Lexeme)
			if t.Kind == token.Ifndef {
				cond = !cond
			}
			c += 2
			if !cond {
				c = skipToEndif(tokens, c)
			}
			continue
		}

		if t.Kind == token.Endif {
			c++
			continue
		}

		if t.Kind == token.DefineDirective {
			c += defineMacro(tokens, c, env, dbg)
			continue
		}

		out = append(out, t)
		c++
	}
	return out
}

// matchValueMacro tests every live value macro at the cursor and returns
// the first match: MacroName invocation (suppressed on an assignment
// left-hand side) or a Stringify token naming it.
func matchValueMacro(tokens []token.Token, c int, env *Env, hide map[string]struct{}, dbg *debugcontext.DebugContext) (bool, int, []token.Token) {
	t := tokens[c]
	for _, m := range env.values {
		if _, hidden := hide[m.Name]; hidden {
			continue
		}

		if t.Is(token.MacroName, m.Name) {
			if c+1 < len(tokens) && tokens[c+1].Is(token.Special, "=") {
				continue
			}
			return true, 1, expandMacroBody(m, env, hide, dbg)
		}

		if t.Kind == token.Stringify && stringifyTarget(t) == m.Name {
			return true, 1, []token.Token{stringifyToken(m, t)}
		}
	}
	return false, 0, nil
}

func expandMacroBody(m ValueMacro, env *Env, hide map[string]struct{}, dbg *debugcontext.DebugContext) []token.Token {
	nested := cloneHide(hide)
	nested[m.Name] = struct{}{}
	enterMacro(dbg, m.Name)
	expanded := expand(m.Body, env, dbg, nested)
	exitMacro(dbg)
	return paste(expanded)
}

// enterMacro/exitMacro bracket a recursive re-scan of a macro's body so any
// diagnostic recorded during that re-scan — a malformed nested directive, a
// dropped #define — is tagged with the chain of macros currently being
// expanded, not just the pipeline phase. dbg may be nil outside the
// pipeline (e.g. direct calls to Expand in tests), so both are no-ops then.
func enterMacro(dbg *debugcontext.DebugContext, name string) {
	if dbg != nil {
		dbg.EnterMacro(name)
	}
}

func exitMacro(dbg *debugcontext.DebugContext) {
	if dbg != nil {
		dbg.ExitMacro()
	}
}

func cloneHide(hide map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(hide)+1)
	for k := range hide {
		out[k] = struct{}{}
	}
	return out
}

// skipToEndif advances past a skipped conditional body, counting nested
// #ifdef/#ifndef so an inner conditional's #endif does not terminate the
// outer one early.
func skipToEndif(tokens []token.Token, c int) int {
	depth := 0
	for c < len(tokens) {
		switch tokens[c].Kind {
		case token.Ifdef, token.Ifndef:
			depth++
		case token.Endif:
			if depth == 0 {
				return c + 1
			}
			depth--
		}
		c++
	}
	return c
}

// stringifyTarget strips the leading and trailing "#" from a Stringify
// lexeme, yielding the parameter or macro name it names.
func stringifyTarget(t token.Token) string {
	return strings.Trim(t.Lexeme, "#")
}

// stringifyToken renders m.Body and wraps it as a quoted String token. The
// result's lexeme is wider than the "#NAME#" stringify token it replaces, so
// its Location is a Span covering the rendered text's width rather than a
// reused point location — a diagnostic about the stringified result should
// underline the whole literal, not just the column the "#" sat at.
func stringifyToken(m ValueMacro, at token.Token) token.Token {
	rendered := render.Render(m.Body)
	quoted := strconv.Quote(rendered)
	loc := debugcontext.Span(at.Loc.FilePath(), at.Loc.Line(), at.Loc.Column(), len(quoted))
	return token.New(token.String, quoted, loc)
}

func malformed(dbg *debugcontext.DebugContext, t token.Token, msg string) {
	if dbg != nil {
		dbg.Warning(t.Loc, "malformed directive: "+msg)
	}
}
