package macro

import (
	"github.com/piravelha/luaproc/internal/debugcontext"
	"github.com/piravelha/luaproc/internal/token"
)

// blockOpeners and blockCloser couple the argument scanner to the host
// language's block syntax, so a call like `F!(function() ... end)` does not
// mistake the inner comma or closing paren for the invocation's own. This is
// a small table, not baked-in string comparisons scattered through the
// scanner, so a future host language only needs a different table.
var blockOpeners = map[string]bool{"function": true, "do": true, "then": true}

const blockCloser = "end"

func nestingDelta(t token.Token) int {
	switch {
	case t.Kind == token.Brace && (t.Lexeme == "(" || t.Lexeme == "[" || t.Lexeme == "{"):
		return 1
	case t.Kind == token.Brace && (t.Lexeme == ")" || t.Lexeme == "]" || t.Lexeme == "}"):
		return -1
	case t.Kind == token.Name && blockOpeners[t.Lexeme]:
		return 1
	case t.Is(token.Name, blockCloser):
		return -1
	default:
		return 0
	}
}

// matchFunctionMacro tests whether a function-macro invocation starts at
// tokens[c]. On a match it scans the balanced argument list, substitutes
// parameters into the macro body, re-scans the result under env, and
// returns the paste-resolved tokens plus how many input tokens the whole
// invocation consumed.
func matchFunctionMacro(tokens []token.Token, c int, env *Env, hide map[string]struct{}, dbg *debugcontext.DebugContext) (bool, int, []token.Token) {
	t := tokens[c]
	if t.Kind != token.MacroName || c+1 >= len(tokens) {
		return false, 0, nil
	}
	opener := tokens[c+1]
	if opener.Kind != token.Brace || (opener.Lexeme != "(" && opener.Lexeme != "[" && opener.Lexeme != "{") {
		return false, 0, nil
	}

	f, ok := env.LookupFunction(t.Lexeme)
	if !ok {
		return false, 0, nil
	}
	if _, hidden := hide[f.Name]; hidden {
		return false, 0, nil
	}

	args, end, ok := scanArguments(tokens, c+2)
	if !ok {
		// Mismatched parens: consume to end of input, producing garbled
		// output rather than a hard failure.
		return true, len(tokens) - c, append([]token.Token(nil), tokens[c+2:]...)
	}

	bindings := bindParams(f.Params, args)
	substituted := substituteParams(f.Body, bindings)

	nested := cloneHide(hide)
	nested[f.Name] = struct{}{}
	enterMacro(dbg, f.Name)
	expanded := expand(substituted, env, dbg, nested)
	exitMacro(dbg)
	result := paste(expanded)

	consumed := end + 1 - c
	return true, consumed, result
}

// scanArguments splits the token sequence starting at start (the token
// immediately after the invocation's opener) into comma-separated argument
// groups at nesting level 0, honoring nestingDelta. It returns the argument
// groups, the index of the matching closer, and false if the input ends
// before the nesting returns to the opener's level.
func scanArguments(tokens []token.Token, start int) ([][]token.Token, int, bool) {
	var args [][]token.Token
	var current []token.Token
	depth := 0

	i := start
	for i < len(tokens) {
		d := nestingDelta(tokens[i])
		switch {
		case d < 0 && depth == 0:
			args = append(args, current)
			return args, i, true
		case d < 0:
			depth += d
			current = append(current, tokens[i])
		case d > 0:
			depth += d
			current = append(current, tokens[i])
		case depth == 0 && tokens[i].Is(token.Delimiter, ","):
			args = append(args, current)
			current = nil
		default:
			current = append(current, tokens[i])
		}
		i++
	}
	return args, i, false
}

// bindParams binds each parameter to its positional argument. A trailing
// "..." parameter collects every remaining argument into one synthetic
// __VA_ARGS__ binding, comma-joined with no trailing separator. Missing
// trailing arguments become empty bodies.
func bindParams(params []string, args [][]token.Token) []ValueMacro {
	var bindings []ValueMacro
	for i, p := range params {
		if p == "..." {
			var body []token.Token
			for j := i; j < len(args); j++ {
				if j > i {
					body = append(body, commaToken(args[j]))
				}
				body = append(body, args[j]...)
			}
			bindings = append(bindings, ValueMacro{Name: "__VA_ARGS__", Body: body})
			break
		}
		var arg []token.Token
		if i < len(args) {
			arg = args[i]
		}
		bindings = append(bindings, ValueMacro{Name: p, Body: arg})
	}
	return bindings
}

func commaToken(followingArg []token.Token) token.Token {
	var loc debugcontext.Location
	if len(followingArg) > 0 {
		loc = followingArg[0].Loc
	}
	return token.New(token.Delimiter, ",", loc)
}

// substituteParams walks bindings in order, rewriting every occurrence of
// each one throughout the body before moving to the next binding.
func substituteParams(body []token.Token, bindings []ValueMacro) []token.Token {
	result := body
	for _, b := range bindings {
		result = substituteOneBinding(result, b)
	}
	return result
}

func substituteOneBinding(body []token.Token, m ValueMacro) []token.Token {
	var out []token.Token
	i := 0
	for i < len(body) {
		if matched, consumed, result := matchParamSite(body, i, m); matched {
			out = append(out, result...)
			i += consumed
			continue
		}
		out = append(out, body[i])
		i++
	}
	return out
}

// matchParamSite applies a single parameter binding at body[c]. Parameter
// references inside macro bodies are bare names, not "!"-suffixed — bare
// name substitution is distinct from the MacroName-triggered invocation
// site used by matchValueMacro at the top level.
func matchParamSite(body []token.Token, c int, m ValueMacro) (bool, int, []token.Token) {
	t := body[c]

	if t.Is(token.Name, m.Name) {
		return true, 1, append([]token.Token(nil), m.Body...)
	}

	if t.Kind == token.Stringify && stringifyTarget(t) == m.Name {
		return true, 1, []token.Token{stringifyToken(m, t)}
	}

	if m.Name == "__VA_ARGS__" && t.Is(token.Delimiter, ",") && c+1 < len(body) {
		next := body[c+1]
		if next.Is(token.Name, "__VA_ARGS__") || next.Kind == token.TaggedVararg {
			if len(m.Body) == 0 {
				return true, 1, nil
			}
			return true, 1, []token.Token{t}
		}
	}

	if m.Name == "__VA_ARGS__" && t.Kind == token.TaggedVararg {
		return true, 1, append([]token.Token(nil), m.Body...)
	}

	return false, 0, nil
}
