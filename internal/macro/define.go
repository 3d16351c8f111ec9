package macro

import (
	"github.com/piravelha/luaproc/internal/debugcontext"
	"github.com/piravelha/luaproc/internal/token"
)

// defineMacro parses "#define NAME! [(params)] = body #end" starting at
// tokens[c], a DefineDirective token, and registers the result in env. It
// returns the number of input tokens consumed.
//
// Every malformed form (missing MacroName, a parameter list entry that is
// not a single Name or "...", a parameter list never closed, a body never
// terminated) drops the whole directive: a warning is recorded and parsing
// resumes past whatever was consumed while locating the problem, per the
// "recover in place" error policy.
func defineMacro(tokens []token.Token, c int, env *Env, dbg *debugcontext.DebugContext) int {
	start := c
	c++ // consume DefineDirective

	if c >= len(tokens) || tokens[c].Kind != token.MacroName {
		malformed(dbg, tokens[start], "#define without a macro name")
		return c - start
	}
	name := tokens[c].Lexeme
	c++

	var params []string
	hasParams := false
	if c < len(tokens) && tokens[c].Is(token.Brace, "(") {
		hasParams = true
		c++
		for c < len(tokens) && !isCloseParen(tokens[c]) {
			switch {
			case tokens[c].Kind == token.Name:
				params = append(params, tokens[c].Lexeme)
				c++
			case tokens[c].Kind == token.Vararg:
				params = append(params, "...")
				c++
			default:
				malformed(dbg, tokens[c], "parameter list entry is not a single name or ...")
				for c < len(tokens) && !isCloseParen(tokens[c]) {
					c++
				}
				if c < len(tokens) {
					c++
				}
				return c - start
			}
			if c < len(tokens) && tokens[c].Is(token.Delimiter, ",") {
				c++
			}
		}
		if c >= len(tokens) {
			malformed(dbg, tokens[start], "#define parameter list never closed")
			return c - start
		}
		c++ // consume ")"
	}

	if c >= len(tokens) || !isEquals(tokens[c]) {
		// No "=": empty value macro, used as a presence flag for #ifdef.
		env.DefineValue(ValueMacro{Name: name})
		return c - start
	}
	c++ // consume "="

	bodyStart := c
	for c < len(tokens) && tokens[c].Kind != token.EndDefine {
		c++
	}
	if c >= len(tokens) {
		malformed(dbg, tokens[start], "#define body never terminated with #end")
		return c - start
	}
	body := append([]token.Token(nil), tokens[bodyStart:c]...)
	c++ // consume #end

	if hasParams {
		env.DefineFunction(FunctionMacro{Name: name, Params: params, Body: body})
	} else {
		env.DefineValue(ValueMacro{Name: name, Body: body})
	}
	return c - start
}

func isCloseParen(t token.Token) bool {
	return t.Is(token.Brace, ")")
}

func isEquals(t token.Token) bool {
	return t.Is(token.Special, "=")
}
