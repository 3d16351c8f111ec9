// Package token defines the tagged vocabulary produced by internal/lexer and
// consumed by internal/macro and internal/render.
package token

import "github.com/piravelha/luaproc/internal/debugcontext"

// Kind tags a Token with its lexical role. The lexer's regex table is tried
// in the order these constants are declared — order encodes priority, not
// just documentation (e.g. Property precedes Name so ".foo" never becomes a
// macro invocation site, MacroName precedes Name so "foo!" is invocation and
// "foo" is not).
type Kind int

const (
	Property Kind = iota
	Vararg
	TaggedVararg
	Stringify
	Paste
	MacroName
	Name
	Number
	String
	DefineDirective
	Ifdef
	Ifndef
	Endif
	Undef
	EndDefine
	Special
	Brace
	Delimiter
	Newline
)

// String returns a human-readable name for the kind, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case Property:
		return "Property"
	case Vararg:
		return "Vararg"
	case TaggedVararg:
		return "TaggedVararg"
	case Stringify:
		return "Stringify"
	case Paste:
		return "Paste"
	case MacroName:
		return "MacroName"
	case Name:
		return "Name"
	case Number:
		return "Number"
	case String:
		return "String"
	case DefineDirective:
		return "DefineDirective"
	case Ifdef:
		return "Ifdef"
	case Ifndef:
		return "Ifndef"
	case Endif:
		return "Endif"
	case Undef:
		return "Undef"
	case EndDefine:
		return "EndDefine"
	case Special:
		return "Special"
	case Brace:
		return "Brace"
	case Delimiter:
		return "Delimiter"
	case Newline:
		return "Newline"
	default:
		return "Unknown"
	}
}

// Token is a pair (kind, lexeme) plus the source location the lexeme was
// read from. The lexeme is always the exact matched substring — concatenating
// every token's lexeme with the lexer-elided whitespace reconstructs the
// folded source.
type Token struct {
	Kind   Kind
	Lexeme string
	Loc    debugcontext.Location
}

// New builds a Token, mostly useful for tests and for tokens synthesized by
// the expander (pastes, stringifications) that have no single source span.
func New(kind Kind, lexeme string, loc debugcontext.Location) Token {
	return Token{Kind: kind, Lexeme: lexeme, Loc: loc}
}

// Is reports whether the token has the given kind and lexeme.
func (t Token) Is(kind Kind, lexeme string) bool {
	return t.Kind == kind && t.Lexeme == lexeme
}
