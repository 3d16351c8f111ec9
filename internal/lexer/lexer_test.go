package lexer

import (
	"testing"

	"github.com/piravelha/luaproc/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func lexemes(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.Lexeme
	}
	return out
}

func assertKinds(t *testing.T, toks []token.Token, want ...token.Kind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLex_MacroNamePrecedesName(t *testing.T) {
	toks, err := Lex("main.lua", "FOO! bar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, toks, token.MacroName, token.Name)
	if lexemes(toks)[0] != "FOO!" {
		t.Errorf("got lexeme %q, want %q", lexemes(toks)[0], "FOO!")
	}
}

func TestLex_MacroNameAssignmentSuppression(t *testing.T) {
	toks, err := Lex("main.lua", "FOO! = 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, toks, token.MacroName, token.Special, token.Number)
}

func TestLex_PropertyPrecedesVararg(t *testing.T) {
	toks, err := Lex("main.lua", ".foo ...")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, toks, token.Property, token.Vararg)
}

func TestLex_TaggedVarargVsStringify(t *testing.T) {
	toks, err := Lex("main.lua", "#... #name#")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, toks, token.TaggedVararg, token.Stringify)
}

func TestLex_Paste(t *testing.T) {
	toks, err := Lex("main.lua", "a ## b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, toks, token.Name, token.Paste, token.Name)
}

func TestLex_Number(t *testing.T) {
	toks, err := Lex("main.lua", "42 -3 3.14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, toks, token.Number, token.Number, token.Number)
	got := lexemes(toks)
	want := []string{"42", "-3", "3.14"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("number %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLex_MinusAsSpecialWhenNotAdjacentToDigit(t *testing.T) {
	toks, err := Lex("main.lua", "x - y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, toks, token.Name, token.Special, token.Name)
}

func TestLex_String(t *testing.T) {
	toks, err := Lex("main.lua", `"hello \"world\""`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, toks, token.String)
	if lexemes(toks)[0] != `"hello \"world\""` {
		t.Errorf("got lexeme %q", lexemes(toks)[0])
	}
}

func TestLex_DirectivesDoNotCollide(t *testing.T) {
	toks, err := Lex("main.lua", "#define X! 1 #end #ifdef X #endif #undef X #ifndef X #endif")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, toks,
		token.DefineDirective, token.MacroName, token.Number, token.EndDefine,
		token.Ifdef, token.Name, token.Endif,
		token.Undef, token.Name,
		token.Ifndef, token.Name, token.Endif,
	)
}

func TestLex_EndifBeforeEndDefine(t *testing.T) {
	toks, err := Lex("main.lua", "#ifdef X #endif")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "#endif" must not be tokenised as EndDefine("#end") followed by Name("if").
	assertKinds(t, toks, token.Ifdef, token.Name, token.Endif)
}

func TestLex_BraceAndDelimiter(t *testing.T) {
	toks, err := Lex("main.lua", "f(a, b);")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, toks,
		token.Name, token.Brace, token.Name, token.Delimiter, token.Name, token.Brace, token.Delimiter,
	)
}

func TestLex_NewlineSpansIndentation(t *testing.T) {
	toks, err := Lex("main.lua", "a\n  b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, toks, token.Name, token.Newline, token.Name)

	bTok := toks[2]
	if bTok.Loc.Line() != 2 || bTok.Loc.Column() != 3 {
		t.Errorf("got location %s, want line 2 col 3", bTok.Loc.String())
	}
}

func TestLex_SkipsSpacesAndTabsBetweenTokens(t *testing.T) {
	toks, err := Lex("main.lua", "a\t  b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, toks, token.Name, token.Name)
	if toks[1].Loc.Column() != 5 {
		t.Errorf("got column %d, want 5", toks[1].Loc.Column())
	}
}

func TestLex_Failure(t *testing.T) {
	_, err := Lex("main.lua", "a = `")
	if err == nil {
		t.Fatal("expected an error")
	}
	lexErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("got error of type %T, want *Error", err)
	}
	if len(lexErr.Tokens) != 2 {
		t.Errorf("got %d partial tokens, want 2", len(lexErr.Tokens))
	}
	if lexErr.Remaining != "`" {
		t.Errorf("got remaining %q, want %q", lexErr.Remaining, "`")
	}
}

func TestLex_EmptyInput(t *testing.T) {
	toks, err := Lex("main.lua", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 0 {
		t.Errorf("got %d tokens, want 0", len(toks))
	}
}
