// Package pipeline wires the fold/lex/expand/render stages together and
// owns everything out-of-scope for the core expander: file I/O and the
// external stylua invocation.
package pipeline

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/piravelha/luaproc/internal/debugcontext"
	"github.com/piravelha/luaproc/internal/lexer"
	"github.com/piravelha/luaproc/internal/lineMap"
	"github.com/piravelha/luaproc/internal/linefold"
	"github.com/piravelha/luaproc/internal/macro"
	"github.com/piravelha/luaproc/internal/render"
)

const outputFile = "out.lua"

// Run reads path, expands its macros, writes the result to out.lua
// (truncating any existing file), and best-effort formats it with stylua.
// A formatter failure is logged but never turns a successful run into an
// error — only an IO failure or a lex failure does.
func Run(path string) error {
	dbg := debugcontext.NewDebugContext(path)

	dbg.SetPhase("read")
	content, err := os.ReadFile(path)
	if err != nil {
		dbg.Error(dbg.Loc(0, 0), err.Error())
		printDiagnostics(dbg)
		return fmt.Errorf("reading %s: %w", path, err)
	}

	dbg.SetPhase("track")
	tracker, err := lineMap.Track(path)
	if err != nil {
		// Line provenance is a diagnostic nicety layered on top of the
		// pipeline, not part of the CLI contract itself, so a tracker that
		// can't start — invalid UTF-8 content, file vanished between read
		// and track — degrades to "no provenance" instead of failing the
		// run.
		dbg.Info(dbg.Loc(0, 0), "line provenance tracking unavailable: "+err.Error())
		tracker = nil
	}

	dbg.SetPhase("fold")
	folded := linefold.Fold(string(content))
	if tracker != nil {
		tracker.Snapshot(folded)
	}

	dbg.SetPhase("lex")
	tokens, err := lexer.Lex(path, folded)
	if err != nil {
		msg := "Tokenization Failed: " + err.Error()
		lexErr, isLexErr := err.(*lexer.Error)
		if isLexErr {
			lexemes := make([]string, len(lexErr.Tokens))
			for i, t := range lexErr.Tokens {
				lexemes[i] = t.Lexeme
			}
			msg += fmt.Sprintf("; tokens before failure: %q", lexemes)
		}
		entry := dbg.Error(dbg.Loc(0, 0), msg)
		if isLexErr && tracker != nil {
			if orig := tracker.Origin(lexErr.Loc.Line() - 1); orig >= 0 {
				entry.WithHint(fmt.Sprintf("traces to original source line %d", orig+1))
			}
		}
		printDiagnostics(dbg)
		return fmt.Errorf("Tokenization Failed")
	}
	if tracker != nil {
		tracker.Snapshot(render.Render(tokens))
	}

	dbg.SetPhase("expand")
	env := macro.NewEnv()
	expanded := macro.Expand(tokens, env, dbg)

	dbg.SetPhase("render")
	output := render.Render(expanded)
	if tracker != nil {
		tracker.Snapshot(output)
	}

	dbg.SetPhase("write")
	out, err := os.Create(outputFile)
	if err != nil {
		dbg.Error(dbg.Loc(0, 0), err.Error())
		printDiagnostics(dbg)
		return fmt.Errorf("creating %s: %w", outputFile, err)
	}
	defer out.Close()
	if _, err := out.WriteString(output); err != nil {
		dbg.Error(dbg.Loc(0, 0), err.Error())
		printDiagnostics(dbg)
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}

	dbg.SetPhase("format")
	formatOutput(dbg)

	printDiagnostics(dbg)
	return nil
}

// formatOutput invokes stylua on the freshly written output file. Any
// failure — stylua missing from PATH, or a non-zero exit — is recorded as
// a warning and never propagated: the preprocessor's own output is already
// on disk and valid regardless of whether a downstream formatter can
// tidy it.
func formatOutput(dbg *debugcontext.DebugContext) {
	path, err := exec.LookPath("stylua")
	if err != nil {
		dbg.Warning(dbg.Loc(0, 0), "stylua not found on PATH: "+err.Error())
		return
	}
	if err := exec.Command(path, outputFile).Run(); err != nil {
		dbg.Warning(dbg.Loc(0, 0), "stylua failed: "+err.Error())
	}
}

func printDiagnostics(dbg *debugcontext.DebugContext) {
	for _, e := range dbg.Entries() {
		fmt.Fprintln(os.Stderr, e.String())
	}
}
