// Package debugcontext provides a passive, append-only data structure that
// accumulates diagnostic entries (errors, warnings, info, traces) as the
// preprocessor pipeline progresses. It does not perform I/O or formatting —
// internal/pipeline consumes the entries to produce output.
//
// Beyond the usual severity/phase/message/location shape, entries here carry
// a macro expansion chain: the names of any macros whose substituted bodies
// were being re-scanned when the entry was recorded, outermost first. The
// expander calls DebugContext.EnterMacro/ExitMacro around every recursive
// re-scan, and Location itself can describe a span of columns rather than a
// single point, for diagnostics about a token the expander synthesized —
// pasted with "##" or produced by "#NAME#" stringification — that has no
// single source column of its own.
package debugcontext
