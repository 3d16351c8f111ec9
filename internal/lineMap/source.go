package lineMap

import (
	"errors"
	"os"
	"unicode/utf8"
)

var (
	osStat     = os.Stat
	osReadFile = os.ReadFile
)

// Source represents a validated, loaded source file. If a Source value
// exists, it is guaranteed to hold a valid path and its file content.
// There is no unloaded or partially-initialised state.
//
// Create a Source exclusively through LoadSource().
type Source struct {
	// path - path to the source file, exactly as passed to LoadSource.
	path string
	// content - the content of the source file.
	content string
}

// LoadSource validates the path, reads the file, and returns a ready-to-use
// Source — or an error. This is the only way to construct a Source.
//
// Unlike an assembler working against one fixed object format, luaproc
// places no extension requirement on its input — a macro-laden file might
// be named anything a Lua toolchain would accept, or nothing at all. What
// LoadSource does enforce is that the content is UTF-8-compatible text. A
// file that fails that check is rejected here, before a single token is
// lexed, rather than surfacing later as a confusing run of replacement
// characters or an opaque lexer failure.
func LoadSource(path string) (Source, error) {
	// Check if file exists and is accessible.
	//
	file, err := osStat(path)
	if err != nil {
		return Source{}, err
	}

	// Ensure path is not a directory.
	//
	if file.IsDir() {
		return Source{}, errors.New("lineMap error: source path is a directory where a file is expected")
	}

	// Read the file content.
	//
	contentBytes, err := osReadFile(path)
	if err != nil {
		return Source{}, err
	}

	// Validate content is UTF-8-compatible text.
	//
	if !utf8.Valid(contentBytes) {
		return Source{}, errors.New("lineMap error: source file is not valid UTF-8 text")
	}

	return Source{
		path:    path,
		content: string(contentBytes),
	}, nil
}

// Path returns the file path of the source.
func (s Source) Path() string {
	return s.path
}

// Content returns the loaded content of the source file.
func (s Source) Content() string {
	return s.content
}
