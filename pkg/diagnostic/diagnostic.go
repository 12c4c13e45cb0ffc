// Package diagnostic defines the structured error and warning records shared
// by the parser, classifier and lint engine.
package diagnostic

import (
	"fmt"
	"strings"
)

// Position locates a byte in a source file by physical line and UTF-8
// codepoint column, both 1-indexed.
type Position struct {
	Line   int
	Column int
}

// ParseError reports the single, earliest grammar violation found in a
// file. A file either parses cleanly or produces exactly one ParseError;
// the two never coexist with warnings.
type ParseError struct {
	Path     string
	Line     int
	Column   int
	Found    string
	Expected []string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"%s:%d:%d: found %s, expected one of: %s",
		e.Path, e.Line, e.Column, e.Found, strings.Join(e.Expected, ", "),
	)
}

// Warning reports a portability or style concern raised by a lint policy
// against a successfully parsed file.
type Warning struct {
	Policy  string
	Path    string
	Line    int
	Column  int
	Message string
}

func (w *Warning) String() string {
	return fmt.Sprintf("%s:%d:%d: [%s] %s", w.Path, w.Line, w.Column, w.Policy, w.Message)
}
