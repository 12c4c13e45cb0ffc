package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// MissingFinalEOL flags a non-empty file that does not end in a newline.
// Tracked separately from parsing (see AST.FinalNewline) so it can coexist with a
// fully successful parse. Mirrors check_final_eol.
type MissingFinalEOL struct{}

func (MissingFinalEOL) Code() string { return "MISSING_FINAL_EOL" }

func (MissingFinalEOL) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	if ast.Empty || ast.FinalNewline {
		return nil
	}
	return []*diagnostic.Warning{warn("MISSING_FINAL_EOL", parser.Position{Line: 1, Column: 1}, "file does not end with a newline")}
}
