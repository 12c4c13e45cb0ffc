package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// GlobalIgnore flags a bare ".IGNORE:" declaration with no prerequisites:
// it silences command failures for the entire makefile, which tends to
// hide real build breaks. Mirrors check_global_ignore.
type GlobalIgnore struct{}

func (GlobalIgnore) Code() string { return "GLOBAL_IGNORE" }

func (GlobalIgnore) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	ignore, _, ok := findSpecialRule(ast, ".IGNORE")
	if !ok || !isGlobal(ignore) {
		return nil
	}
	return []*diagnostic.Warning{
		warn("GLOBAL_IGNORE", ignore.Pos, "'.IGNORE:' with no prerequisites ignores failures in every rule"),
	}
}
