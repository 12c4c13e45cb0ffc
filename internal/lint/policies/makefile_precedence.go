package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// MakefilePrecedence flags a capitalized "Makefile": make prefers it over
// a lowercase "makefile" in the same directory, which surprises anyone who
// only has the lowercase one open. Mirrors check_makefile_precedence.
type MakefilePrecedence struct{}

func (MakefilePrecedence) Code() string { return "MAKEFILE_PRECEDENCE" }

func (MakefilePrecedence) Check(_ *parser.AST, decision *classify.Decision) []*diagnostic.Warning {
	if !decision.MakefilePrecedence {
		return nil
	}
	return []*diagnostic.Warning{warn("MAKEFILE_PRECEDENCE", parser.Position{Line: 1, Column: 1}, "capitalized Makefile takes precedence over a sibling lowercase makefile")}
}
