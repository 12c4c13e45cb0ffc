package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// UBMakeflagsAssignment flags a macro definition that assigns to
// MAKEFLAGS. Overriding it from within a makefile is implementation
// defined and regularly surprises whichever make picks it up. Mirrors
// check_ub_makeflags_assignment.
type UBMakeflagsAssignment struct{}

func (UBMakeflagsAssignment) Code() string { return "UB_MAKEFLAGS_ASSIGNMENT" }

func (UBMakeflagsAssignment) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	var out []*diagnostic.Warning
	for _, it := range ast.Items {
		if it.Kind == parser.KindMacroDefinition && it.Name == "MAKEFLAGS" {
			out = append(out, warn("UB_MAKEFLAGS_ASSIGNMENT", it.Pos, "assigning MAKEFLAGS from within the makefile is implementation defined"))
		}
	}
	return out
}
