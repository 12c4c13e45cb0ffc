package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// CurdirAssignmentNop flags an assignment to CURDIR. make sets CURDIR
// itself on startup; a makefile-level assignment has no effect on the
// value make actually uses. Mirrors check_curdir_assignment_nop.
type CurdirAssignmentNop struct{}

func (CurdirAssignmentNop) Code() string { return "CURDIR_ASSIGNMENT_NOP" }

func (CurdirAssignmentNop) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	var out []*diagnostic.Warning
	for _, it := range ast.Items {
		if it.Kind == parser.KindMacroDefinition && it.Name == "CURDIR" {
			out = append(out, warn("CURDIR_ASSIGNMENT_NOP", it.Pos, "assigning CURDIR has no effect; make sets it on startup"))
		}
	}
	return out
}
