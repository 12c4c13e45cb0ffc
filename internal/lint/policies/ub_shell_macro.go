package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// UBShellMacro flags a macro definition that assigns to SHELL. POSIX
// leaves the command interpreter make itself uses implementation
// defined; reassigning it from the makefile body is a portability trap.
// Mirrors check_ub_shell_macro.
type UBShellMacro struct{}

func (UBShellMacro) Code() string { return "UB_SHELL_MACRO" }

func (UBShellMacro) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	var out []*diagnostic.Warning
	for _, it := range ast.Items {
		if it.Kind == parser.KindMacroDefinition && it.Name == "SHELL" {
			out = append(out, warn("UB_SHELL_MACRO", it.Pos, "assigning SHELL is implementation defined"))
		}
	}
	return out
}
