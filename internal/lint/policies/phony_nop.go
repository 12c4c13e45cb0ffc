package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// PhonyNop flags a ".PHONY" rule with zero prerequisites and no command:
// it declares nothing phony and runs nothing, so it has no effect. Mirrors
// check_phony_nop.
type PhonyNop struct{}

func (PhonyNop) Code() string { return "PHONY_NOP" }

func (PhonyNop) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	var out []*diagnostic.Warning
	for _, it := range rules(ast) {
		declaresPhony := false
		for _, t := range it.Targets {
			if t == ".PHONY" {
				declaresPhony = true
				break
			}
		}
		if !declaresPhony {
			continue
		}
		if len(it.Prerequisites) == 0 && len(allCommands(it)) == 0 {
			out = append(out, warn("PHONY_NOP", it.Pos, "'.PHONY' with no prerequisites and no command has no effect"))
		}
	}
	return out
}
