package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// RedundantNotparallelWait flags a makefile that declares .NOTPARALLEL
// and also relies on .WAIT somewhere: .NOTPARALLEL already serializes
// every rule, so any .WAIT ordering hint in the same file is redundant.
// Mirrors check_redundant_notparallel_wait.
type RedundantNotparallelWait struct{}

func (RedundantNotparallelWait) Code() string { return "REDUNDANT_NOTPARALLEL_WAIT" }

func (RedundantNotparallelWait) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	if _, _, ok := findSpecialRule(ast, ".NOTPARALLEL"); !ok {
		return nil
	}

	var out []*diagnostic.Warning
	for _, it := range rules(ast) {
		for _, p := range it.Prerequisites {
			if p == ".WAIT" {
				out = append(out, warn("REDUNDANT_NOTPARALLEL_WAIT", it.Pos, "'.WAIT' has no effect; '.NOTPARALLEL' already serializes all rules"))
				break
			}
		}
	}
	return out
}
