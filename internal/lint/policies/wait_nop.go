package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// WaitNop flags ".WAIT" used as a rule target. ".WAIT" is a pseudo-target
// recognized only as a prerequisite, ordering the prerequisites on either
// side of it; as a target it defines nothing and has no effect. Mirrors
// check_wait_nop.
type WaitNop struct{}

func (WaitNop) Code() string { return "WAIT_NOP" }

func (WaitNop) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	var out []*diagnostic.Warning
	for _, it := range rules(ast) {
		for _, t := range it.Targets {
			if t == ".WAIT" {
				out = append(out, warn("WAIT_NOP", it.Pos, "'.WAIT' as a target has no effect; it only orders prerequisites"))
				break
			}
		}
	}
	return out
}
