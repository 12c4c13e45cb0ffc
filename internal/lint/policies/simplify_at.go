package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// SimplifyAt flags a rule with two or more commands where every command
// carries the '@' prefix individually: a single leading '@' on the rule's
// first command, or a '.SILENT' declaration, says the same thing once.
// Mirrors check_simplify_at.
type SimplifyAt struct{}

func (SimplifyAt) Code() string { return "SIMPLIFY_AT" }

func (SimplifyAt) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	var out []*diagnostic.Warning
	for _, it := range rules(ast) {
		cmds := allCommands(it)
		if len(cmds) < 2 {
			continue
		}
		all := true
		for _, c := range cmds {
			if !hasPrefix(c, parser.PrefixSilent) {
				all = false
				break
			}
		}
		if all {
			out = append(out, warn("SIMPLIFY_AT", it.Pos, "every command repeats '@'; consider a single '.SILENT' declaration instead"))
		}
	}
	return out
}
