package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// SimplifyMinus flags a rule with two or more commands where every command
// carries the '-' prefix individually: a single '.IGNORE' declaration for
// the target says the same thing once. Mirrors check_simplify_minus.
type SimplifyMinus struct{}

func (SimplifyMinus) Code() string { return "SIMPLIFY_MINUS" }

func (SimplifyMinus) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	var out []*diagnostic.Warning
	for _, it := range rules(ast) {
		cmds := allCommands(it)
		if len(cmds) < 2 {
			continue
		}
		all := true
		for _, c := range cmds {
			if !hasPrefix(c, parser.PrefixIgnore) {
				all = false
				break
			}
		}
		if all {
			out = append(out, warn("SIMPLIFY_MINUS", it.Pos, "every command repeats '-'; consider a single '.IGNORE' declaration instead"))
		}
	}
	return out
}
