package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// RuleAll flags a makefile whose first non-special rule is not named
// "all": by convention that is the default target a plain "make"
// invocation runs. Mirrors check_rule_all.
type RuleAll struct{}

func (RuleAll) Code() string { return "RULE_ALL" }

func (RuleAll) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	for _, it := range rules(ast) {
		var real []string
		for _, t := range it.Targets {
			if !parser.IsSpecialTarget(t) {
				real = append(real, t)
			}
		}
		if len(real) == 0 {
			continue
		}
		if real[0] != "all" {
			return []*diagnostic.Warning{
				warn("RULE_ALL", it.Pos, "first rule target '"+real[0]+"' is not 'all'"),
			}
		}
		return nil
	}
	return nil
}
