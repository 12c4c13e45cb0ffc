package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// NoRules flags a makefile that defines zero non-special rules. The
// policy engine already exempts include files from this code. Mirrors
// check_no_rules.
type NoRules struct{}

func (NoRules) Code() string { return "NO_RULES" }

func (NoRules) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	for _, it := range rules(ast) {
		for _, t := range it.Targets {
			if !parser.IsSpecialTarget(t) {
				return nil
			}
		}
	}
	return []*diagnostic.Warning{
		warn("NO_RULES", parser.Position{Line: 1, Column: 1}, "makefile defines no rules"),
	}
}
