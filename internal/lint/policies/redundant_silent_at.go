package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// RedundantSilentAt flags a command carrying an explicit '@' prefix inside
// a rule already covered by a .SILENT declaration: the prefix is a no-op
// since .SILENT already suppresses echoing. Mirrors check_redundant_silent_at.
type RedundantSilentAt struct{}

func (RedundantSilentAt) Code() string { return "REDUNDANT_SILENT_AT" }

func (RedundantSilentAt) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	silent, _, ok := findSpecialRule(ast, ".SILENT")
	if !ok {
		return nil
	}

	covered := map[string]bool{}
	global := isGlobal(silent)
	for _, t := range silent.Prerequisites {
		covered[t] = true
	}

	var out []*diagnostic.Warning
	for _, it := range rules(ast) {
		applies := global
		if !applies {
			for _, t := range it.Targets {
				if covered[t] {
					applies = true
					break
				}
			}
		}
		if !applies {
			continue
		}
		for _, c := range allCommands(it) {
			if hasPrefix(c, parser.PrefixSilent) {
				out = append(out, warn("REDUNDANT_SILENT_AT", c.Pos, "'@' has no effect; the rule is already covered by '.SILENT'"))
			}
		}
	}
	return out
}
