package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// RedundantIgnoreMinus flags a command carrying an explicit '-' prefix
// inside a rule that a target-specific (non-global) .IGNORE declaration
// already covers. The global .IGNORE: case is handled by GlobalIgnore.
// Mirrors check_redundant_ignore_minus.
type RedundantIgnoreMinus struct{}

func (RedundantIgnoreMinus) Code() string { return "REDUNDANT_IGNORE_MINUS" }

func (RedundantIgnoreMinus) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	ignore, _, ok := findSpecialRule(ast, ".IGNORE")
	if !ok || isGlobal(ignore) {
		return nil
	}

	covered := map[string]bool{}
	for _, t := range ignore.Prerequisites {
		covered[t] = true
	}

	var out []*diagnostic.Warning
	for _, it := range rules(ast) {
		applies := false
		for _, t := range it.Targets {
			if covered[t] {
				applies = true
				break
			}
		}
		if !applies {
			continue
		}
		for _, c := range allCommands(it) {
			if hasPrefix(c, parser.PrefixIgnore) {
				out = append(out, warn("REDUNDANT_IGNORE_MINUS", c.Pos, "'-' has no effect; the target is already covered by '.IGNORE'"))
			}
		}
	}
	return out
}
