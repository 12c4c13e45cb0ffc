package policies

import (
	"regexp"

	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// conventionallyPhonyRe matches target names that are almost always
// artifactless by convention, grounded on the original implementation's
// own heuristic rather than left a stub (see SPEC_FULL.md).
var conventionallyPhonyRe = regexp.MustCompile(`(?i)^(all|lint|install|uninstall|publish|test.*|clean.*)$`)

// PhonyTarget flags a rule target that looks artifactless (a conventional
// name, or a rule with zero commands) but is not declared under .PHONY.
// Mirrors check_phony_target.
type PhonyTarget struct{}

func (PhonyTarget) Code() string { return "PHONY_TARGET" }

func (PhonyTarget) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	phony := make(map[string]bool)
	for _, it := range rules(ast) {
		for _, t := range it.Targets {
			if t == ".PHONY" {
				for _, name := range it.Prerequisites {
					phony[name] = true
				}
			}
		}
	}

	var out []*diagnostic.Warning
	for _, it := range rules(ast) {
		for _, t := range it.Targets {
			if parser.IsSpecialTarget(t) || phony[t] {
				continue
			}
			noCommands := it.InlineCommand == nil && len(it.Commands) == 0
			if conventionallyPhonyRe.MatchString(t) || noCommands {
				out = append(out, warn("PHONY_TARGET", it.Pos, "target '"+t+"' looks artifactless; consider declaring it .PHONY"))
			}
		}
	}
	return out
}
