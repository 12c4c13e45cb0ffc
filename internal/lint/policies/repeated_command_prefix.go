package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// RepeatedCommandPrefix flags a command whose prefix glyph sequence
// repeats the same glyph, e.g. "@@" or "--foo": duplicating '@', '+', or
// '-' has no additional effect beyond the first occurrence. Mirrors
// check_repeated_command_prefix.
type RepeatedCommandPrefix struct{}

func (RepeatedCommandPrefix) Code() string { return "REPEATED_COMMAND_PREFIX" }

func (RepeatedCommandPrefix) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	var out []*diagnostic.Warning
	for _, it := range rules(ast) {
		for _, c := range allCommands(it) {
			seen := map[parser.Prefix]bool{}
			for _, p := range c.Prefixes {
				if seen[p] {
					out = append(out, warn("REPEATED_COMMAND_PREFIX", c.Pos, "prefix '"+string(rune(p))+"' repeated in the same command"))
					break
				}
				seen[p] = true
			}
		}
	}
	return out
}
