package policies

import (
	"strings"

	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// wdCommands are shell builtins whose whole purpose is changing or
// reporting the working directory. Running one inside a recipe command
// has no effect on any later command, since make spawns a fresh shell per
// command line.
var wdCommands = map[string]bool{"cd": true, "pushd": true, "popd": true}

// WdNop flags a command whose body begins, after its prefix glyphs, with
// "cd", "pushd", or "popd": the directory change dies with the shell that
// ran it and never reaches the next command line. Mirrors check_wd_nop.
type WdNop struct{}

func (WdNop) Code() string { return "WD_NOP" }

func (WdNop) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	var out []*diagnostic.Warning
	for _, it := range rules(ast) {
		for _, c := range allCommands(it) {
			word := strings.Fields(c.Body)
			if len(word) == 0 {
				continue
			}
			if wdCommands[word[0]] {
				out = append(out, warn("WD_NOP", c.Pos, "'"+word[0]+"' has no effect beyond this command; make runs each command in its own shell"))
			}
		}
	}
	return out
}
