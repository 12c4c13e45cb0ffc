package policies

import (
	"strings"

	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// BlankCommand flags a recipe command whose body is empty once its
// prefixes and surrounding whitespace are removed: it runs nothing.
// Mirrors check_blank_command.
type BlankCommand struct{}

func (BlankCommand) Code() string { return "BLANK_COMMAND" }

func (BlankCommand) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	var out []*diagnostic.Warning
	for _, it := range rules(ast) {
		for _, c := range allCommands(it) {
			if strings.TrimSpace(c.Body) == "" {
				out = append(out, warn("BLANK_COMMAND", c.Pos, "command body is empty"))
			}
		}
	}
	return out
}
