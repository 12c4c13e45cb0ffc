package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// WhitespaceLeadingCommand flags a command body that begins with
// whitespace once its prefix glyphs are stripped: almost always a stray
// extra space before the intended shell text rather than meaningful
// syntax. Mirrors check_whitespace_leading_command.
type WhitespaceLeadingCommand struct{}

func (WhitespaceLeadingCommand) Code() string { return "WHITESPACE_LEADING_COMMAND" }

func (WhitespaceLeadingCommand) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	var out []*diagnostic.Warning
	for _, it := range rules(ast) {
		for _, c := range allCommands(it) {
			if len(c.Body) > 0 && (c.Body[0] == ' ' || c.Body[0] == '\t') {
				out = append(out, warn("WHITESPACE_LEADING_COMMAND", c.Pos, "command body begins with whitespace after its prefix glyphs"))
			}
		}
	}
	return out
}
