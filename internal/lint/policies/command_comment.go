package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// CommandComment flags a recipe command whose body contains an unescaped
// '#'. The shell sees it as a literal argument, not a comment, which is
// rarely what the author meant when writing it on a command line.
// Mirrors check_command_comment.
type CommandComment struct{}

func (CommandComment) Code() string { return "COMMAND_COMMENT" }

func (CommandComment) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	var out []*diagnostic.Warning
	for _, it := range rules(ast) {
		for _, c := range allCommands(it) {
			if containsUnescapedHash(c.Body) {
				out = append(out, warn("COMMAND_COMMENT", c.Pos, "command contains an unescaped '#'"))
			}
		}
	}
	return out
}

func containsUnescapedHash(body string) bool {
	runes := []rune(body)
	for i, r := range runes {
		if r != '#' {
			continue
		}
		escaped := i > 0 && runes[i-1] == '\\'
		if !escaped {
			return true
		}
	}
	return false
}
