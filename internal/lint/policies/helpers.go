// Package policies implements every registered warning policy, one file
// per policy, mirroring the teacher's one-rule-per-file format package.
package policies

import (
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// warn builds a Warning record for a policy at the given position.
func warn(code string, pos parser.Position, message string) *diagnostic.Warning {
	return &diagnostic.Warning{
		Policy:  code,
		Line:    pos.Line,
		Column:  pos.Column,
		Message: message,
	}
}

// rules returns every KindRule item in the AST.
func rules(ast *parser.AST) []*parser.Item {
	var out []*parser.Item
	for _, it := range ast.Items {
		if it.Kind == parser.KindRule {
			out = append(out, it)
		}
	}
	return out
}

// findSpecialRule returns the first rule whose Targets includes name,
// along with its index among all items.
func findSpecialRule(ast *parser.AST, name string) (*parser.Item, int, bool) {
	for i, it := range ast.Items {
		if it.Kind != parser.KindRule {
			continue
		}
		for _, t := range it.Targets {
			if t == name {
				return it, i, true
			}
		}
	}
	return nil, -1, false
}

// isGlobal reports whether a special-target rule (e.g. .SILENT, .IGNORE)
// applies globally: declared with no prerequisites naming specific targets.
func isGlobal(it *parser.Item) bool {
	return len(it.Prerequisites) == 0
}

// allCommands returns every command line attached to a rule, inline
// command first if present.
func allCommands(it *parser.Item) []*parser.CommandLine {
	var out []*parser.CommandLine
	if it.InlineCommand != nil {
		out = append(out, it.InlineCommand)
	}
	out = append(out, it.Commands...)
	return out
}

func hasPrefix(c *parser.CommandLine, p parser.Prefix) bool {
	for _, pre := range c.Prefixes {
		if pre == p {
			return true
		}
	}
	return false
}
