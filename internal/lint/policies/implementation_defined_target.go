package policies

import (
	"strings"

	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// ImplementationDefinedTarget flags a target or prerequisite name
// containing '%' or '"'. Both are accepted by the grammar (pattern rules
// and quoting are implementation extensions on top of portable make) but
// have no meaning in a strictly POSIX makefile. Mirrors
// check_implementation_defined_target.
type ImplementationDefinedTarget struct{}

func (ImplementationDefinedTarget) Code() string { return "IMPLEMENTATION_DEFINED_TARGET" }

func (ImplementationDefinedTarget) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	var out []*diagnostic.Warning
	for _, it := range rules(ast) {
		names := append(append([]string{}, it.Targets...), it.Prerequisites...)
		for _, name := range names {
			if strings.ContainsAny(name, `%"`) {
				out = append(out, warn("IMPLEMENTATION_DEFINED_TARGET", it.Pos, "'"+name+"' uses '%' or '\"', which have no portable meaning"))
			}
		}
	}
	return out
}
