package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// ubIncludeKeywords mirrors the parser's own include keyword set.
var ubIncludeKeywords = map[string]bool{"include": true, "-include": true, "sinclude": true}

// UBAmbiguousInclude flags a macro definition whose name is itself an
// include keyword ("include", "-include", "sinclude"). The parser resolves
// the tie in the macro definition's favor, but the line reads just as
// plausibly as an include directive and should be rewritten to remove the
// ambiguity. Mirrors check_ub_ambiguous_include.
type UBAmbiguousInclude struct{}

func (UBAmbiguousInclude) Code() string { return "UB_AMBIGUOUS_INCLUDE" }

func (UBAmbiguousInclude) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	var out []*diagnostic.Warning
	for _, it := range ast.Items {
		if it.Kind == parser.KindMacroDefinition && ubIncludeKeywords[it.Name] {
			out = append(out, warn("UB_AMBIGUOUS_INCLUDE", it.Pos, "'"+it.Name+"' read as a macro name, not an include directive"))
		}
	}
	return out
}
