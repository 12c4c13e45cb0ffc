package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// StrictPosix flags a portable makefile with no ".POSIX:" special
// target. The policy engine already exempts include files and
// implementation-specific dialects from this code. Mirrors check_strict_posix.
type StrictPosix struct{}

func (StrictPosix) Code() string { return "STRICT_POSIX" }

func (StrictPosix) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	if _, _, ok := findSpecialRule(ast, ".POSIX"); ok {
		return nil
	}
	return []*diagnostic.Warning{
		warn("STRICT_POSIX", parser.Position{Line: 1, Column: 1}, "makefile does not declare '.POSIX:'"),
	}
}
