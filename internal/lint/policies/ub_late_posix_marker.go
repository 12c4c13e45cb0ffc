package policies

import (
	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// UBLatePosixMarker flags a ".POSIX:" declaration that isn't the first
// non-blank, non-comment item; appears more than once; or shares its rule
// header with other targets. POSIX requires it first and alone for the
// conforming-mode switch to take effect. Mirrors check_ub_late_posix_marker.
type UBLatePosixMarker struct{}

func (UBLatePosixMarker) Code() string { return "UB_LATE_POSIX_MARKER" }

func (UBLatePosixMarker) Check(ast *parser.AST, _ *classify.Decision) []*diagnostic.Warning {
	var out []*diagnostic.Warning
	seen := 0
	firstContentIdx := -1

	for i, it := range ast.Items {
		if it.Kind == parser.KindComment {
			continue
		}
		if firstContentIdx == -1 {
			firstContentIdx = i
		}

		if it.Kind != parser.KindRule {
			continue
		}
		isPosix := false
		for _, t := range it.Targets {
			if t == ".POSIX" {
				isPosix = true
				break
			}
		}
		if !isPosix {
			continue
		}

		seen++
		if i != firstContentIdx || seen > 1 || len(it.Targets) != 1 {
			out = append(out, warn("UB_LATE_POSIX_MARKER", it.Pos, "'.POSIX:' must be the sole target of the first non-comment item"))
		}
	}
	return out
}
