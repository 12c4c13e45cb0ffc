package lint

import (
	"github.com/mcandre/unmake/internal/lint/policies"
)

func init() {
	// General family.
	Register(policies.MissingFinalEOL{})
	Register(policies.MakefilePrecedence{})
	Register(policies.CurdirAssignmentNop{})
	Register(policies.WdNop{})
	Register(policies.WaitNop{})
	Register(policies.PhonyNop{})
	Register(policies.PhonyTarget{})
	Register(policies.ImplementationDefinedTarget{})
	Register(policies.RedundantNotparallelWait{})
	Register(policies.RedundantSilentAt{})
	Register(policies.RedundantIgnoreMinus{})
	Register(policies.GlobalIgnore{})
	Register(policies.SimplifyAt{})
	Register(policies.SimplifyMinus{})
	Register(policies.RepeatedCommandPrefix{})
	Register(policies.BlankCommand{})
	Register(policies.CommandComment{})
	Register(policies.WhitespaceLeadingCommand{})
	Register(policies.NoRules{})
	Register(policies.RuleAll{})
	Register(policies.StrictPosix{})

	// Undefined-behavior family.
	Register(policies.UBLatePosixMarker{})
	Register(policies.UBAmbiguousInclude{})
	Register(policies.UBMakeflagsAssignment{})
	Register(policies.UBShellMacro{})
}
