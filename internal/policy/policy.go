// Package policy defines the contract a lint policy implements and the
// engine that runs a set of them against one parsed file.
package policy

import (
	"sort"

	"github.com/mcandre/unmake/internal/classify"
	"github.com/mcandre/unmake/internal/parser"
	"github.com/mcandre/unmake/pkg/diagnostic"
)

// Policy inspects a parsed makefile and reports zero or more warnings.
// Implementations must be pure: same AST and Decision in, same warnings
// out, no mutation of either argument.
type Policy interface {
	// Code is the diagnostic code this policy reports under, e.g.
	// "MISSING_FINAL_EOL".
	Code() string

	// Check runs the policy. decision carries the classifier's verdict on
	// the file (build system, include-file status) so policies can adjust
	// their own behavior without the caller special-casing every policy.
	Check(ast *parser.AST, decision *classify.Decision) []*diagnostic.Warning
}

// exemptSet builds a lookup set from a decision's exempted policy codes.
func exemptSet(decision *classify.Decision) map[string]bool {
	set := make(map[string]bool, len(decision.ExemptPolicies))
	for _, code := range decision.ExemptPolicies {
		set[code] = true
	}
	return set
}

// Lint runs every policy not exempted for this file's classification and
// returns the combined set of warnings, ordered by policy name and then by
// span start. A file that failed to parse should never reach Lint: the
// caller is responsible for the mutual exclusion between parse errors and
// warnings.
func Lint(ast *parser.AST, decision *classify.Decision, policies []Policy) []*diagnostic.Warning {
	exempt := exemptSet(decision)

	var warnings []*diagnostic.Warning
	for _, p := range policies {
		if exempt[p.Code()] {
			continue
		}
		for _, w := range p.Check(ast, decision) {
			w.Path = decision.Path
			warnings = append(warnings, w)
		}
	}

	sort.SliceStable(warnings, func(i, j int) bool {
		a, b := warnings[i], warnings[j]
		if a.Policy != b.Policy {
			return a.Policy < b.Policy
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return warnings
}
