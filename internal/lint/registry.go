// Package lint manages registration of warning policies and exposes the
// registered set to callers (the CLI, the batch runner, tests).
package lint

import (
	"github.com/mcandre/unmake/internal/policy"
)

var registered []policy.Policy

// Register adds a policy to the registry. Policies run in the order they
// are registered; the order has no semantic effect since each policy
// inspects the AST independently, and policy.Lint sorts the combined
// warnings by policy code and position, so it does not affect output order.
func Register(p policy.Policy) {
	registered = append(registered, p)
}

// Policies returns every registered policy.
func Policies() []policy.Policy {
	return registered
}
