// Package config holds compiler behavior toggles that are deliberate
// ergonomic defaults rather than hard rules, so deployments can change them
// without touching the resolver tables.
package config

import "pagecompiler/domain/schema"

// DomainConfig controls compilation behavior that is intentionally
// configurable.
type DomainConfig struct {
	// GapFansOut makes the simplified "gap" property write both the
	// horizontal and vertical spacing paths. When false only the first
	// resolved path is written.
	GapFansOut bool

	// FallbackBreakpoint receives values whose breakpoint name is not
	// recognized, instead of rejecting them.
	FallbackBreakpoint schema.Breakpoint

	// DropInvalidOptional drops an optional property that fails validation
	// and records a warning, instead of failing the whole element. Required
	// properties always fail the element regardless.
	DropInvalidOptional bool
}

// DefaultDomainConfig returns the stock behavior: gap fans out, unknown
// breakpoints degrade to base, invalid optional properties are dropped with
// a warning.
func DefaultDomainConfig() DomainConfig {
	return DomainConfig{
		GapFansOut:          true,
		FallbackBreakpoint:  schema.BreakpointBase,
		DropInvalidOptional: true,
	}
}
