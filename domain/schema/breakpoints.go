package schema

import "strings"

// Breakpoint is a named viewport-width bucket.
type Breakpoint string

const (
	BreakpointBase            Breakpoint = "base"
	BreakpointTabletLandscape Breakpoint = "tablet_landscape"
	BreakpointTabletPortrait  Breakpoint = "tablet_portrait"
	BreakpointPhoneLandscape  Breakpoint = "phone_landscape"
	BreakpointPhonePortrait   Breakpoint = "phone_portrait"
)

// State is the interaction condition a value applies under.
type State string

const (
	StateBase  State = "base"
	StateHover State = "hover"
)

// breakpointOrder is the fixed widest-first ordering.
var breakpointOrder = []Breakpoint{
	BreakpointBase,
	BreakpointTabletLandscape,
	BreakpointTabletPortrait,
	BreakpointPhoneLandscape,
	BreakpointPhonePortrait,
}

// breakpointAliases maps the human names clients use to canonical
// breakpoints. Canonical names map to themselves.
var breakpointAliases = map[string]Breakpoint{
	"base":             BreakpointBase,
	"desktop":          BreakpointBase,
	"tablet":           BreakpointTabletPortrait,
	"tablet_landscape": BreakpointTabletLandscape,
	"tablet_portrait":  BreakpointTabletPortrait,
	"phone":            BreakpointPhonePortrait,
	"phone_landscape":  BreakpointPhoneLandscape,
	"phone_portrait":   BreakpointPhonePortrait,
	"mobile":           BreakpointPhonePortrait,
}

// Breakpoints returns the fixed ordered set, widest first.
func Breakpoints() []Breakpoint {
	out := make([]Breakpoint, len(breakpointOrder))
	copy(out, breakpointOrder)
	return out
}

// BreakpointID translates a human breakpoint name, falling back to the base
// breakpoint for unrecognized input. Unknown names degrading to base is
// intentional; callers that want a different fallback use BreakpointIDOr.
func BreakpointID(name string) Breakpoint {
	return BreakpointIDOr(name, BreakpointBase)
}

// BreakpointIDOr translates a human breakpoint name with an explicit
// fallback for unrecognized input.
func BreakpointIDOr(name string, fallback Breakpoint) Breakpoint {
	if bp, ok := breakpointAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return bp
	}
	return fallback
}

// StateKey builds the property-tree key for a breakpoint and state:
// "breakpoint_<name>", suffixed "_hover" for the hover state.
func StateKey(bp Breakpoint, state State) string {
	key := "breakpoint_" + string(bp)
	if state == StateHover {
		key += "_hover"
	}
	return key
}
