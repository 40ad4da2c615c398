package css

import (
	"regexp"
	"strings"

	pkgerrors "pagecompiler/pkg/errors"
)

var (
	hexColorPattern   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	identifierPattern = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// colorFunctions are the accepted functional color notations.
var colorFunctions = map[string]bool{
	"rgb":  true,
	"rgba": true,
	"hsl":  true,
	"hsla": true,
}

// namedColors is the fixed list of identifiers the shadow and filter
// grammars accept as a trailing color without further evidence. Bare
// identifiers outside this list are still valid colors on their own, but
// inside a shadow clause they would be ambiguous with keywords.
var namedColors = map[string]bool{
	"aqua": true, "azure": true, "beige": true, "black": true, "blue": true,
	"brown": true, "coral": true, "crimson": true, "cyan": true,
	"fuchsia": true, "gold": true, "gray": true, "green": true, "grey": true,
	"indigo": true, "ivory": true, "khaki": true, "lavender": true,
	"lime": true, "magenta": true, "maroon": true, "navy": true,
	"olive": true, "orange": true, "orchid": true, "pink": true,
	"plum": true, "purple": true, "red": true, "salmon": true,
	"silver": true, "tan": true, "teal": true, "violet": true,
	"white": true, "yellow": true,
}

// IsNamedColor reports whether s is in the fixed named-color list.
func IsNamedColor(s string) bool {
	return namedColors[strings.ToLower(strings.TrimSpace(s))]
}

// IsColorFunction reports whether the token is a well-formed functional
// color notation like rgba(0, 0, 0, 0.1).
func IsColorFunction(s string) bool {
	name, inner, ok := ParseFunctionCall(strings.TrimSpace(s))
	if !ok || !colorFunctions[strings.ToLower(name)] {
		return false
	}
	return strings.TrimSpace(inner) != ""
}

// IsColor reports whether s matches one of the fixed color patterns:
// 3/6/8-digit hex, rgb()/rgba()/hsl()/hsla(), transparent, currentColor,
// a custom-property reference, or a bare identifier.
func IsColor(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if hexColorPattern.MatchString(s) {
		return true
	}
	if IsColorFunction(s) {
		return true
	}
	lower := strings.ToLower(s)
	if lower == "transparent" || lower == "currentcolor" {
		return true
	}
	if IsVarRef(s) {
		return true
	}
	return identifierPattern.MatchString(s)
}

// ValidateColor checks s against the color grammar, accumulating diagnostics.
func ValidateColor(s string, r *Report) bool {
	if IsColor(s) {
		return true
	}
	r.Add(pkgerrors.CodeInvalidValueFormat, "not a recognized color", s)
	return false
}
