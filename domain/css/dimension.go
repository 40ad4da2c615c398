package css

import (
	"regexp"
	"strconv"
	"strings"

	pkgerrors "pagecompiler/pkg/errors"
)

var numberPattern = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)`)

// lengthUnits is the fixed allow-list for the length grammar.
var lengthUnits = map[string]bool{
	"px": true, "em": true, "rem": true, "%": true,
	"vw": true, "vh": true, "vmin": true, "vmax": true,
	"ch": true, "ex": true,
	"cm": true, "mm": true, "in": true, "pt": true, "pc": true, "q": true,
}

// angleUnits is the fixed allow-list for the angle grammar.
var angleUnits = map[string]bool{
	"deg": true, "rad": true, "grad": true, "turn": true,
}

// ParseDimension splits a signed decimal with an optional trailing unit.
// A bare number parses with an empty unit.
func ParseDimension(s string) (number float64, unit string, ok bool) {
	s = strings.TrimSpace(s)
	match := numberPattern.FindString(s)
	if match == "" {
		return 0, "", false
	}
	number, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, "", false
	}
	unit = strings.ToLower(strings.TrimSpace(s[len(match):]))
	return number, unit, true
}

// IsLength reports whether s is a signed decimal optionally followed by a
// unit from the length allow-list. A bare number is valid (unit assumed).
func IsLength(s string) bool {
	_, unit, ok := ParseDimension(s)
	if !ok {
		return false
	}
	return unit == "" || lengthUnits[unit]
}

// IsAngle reports whether s is a signed decimal optionally followed by an
// angle unit. A bare number is valid (deg assumed).
func IsAngle(s string) bool {
	_, unit, ok := ParseDimension(s)
	if !ok {
		return false
	}
	return unit == "" || angleUnits[unit]
}

// IsPercentage reports whether s is a percentage or a bare decimal, the form
// the percentage-style filters accept.
func IsPercentage(s string) bool {
	_, unit, ok := ParseDimension(s)
	if !ok {
		return false
	}
	return unit == "" || unit == "%"
}

// IsNumber reports whether s is a bare signed decimal with no unit.
func IsNumber(s string) bool {
	_, unit, ok := ParseDimension(s)
	return ok && unit == ""
}

// ValidateLength checks s against the length grammar.
func ValidateLength(s string, r *Report) bool {
	if IsLength(s) {
		return true
	}
	r.Add(pkgerrors.CodeInvalidValueFormat, "not a valid length", s)
	return false
}

// ValidateAngle checks s against the angle grammar.
func ValidateAngle(s string, r *Report) bool {
	if IsAngle(s) {
		return true
	}
	r.Add(pkgerrors.CodeInvalidValueFormat, "not a valid angle", s)
	return false
}

// ValidateNumber checks s is a bare signed decimal.
func ValidateNumber(s string, r *Report) bool {
	if IsNumber(s) {
		return true
	}
	r.Add(pkgerrors.CodeInvalidValueFormat, "not a valid number", s)
	return false
}
