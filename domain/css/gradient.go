package css

import (
	"regexp"
	"strings"

	pkgerrors "pagecompiler/pkg/errors"
)

var gradientPrefixPattern = regexp.MustCompile(`^(repeating-)?(linear|radial|conic)-gradient\(`)

// GradientStop is one color stop: a color followed by zero, one or two
// length/percentage position values.
type GradientStop struct {
	Color     string
	Positions []string
}

// Gradient is the decomposed form of a gradient value.
type Gradient struct {
	Kind      string // "linear", "radial" or "conic"
	Repeating bool
	Config    string // leading configuration clause, "" when absent
	Stops     []GradientStop
}

var (
	gradientSides = map[string]bool{
		"left": true, "right": true, "top": true, "bottom": true,
	}
	radialShapes = map[string]bool{
		"circle": true, "ellipse": true,
		"closest-side": true, "closest-corner": true,
		"farthest-side": true, "farthest-corner": true,
	}
	positionKeywords = map[string]bool{
		"left": true, "right": true, "top": true, "bottom": true, "center": true,
	}
)

func isPositionToken(s string) bool {
	return positionKeywords[strings.ToLower(s)] || IsLength(s)
}

// isLinearConfig detects an angle or a "to <side> [<side>]" clause.
func isLinearConfig(seg string) bool {
	if IsAngle(seg) {
		return true
	}
	fields := strings.Fields(seg)
	if len(fields) < 2 || len(fields) > 3 || !strings.EqualFold(fields[0], "to") {
		return false
	}
	for _, f := range fields[1:] {
		if !gradientSides[strings.ToLower(f)] {
			return false
		}
	}
	return true
}

// isRadialConfig detects shape/size keywords optionally followed by
// "at <position>".
func isRadialConfig(seg string) bool {
	fields := strings.Fields(seg)
	if len(fields) == 0 {
		return false
	}
	i := 0
	sawShape := false
	for i < len(fields) && radialShapes[strings.ToLower(fields[i])] {
		sawShape = true
		i++
	}
	if i == len(fields) {
		return sawShape
	}
	if !strings.EqualFold(fields[i], "at") || i+1 == len(fields) {
		return false
	}
	for _, f := range fields[i+1:] {
		if !isPositionToken(f) {
			return false
		}
	}
	return true
}

// isConicConfig detects "from <angle>" and/or "at <position>".
func isConicConfig(seg string) bool {
	fields := strings.Fields(seg)
	if len(fields) == 0 {
		return false
	}
	i := 0
	sawClause := false
	if strings.EqualFold(fields[i], "from") {
		if i+1 >= len(fields) || !IsAngle(fields[i+1]) {
			return false
		}
		i += 2
		sawClause = true
	}
	if i < len(fields) {
		if !strings.EqualFold(fields[i], "at") || i+1 == len(fields) {
			return false
		}
		for _, f := range fields[i+1:] {
			if !isPositionToken(f) {
				return false
			}
		}
		sawClause = true
	}
	return sawClause
}

func isGradientConfig(kind, seg string) bool {
	switch kind {
	case "linear":
		return isLinearConfig(seg)
	case "radial":
		return isRadialConfig(seg)
	default:
		return isConicConfig(seg)
	}
}

// parseGradientStop decomposes "color [pos [pos]]", reporting failures.
func parseGradientStop(seg string, r *Report) (GradientStop, bool) {
	fields := FieldsTopLevel(seg)
	if len(fields) == 0 {
		r.Add(pkgerrors.CodeMalformedGrammar, "empty gradient color stop", seg)
		return GradientStop{}, false
	}
	if !IsColor(fields[0]) {
		r.Add(pkgerrors.CodeInvalidValueFormat, "gradient stop must start with a color", seg)
		return GradientStop{}, false
	}
	stop := GradientStop{Color: fields[0]}
	if len(fields) > 3 {
		r.Add(pkgerrors.CodeMalformedGrammar, "gradient stop has too many positions", seg)
		return stop, false
	}
	for _, pos := range fields[1:] {
		if !IsLength(pos) {
			r.Add(pkgerrors.CodeInvalidValueFormat, "gradient stop position must be a length or percentage", pos)
			return stop, false
		}
		stop.Positions = append(stop.Positions, pos)
	}
	return stop, true
}

// ParseGradient validates and decomposes a gradient value. The first
// comma-split segment is tried as a configuration clause before falling back
// to treating it as the first color stop.
func ParseGradient(s string, r *Report) (Gradient, bool) {
	s = strings.TrimSpace(s)
	var g Gradient

	match := gradientPrefixPattern.FindStringSubmatch(s)
	if match == nil || !strings.HasSuffix(s, ")") {
		r.Add(pkgerrors.CodeInvalidValueFormat, "not a gradient function", s)
		return g, false
	}
	if !Balanced(s) {
		r.Add(pkgerrors.CodeMalformedGrammar, "unbalanced parentheses in gradient", s)
		return g, false
	}
	g.Repeating = match[1] != ""
	g.Kind = match[2]

	content := s[len(match[0]) : len(s)-1]
	segments := SplitTopLevel(content, ',')
	if len(segments) == 0 {
		r.Add(pkgerrors.CodeMalformedGrammar, "empty gradient", s)
		return g, false
	}

	start := 0
	if isGradientConfig(g.Kind, segments[0]) {
		g.Config = segments[0]
		start = 1
	}

	ok := true
	for _, seg := range segments[start:] {
		stop, stopOK := parseGradientStop(seg, r)
		if !stopOK {
			ok = false
			continue
		}
		g.Stops = append(g.Stops, stop)
	}

	if len(g.Stops) < 2 {
		r.Add(pkgerrors.CodeMalformedGrammar, "gradient needs at least two color stops", s)
		ok = false
	}
	return g, ok
}

// ValidateGradient checks s against the gradient grammar.
func ValidateGradient(s string, r *Report) bool {
	_, ok := ParseGradient(s, r)
	return ok
}
