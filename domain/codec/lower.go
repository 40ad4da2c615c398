package codec

import (
	"strings"

	"pagecompiler/domain/core/valueobjects"
	"pagecompiler/domain/css"
)

// lowerText converts an already-validated textual value to canonical form.
func lowerText(s string, family css.Family) valueobjects.CanonicalValue {
	s = strings.TrimSpace(s)
	if s == "" {
		return valueobjects.NewScalar("")
	}
	if css.IsGlobalKeyword(s) {
		return valueobjects.NewEnum(strings.ToLower(s))
	}
	if strings.HasPrefix(s, "var(") {
		return lowerVarRef(s, family)
	}

	switch family {
	case css.FamilyColor:
		return valueobjects.NewColor(s)
	case css.FamilyLength, css.FamilyAngle:
		return lowerDimension(s)
	case css.FamilyNumber:
		n, _, _ := css.ParseDimension(s)
		return valueobjects.NewNumber(n)
	case css.FamilyShadow:
		return lowerShadowText(s)
	case css.FamilyFilter, css.FamilyTransform:
		return lowerFunctionListText(s)
	case css.FamilyGradient:
		return lowerGradientText(s)
	case css.FamilyBorder:
		return lowerBorderText(s)
	case css.FamilyEnum:
		return valueobjects.NewEnum(s)
	default:
		return valueobjects.NewScalar(s)
	}
}

// lowerDimension maps "16px" to a Unit, "1.5" to a bare Number, and anything
// else (keywords like "auto") to a Scalar.
func lowerDimension(s string) valueobjects.CanonicalValue {
	n, unit, ok := css.ParseDimension(s)
	if !ok {
		return valueobjects.NewScalar(s)
	}
	if unit == "" {
		return valueobjects.NewNumber(n)
	}
	return valueobjects.NewUnit(n, unit)
}

func lowerVarRef(s string, family css.Family) valueobjects.CanonicalValue {
	name, fallback, ok := css.ParseVarRef(s)
	if !ok {
		return valueobjects.NewScalar(s)
	}
	if fallback == "" {
		return valueobjects.NewVariable(name, nil)
	}
	fb := lowerText(fallback, family)
	return valueobjects.NewVariable(name, &fb)
}

func lowerShadowText(s string) valueobjects.CanonicalValue {
	discard := css.NewReport()
	clauses := css.SplitTopLevel(s, ',')
	items := make([]valueobjects.CanonicalValue, 0, len(clauses))
	for _, clause := range clauses {
		parsed, _ := css.ParseShadowClause(clause, discard)
		items = append(items, shadowClauseValue(parsed))
	}
	return valueobjects.NewListJoined(", ", items...)
}

func shadowClauseValue(c css.ShadowClause) valueobjects.CanonicalValue {
	fields := map[string]valueobjects.CanonicalValue{
		"x": lowerDimension(c.X),
		"y": lowerDimension(c.Y),
	}
	if c.HasBlur() {
		fields["blur"] = lowerDimension(c.Blur)
	}
	if c.HasSpread() {
		fields["spread"] = lowerDimension(c.Spread)
	}
	if c.HasColor() {
		fields["color"] = valueobjects.NewColor(c.Color)
	}
	if c.Inset {
		fields["inset"] = valueobjects.NewEnum("inset")
	}
	return valueobjects.NewObject(fields)
}

// lowerFunctionListText converts "blur(4px) brightness(1.2)" into a
// space-joined list of {type, args} objects.
func lowerFunctionListText(s string) valueobjects.CanonicalValue {
	discard := css.NewReport()
	calls, _ := css.ParseFunctionList(s, discard)
	items := make([]valueobjects.CanonicalValue, 0, len(calls))
	for _, call := range calls {
		items = append(items, functionCallValue(call))
	}
	return valueobjects.NewListJoined(" ", items...)
}

func functionCallValue(call css.FunctionCall) valueobjects.CanonicalValue {
	var args valueobjects.CanonicalValue
	if call.Name == "drop-shadow" {
		// Shadow-style arguments are space separated.
		tokens := css.FieldsTopLevel(call.Args)
		items := make([]valueobjects.CanonicalValue, 0, len(tokens))
		for _, tok := range tokens {
			items = append(items, lowerShadowToken(tok))
		}
		args = valueobjects.NewListJoined(" ", items...)
	} else {
		parts := css.SplitTopLevel(call.Args, ',')
		items := make([]valueobjects.CanonicalValue, 0, len(parts))
		for _, part := range parts {
			items = append(items, lowerDimension(part))
		}
		args = valueobjects.NewListJoined(", ", items...)
	}
	return valueobjects.NewObject(map[string]valueobjects.CanonicalValue{
		"type": valueobjects.NewEnum(call.Name),
		"args": args,
	})
}

func lowerShadowToken(tok string) valueobjects.CanonicalValue {
	if css.IsColor(tok) && !css.IsLength(tok) {
		return valueobjects.NewColor(tok)
	}
	return lowerDimension(tok)
}

func lowerGradientText(s string) valueobjects.CanonicalValue {
	discard := css.NewReport()
	g, _ := css.ParseGradient(s, discard)
	return gradientValue(g)
}

func gradientValue(g css.Gradient) valueobjects.CanonicalValue {
	stops := make([]valueobjects.CanonicalValue, 0, len(g.Stops))
	for _, stop := range g.Stops {
		stops = append(stops, gradientStopValue(stop))
	}

	fields := map[string]valueobjects.CanonicalValue{
		"type":  valueobjects.NewEnum(g.Kind),
		"stops": valueobjects.NewListJoined(", ", stops...),
	}
	if g.Repeating {
		fields["repeating"] = valueobjects.NewEnum("repeating")
	}
	if g.Config != "" {
		fields["config"] = valueobjects.NewScalar(g.Config)
	}
	return valueobjects.NewObject(fields)
}

func gradientStopValue(stop css.GradientStop) valueobjects.CanonicalValue {
	fields := map[string]valueobjects.CanonicalValue{
		"color": valueobjects.NewColor(stop.Color),
	}
	if len(stop.Positions) > 0 {
		positions := make([]valueobjects.CanonicalValue, 0, len(stop.Positions))
		for _, pos := range stop.Positions {
			positions = append(positions, lowerDimension(pos))
		}
		fields["positions"] = valueobjects.NewListJoined(" ", positions...)
	}
	return valueobjects.NewObject(fields)
}

func lowerBorderText(s string) valueobjects.CanonicalValue {
	fields := make(map[string]valueobjects.CanonicalValue)
	for _, f := range css.FieldsTopLevel(s) {
		switch {
		case css.IsBorderStyle(f):
			fields["style"] = valueobjects.NewEnum(strings.ToLower(f))
		case css.IsLength(f):
			fields["width"] = lowerDimension(f)
		case css.IsColor(f):
			fields["color"] = valueobjects.NewColor(f)
		}
	}
	return valueobjects.NewObject(fields)
}

// --- structured inputs -------------------------------------------------

// lowerStructured converts an already-validated object value to the same
// canonical shapes the textual grammars produce.
func lowerStructured(m map[string]interface{}, family css.Family) valueobjects.CanonicalValue {
	switch family {
	case css.FamilyShadow:
		return valueobjects.NewListJoined(", ", shadowObjectValue(m))
	case css.FamilyFilter:
		return valueobjects.NewListJoined(" ", filterObjectValue(m))
	case css.FamilyTransform:
		return valueobjects.NewListJoined(" ", transformObjectValue(m))
	case css.FamilyGradient:
		return gradientObjectValue(m)
	case css.FamilyBorder:
		return borderObjectValue(m)
	default:
		return valueobjects.NewScalar("")
	}
}

func rawDimension(v interface{}) valueobjects.CanonicalValue {
	switch t := v.(type) {
	case float64:
		return valueobjects.NewNumber(t)
	case int:
		return valueobjects.NewNumber(float64(t))
	case string:
		return lowerDimension(t)
	default:
		return valueobjects.NewScalar("")
	}
}

func shadowObjectValue(m map[string]interface{}) valueobjects.CanonicalValue {
	fields := make(map[string]valueobjects.CanonicalValue)
	for _, key := range []string{"x", "y", "blur", "spread"} {
		if v, ok := m[key]; ok && v != nil {
			fields[key] = rawDimension(v)
		}
	}
	if color, ok := m["color"].(string); ok {
		fields["color"] = valueobjects.NewColor(color)
	}
	if inset, ok := m["inset"].(bool); ok && inset {
		fields["inset"] = valueobjects.NewEnum("inset")
	}
	return valueobjects.NewObject(fields)
}

func filterObjectValue(m map[string]interface{}) valueobjects.CanonicalValue {
	name, _ := m["type"].(string)
	name = strings.ToLower(name)

	var args valueobjects.CanonicalValue
	if name == "drop-shadow" {
		var items []valueobjects.CanonicalValue
		for _, key := range []string{"x", "y", "blur"} {
			if v, ok := m[key]; ok && v != nil {
				items = append(items, rawDimension(v))
			}
		}
		if color, ok := m["color"].(string); ok {
			items = append(items, valueobjects.NewColor(color))
		}
		args = valueobjects.NewListJoined(" ", items...)
	} else {
		args = valueobjects.NewListJoined(", ", rawDimension(m["amount"]))
	}
	return valueobjects.NewObject(map[string]valueobjects.CanonicalValue{
		"type": valueobjects.NewEnum(name),
		"args": args,
	})
}

func transformObjectValue(m map[string]interface{}) valueobjects.CanonicalValue {
	name, _ := m["type"].(string)
	rawArgs, _ := m["args"].([]interface{})
	items := make([]valueobjects.CanonicalValue, 0, len(rawArgs))
	for _, raw := range rawArgs {
		items = append(items, rawDimension(raw))
	}
	return valueobjects.NewObject(map[string]valueobjects.CanonicalValue{
		"type": valueobjects.NewEnum(strings.ToLower(name)),
		"args": valueobjects.NewListJoined(", ", items...),
	})
}

func gradientObjectValue(m map[string]interface{}) valueobjects.CanonicalValue {
	kind, _ := m["type"].(string)
	kind = strings.ToLower(kind)

	fields := map[string]valueobjects.CanonicalValue{
		"type": valueobjects.NewEnum(kind),
	}

	if angle, ok := m["angle"].(string); ok && angle != "" {
		config := angle
		if kind == "conic" {
			config = "from " + angle
		}
		fields["config"] = valueobjects.NewScalar(config)
	}

	rawStops, _ := m["stops"].([]interface{})
	stops := make([]valueobjects.CanonicalValue, 0, len(rawStops))
	for _, rawStop := range rawStops {
		stop, ok := rawStop.(map[string]interface{})
		if !ok {
			continue
		}
		stopFields := make(map[string]valueobjects.CanonicalValue)
		if color, ok := stop["color"].(string); ok {
			stopFields["color"] = valueobjects.NewColor(color)
		}
		if pos, ok := stop["position"].(string); ok && pos != "" {
			stopFields["positions"] = valueobjects.NewListJoined(" ", lowerDimension(pos))
		}
		stops = append(stops, valueobjects.NewObject(stopFields))
	}
	fields["stops"] = valueobjects.NewListJoined(", ", stops...)
	return valueobjects.NewObject(fields)
}

func borderObjectValue(m map[string]interface{}) valueobjects.CanonicalValue {
	fields := make(map[string]valueobjects.CanonicalValue)
	if v, ok := m["width"]; ok && v != nil {
		fields["width"] = rawDimension(v)
	}
	if style, ok := m["style"].(string); ok {
		fields["style"] = valueobjects.NewEnum(strings.ToLower(style))
	}
	if color, ok := m["color"].(string); ok {
		fields["color"] = valueobjects.NewColor(color)
	}
	return valueobjects.NewObject(fields)
}
