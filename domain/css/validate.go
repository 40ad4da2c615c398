package css

import (
	"fmt"
	"strconv"
	"strings"

	pkgerrors "pagecompiler/pkg/errors"
)

// globalKeywords are accepted by every grammar family before
// family-specific parsing, alongside the empty value and custom-property
// references.
var globalKeywords = map[string]bool{
	"inherit": true, "initial": true, "unset": true, "revert": true,
}

// IsGlobalKeyword reports whether s is one of the CSS-wide keywords.
func IsGlobalKeyword(s string) bool {
	return globalKeywords[strings.ToLower(strings.TrimSpace(s))]
}

// Validate checks an input against a grammar family, accumulating
// diagnostics in r. It never panics; the return mirrors whether this call
// added diagnostics.
func Validate(in Input, family Family, r *Report) bool {
	if in.IsText() {
		return validateText(strings.TrimSpace(in.Text()), family, r)
	}
	return validateStructured(in.Structured(), family, r)
}

// ValidateEnum checks a textual value against a fixed value set. The
// universal escapes apply here as everywhere.
func ValidateEnum(s string, allowed []string, r *Report) bool {
	s = strings.TrimSpace(s)
	if s == "" || IsGlobalKeyword(s) || IsVarRef(s) {
		return true
	}
	for _, a := range allowed {
		if strings.EqualFold(s, a) {
			return true
		}
	}
	r.Add(pkgerrors.CodeInvalidValueFormat,
		fmt.Sprintf("value must be one of: %s", strings.Join(allowed, ", ")), s)
	return false
}

func validateText(s string, family Family, r *Report) bool {
	// Universal escapes: empty means "no value", custom-property references
	// and the CSS-wide keywords are valid for every family.
	if s == "" || IsGlobalKeyword(s) {
		return true
	}
	if strings.HasPrefix(s, "var(") {
		return ValidateVarRef(s, r)
	}

	switch family {
	case FamilyColor:
		return ValidateColor(s, r)
	case FamilyLength:
		return ValidateLength(s, r)
	case FamilyAngle:
		return ValidateAngle(s, r)
	case FamilyNumber:
		return ValidateNumber(s, r)
	case FamilyShadow:
		return ValidateShadow(s, r)
	case FamilyFilter:
		return ValidateFilter(s, r)
	case FamilyTransform:
		return ValidateTransform(s, r)
	case FamilyGradient:
		return ValidateGradient(s, r)
	case FamilyBorder:
		return ValidateBorder(s, r)
	case FamilyEnum, FamilyCustom:
		// Enum membership is table-driven and checked by the caller via
		// ValidateEnum; free-form text is always acceptable here.
		return true
	default:
		r.Add(pkgerrors.CodeInvalidValueFormat, "unknown grammar family", string(family))
		return false
	}
}

// --- structured forms -------------------------------------------------

// fieldDimension reads a named field as a dimension: numbers pass through,
// strings go through the dimension grammar.
func fieldDimension(m map[string]interface{}, key string) (float64, bool, bool) {
	v, present := m[key]
	if !present || v == nil {
		return 0, false, true
	}
	switch t := v.(type) {
	case float64:
		return t, true, true
	case int:
		return float64(t), true, true
	case string:
		if n, _, ok := ParseDimension(t); ok {
			return n, true, true
		}
		return 0, true, false
	default:
		return 0, true, false
	}
}

func fieldString(m map[string]interface{}, key string) (string, bool) {
	v, present := m[key]
	if !present || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return s, true
}

func validateStructured(m map[string]interface{}, family Family, r *Report) bool {
	if m == nil {
		r.Add(pkgerrors.CodeMalformedGrammar, "nil structured value", string(family))
		return false
	}
	switch family {
	case FamilyShadow:
		return validateShadowObject(m, r)
	case FamilyFilter:
		return validateFilterObject(m, r)
	case FamilyTransform:
		return validateTransformObject(m, r)
	case FamilyGradient:
		return validateGradientObject(m, r)
	case FamilyBorder:
		return validateBorderObject(m, r)
	default:
		r.Add(pkgerrors.CodeInvalidValueFormat,
			"structured form is not accepted for this grammar", string(family))
		return false
	}
}

// validateShadowObject mirrors the shadow string grammar on named fields,
// with the same sign constraints.
func validateShadowObject(m map[string]interface{}, r *Report) bool {
	ok := true
	for _, key := range []string{"x", "y"} {
		if _, present, valid := fieldDimension(m, key); !present || !valid {
			r.Add(pkgerrors.CodeMalformedGrammar, "shadow object requires a numeric "+key, key)
			ok = false
		}
	}
	for _, key := range []string{"blur", "spread"} {
		n, present, valid := fieldDimension(m, key)
		if !valid {
			r.Add(pkgerrors.CodeInvalidValueFormat, "shadow "+key+" must be a length", key)
			ok = false
			continue
		}
		if present && n < 0 {
			r.Add(pkgerrors.CodeNegativeValue, "shadow "+key+" must not be negative",
				strconv.FormatFloat(n, 'f', -1, 64))
			ok = false
		}
	}
	if color, present := fieldString(m, "color"); present && !IsColor(color) {
		r.Add(pkgerrors.CodeInvalidValueFormat, "shadow color is not a recognized color", color)
		ok = false
	}
	if v, present := m["inset"]; present {
		if _, isBool := v.(bool); !isBool {
			r.Add(pkgerrors.CodeInvalidValueFormat, "shadow inset must be a boolean", "inset")
			ok = false
		}
	}
	return ok
}

func validateFilterObject(m map[string]interface{}, r *Report) bool {
	name, present := fieldString(m, "type")
	if !present {
		r.Add(pkgerrors.CodeMalformedGrammar, "filter object requires a type", "type")
		return false
	}
	name = strings.ToLower(name)

	switch {
	case name == "drop-shadow":
		return validateShadowObject(m, r)
	case name == "blur", name == "hue-rotate", percentageFilters[name]:
		n, amountPresent, valid := fieldDimension(m, "amount")
		if !amountPresent || !valid {
			r.Add(pkgerrors.CodeMalformedGrammar, name+" requires a numeric amount", "amount")
			return false
		}
		if name != "hue-rotate" && n < 0 {
			r.Add(pkgerrors.CodeNegativeValue, name+" must not be negative",
				strconv.FormatFloat(n, 'f', -1, 64))
			return false
		}
		return true
	default:
		r.Add(pkgerrors.CodeInvalidValueFormat, "unknown filter function", name)
		return false
	}
}

// validateTransformObject checks {type, args} where args mirror the string
// grammar's per-argument types.
func validateTransformObject(m map[string]interface{}, r *Report) bool {
	name, present := fieldString(m, "type")
	if !present {
		r.Add(pkgerrors.CodeMalformedGrammar, "transform object requires a type", "type")
		return false
	}
	name = strings.ToLower(name)
	rule, known := transformRules[name]
	if !known {
		r.Add(pkgerrors.CodeInvalidValueFormat, "unknown transform function", name)
		return false
	}

	rawArgs, _ := m["args"].([]interface{})
	if len(rawArgs) < rule.min || len(rawArgs) > rule.max {
		r.Add(pkgerrors.CodeMalformedGrammar, name+" has the wrong number of arguments",
			strconv.Itoa(len(rawArgs)))
		return false
	}

	ok := true
	for i, raw := range rawArgs {
		kind := rule.kind
		if rule.positional != nil {
			kind = rule.positional[i]
		}
		var text string
		switch t := raw.(type) {
		case float64:
			text = strconv.FormatFloat(t, 'f', -1, 64)
		case string:
			text = t
		default:
			r.Add(pkgerrors.CodeInvalidValueFormat, name+" argument must be numeric", name)
			ok = false
			continue
		}
		if !kind.check(text) {
			r.Add(pkgerrors.CodeInvalidValueFormat,
				name+" argument must be a "+kind.String(), text)
			ok = false
			continue
		}
		if rule.nonNegative {
			if n, _, parsed := ParseDimension(text); parsed && n < 0 {
				r.Add(pkgerrors.CodeNegativeValue, name+" distance must not be negative", text)
				ok = false
			}
		}
	}
	return ok
}

func validateGradientObject(m map[string]interface{}, r *Report) bool {
	kind, present := fieldString(m, "type")
	if !present {
		r.Add(pkgerrors.CodeMalformedGrammar, "gradient object requires a type", "type")
		return false
	}
	kind = strings.ToLower(kind)
	if kind != "linear" && kind != "radial" && kind != "conic" {
		r.Add(pkgerrors.CodeInvalidValueFormat, "unknown gradient type", kind)
		return false
	}

	ok := true
	if angle, anglePresent := fieldString(m, "angle"); anglePresent && !IsAngle(angle) {
		r.Add(pkgerrors.CodeInvalidValueFormat, "gradient angle is not a valid angle", angle)
		ok = false
	}

	rawStops, _ := m["stops"].([]interface{})
	if len(rawStops) < 2 {
		r.Add(pkgerrors.CodeMalformedGrammar, "gradient needs at least two color stops",
			strconv.Itoa(len(rawStops)))
		return false
	}
	for _, rawStop := range rawStops {
		stop, isMap := rawStop.(map[string]interface{})
		if !isMap {
			r.Add(pkgerrors.CodeMalformedGrammar, "gradient stop must be an object", kind)
			ok = false
			continue
		}
		color, colorPresent := fieldString(stop, "color")
		if !colorPresent || !IsColor(color) {
			r.Add(pkgerrors.CodeInvalidValueFormat, "gradient stop requires a valid color", color)
			ok = false
		}
		if pos, posPresent := fieldString(stop, "position"); posPresent && !IsLength(pos) {
			r.Add(pkgerrors.CodeInvalidValueFormat,
				"gradient stop position must be a length or percentage", pos)
			ok = false
		}
	}
	return ok
}

func validateBorderObject(m map[string]interface{}, r *Report) bool {
	ok := true
	if _, present, valid := fieldDimension(m, "width"); present && !valid {
		r.Add(pkgerrors.CodeInvalidValueFormat, "border width must be a length", "width")
		ok = false
	}
	if style, present := fieldString(m, "style"); present && !IsBorderStyle(style) {
		r.Add(pkgerrors.CodeInvalidValueFormat, "unknown border style", style)
		ok = false
	}
	if color, present := fieldString(m, "color"); present && !IsColor(color) {
		r.Add(pkgerrors.CodeInvalidValueFormat, "border color is not a recognized color", color)
		ok = false
	}
	return ok
}
