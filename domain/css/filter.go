package css

import (
	"strings"

	pkgerrors "pagecompiler/pkg/errors"
)

// FunctionCall is a tokenized name(args) occurrence inside a filter or
// transform list.
type FunctionCall struct {
	Name string
	Args string
}

// percentageFilters take a single non-negative percentage-or-decimal amount.
var percentageFilters = map[string]bool{
	"brightness": true,
	"contrast":   true,
	"grayscale":  true,
	"invert":     true,
	"opacity":    true,
	"saturate":   true,
	"sepia":      true,
}

// ParseFunctionList tokenizes a space-separated list of function calls,
// reporting malformed tokens.
func ParseFunctionList(s string, r *Report) ([]FunctionCall, bool) {
	tokens := FieldsTopLevel(s)
	if len(tokens) == 0 {
		r.Add(pkgerrors.CodeMalformedGrammar, "expected one or more function calls", s)
		return nil, false
	}

	calls := make([]FunctionCall, 0, len(tokens))
	ok := true
	for _, tok := range tokens {
		name, inner, parsed := ParseFunctionCall(tok)
		if !parsed {
			r.Add(pkgerrors.CodeMalformedGrammar, "malformed function call", tok)
			ok = false
			continue
		}
		calls = append(calls, FunctionCall{Name: strings.ToLower(name), Args: inner})
	}
	return calls, ok
}

// validateDropShadow checks a drop-shadow() argument list: 2-3 lengths
// (x, y, optional non-negative blur) plus an optional color, using the same
// color extraction order as box-shadow.
func validateDropShadow(args string, r *Report) bool {
	tokens := FieldsTopLevel(args)
	_, tokens = extractColorToken(tokens)

	if len(tokens) < 2 || len(tokens) > 3 {
		r.Add(pkgerrors.CodeMalformedGrammar,
			"drop-shadow needs 2-3 lengths and an optional color", args)
		return false
	}

	ok := true
	for _, tok := range tokens {
		if !IsLength(tok) {
			r.Add(pkgerrors.CodeInvalidValueFormat,
				"drop-shadow contains a non-length value", tok)
			ok = false
		}
	}
	if len(tokens) == 3 {
		if n, _, parsed := ParseDimension(tokens[2]); parsed && n < 0 {
			r.Add(pkgerrors.CodeNegativeValue, "drop-shadow blur must not be negative", tokens[2])
			ok = false
		}
	}
	return ok
}

// validateFilterFunction checks one filter function against its family rules.
func validateFilterFunction(call FunctionCall, r *Report) bool {
	switch {
	case call.Name == "blur":
		if !IsLength(call.Args) {
			r.Add(pkgerrors.CodeInvalidValueFormat, "blur requires a length", call.Args)
			return false
		}
		if n, _, ok := ParseDimension(call.Args); ok && n < 0 {
			r.Add(pkgerrors.CodeNegativeValue, "blur must not be negative", call.Args)
			return false
		}
		return true

	case call.Name == "hue-rotate":
		if !IsAngle(call.Args) {
			r.Add(pkgerrors.CodeInvalidValueFormat, "hue-rotate requires an angle", call.Args)
			return false
		}
		return true

	case call.Name == "drop-shadow":
		return validateDropShadow(call.Args, r)

	case percentageFilters[call.Name]:
		if !IsPercentage(call.Args) {
			r.Add(pkgerrors.CodeInvalidValueFormat,
				call.Name+" requires a percentage or decimal amount", call.Args)
			return false
		}
		if n, _, ok := ParseDimension(call.Args); ok && n < 0 {
			r.Add(pkgerrors.CodeNegativeValue, call.Name+" must not be negative", call.Args)
			return false
		}
		return true

	default:
		r.Add(pkgerrors.CodeInvalidValueFormat, "unknown filter function", call.Name)
		return false
	}
}

// ValidateFilter checks a filter value: one or more space-separated function
// calls from the fixed filter set.
func ValidateFilter(s string, r *Report) bool {
	calls, ok := ParseFunctionList(s, r)
	for _, call := range calls {
		if !validateFilterFunction(call, r) {
			ok = false
		}
	}
	return ok
}
