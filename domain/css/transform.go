package css

import (
	pkgerrors "pagecompiler/pkg/errors"
)

type argKind int

const (
	argLength argKind = iota
	argAngle
	argNumber
)

func (k argKind) check(s string) bool {
	switch k {
	case argLength:
		return IsLength(s)
	case argAngle:
		return IsAngle(s)
	default:
		return IsNumber(s)
	}
}

func (k argKind) String() string {
	switch k {
	case argLength:
		return "length"
	case argAngle:
		return "angle"
	default:
		return "number"
	}
}

type transformRule struct {
	min, max int
	kind     argKind
	// positional overrides the uniform kind per argument index (rotate3d).
	positional []argKind
	// nonNegative rejects negative values (perspective distance).
	nonNegative bool
}

// transformRules fixes arity and per-argument type for every transform
// function. Rotate-family and skew take angles, translate-family lengths,
// scale-family bare numbers.
var transformRules = map[string]transformRule{
	"translate":   {min: 1, max: 2, kind: argLength},
	"translatex":  {min: 1, max: 1, kind: argLength},
	"translatey":  {min: 1, max: 1, kind: argLength},
	"translatez":  {min: 1, max: 1, kind: argLength},
	"translate3d": {min: 3, max: 3, kind: argLength},
	"rotate":      {min: 1, max: 1, kind: argAngle},
	"rotatex":     {min: 1, max: 1, kind: argAngle},
	"rotatey":     {min: 1, max: 1, kind: argAngle},
	"rotatez":     {min: 1, max: 1, kind: argAngle},
	"rotate3d":    {min: 4, max: 4, positional: []argKind{argNumber, argNumber, argNumber, argAngle}},
	"scale":       {min: 1, max: 2, kind: argNumber},
	"scalex":      {min: 1, max: 1, kind: argNumber},
	"scaley":      {min: 1, max: 1, kind: argNumber},
	"scalez":      {min: 1, max: 1, kind: argNumber},
	"scale3d":     {min: 3, max: 3, kind: argNumber},
	"skew":        {min: 1, max: 2, kind: argAngle},
	"skewx":       {min: 1, max: 1, kind: argAngle},
	"skewy":       {min: 1, max: 1, kind: argAngle},
	"perspective": {min: 1, max: 1, kind: argLength, nonNegative: true},
	"matrix":      {min: 6, max: 6, kind: argNumber},
	"matrix3d":    {min: 16, max: 16, kind: argNumber},
}

// validateTransformFunction checks one transform function by arity and
// per-argument type.
func validateTransformFunction(call FunctionCall, r *Report) bool {
	rule, known := transformRules[call.Name]
	if !known {
		r.Add(pkgerrors.CodeInvalidValueFormat, "unknown transform function", call.Name)
		return false
	}

	args := SplitTopLevel(call.Args, ',')
	if len(args) < rule.min || len(args) > rule.max {
		r.Add(pkgerrors.CodeMalformedGrammar,
			call.Name+" has the wrong number of arguments", call.Args)
		return false
	}

	ok := true
	for i, arg := range args {
		kind := rule.kind
		if rule.positional != nil {
			kind = rule.positional[i]
		}
		if !kind.check(arg) {
			r.Add(pkgerrors.CodeInvalidValueFormat,
				call.Name+" argument must be a "+kind.String(), arg)
			ok = false
			continue
		}
		if rule.nonNegative {
			if n, _, parsed := ParseDimension(arg); parsed && n < 0 {
				r.Add(pkgerrors.CodeNegativeValue,
					call.Name+" distance must not be negative", arg)
				ok = false
			}
		}
	}
	return ok
}

// ValidateTransform checks a transform value: one or more space-separated
// function calls from the fixed transform set.
func ValidateTransform(s string, r *Report) bool {
	calls, ok := ParseFunctionList(s, r)
	for _, call := range calls {
		if !validateTransformFunction(call, r) {
			ok = false
		}
	}
	return ok
}
