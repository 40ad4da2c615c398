package css

import (
	"strings"

	pkgerrors "pagecompiler/pkg/errors"
)

// borderStyles is the fixed keyword set for the border style component.
var borderStyles = map[string]bool{
	"none": true, "hidden": true, "solid": true, "dashed": true,
	"dotted": true, "double": true, "groove": true, "ridge": true,
	"inset": true, "outset": true,
}

// IsBorderStyle reports whether s is a border style keyword.
func IsBorderStyle(s string) bool {
	return borderStyles[strings.ToLower(strings.TrimSpace(s))]
}

// ValidateBorder checks a border shorthand: up to one width (length), one
// style keyword and one color, in any order, at least one component present.
func ValidateBorder(s string, r *Report) bool {
	fields := FieldsTopLevel(s)
	if len(fields) == 0 || len(fields) > 3 {
		r.Add(pkgerrors.CodeMalformedGrammar,
			"border shorthand needs 1-3 components", s)
		return false
	}

	var seenWidth, seenStyle, seenColor bool
	ok := true
	for _, f := range fields {
		switch {
		case IsBorderStyle(f):
			if seenStyle {
				r.Add(pkgerrors.CodeMalformedGrammar, "duplicate border style", f)
				ok = false
			}
			seenStyle = true
		case IsLength(f):
			if seenWidth {
				r.Add(pkgerrors.CodeMalformedGrammar, "duplicate border width", f)
				ok = false
			}
			seenWidth = true
		case IsColor(f):
			if seenColor {
				r.Add(pkgerrors.CodeMalformedGrammar, "duplicate border color", f)
				ok = false
			}
			seenColor = true
		default:
			r.Add(pkgerrors.CodeInvalidValueFormat,
				"unrecognized border component", f)
			ok = false
		}
	}
	return ok
}
