package css

import (
	"regexp"
	"strings"

	pkgerrors "pagecompiler/pkg/errors"
)

var varNamePattern = regexp.MustCompile(`^--[A-Za-z0-9_-]+$`)

// IsVarRef reports whether s is a well-formed custom-property reference,
// validating the name and any fallback chain recursively.
func IsVarRef(s string) bool {
	_, _, ok := ParseVarRef(s)
	return ok
}

// ParseVarRef decomposes var(name) or var(name, fallback) into its parts.
// The fallback may itself be another reference (validated recursively) or
// any balanced-parenthesis text.
func ParseVarRef(s string) (name, fallback string, ok bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "var(") || !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	if !Balanced(s) {
		return "", "", false
	}

	inner := s[len("var(") : len(s)-1]
	parts := SplitTopLevelN(inner, ',')

	name = strings.TrimSpace(parts[0])
	if !varNamePattern.MatchString(name) {
		return "", "", false
	}

	if len(parts) == 1 {
		return name, "", true
	}

	fallback = strings.TrimSpace(parts[1])
	if strings.HasPrefix(fallback, "var(") {
		if _, _, fbOK := ParseVarRef(fallback); !fbOK {
			return "", "", false
		}
	} else if !Balanced(fallback) {
		return "", "", false
	}
	return name, fallback, true
}

// ValidateVarRef checks s against the custom-property reference grammar.
func ValidateVarRef(s string, r *Report) bool {
	if IsVarRef(s) {
		return true
	}
	r.Add(pkgerrors.CodeMalformedGrammar, "malformed custom-property reference", s)
	return false
}
