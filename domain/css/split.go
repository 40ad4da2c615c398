package css

import (
	"strings"
	"unicode"
)

// SplitTopLevel splits s at every occurrence of sep that sits at parenthesis
// depth zero. Functional values nest commas inside sub-calls (rgba(), var()),
// so a plain strings.Split would shred them.
func SplitTopLevel(s string, sep rune) []string {
	var parts []string
	var current strings.Builder
	depth := 0

	for _, ch := range s {
		switch {
		case ch == '(':
			depth++
			current.WriteRune(ch)
		case ch == ')':
			depth--
			current.WriteRune(ch)
		case ch == sep && depth == 0:
			parts = append(parts, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, strings.TrimSpace(current.String()))
	}
	return parts
}

// SplitTopLevelN splits at the first top-level occurrence of sep only,
// returning one or two trimmed parts. Used for var(name, fallback) where the
// fallback may itself contain top-level commas.
func SplitTopLevelN(s string, sep rune) []string {
	depth := 0
	for i, ch := range s {
		switch {
		case ch == '(':
			depth++
		case ch == ')':
			depth--
		case ch == sep && depth == 0:
			return []string{
				strings.TrimSpace(s[:i]),
				strings.TrimSpace(s[i+len(string(sep)):]),
			}
		}
	}
	return []string{strings.TrimSpace(s)}
}

// FieldsTopLevel splits s on runs of whitespace at parenthesis depth zero,
// keeping function calls like rgba(0, 0, 0, 0.1) intact as single fields.
func FieldsTopLevel(s string) []string {
	var fields []string
	var current strings.Builder
	depth := 0

	flush := func() {
		if current.Len() > 0 {
			fields = append(fields, current.String())
			current.Reset()
		}
	}

	for _, ch := range s {
		switch {
		case ch == '(':
			depth++
			current.WriteRune(ch)
		case ch == ')':
			depth--
			current.WriteRune(ch)
		case unicode.IsSpace(ch) && depth == 0:
			flush()
		default:
			current.WriteRune(ch)
		}
	}
	flush()
	return fields
}

// Balanced reports whether every '(' has a matching ')' and the depth never
// goes negative.
func Balanced(s string) bool {
	depth := 0
	for _, ch := range s {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// ParseFunctionCall splits a token of the form name(inner) into its parts.
func ParseFunctionCall(token string) (name, inner string, ok bool) {
	open := strings.IndexRune(token, '(')
	if open <= 0 || !strings.HasSuffix(token, ")") {
		return "", "", false
	}
	if !Balanced(token) {
		return "", "", false
	}
	return strings.TrimSpace(token[:open]), strings.TrimSpace(token[open+1 : len(token)-1]), true
}
