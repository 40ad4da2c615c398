package css

import (
	"strings"

	pkgerrors "pagecompiler/pkg/errors"
)

// ShadowClause is one comma-separated clause of a box-shadow value after
// positional interpretation of its 2-4 lengths.
type ShadowClause struct {
	X      string
	Y      string
	Blur   string
	Spread string
	Color  string
	Inset  bool
}

// HasBlur reports whether the clause carried a third length.
func (c ShadowClause) HasBlur() bool { return c.Blur != "" }

// HasSpread reports whether the clause carried a fourth length.
func (c ShadowClause) HasSpread() bool { return c.Spread != "" }

// HasColor reports whether a color was extracted from the clause.
func (c ShadowClause) HasColor() bool { return c.Color != "" }

// extractColorToken removes the clause's color from tokens, trying in order:
// function-form color, hex color, custom-property reference, and finally a
// fixed list of named colors only when every remaining token parses as a
// length. Returns the color ("" if none) and the surviving tokens.
func extractColorToken(tokens []string) (string, []string) {
	try := func(match func(string) bool) (string, []string, bool) {
		for i, tok := range tokens {
			if match(tok) {
				rest := make([]string, 0, len(tokens)-1)
				rest = append(rest, tokens[:i]...)
				rest = append(rest, tokens[i+1:]...)
				return tok, rest, true
			}
		}
		return "", nil, false
	}

	if color, rest, ok := try(IsColorFunction); ok {
		return color, rest
	}
	if color, rest, ok := try(func(s string) bool { return hexColorPattern.MatchString(s) }); ok {
		return color, rest
	}
	if color, rest, ok := try(IsVarRef); ok {
		return color, rest
	}

	for i, tok := range tokens {
		if !IsNamedColor(tok) {
			continue
		}
		rest := make([]string, 0, len(tokens)-1)
		rest = append(rest, tokens[:i]...)
		rest = append(rest, tokens[i+1:]...)
		allLengths := true
		for _, t := range rest {
			if !IsLength(t) {
				allLengths = false
				break
			}
		}
		if allLengths {
			return tok, rest
		}
	}
	return "", tokens
}

// ParseShadowClause validates and decomposes one shadow clause. Diagnostics
// accumulate in r; the returned bool mirrors r staying clean for this clause.
func ParseShadowClause(clause string, r *Report) (ShadowClause, bool) {
	var out ShadowClause
	tokens := FieldsTopLevel(clause)

	// The inset keyword may lead or trail; strip it first.
	kept := tokens[:0]
	for _, tok := range tokens {
		if strings.EqualFold(tok, "inset") {
			out.Inset = true
			continue
		}
		kept = append(kept, tok)
	}
	tokens = kept

	out.Color, tokens = extractColorToken(tokens)

	if len(tokens) < 2 {
		r.Add(pkgerrors.CodeMalformedGrammar,
			"box-shadow clause needs at least x and y offsets", clause)
		return out, false
	}
	if len(tokens) > 4 {
		r.Add(pkgerrors.CodeMalformedGrammar,
			"box-shadow clause has too many length values", clause)
		return out, false
	}

	ok := true
	for _, tok := range tokens {
		if !IsLength(tok) {
			r.Add(pkgerrors.CodeInvalidValueFormat,
				"box-shadow clause contains a non-length value", tok)
			ok = false
		}
	}
	if !ok {
		return out, false
	}

	out.X = tokens[0]
	out.Y = tokens[1]
	if len(tokens) >= 3 {
		out.Blur = tokens[2]
		if n, _, parsed := ParseDimension(out.Blur); parsed && n < 0 {
			r.Add(pkgerrors.CodeNegativeValue, "box-shadow blur must not be negative", out.Blur)
			ok = false
		}
	}
	if len(tokens) == 4 {
		out.Spread = tokens[3]
	}
	return out, ok
}

// ValidateShadow checks a full box-shadow value: one or more comma-split
// clauses, each with optional inset keyword, optional color, and 2-4 lengths
// interpreted positionally as x, y, blur, spread.
func ValidateShadow(s string, r *Report) bool {
	clauses := SplitTopLevel(s, ',')
	if len(clauses) == 0 {
		r.Add(pkgerrors.CodeMalformedGrammar, "empty box-shadow value", s)
		return false
	}

	ok := true
	for _, clause := range clauses {
		if _, clauseOK := ParseShadowClause(clause, r); !clauseOK {
			ok = false
		}
	}
	return ok
}
