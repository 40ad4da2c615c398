package valueobjects

import (
	"sort"
	"strconv"
)

// ValueKind discriminates the variants of CanonicalValue.
type ValueKind int

const (
	// KindScalar is an opaque textual value ("Welcome", "h1")
	KindScalar ValueKind = iota
	// KindNumber is a bare number (scale factor, opacity, matrix component)
	KindNumber
	// KindUnit is a number with a unit ("16px", "45deg")
	KindUnit
	// KindColor is a validated color in textual form
	KindColor
	// KindEnum is a value drawn from a fixed value set
	KindEnum
	// KindObject is a map of named canonical values
	KindObject
	// KindList is an ordered sequence of canonical values
	KindList
	// KindVariable is a CSS custom-property reference with optional fallback
	KindVariable
)

// CanonicalValue is the internal, grammar-validated, serialization-stable
// representation of a style value. Values are immutable once constructed;
// re-setting a property replaces the value, never mutates it.
type CanonicalValue struct {
	kind     ValueKind
	text     string
	number   float64
	unit     string
	fields   map[string]CanonicalValue
	items    []CanonicalValue
	joiner   string
	varName  string
	fallback *CanonicalValue
}

// NewScalar creates an opaque textual value.
func NewScalar(text string) CanonicalValue {
	return CanonicalValue{kind: KindScalar, text: text}
}

// NewNumber creates a bare numeric value.
func NewNumber(n float64) CanonicalValue {
	return CanonicalValue{kind: KindNumber, number: n, text: FormatNumber(n)}
}

// NewUnit creates a number-with-unit value. The textual form is derived, so
// round-tripping through text is lossless.
func NewUnit(n float64, unit string) CanonicalValue {
	return CanonicalValue{
		kind:   KindUnit,
		number: n,
		unit:   unit,
		text:   FormatNumber(n) + unit,
	}
}

// NewColor creates a color value from its validated textual form.
func NewColor(text string) CanonicalValue {
	return CanonicalValue{kind: KindColor, text: text}
}

// NewEnum creates a value drawn from a fixed value set.
func NewEnum(text string) CanonicalValue {
	return CanonicalValue{kind: KindEnum, text: text}
}

// NewObject creates a composite value with named fields. The map is copied.
func NewObject(fields map[string]CanonicalValue) CanonicalValue {
	copied := make(map[string]CanonicalValue, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return CanonicalValue{kind: KindObject, fields: copied}
}

// NewList creates an ordered sequence joined with ", " in textual form.
func NewList(items ...CanonicalValue) CanonicalValue {
	return NewListJoined(", ", items...)
}

// NewListJoined creates an ordered sequence with an explicit textual joiner.
// Shadow clauses join with ", ", transform and filter functions with " ".
func NewListJoined(joiner string, items ...CanonicalValue) CanonicalValue {
	copied := make([]CanonicalValue, len(items))
	copy(copied, items)
	return CanonicalValue{kind: KindList, items: copied, joiner: joiner}
}

// NewVariable creates a CSS custom-property reference.
func NewVariable(name string, fallback *CanonicalValue) CanonicalValue {
	v := CanonicalValue{kind: KindVariable, varName: name}
	if fallback != nil {
		fb := *fallback
		v.fallback = &fb
	}
	return v
}

// Kind returns the variant tag.
func (v CanonicalValue) Kind() ValueKind {
	return v.kind
}

// Text returns the textual form of scalar-like variants.
func (v CanonicalValue) Text() string {
	return v.text
}

// Number returns the numeric component of Number and Unit variants.
func (v CanonicalValue) Number() float64 {
	return v.number
}

// Unit returns the unit of a Unit variant (empty for a bare number).
func (v CanonicalValue) Unit() string {
	return v.unit
}

// Field returns a named field of an Object variant.
func (v CanonicalValue) Field(name string) (CanonicalValue, bool) {
	f, ok := v.fields[name]
	return f, ok
}

// FieldNames returns the sorted field names of an Object variant.
func (v CanonicalValue) FieldNames() []string {
	names := make([]string, 0, len(v.fields))
	for k := range v.fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Items returns a copy of the items of a List variant.
func (v CanonicalValue) Items() []CanonicalValue {
	items := make([]CanonicalValue, len(v.items))
	copy(items, v.items)
	return items
}

// Joiner returns the textual joiner of a List variant.
func (v CanonicalValue) Joiner() string {
	return v.joiner
}

// VariableName returns the custom-property name of a Variable variant.
func (v CanonicalValue) VariableName() string {
	return v.varName
}

// Fallback returns the fallback of a Variable variant, if any.
func (v CanonicalValue) Fallback() (CanonicalValue, bool) {
	if v.fallback == nil {
		return CanonicalValue{}, false
	}
	return *v.fallback, true
}

// Equals performs structural equality, ignoring textual joiners' whitespace.
func (v CanonicalValue) Equals(other CanonicalValue) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindScalar, KindColor, KindEnum:
		return v.text == other.text
	case KindNumber:
		return v.number == other.number
	case KindUnit:
		return v.number == other.number && v.unit == other.unit
	case KindObject:
		if len(v.fields) != len(other.fields) {
			return false
		}
		for k, f := range v.fields {
			of, ok := other.fields[k]
			if !ok || !f.Equals(of) {
				return false
			}
		}
		return true
	case KindList:
		if len(v.items) != len(other.items) {
			return false
		}
		for i, item := range v.items {
			if !item.Equals(other.items[i]) {
				return false
			}
		}
		return true
	case KindVariable:
		if v.varName != other.varName {
			return false
		}
		if (v.fallback == nil) != (other.fallback == nil) {
			return false
		}
		if v.fallback == nil {
			return true
		}
		return v.fallback.Equals(*other.fallback)
	}
	return false
}

// ToWire lowers the value into the JSON-ready document-tree shape.
// Unit values become {number, unit, style}; objects and lists recurse.
func (v CanonicalValue) ToWire() interface{} {
	switch v.kind {
	case KindScalar, KindColor, KindEnum:
		return v.text
	case KindNumber:
		return v.number
	case KindUnit:
		return map[string]interface{}{
			"number": v.number,
			"unit":   v.unit,
			"style":  v.text,
		}
	case KindObject:
		m := make(map[string]interface{}, len(v.fields))
		for k, f := range v.fields {
			m[k] = f.ToWire()
		}
		return m
	case KindList:
		items := make([]interface{}, len(v.items))
		for i, item := range v.items {
			items[i] = item.ToWire()
		}
		return items
	case KindVariable:
		m := map[string]interface{}{"var": v.varName}
		if v.fallback != nil {
			m["fallback"] = v.fallback.ToWire()
		}
		return m
	}
	return nil
}

// FormatNumber renders a float the way CSS expects: no exponent, no
// trailing zeros, "0.5" not ".5".
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
