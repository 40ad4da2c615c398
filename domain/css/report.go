// Package css validates textual and structured style values against a fixed
// set of CSS-like grammar families. Validation never panics and never stops
// at the first failure: diagnostics accumulate in a Report so a caller can
// check a whole element definition and surface every problem at once.
package css

// Family identifies the grammar a value is validated against.
type Family string

const (
	FamilyColor     Family = "color"
	FamilyLength    Family = "length"
	FamilyAngle     Family = "angle"
	FamilyNumber    Family = "number"
	FamilyShadow    Family = "box-shadow"
	FamilyFilter    Family = "filter"
	FamilyTransform Family = "transform"
	FamilyGradient  Family = "gradient"
	FamilyBorder    Family = "border"
	FamilyEnum      Family = "enum"
	FamilyCustom    Family = "custom"
)

// Diagnostic describes one validation failure.
type Diagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Context string `json:"context"`
}

// Report accumulates diagnostics across validation calls.
type Report struct {
	diags []Diagnostic
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add records a diagnostic.
func (r *Report) Add(code, message, context string) {
	r.diags = append(r.diags, Diagnostic{Code: code, Message: message, Context: context})
}

// Merge appends all diagnostics from another report.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.diags = append(r.diags, other.diags...)
}

// OK reports whether no diagnostics have accumulated.
func (r *Report) OK() bool {
	return len(r.diags) == 0
}

// Diagnostics returns the accumulated diagnostics in order of occurrence.
func (r *Report) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}

// HasCode reports whether any diagnostic carries the given code.
func (r *Report) HasCode(code string) bool {
	for _, d := range r.diags {
		if d.Code == code {
			return true
		}
	}
	return false
}
