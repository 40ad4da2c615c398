package css

import "strconv"

// Input is the explicit two-variant value form accepted by the validators:
// a raw CSS-like string, or a structured object with named fields. The
// variant is resolved once at the entry of each validator instead of by
// repeated type probing.
type Input struct {
	text       string
	structured map[string]interface{}
	isText     bool
}

// Text wraps a raw string value.
func Text(s string) Input {
	return Input{text: s, isText: true}
}

// Structured wraps an object value with named fields.
func Structured(m map[string]interface{}) Input {
	return Input{structured: m}
}

// FromRaw converts a decoded JSON value into an Input. Numbers become their
// textual form so the string grammars apply uniformly.
func FromRaw(v interface{}) (Input, bool) {
	switch t := v.(type) {
	case string:
		return Text(t), true
	case float64:
		return Text(strconv.FormatFloat(t, 'f', -1, 64)), true
	case int:
		return Text(strconv.Itoa(t)), true
	case map[string]interface{}:
		return Structured(t), true
	default:
		return Input{}, false
	}
}

// IsText reports whether the input is the textual variant.
func (in Input) IsText() bool {
	return in.isText
}

// Text returns the textual form (empty for structured inputs).
func (in Input) Text() string {
	return in.text
}

// Structured returns the object form (nil for textual inputs).
func (in Input) Structured() map[string]interface{} {
	return in.structured
}
