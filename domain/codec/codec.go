// Package codec converts between raw style values and their canonical form.
// Parse validates a raw value against its grammar family and lowers it into a
// CanonicalValue; Serialize renders a CanonicalValue back to CSS-ready text.
// Composite values carry enough shape to serialize without knowing which
// family produced them.
package codec

import (
	"strings"

	"pagecompiler/domain/core/valueobjects"
	"pagecompiler/domain/css"
	pkgerrors "pagecompiler/pkg/errors"
)

// Parse validates a raw input against a grammar family and lowers it to
// canonical form. Property is carried for error context only.
func Parse(property string, in css.Input, family css.Family) (valueobjects.CanonicalValue, error) {
	r := css.NewReport()
	if !css.Validate(in, family, r) {
		err := pkgerrors.NewInvalidValueError(property, rawOf(in))
		err.WithDetail("diagnostics", r.Diagnostics())
		return valueobjects.CanonicalValue{}, err
	}
	if in.IsText() {
		return lowerText(in.Text(), family), nil
	}
	return lowerStructured(in.Structured(), family), nil
}

// Serialize renders a canonical value back to its CSS-ready textual form.
// Composite shapes self-describe; an object that matches no known shape is an
// encoding failure, never a panic.
func Serialize(v valueobjects.CanonicalValue) (string, error) {
	switch v.Kind() {
	case valueobjects.KindScalar, valueobjects.KindColor, valueobjects.KindEnum,
		valueobjects.KindUnit:
		return v.Text(), nil

	case valueobjects.KindNumber:
		return valueobjects.FormatNumber(v.Number()), nil

	case valueobjects.KindVariable:
		fallback, ok := v.Fallback()
		if !ok {
			return "var(" + v.VariableName() + ")", nil
		}
		inner, err := Serialize(fallback)
		if err != nil {
			return "", err
		}
		return "var(" + v.VariableName() + ", " + inner + ")", nil

	case valueobjects.KindList:
		return serializeList(v)

	case valueobjects.KindObject:
		return serializeObject(v)

	default:
		return "", pkgerrors.NewEncodingFailureError("unknown value kind")
	}
}

func serializeList(v valueobjects.CanonicalValue) (string, error) {
	joiner := v.Joiner()
	if joiner == "" {
		joiner = ", "
	}
	parts := make([]string, 0, len(v.Items()))
	for _, item := range v.Items() {
		s, err := Serialize(item)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, joiner), nil
}

// serializeObject dispatches on the object's shape: gradients carry stops,
// function calls carry type and args, shadow clauses carry x and y, border
// shorthands carry width/style/color, radius objects carry corners, and
// background/overlay layers carry color/image/gradient plus blending fields.
func serializeObject(v valueobjects.CanonicalValue) (string, error) {
	_, hasType := v.Field("type")
	_, hasStops := v.Field("stops")
	_, hasArgs := v.Field("args")
	_, hasX := v.Field("x")
	_, hasY := v.Field("y")
	_, hasPositions := v.Field("positions")

	switch {
	case hasType && hasStops:
		return serializeGradient(v)
	case hasType && hasArgs:
		return serializeFunctionCall(v)
	case hasX && hasY:
		return serializeShadowClause(v)
	case hasPositions:
		return serializeGradientStop(v)
	case isBorderShape(v):
		return serializeBorder(v)
	case isRadiusShape(v):
		return serializeRadius(v)
	case isLayerShape(v):
		return serializeLayer(v)
	default:
		return "", pkgerrors.NewEncodingFailureError(
			"object value matches no known composite shape").
			WithDetail("fields", v.FieldNames())
	}
}

func serializeFunctionCall(v valueobjects.CanonicalValue) (string, error) {
	name, _ := v.Field("type")
	args, _ := v.Field("args")
	inner, err := Serialize(args)
	if err != nil {
		return "", err
	}
	return name.Text() + "(" + inner + ")", nil
}

func serializeShadowClause(v valueobjects.CanonicalValue) (string, error) {
	var parts []string
	if _, inset := v.Field("inset"); inset {
		parts = append(parts, "inset")
	}
	for _, key := range []string{"x", "y", "blur", "spread", "color"} {
		f, ok := v.Field(key)
		if !ok {
			continue
		}
		s, err := Serialize(f)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " "), nil
}

func serializeGradient(v valueobjects.CanonicalValue) (string, error) {
	kind, _ := v.Field("type")
	stops, _ := v.Field("stops")

	var prefix string
	if _, repeating := v.Field("repeating"); repeating {
		prefix = "repeating-"
	}

	var segments []string
	if config, ok := v.Field("config"); ok {
		segments = append(segments, config.Text())
	}
	for _, stop := range stops.Items() {
		s, err := Serialize(stop)
		if err != nil {
			return "", err
		}
		segments = append(segments, s)
	}
	return prefix + kind.Text() + "-gradient(" + strings.Join(segments, ", ") + ")", nil
}

func serializeGradientStop(v valueobjects.CanonicalValue) (string, error) {
	color, _ := v.Field("color")
	out, err := Serialize(color)
	if err != nil {
		return "", err
	}
	if positions, ok := v.Field("positions"); ok {
		pos, err := Serialize(positions)
		if err != nil {
			return "", err
		}
		if pos != "" {
			out += " " + pos
		}
	}
	return out, nil
}

func isBorderShape(v valueobjects.CanonicalValue) bool {
	names := v.FieldNames()
	if len(names) == 0 {
		return false
	}
	for _, name := range names {
		if name != "width" && name != "style" && name != "color" {
			return false
		}
	}
	return true
}

func serializeBorder(v valueobjects.CanonicalValue) (string, error) {
	var parts []string
	for _, key := range []string{"width", "style", "color"} {
		f, ok := v.Field(key)
		if !ok {
			continue
		}
		s, err := Serialize(f)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " "), nil
}

var radiusCorners = []string{"topLeft", "topRight", "bottomRight", "bottomLeft"}

func isRadiusShape(v valueobjects.CanonicalValue) bool {
	names := v.FieldNames()
	if len(names) == 0 {
		return false
	}
	for _, name := range names {
		switch name {
		case "topLeft", "topRight", "bottomRight", "bottomLeft":
		default:
			return false
		}
	}
	return true
}

// serializeRadius renders corners in border-radius order, skipping absent
// ones.
func serializeRadius(v valueobjects.CanonicalValue) (string, error) {
	var parts []string
	for _, corner := range radiusCorners {
		f, ok := v.Field(corner)
		if !ok {
			continue
		}
		s, err := Serialize(f)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " "), nil
}

// layerFields covers both background layers (color/image/gradient) and
// overlays (color/gradient/opacity/blendMode).
var layerFields = []string{"gradient", "image", "color", "opacity", "blendMode"}

func isLayerShape(v valueobjects.CanonicalValue) bool {
	names := v.FieldNames()
	if len(names) == 0 {
		return false
	}
	for _, name := range names {
		switch name {
		case "color", "image", "gradient", "opacity", "blendMode":
		default:
			return false
		}
	}
	return true
}

func serializeLayer(v valueobjects.CanonicalValue) (string, error) {
	var parts []string
	for _, key := range layerFields {
		f, ok := v.Field(key)
		if !ok {
			continue
		}
		s, err := Serialize(f)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " "), nil
}

func rawOf(in css.Input) interface{} {
	if in.IsText() {
		return in.Text()
	}
	return in.Structured()
}
