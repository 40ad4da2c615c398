package codec

import (
	"pagecompiler/domain/core/valueobjects"
)

// Composite builders assemble canonical objects from independently parsed
// component values. Absent components are represented by the zero
// CanonicalValue and omitted from the result.

func isAbsent(v valueobjects.CanonicalValue) bool {
	return v.Kind() == valueobjects.KindScalar && v.Text() == ""
}

// BorderSide assembles a border shorthand object from its components.
func BorderSide(width, style, color valueobjects.CanonicalValue) valueobjects.CanonicalValue {
	fields := make(map[string]valueobjects.CanonicalValue, 3)
	if !isAbsent(width) {
		fields["width"] = width
	}
	if !isAbsent(style) {
		fields["style"] = style
	}
	if !isAbsent(color) {
		fields["color"] = color
	}
	return valueobjects.NewObject(fields)
}

// BorderRadius assembles a per-corner radius object. A single uniform radius
// stays a plain value; callers pass it to all four corners when needed.
func BorderRadius(topLeft, topRight, bottomRight, bottomLeft valueobjects.CanonicalValue) valueobjects.CanonicalValue {
	fields := make(map[string]valueobjects.CanonicalValue, 4)
	if !isAbsent(topLeft) {
		fields["topLeft"] = topLeft
	}
	if !isAbsent(topRight) {
		fields["topRight"] = topRight
	}
	if !isAbsent(bottomRight) {
		fields["bottomRight"] = bottomRight
	}
	if !isAbsent(bottomLeft) {
		fields["bottomLeft"] = bottomLeft
	}
	return valueobjects.NewObject(fields)
}

// UniformBorderRadius applies one radius to all four corners.
func UniformBorderRadius(radius valueobjects.CanonicalValue) valueobjects.CanonicalValue {
	return BorderRadius(radius, radius, radius, radius)
}

// BackgroundLayer assembles one background layer from a color, an image URL
// and a gradient, whichever are present.
func BackgroundLayer(color, image, gradient valueobjects.CanonicalValue) valueobjects.CanonicalValue {
	fields := make(map[string]valueobjects.CanonicalValue, 3)
	if !isAbsent(color) {
		fields["color"] = color
	}
	if !isAbsent(image) {
		fields["image"] = image
	}
	if !isAbsent(gradient) {
		fields["gradient"] = gradient
	}
	return valueobjects.NewObject(fields)
}

// Overlay assembles an overlay object from a color or gradient plus opacity
// and blend mode.
func Overlay(color, gradient, opacity, blendMode valueobjects.CanonicalValue) valueobjects.CanonicalValue {
	fields := make(map[string]valueobjects.CanonicalValue, 4)
	if !isAbsent(color) {
		fields["color"] = color
	}
	if !isAbsent(gradient) {
		fields["gradient"] = gradient
	}
	if !isAbsent(opacity) {
		fields["opacity"] = opacity
	}
	if !isAbsent(blendMode) {
		fields["blendMode"] = blendMode
	}
	return valueobjects.NewObject(fields)
}
