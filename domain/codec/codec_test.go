package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagecompiler/domain/core/valueobjects"
	"pagecompiler/domain/css"
	pkgerrors "pagecompiler/pkg/errors"
)

func mustParse(t *testing.T, raw string, family css.Family) valueobjects.CanonicalValue {
	t.Helper()
	v, err := Parse("test", css.Text(raw), family)
	require.NoError(t, err, "parse %q as %s", raw, family)
	return v
}

func TestParseScalarFamilies(t *testing.T) {
	t.Run("length with unit", func(t *testing.T) {
		v := mustParse(t, "16px", css.FamilyLength)
		assert.Equal(t, valueobjects.KindUnit, v.Kind())
		assert.Equal(t, 16.0, v.Number())
		assert.Equal(t, "px", v.Unit())
	})

	t.Run("bare number stays a number", func(t *testing.T) {
		v := mustParse(t, "1.5", css.FamilyNumber)
		assert.Equal(t, valueobjects.KindNumber, v.Kind())
		assert.Equal(t, 1.5, v.Number())
	})

	t.Run("unitless length is a number awaiting a default unit", func(t *testing.T) {
		v := mustParse(t, "48", css.FamilyLength)
		assert.Equal(t, valueobjects.KindNumber, v.Kind())
	})

	t.Run("color", func(t *testing.T) {
		v := mustParse(t, "rgba(0, 0, 0, 0.5)", css.FamilyColor)
		assert.Equal(t, valueobjects.KindColor, v.Kind())
		assert.Equal(t, "rgba(0, 0, 0, 0.5)", v.Text())
	})

	t.Run("variable with nested fallback", func(t *testing.T) {
		v := mustParse(t, "var(--a, var(--b, 10px))", css.FamilyLength)
		require.Equal(t, valueobjects.KindVariable, v.Kind())
		assert.Equal(t, "--a", v.VariableName())
		fb, ok := v.Fallback()
		require.True(t, ok)
		assert.Equal(t, valueobjects.KindVariable, fb.Kind())
	})

	t.Run("invalid value is a validation error", func(t *testing.T) {
		_, err := Parse("fontSize", css.Text("10foo"), css.FamilyLength)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
		de := pkgerrors.GetDomainError(err)
		require.NotNil(t, de)
		assert.Equal(t, pkgerrors.CodeInvalidValueFormat, de.Code)
	})
}

func TestParseShadow(t *testing.T) {
	v := mustParse(t, "0 4px 6px rgba(0, 0, 0, 0.1), inset 0 2px 4px #000", css.FamilyShadow)
	require.Equal(t, valueobjects.KindList, v.Kind())
	items := v.Items()
	require.Len(t, items, 2)

	first := items[0]
	blur, ok := first.Field("blur")
	require.True(t, ok)
	assert.Equal(t, 6.0, blur.Number())
	color, ok := first.Field("color")
	require.True(t, ok)
	assert.Equal(t, "rgba(0, 0, 0, 0.1)", color.Text())

	_, inset := items[1].Field("inset")
	assert.True(t, inset)
}

func TestSerializeRoundTrips(t *testing.T) {
	cases := []struct {
		raw    string
		family css.Family
	}{
		{"16px", css.FamilyLength},
		{"45deg", css.FamilyAngle},
		{"0.5", css.FamilyNumber},
		{"#ff0000", css.FamilyColor},
		{"var(--spacing, 8px)", css.FamilyLength},
		{"0 4px 6px rgba(0, 0, 0, 0.1), inset 0 2px 4px #000", css.FamilyShadow},
		{"blur(4px) brightness(1.2)", css.FamilyFilter},
		{"translate(10px, 20px) rotate(45deg)", css.FamilyTransform},
		{"linear-gradient(45deg, red 0%, blue 100%)", css.FamilyGradient},
		{"1px solid red", css.FamilyBorder},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			v := mustParse(t, tc.raw, tc.family)
			out, err := Serialize(v)
			require.NoError(t, err)

			// Serialization must be stable: reparsing the output yields a
			// structurally equal value, and serializing again the same text.
			v2 := mustParse(t, out, tc.family)
			assert.True(t, v.Equals(v2), "reparsed value differs: %q vs %q", tc.raw, out)
			out2, err := Serialize(v2)
			require.NoError(t, err)
			assert.Equal(t, out, out2)
		})
	}
}

func TestSerializeUnknownObjectShape(t *testing.T) {
	v := valueobjects.NewObject(map[string]valueobjects.CanonicalValue{
		"mystery": valueobjects.NewScalar("shape"),
	})
	_, err := Serialize(v)
	require.Error(t, err)
	de := pkgerrors.GetDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, pkgerrors.CodeEncodingFailure, de.Code)
	assert.Equal(t, pkgerrors.ErrorTypeInternal, de.Type)
}

func TestBuilders(t *testing.T) {
	t.Run("border side skips absent components", func(t *testing.T) {
		side := BorderSide(
			valueobjects.NewUnit(1, "px"),
			valueobjects.NewEnum("solid"),
			valueobjects.CanonicalValue{},
		)
		out, err := Serialize(side)
		require.NoError(t, err)
		assert.Equal(t, "1px solid", out)
	})

	t.Run("uniform radius fills all corners", func(t *testing.T) {
		radius := UniformBorderRadius(valueobjects.NewUnit(8, "px"))
		for _, corner := range []string{"topLeft", "topRight", "bottomRight", "bottomLeft"} {
			f, ok := radius.Field(corner)
			require.True(t, ok, corner)
			assert.Equal(t, 8.0, f.Number())
		}

		out, err := Serialize(radius)
		require.NoError(t, err)
		assert.Equal(t, "8px 8px 8px 8px", out)
	})

	t.Run("per-corner radius serializes in corner order", func(t *testing.T) {
		radius := BorderRadius(
			valueobjects.NewUnit(8, "px"),
			valueobjects.NewUnit(4, "px"),
			valueobjects.CanonicalValue{},
			valueobjects.NewUnit(2, "px"),
		)
		out, err := Serialize(radius)
		require.NoError(t, err)
		assert.Equal(t, "8px 4px 2px", out)
	})

	t.Run("overlay keeps only present fields", func(t *testing.T) {
		overlay := Overlay(
			valueobjects.NewColor("#000"),
			valueobjects.CanonicalValue{},
			valueobjects.NewNumber(0.5),
			valueobjects.NewEnum("multiply"),
		)
		assert.Equal(t, []string{"blendMode", "color", "opacity"}, overlay.FieldNames())

		out, err := Serialize(overlay)
		require.NoError(t, err)
		assert.Equal(t, "#000 0.5 multiply", out)
	})

	t.Run("background layer serializes with its gradient", func(t *testing.T) {
		layer := BackgroundLayer(
			valueobjects.NewColor("#fff"),
			valueobjects.CanonicalValue{},
			mustParse(t, "linear-gradient(45deg, red 0%, blue 100%)", css.FamilyGradient),
		)
		out, err := Serialize(layer)
		require.NoError(t, err)
		assert.Equal(t, "linear-gradient(45deg, red 0%, blue 100%) #fff", out)
	})
}
