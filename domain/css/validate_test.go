package css

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "pagecompiler/pkg/errors"
)

func validText(t *testing.T, family Family, values ...string) {
	t.Helper()
	for _, v := range values {
		r := NewReport()
		assert.True(t, Validate(Text(v), family, r), "expected %q to be valid %s", v, family)
		assert.True(t, r.OK(), "expected no diagnostics for %q: %+v", v, r.Diagnostics())
	}
}

func invalidText(t *testing.T, family Family, values ...string) {
	t.Helper()
	for _, v := range values {
		r := NewReport()
		assert.False(t, Validate(Text(v), family, r), "expected %q to be invalid %s", v, family)
		assert.False(t, r.OK(), "expected diagnostics for %q", v)
	}
}

func TestUniversalEscapes(t *testing.T) {
	for _, family := range []Family{
		FamilyColor, FamilyLength, FamilyAngle, FamilyNumber,
		FamilyShadow, FamilyFilter, FamilyTransform, FamilyGradient, FamilyBorder,
	} {
		validText(t, family, "", "inherit", "initial", "unset", "revert", "var(--anything)")
	}
}

func TestValidateColor(t *testing.T) {
	validText(t, FamilyColor,
		"#fff", "#ffffff", "#ffffff80",
		"rgb(255, 0, 0)", "rgba(0, 0, 0, 0.5)", "hsl(120, 50%, 50%)",
		"red", "rebeccapurple", "transparent", "currentColor")
	invalidText(t, FamilyColor, "#ffff", "#gggggg", "rgb(1,2,3", "not a color", "brand-accent")
}

func TestValidateDimensions(t *testing.T) {
	validText(t, FamilyLength, "10px", "1.5rem", "100%", "50vw", "-4px", "0", "12")
	invalidText(t, FamilyLength, "10foo", "px", "10px 20px")

	validText(t, FamilyAngle, "45deg", "0.5turn", "1rad", "90")
	invalidText(t, FamilyAngle, "45px", "degrees")

	validText(t, FamilyNumber, "1.5", "-2", ".5")
	invalidText(t, FamilyNumber, "1.5px", "two")
}

func TestValidateVarRef(t *testing.T) {
	t.Run("nested fallback chains", func(t *testing.T) {
		validText(t, FamilyLength, "var(--a, var(--b, 10px))", "var(--spacing-md)")
	})

	t.Run("unterminated reference", func(t *testing.T) {
		r := NewReport()
		assert.False(t, Validate(Text("var(--a"), FamilyLength, r))
		assert.True(t, r.HasCode(pkgerrors.CodeMalformedGrammar))
	})

	t.Run("name must start with double dash", func(t *testing.T) {
		r := NewReport()
		assert.False(t, Validate(Text("var(not-a-name)"), FamilyColor, r))
		assert.False(t, r.OK())
	})
}

func TestValidateFilter(t *testing.T) {
	validText(t, FamilyFilter,
		"blur(4px)",
		"brightness(1.2) contrast(80%)",
		"hue-rotate(-90deg)",
		"drop-shadow(0 2px 4px rgba(0, 0, 0, 0.2))")
	invalidText(t, FamilyFilter,
		"blur(-4px)", "brightness(-1)", "sharpen(2)", "blur 4px")
}

func TestValidateTransform(t *testing.T) {
	validText(t, FamilyTransform,
		"translate(10px, 20px)",
		"translateX(50%) rotate(45deg)",
		"scale(1.5)",
		"rotate3d(1, 0, 0, 90deg)",
		"matrix(1, 0, 0, 1, 10, 20)")
	invalidText(t, FamilyTransform,
		"rotate(45px)",
		"translate(10px, 20px, 30px)",
		"perspective(-100px)",
		"wobble(3)")
}

func TestValidateGradient(t *testing.T) {
	validText(t, FamilyGradient,
		"linear-gradient(45deg, red 0%, blue 100%)",
		"linear-gradient(to bottom right, #fff, #000)",
		"radial-gradient(circle at center, red, blue)",
		"conic-gradient(from 90deg, red, yellow, red)",
		"repeating-linear-gradient(red, blue 20px)")
	invalidText(t, FamilyGradient,
		"linear-gradient(red)",
		"linear-gradient(45deg, red 0%",
		"swirl-gradient(red, blue)")
}

func TestValidateBorder(t *testing.T) {
	validText(t, FamilyBorder, "1px solid red", "solid", "dashed #ccc", "2px")
	invalidText(t, FamilyBorder, "1px wavy red", "1px 2px solid", "solid dotted")
}

func TestValidateEnum(t *testing.T) {
	allowed := []string{"left", "center", "right"}

	r := NewReport()
	assert.True(t, ValidateEnum("center", allowed, r))
	assert.True(t, ValidateEnum("LEFT", allowed, r))
	assert.True(t, ValidateEnum("var(--align)", allowed, r))
	assert.True(t, ValidateEnum("inherit", allowed, r))
	assert.True(t, r.OK())

	assert.False(t, ValidateEnum("middle", allowed, r))
	assert.True(t, r.HasCode(pkgerrors.CodeInvalidValueFormat))
}

func TestValidateStructured(t *testing.T) {
	t.Run("shadow object", func(t *testing.T) {
		r := NewReport()
		ok := Validate(Structured(map[string]interface{}{
			"x": float64(0), "y": "4px", "blur": "6px", "color": "rgba(0,0,0,0.1)", "inset": false,
		}), FamilyShadow, r)
		assert.True(t, ok)
		assert.True(t, r.OK())
	})

	t.Run("shadow object negative blur", func(t *testing.T) {
		r := NewReport()
		ok := Validate(Structured(map[string]interface{}{
			"x": float64(0), "y": float64(0), "blur": float64(-2),
		}), FamilyShadow, r)
		assert.False(t, ok)
		assert.True(t, r.HasCode(pkgerrors.CodeNegativeValue))
	})

	t.Run("filter object", func(t *testing.T) {
		r := NewReport()
		ok := Validate(Structured(map[string]interface{}{
			"type": "brightness", "amount": float64(1.2),
		}), FamilyFilter, r)
		assert.True(t, ok)

		ok = Validate(Structured(map[string]interface{}{"type": "sharpen"}), FamilyFilter, r)
		assert.False(t, ok)
	})

	t.Run("transform object", func(t *testing.T) {
		r := NewReport()
		ok := Validate(Structured(map[string]interface{}{
			"type": "translate", "args": []interface{}{"10px", "20px"},
		}), FamilyTransform, r)
		assert.True(t, ok)

		ok = Validate(Structured(map[string]interface{}{
			"type": "rotate", "args": []interface{}{"45px"},
		}), FamilyTransform, r)
		assert.False(t, ok)
	})

	t.Run("gradient object", func(t *testing.T) {
		r := NewReport()
		ok := Validate(Structured(map[string]interface{}{
			"type":  "linear",
			"angle": "45deg",
			"stops": []interface{}{
				map[string]interface{}{"color": "red", "position": "0%"},
				map[string]interface{}{"color": "blue", "position": "100%"},
			},
		}), FamilyGradient, r)
		assert.True(t, ok)
		assert.True(t, r.OK())

		ok = Validate(Structured(map[string]interface{}{
			"type":  "linear",
			"stops": []interface{}{map[string]interface{}{"color": "red"}},
		}), FamilyGradient, r)
		assert.False(t, ok)
	})

	t.Run("structured form rejected for scalar families", func(t *testing.T) {
		r := NewReport()
		ok := Validate(Structured(map[string]interface{}{"value": "red"}), FamilyColor, r)
		assert.False(t, ok)
	})
}
