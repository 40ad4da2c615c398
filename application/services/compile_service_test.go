package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pagecompiler/domain/config"
	"pagecompiler/domain/core/entities"
	pkgerrors "pagecompiler/pkg/errors"
)

func newCompiler(t *testing.T) *CompileService {
	t.Helper()
	return NewCompileService(config.DefaultDomainConfig(), zap.NewNop())
}

func leafAt(t *testing.T, root *entities.PropertyNode, path ...string) *entities.PropertyNode {
	t.Helper()
	node := root
	for _, field := range path {
		next, ok := node.Child(field)
		require.True(t, ok, "missing path segment %q", field)
		node = next
	}
	return node
}

func TestElementRequestUnmarshal(t *testing.T) {
	raw := `{
		"type": "Heading",
		"text": "Welcome",
		"fontSize": "48px",
		"responsive": {"tablet": {"fontSize": "36px"}},
		"children": [{"type": "Text", "text": "sub"}]
	}`

	var req ElementRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	assert.Equal(t, "Heading", req.Type)
	assert.Equal(t, "Welcome", req.Properties["text"])
	assert.Equal(t, "48px", req.Properties["fontSize"])
	assert.NotContains(t, req.Properties, "type")
	assert.NotContains(t, req.Properties, "responsive")
	assert.Equal(t, "36px", req.Responsive["tablet"]["fontSize"])
	require.Len(t, req.Children, 1)
	assert.Equal(t, "sub", req.Children[0].Properties["text"])
}

func TestCompileHeadingEndToEnd(t *testing.T) {
	var req ElementRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"type": "Heading",
		"text": "Welcome",
		"tag": "h1",
		"fontSize": "48px",
		"responsive": {"tablet": {"fontSize": "36px"}}
	}`), &req))

	el, warnings, err := newCompiler(t).CompileElement(req)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "essential/heading", el.Type)

	text := leafAt(t, el.Properties, "content", "content", "text")
	v, ok := text.Value("")
	require.True(t, ok)
	assert.Equal(t, "Welcome", v.Text())

	tags := leafAt(t, el.Properties, "content", "content", "tags")
	v, ok = tags.Value("")
	require.True(t, ok)
	assert.Equal(t, "h1", v.Text())

	fontSize := leafAt(t, el.Properties, "design", "typography", "fontSize")
	base, ok := fontSize.Value("breakpoint_base")
	require.True(t, ok)
	assert.Equal(t, 48.0, base.Number())
	assert.Equal(t, "px", base.Unit())
	tablet, ok := fontSize.Value("breakpoint_tablet_portrait")
	require.True(t, ok)
	assert.Equal(t, 36.0, tablet.Number())
	assert.Equal(t, "px", tablet.Unit())
}

func TestCompileAppliesDefaultUnit(t *testing.T) {
	el, _, err := newCompiler(t).CompileElement(ElementRequest{
		Type:       "Heading",
		Properties: map[string]interface{}{"text": "x", "fontSize": float64(48)},
	})
	require.NoError(t, err)

	fontSize := leafAt(t, el.Properties, "design", "typography", "fontSize")
	v, ok := fontSize.Value("breakpoint_base")
	require.True(t, ok)
	assert.Equal(t, "px", v.Unit())
	assert.Equal(t, "48px", v.Text())
}

func TestCompileGapFanOut(t *testing.T) {
	req := ElementRequest{
		Type:       "Container",
		Properties: map[string]interface{}{"gap": "16px"},
	}

	t.Run("fans out by default", func(t *testing.T) {
		el, _, err := newCompiler(t).CompileElement(req)
		require.NoError(t, err)
		spacing := leafAt(t, el.Properties, "design", "layout", "spacing")
		_, hasX := spacing.Child("gapX")
		_, hasY := spacing.Child("gapY")
		assert.True(t, hasX)
		assert.True(t, hasY)
	})

	t.Run("narrowed by configuration", func(t *testing.T) {
		cfg := config.DefaultDomainConfig()
		cfg.GapFansOut = false
		el, _, err := NewCompileService(cfg, zap.NewNop()).CompileElement(req)
		require.NoError(t, err)
		spacing := leafAt(t, el.Properties, "design", "layout", "spacing")
		_, hasX := spacing.Child("gapX")
		_, hasY := spacing.Child("gapY")
		assert.True(t, hasX)
		assert.False(t, hasY)
	})
}

func TestCompileOverrideOnlyPropertyGetsBaseValue(t *testing.T) {
	el, _, err := newCompiler(t).CompileElement(ElementRequest{
		Type:       "Heading",
		Properties: map[string]interface{}{"text": "x"},
		Responsive: map[string]map[string]interface{}{
			"tablet": {"fontSize": "36px"},
		},
	})
	require.NoError(t, err)

	fontSize := leafAt(t, el.Properties, "design", "typography", "fontSize")
	tablet, ok := fontSize.Value("breakpoint_tablet_portrait")
	require.True(t, ok)
	assert.Equal(t, 36.0, tablet.Number())

	base, ok := fontSize.Value("breakpoint_base")
	require.True(t, ok, "base entry must exist whenever any value is supplied")
	assert.Equal(t, 36.0, base.Number())
	assert.Equal(t, "px", base.Unit())
}

func TestCompileHoverOnlyPropertyGetsBaseValue(t *testing.T) {
	el, _, err := newCompiler(t).CompileElement(ElementRequest{
		Type:       "Button",
		Properties: map[string]interface{}{"text": "Go"},
		Hover:      map[string]interface{}{"color": "#ccc"},
	})
	require.NoError(t, err)

	color := leafAt(t, el.Properties, "design", "typography", "color")
	base, ok := color.Value("breakpoint_base")
	require.True(t, ok)
	assert.Equal(t, "#ccc", base.Text())
}

func TestCompileUnknownBreakpointFallsBack(t *testing.T) {
	el, _, err := newCompiler(t).CompileElement(ElementRequest{
		Type:       "Heading",
		Properties: map[string]interface{}{"text": "x"},
		Responsive: map[string]map[string]interface{}{
			"watch": {"fontSize": "12px"},
		},
	})
	require.NoError(t, err)

	fontSize := leafAt(t, el.Properties, "design", "typography", "fontSize")
	v, ok := fontSize.Value("breakpoint_base")
	require.True(t, ok, "unrecognized breakpoint degrades to base")
	assert.Equal(t, 12.0, v.Number())
}

func TestCompileHoverState(t *testing.T) {
	el, _, err := newCompiler(t).CompileElement(ElementRequest{
		Type:       "Button",
		Properties: map[string]interface{}{"text": "Go", "color": "#fff"},
		Hover:      map[string]interface{}{"color": "#ccc"},
	})
	require.NoError(t, err)

	color := leafAt(t, el.Properties, "design", "typography", "color")
	base, ok := color.Value("breakpoint_base")
	require.True(t, ok)
	assert.Equal(t, "#fff", base.Text())
	hover, ok := color.Value("breakpoint_base_hover")
	require.True(t, ok)
	assert.Equal(t, "#ccc", hover.Text())
}

func TestCompileMissingRequiredFails(t *testing.T) {
	_, _, err := newCompiler(t).CompileElement(ElementRequest{
		Type:       "Heading",
		Properties: map[string]interface{}{"fontSize": "48px"},
	})
	require.Error(t, err)

	var ve *pkgerrors.ValidationErrors
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, pkgerrors.CodeRequiredProperty, ve.Errors[0].Code)
}

func TestCompileInvalidOptionalIsDroppedWithWarning(t *testing.T) {
	el, warnings, err := newCompiler(t).CompileElement(ElementRequest{
		Type: "Heading",
		Properties: map[string]interface{}{
			"text":     "x",
			"fontSize": "10foo",
		},
	})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, pkgerrors.CodeInvalidValueFormat, warnings[0].Code)

	design, hasDesign := el.Properties.Child("design")
	if hasDesign {
		typography, hasTypography := design.Child("typography")
		if hasTypography {
			_, hasFontSize := typography.Child("fontSize")
			assert.False(t, hasFontSize, "invalid property must not be placed")
		}
	}
}

func TestCompileUnknownPropertyIsWarning(t *testing.T) {
	_, warnings, err := newCompiler(t).CompileElement(ElementRequest{
		Type:       "Heading",
		Properties: map[string]interface{}{"text": "x", "glitter": "lots"},
	})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, pkgerrors.CodeUnknownProperty, warnings[0].Code)
}

func TestCompileOutOfRange(t *testing.T) {
	_, warnings, err := newCompiler(t).CompileElement(ElementRequest{
		Type:       "Container",
		Properties: map[string]interface{}{"opacity": float64(1.5)},
	})
	require.NoError(t, err, "out-of-range optional value is dropped, not fatal")
	require.Len(t, warnings, 1)
	assert.Equal(t, pkgerrors.CodeOutOfRange, warnings[0].Code)
}

func TestCompileUnknownElementType(t *testing.T) {
	_, _, err := newCompiler(t).CompileElement(ElementRequest{Type: "Carousel"})
	require.Error(t, err)
	de := pkgerrors.GetDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, pkgerrors.CodeUnknownElementType, de.Code)
}

func TestCompileChildren(t *testing.T) {
	t.Run("containers own compiled children", func(t *testing.T) {
		el, _, err := newCompiler(t).CompileElement(ElementRequest{
			Type: "Section",
			Children: []ElementRequest{
				{Type: "Heading", Properties: map[string]interface{}{"text": "Hi"}},
				{Type: "Text", Properties: map[string]interface{}{"text": "Body"}},
			},
		})
		require.NoError(t, err)
		require.Len(t, el.Children, 2)
		assert.Equal(t, "essential/heading", el.Children[0].Type)
		assert.Equal(t, "essential/text", el.Children[1].Type)
	})

	t.Run("leaf types drop children with a warning", func(t *testing.T) {
		el, warnings, err := newCompiler(t).CompileElement(ElementRequest{
			Type:       "Heading",
			Properties: map[string]interface{}{"text": "x"},
			Children: []ElementRequest{
				{Type: "Text", Properties: map[string]interface{}{"text": "y"}},
			},
		})
		require.NoError(t, err)
		assert.Empty(t, el.Children)
		require.Len(t, warnings, 1)
	})
}
