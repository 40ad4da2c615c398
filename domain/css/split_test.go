package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTopLevel(t *testing.T) {
	t.Run("ignores commas inside function calls", func(t *testing.T) {
		parts := SplitTopLevel("0 4px 6px rgba(0, 0, 0, 0.1), inset 0 2px 4px #000", ',')
		require.Len(t, parts, 2)
		assert.Equal(t, "0 4px 6px rgba(0, 0, 0, 0.1)", parts[0])
		assert.Equal(t, "inset 0 2px 4px #000", parts[1])
	})

	t.Run("single segment without separator", func(t *testing.T) {
		parts := SplitTopLevel("10px 20px", ',')
		require.Len(t, parts, 1)
		assert.Equal(t, "10px 20px", parts[0])
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		parts := SplitTopLevel("  red ,  blue  ", ',')
		assert.Equal(t, []string{"red", "blue"}, parts)
	})
}

func TestSplitTopLevelN(t *testing.T) {
	t.Run("splits only at the first top-level separator", func(t *testing.T) {
		parts := SplitTopLevelN("--a, var(--b, 10px)", ',')
		require.Len(t, parts, 2)
		assert.Equal(t, "--a", parts[0])
		assert.Equal(t, "var(--b, 10px)", parts[1])
	})

	t.Run("no separator yields one part", func(t *testing.T) {
		parts := SplitTopLevelN("--primary", ',')
		assert.Equal(t, []string{"--primary"}, parts)
	})
}

func TestFieldsTopLevel(t *testing.T) {
	fields := FieldsTopLevel("blur(4px) drop-shadow(0 2px 4px rgba(0, 0, 0, 0.2))")
	require.Len(t, fields, 2)
	assert.Equal(t, "blur(4px)", fields[0])
	assert.Equal(t, "drop-shadow(0 2px 4px rgba(0, 0, 0, 0.2))", fields[1])
}

func TestBalanced(t *testing.T) {
	assert.True(t, Balanced("rgba(0, 0, 0, 0.1)"))
	assert.False(t, Balanced("var(--a"))
	assert.False(t, Balanced("a)b("))
}

func TestParseFunctionCall(t *testing.T) {
	name, inner, ok := ParseFunctionCall("translate(10px, 20px)")
	require.True(t, ok)
	assert.Equal(t, "translate", name)
	assert.Equal(t, "10px, 20px", inner)

	_, _, ok = ParseFunctionCall("notacall")
	assert.False(t, ok)

	_, _, ok = ParseFunctionCall("open(unbalanced")
	assert.False(t, ok)
}
