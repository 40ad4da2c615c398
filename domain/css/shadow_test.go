package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "pagecompiler/pkg/errors"
)

func TestParseShadowClause(t *testing.T) {
	t.Run("full clause with function color", func(t *testing.T) {
		r := NewReport()
		clause, ok := ParseShadowClause("0 4px 6px 2px rgba(0, 0, 0, 0.1)", r)
		require.True(t, ok)
		assert.Equal(t, "0", clause.X)
		assert.Equal(t, "4px", clause.Y)
		assert.Equal(t, "6px", clause.Blur)
		assert.Equal(t, "2px", clause.Spread)
		assert.Equal(t, "rgba(0, 0, 0, 0.1)", clause.Color)
		assert.False(t, clause.Inset)
	})

	t.Run("inset keyword in any position", func(t *testing.T) {
		r := NewReport()
		clause, ok := ParseShadowClause("inset 0 2px 4px #000", r)
		require.True(t, ok)
		assert.True(t, clause.Inset)
		assert.Equal(t, "#000", clause.Color)
	})

	t.Run("named color claimed only when rest are lengths", func(t *testing.T) {
		r := NewReport()
		clause, ok := ParseShadowClause("2px 2px red", r)
		require.True(t, ok)
		assert.Equal(t, "red", clause.Color)
		assert.False(t, clause.HasBlur())
	})

	t.Run("negative blur rejected", func(t *testing.T) {
		r := NewReport()
		_, ok := ParseShadowClause("0 0 -4px #000", r)
		assert.False(t, ok)
		assert.True(t, r.HasCode(pkgerrors.CodeNegativeValue))
	})

	t.Run("negative offsets allowed", func(t *testing.T) {
		r := NewReport()
		clause, ok := ParseShadowClause("-2px -2px 4px #000", r)
		require.True(t, ok)
		assert.Equal(t, "-2px", clause.X)
		assert.Equal(t, "-2px", clause.Y)
	})

	t.Run("too few lengths rejected", func(t *testing.T) {
		r := NewReport()
		_, ok := ParseShadowClause("4px red", r)
		assert.False(t, ok)
		assert.True(t, r.HasCode(pkgerrors.CodeMalformedGrammar))
	})
}

func TestValidateShadow(t *testing.T) {
	t.Run("multiple clauses validated independently", func(t *testing.T) {
		r := NewReport()
		ok := ValidateShadow("0 4px 6px rgba(0, 0, 0, 0.1), inset 0 2px 4px #000", r)
		assert.True(t, ok)
		assert.True(t, r.OK())
	})

	t.Run("one bad clause fails the whole value but keeps checking", func(t *testing.T) {
		r := NewReport()
		ok := ValidateShadow("0 0 -1px red, bogus bogus", r)
		assert.False(t, ok)
		assert.True(t, r.HasCode(pkgerrors.CodeNegativeValue))
		assert.True(t, r.HasCode(pkgerrors.CodeInvalidValueFormat))
	})
}
