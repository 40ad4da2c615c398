package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagecompiler/domain/core/entities"
)

func TestLoadMissingDocument(t *testing.T) {
	store := NewContentStore()

	tree, found, err := store.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, tree)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := NewContentStore()
	ctx := context.Background()

	tree := entities.NewElementTree()
	tree.Root.AppendChild(entities.NewElement("essential/heading"))
	require.NoError(t, store.Save(ctx, "doc-1", tree))
	assert.Equal(t, 1, store.Len())

	loaded, found, err := store.Load(ctx, "doc-1")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, loaded.Root.Children, 1)
	assert.Equal(t, "essential/heading", loaded.Root.Children[0].Type)
}

func TestLoadDoesNotAliasSavedTree(t *testing.T) {
	store := NewContentStore()
	ctx := context.Background()

	tree := entities.NewElementTree()
	require.NoError(t, store.Save(ctx, "doc-1", tree))

	// Mutating the saved tree after the fact must not leak into loads.
	tree.Root.AppendChild(entities.NewElement("essential/text"))

	loaded, found, err := store.Load(ctx, "doc-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, loaded.Root.Children)
}

func TestSaveReplacesPriorVersion(t *testing.T) {
	store := NewContentStore()
	ctx := context.Background()

	first := entities.NewElementTree()
	first.Root.AppendChild(entities.NewElement("essential/heading"))
	require.NoError(t, store.Save(ctx, "doc-1", first))

	second := entities.NewElementTree()
	require.NoError(t, store.Save(ctx, "doc-1", second))
	assert.Equal(t, 1, store.Len())

	loaded, _, err := store.Load(ctx, "doc-1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Root.Children)
}
