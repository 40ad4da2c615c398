package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pagecompiler/domain/builder"
	"pagecompiler/domain/config"
	"pagecompiler/infrastructure/persistence/memory"
	pkgerrors "pagecompiler/pkg/errors"
	"pagecompiler/pkg/observability"
)

func newDocumentService(t *testing.T) (*DocumentService, *memory.ContentStore) {
	t.Helper()
	store := memory.NewContentStore()
	compiler := NewCompileService(config.DefaultDomainConfig(), zap.NewNop())
	tracer := observability.NewTracer("pagecompiler-test")
	return NewDocumentService(store, compiler, tracer, zap.NewNop()), store
}

func TestAddElementCreatesDocument(t *testing.T) {
	svc, store := newDocumentService(t)
	ctx := context.Background()

	result, err := svc.AddElement(ctx, "doc-1", builder.RootID, builder.Last(), ElementRequest{
		Type:       "Heading",
		Properties: map[string]interface{}{"text": "Welcome"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.ElementID)
	assert.Equal(t, 1, store.Len())

	tree, err := svc.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, tree.Root.Children, 1)
	assert.Equal(t, "essential/heading", tree.Root.Children[0].Type)
	assert.Equal(t, result.ElementID, tree.Root.Children[0].ID.String())
}

func TestAddElementUnderExistingParent(t *testing.T) {
	svc, _ := newDocumentService(t)
	ctx := context.Background()

	section, err := svc.AddElement(ctx, "doc-1", "", builder.Last(), ElementRequest{
		Type: "Section",
	})
	require.NoError(t, err)

	_, err = svc.AddElement(ctx, "doc-1", section.ElementID, builder.First(), ElementRequest{
		Type:       "Text",
		Properties: map[string]interface{}{"text": "Body"},
	})
	require.NoError(t, err)

	tree, err := svc.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, tree.Root.Children, 1)
	require.Len(t, tree.Root.Children[0].Children, 1)
	assert.Equal(t, "essential/text", tree.Root.Children[0].Children[0].Type)
}

func TestAddElementMissingParent(t *testing.T) {
	svc, _ := newDocumentService(t)
	_, err := svc.AddElement(context.Background(), "doc-1", "ghost", builder.Last(), ElementRequest{
		Type:       "Text",
		Properties: map[string]interface{}{"text": "Body"},
	})
	require.Error(t, err)
	de := pkgerrors.GetDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, pkgerrors.CodeParentNotFound, de.Code)
}

func TestGetDocumentNotFound(t *testing.T) {
	svc, _ := newDocumentService(t)
	_, err := svc.GetDocument(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestCloneElement(t *testing.T) {
	svc, _ := newDocumentService(t)
	ctx := context.Background()

	section, err := svc.AddElement(ctx, "doc-1", "", builder.Last(), ElementRequest{
		Type: "Section",
		Children: []ElementRequest{
			{Type: "Heading", Properties: map[string]interface{}{"text": "Hi"}},
		},
	})
	require.NoError(t, err)

	cloneID, err := svc.CloneElement(ctx, "doc-1", section.ElementID, true)
	require.NoError(t, err)
	assert.NotEqual(t, section.ElementID, cloneID)

	tree, err := svc.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, tree.Root.Children, 2)
	assert.Len(t, tree.Root.Children[1].Children, 1)
}
