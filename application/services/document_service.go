package services

import (
	"context"

	"go.uber.org/zap"

	"pagecompiler/application/ports"
	"pagecompiler/domain/builder"
	"pagecompiler/domain/core/entities"
	pkgerrors "pagecompiler/pkg/errors"
	"pagecompiler/pkg/observability"
)

// DocumentService coordinates compilation with the content store: it loads a
// document's tree, mutates it through a request-scoped builder, and hands
// the result back to the store. Store round-trips run inside trace
// subsegments when a request segment is active.
type DocumentService struct {
	store    ports.ContentStore
	compiler *CompileService
	tracer   *observability.Tracer
	logger   *zap.Logger
}

// NewDocumentService creates a document service.
func NewDocumentService(store ports.ContentStore, compiler *CompileService, tracer *observability.Tracer, logger *zap.Logger) *DocumentService {
	return &DocumentService{store: store, compiler: compiler, tracer: tracer, logger: logger}
}

// AddElementResult reports the outcome of an element insertion.
type AddElementResult struct {
	ElementID string                   `json:"element_id"`
	Warnings  []*pkgerrors.DomainError `json:"warnings,omitempty"`
}

// AddElement compiles a simplified element request and inserts the node
// under the given parent ("root" targets the tree root). A document that
// does not exist yet is created with an empty tree.
func (s *DocumentService) AddElement(ctx context.Context, documentID, parentID string, pos builder.Position, req ElementRequest) (*AddElementResult, error) {
	b, err := s.loadBuilder(ctx, documentID)
	if err != nil {
		return nil, err
	}

	el, warnings, err := s.compiler.CompileElement(req)
	if err != nil {
		s.tracer.RecordError(ctx, err)
		return nil, err
	}

	if parentID == "" {
		parentID = builder.RootID
	}
	if err := b.Insert(parentID, el, pos); err != nil {
		s.tracer.RecordError(ctx, err)
		return nil, err
	}

	if err := s.saveTree(ctx, documentID, b.Tree()); err != nil {
		return nil, err
	}

	s.logger.Info("element added",
		zap.String("document_id", documentID),
		zap.String("element_id", el.ID.String()),
		zap.String("parent_id", parentID))
	return &AddElementResult{ElementID: el.ID.String(), Warnings: warnings}, nil
}

// GetDocument loads a document's element tree.
func (s *DocumentService) GetDocument(ctx context.Context, documentID string) (*entities.ElementTree, error) {
	tree, found, err := s.loadTree(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, pkgerrors.NewDocumentNotFoundError(documentID)
	}
	return tree, nil
}

// CloneElement copies a subtree within a document, generating fresh ids for
// every copied node, and persists the result.
func (s *DocumentService) CloneElement(ctx context.Context, documentID, elementID string, deep bool) (string, error) {
	tree, found, err := s.loadTree(ctx, documentID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", pkgerrors.NewDocumentNotFoundError(documentID)
	}

	b := builder.FromTree(tree)
	cloneID, err := b.CloneSubtree(elementID, deep)
	if err != nil {
		s.tracer.RecordError(ctx, err)
		return "", err
	}

	if err := s.saveTree(ctx, documentID, b.Tree()); err != nil {
		return "", err
	}

	s.logger.Info("element cloned",
		zap.String("document_id", documentID),
		zap.String("source_id", elementID),
		zap.String("clone_id", cloneID),
		zap.Bool("deep", deep))
	return cloneID, nil
}

// loadBuilder wraps the document's tree in a request-scoped builder,
// starting an empty tree for documents that do not exist yet.
func (s *DocumentService) loadBuilder(ctx context.Context, documentID string) (*builder.TreeBuilder, error) {
	tree, found, err := s.loadTree(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !found {
		return builder.New(), nil
	}
	return builder.FromTree(tree), nil
}

func (s *DocumentService) loadTree(ctx context.Context, documentID string) (*entities.ElementTree, bool, error) {
	var tree *entities.ElementTree
	var found bool
	err := s.tracer.Capture(ctx, "store.load", func(ctx context.Context) error {
		var loadErr error
		tree, found, loadErr = s.store.Load(ctx, documentID)
		return loadErr
	})
	if err != nil {
		return nil, false, pkgerrors.NewStoreError("load", err)
	}
	return tree, found, nil
}

func (s *DocumentService) saveTree(ctx context.Context, documentID string, tree *entities.ElementTree) error {
	err := s.tracer.Capture(ctx, "store.save", func(ctx context.Context) error {
		return s.store.Save(ctx, documentID, tree)
	})
	if err != nil {
		return pkgerrors.NewStoreError("save", err)
	}
	return nil
}
