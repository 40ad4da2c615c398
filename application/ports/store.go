// Package ports declares the interfaces the application layer consumes.
// Implementations live in infrastructure.
package ports

import (
	"context"

	"pagecompiler/domain/core/entities"
)

// ContentStore is the external persistence collaborator. The compiler never
// accesses storage directly; it reads and writes whole element trees through
// this interface and holds no reference to a tree after Save.
type ContentStore interface {
	// Load fetches a document's element tree. found is false when the
	// document does not exist; that is not an error.
	Load(ctx context.Context, documentID string) (tree *entities.ElementTree, found bool, err error)

	// Save persists a document's element tree, replacing any prior version.
	Save(ctx context.Context, documentID string, tree *entities.ElementTree) error
}
