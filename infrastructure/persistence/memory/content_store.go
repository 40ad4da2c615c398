// Package memory provides an in-process ContentStore used by tests and local
// development. Trees are stored as their wire-shape JSON so loads never alias
// saved nodes.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"pagecompiler/domain/core/entities"
	pkgerrors "pagecompiler/pkg/errors"
)

// ContentStore keeps serialized document trees in a map guarded by a RWMutex.
type ContentStore struct {
	mu        sync.RWMutex
	documents map[string][]byte
}

// NewContentStore creates an empty in-memory store.
func NewContentStore() *ContentStore {
	return &ContentStore{documents: make(map[string][]byte)}
}

// Load fetches a document's tree. A missing document is found=false, not an
// error.
func (s *ContentStore) Load(_ context.Context, documentID string) (*entities.ElementTree, bool, error) {
	s.mu.RLock()
	data, ok := s.documents[documentID]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	var tree entities.ElementTree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, false, pkgerrors.NewStoreError("load", err)
	}
	return &tree, true, nil
}

// Save persists a document's tree, replacing any prior version.
func (s *ContentStore) Save(_ context.Context, documentID string, tree *entities.ElementTree) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return pkgerrors.NewStoreError("save", err)
	}

	s.mu.Lock()
	s.documents[documentID] = data
	s.mu.Unlock()
	return nil
}

// Len reports how many documents are stored.
func (s *ContentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}
