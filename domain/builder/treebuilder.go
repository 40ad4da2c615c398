// Package builder assembles and mutates one document tree at a time. The
// builder is an arena over element nodes addressed by id: the scope stack
// holds ids, never node aliases, and all mutation resolves through the index,
// so there are no aliasing hazards between the stack and the tree.
package builder

import (
	"pagecompiler/domain/core/entities"
	"pagecompiler/domain/core/valueobjects"
	"pagecompiler/domain/schema"
	pkgerrors "pagecompiler/pkg/errors"
)

// RootID is the reserved, always-resolvable id of the tree root.
const RootID = "root"

// Position selects where Insert places a node in the parent's child list.
type Position struct {
	first bool
	last  bool
	index int
}

// First places the node before all existing children.
func First() Position { return Position{first: true} }

// Last places the node after all existing children.
func Last() Position { return Position{last: true} }

// At places the node at a numeric index, clamped to the valid range.
func At(index int) Position { return Position{index: index} }

// TreeBuilder is a scoped, stateful assembler over one tree. Each compilation
// request constructs its own builder; nothing is shared across requests.
type TreeBuilder struct {
	tree   *entities.ElementTree
	index  map[string]*entities.Element
	stack  []string
	lastID string
}

// New creates a builder over a fresh tree containing only the root.
func New() *TreeBuilder {
	b := &TreeBuilder{tree: entities.NewElementTree()}
	b.resetScope()
	b.Reindex()
	return b
}

// FromTree wraps a tree that arrived from outside the builder, rebuilding
// the id index so subsequent operations can resolve every node. A nil or
// rootless tree starts fresh instead of faulting mid-request.
func FromTree(tree *entities.ElementTree) *TreeBuilder {
	if tree == nil || tree.Root == nil {
		tree = entities.NewElementTree()
	}
	b := &TreeBuilder{tree: tree}
	b.resetScope()
	b.Reindex()
	return b
}

func (b *TreeBuilder) resetScope() {
	b.stack = []string{RootID}
	b.lastID = RootID
}

// Tree returns the assembled tree. The builder holds no further claim on it
// once handed to the content store.
func (b *TreeBuilder) Tree() *entities.ElementTree {
	return b.tree
}

// currentParent resolves the top of the scope stack through the index.
func (b *TreeBuilder) currentParent() *entities.Element {
	return b.index[b.stack[len(b.stack)-1]]
}

// Depth returns the current scope depth: 0 at root, k inside k nested
// containers.
func (b *TreeBuilder) Depth() int {
	return len(b.stack) - 1
}

// register indexes a subtree rooted at el.
func (b *TreeBuilder) register(el *entities.Element) {
	b.index[el.ID.String()] = el
	for _, child := range el.Children {
		b.register(child)
	}
}

// OpenContainer appends a new container node to the current parent and
// enters its scope: subsequent adds land inside it until Close.
func (b *TreeBuilder) OpenContainer(elementType string) string {
	el := entities.NewElement(elementType)
	id := b.attach(el)
	b.stack = append(b.stack, id)
	return id
}

// AddLeaf appends a new childless node to the current parent without
// changing scope.
func (b *TreeBuilder) AddLeaf(elementType string) string {
	return b.attach(entities.NewElement(elementType))
}

// Attach appends an externally built node (properties already compiled) to
// the current parent without changing scope.
func (b *TreeBuilder) Attach(el *entities.Element) string {
	return b.attach(el)
}

// AttachContainer appends an externally built node and enters its scope.
func (b *TreeBuilder) AttachContainer(el *entities.Element) string {
	id := b.attach(el)
	b.stack = append(b.stack, id)
	return id
}

func (b *TreeBuilder) attach(el *entities.Element) string {
	b.currentParent().AppendChild(el)
	b.register(el)
	b.lastID = el.ID.String()
	return el.ID.String()
}

// Close pops one level back to the previous parent. Popping past the root is
// a no-op.
func (b *TreeBuilder) Close() {
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

// Last returns the most recently added node: the current container if a
// scope was just opened, otherwise the last added child.
func (b *TreeBuilder) Last() *entities.Element {
	return b.index[b.lastID]
}

// SetPropertiesOnLast merges one compiled property into the most recently
// added node.
func (b *TreeBuilder) SetPropertiesOnLast(path []schema.Segment, values map[string]valueobjects.CanonicalValue) {
	if last := b.Last(); last != nil {
		last.SetPropertyValues(path, values)
	}
}

// CloneSubtree copies the node with the given id, appending the copy to the
// clone source's parent. Every copied node gets a freshly generated id, so
// clones never collide with the source tree or prior clones. A shallow clone
// copies the node with an emptied child list.
func (b *TreeBuilder) CloneSubtree(id string, deep bool) (string, error) {
	source, ok := b.index[id]
	if !ok {
		return "", pkgerrors.NewParentNotFoundError(id)
	}
	clone := source.Clone(deep)

	parent := b.findParent(id)
	if parent == nil {
		parent = b.currentParent()
	}
	parent.AppendChild(clone)
	b.register(clone)
	b.lastID = clone.ID.String()
	return clone.ID.String(), nil
}

// findParent locates the parent of a node by depth-first search. The root
// has no parent.
func (b *TreeBuilder) findParent(id string) *entities.Element {
	var walk func(node *entities.Element) *entities.Element
	walk = func(node *entities.Element) *entities.Element {
		for _, child := range node.Children {
			if child.ID.String() == id {
				return node
			}
			if found := walk(child); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(b.tree.Root)
}

// Insert places a node under the parent with the given id ("root" targets
// the tree root) at the requested position. A missing parent id fails the
// operation explicitly rather than accumulating.
func (b *TreeBuilder) Insert(parentID string, node *entities.Element, pos Position) error {
	parent, ok := b.index[parentID]
	if !ok {
		return pkgerrors.NewParentNotFoundError(parentID)
	}

	idx := pos.index
	switch {
	case pos.first:
		idx = 0
	case pos.last:
		idx = len(parent.Children)
	default:
		if idx < 0 {
			idx = 0
		}
		if idx > len(parent.Children) {
			idx = len(parent.Children)
		}
	}

	parent.Children = append(parent.Children, nil)
	copy(parent.Children[idx+1:], parent.Children[idx:])
	parent.Children[idx] = node

	b.register(node)
	b.lastID = node.ID.String()
	return nil
}

// Import replaces the builder's tree with one loaded from storage and
// rebuilds the index so builder operations can address its nodes.
func (b *TreeBuilder) Import(tree *entities.ElementTree) {
	b.tree = tree
	b.resetScope()
	b.Reindex()
}

// Reindex rebuilds the id index by a full depth-first walk.
func (b *TreeBuilder) Reindex() {
	b.index = make(map[string]*entities.Element)
	b.index[RootID] = b.tree.Root
	b.register(b.tree.Root)
}

// Find resolves a node by id.
func (b *TreeBuilder) Find(id string) (*entities.Element, bool) {
	el, ok := b.index[id]
	return el, ok
}
