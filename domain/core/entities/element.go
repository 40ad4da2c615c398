// Package entities holds the document-model aggregates: element nodes, their
// canonical property trees, and the element-tree wrapper exchanged with the
// content store.
package entities

import (
	"encoding/json"

	"pagecompiler/domain/core/valueobjects"
	"pagecompiler/domain/schema"
)

// PropertyNode is one node of an element's canonical property tree. A node
// is a branch (named children), a repeater collection (ordered items), or a
// leaf (canonical values keyed by breakpoint/state, "" for plain values).
type PropertyNode struct {
	children map[string]*PropertyNode
	items    []*PropertyNode
	values   map[string]valueobjects.CanonicalValue
}

// NewPropertyNode creates an empty node.
func NewPropertyNode() *PropertyNode {
	return &PropertyNode{}
}

func (n *PropertyNode) child(name string) *PropertyNode {
	if n.children == nil {
		n.children = make(map[string]*PropertyNode)
	}
	c, ok := n.children[name]
	if !ok {
		c = NewPropertyNode()
		n.children[name] = c
	}
	return c
}

// Child returns the named child, if present.
func (n *PropertyNode) Child(name string) (*PropertyNode, bool) {
	c, ok := n.children[name]
	return c, ok
}

// Items returns the repeater items of a collection node.
func (n *PropertyNode) Items() []*PropertyNode {
	return n.items
}

// Value returns the canonical value stored under a breakpoint/state key
// ("" for a plain, non-responsive value).
func (n *PropertyNode) Value(key string) (valueobjects.CanonicalValue, bool) {
	v, ok := n.values[key]
	return v, ok
}

// IsEmpty reports whether the node holds nothing at all.
func (n *PropertyNode) IsEmpty() bool {
	return len(n.children) == 0 && len(n.items) == 0 && len(n.values) == 0
}

// setValues merges canonical values into the leaf's key map, replacing any
// existing value per key. Values are immutable, so replacement is safe.
func (n *PropertyNode) setValues(values map[string]valueobjects.CanonicalValue) {
	if n.values == nil {
		n.values = make(map[string]valueobjects.CanonicalValue, len(values))
	}
	for k, v := range values {
		n.values[k] = v
	}
}

// findItem locates a repeater item whose discriminator leaf holds the given
// plain value.
func (n *PropertyNode) findItem(discKey, discValue string) *PropertyNode {
	for _, item := range n.items {
		disc, ok := item.Child(discKey)
		if !ok {
			continue
		}
		if v, ok := disc.Value(""); ok && v.Text() == discValue {
			return item
		}
	}
	return nil
}

// SetValues walks the canonical path and merges the given breakpoint/state
// keyed values at its end. Repeater segments append a fresh item, or with a
// discriminator locate-or-create the matching item so re-setting the same
// simplified property replaces instead of duplicating.
func (n *PropertyNode) SetValues(path []schema.Segment, values map[string]valueobjects.CanonicalValue) {
	node := n
	for i, seg := range path {
		last := i == len(path)-1

		if seg.Repeater {
			coll := node.child(seg.Field)
			var item *PropertyNode
			if seg.DiscKey != "" {
				item = coll.findItem(seg.DiscKey, seg.DiscValue)
				if item == nil {
					item = NewPropertyNode()
					item.child(seg.DiscKey).setValues(map[string]valueobjects.CanonicalValue{
						"": valueobjects.NewScalar(seg.DiscValue),
					})
					coll.items = append(coll.items, item)
				}
			} else {
				item = NewPropertyNode()
				coll.items = append(coll.items, item)
			}
			if last {
				item.setValues(values)
				return
			}
			node = item
			continue
		}

		if last {
			node.child(seg.Field).setValues(values)
			return
		}
		node = node.child(seg.Field)
	}
}

// Wire lowers the property tree into its JSON-ready shape. A leaf with a
// single plain value flattens to the bare value; keyed leaves stay objects.
func (n *PropertyNode) Wire() interface{} {
	if len(n.items) > 0 {
		items := make([]interface{}, len(n.items))
		for i, item := range n.items {
			items[i] = item.Wire()
		}
		return items
	}
	if len(n.children) > 0 {
		m := make(map[string]interface{}, len(n.children))
		for name, c := range n.children {
			m[name] = c.Wire()
		}
		return m
	}
	if plain, ok := n.values[""]; ok && len(n.values) == 1 {
		return plain.ToWire()
	}
	m := make(map[string]interface{}, len(n.values))
	for key, v := range n.values {
		m[key] = v.ToWire()
	}
	return m
}

// clone deep-copies the node.
func (n *PropertyNode) clone() *PropertyNode {
	out := NewPropertyNode()
	if n.children != nil {
		out.children = make(map[string]*PropertyNode, len(n.children))
		for name, c := range n.children {
			out.children[name] = c.clone()
		}
	}
	if n.items != nil {
		out.items = make([]*PropertyNode, len(n.items))
		for i, item := range n.items {
			out.items[i] = item.clone()
		}
	}
	if n.values != nil {
		out.values = make(map[string]valueobjects.CanonicalValue, len(n.values))
		for k, v := range n.values {
			out.values[k] = v
		}
	}
	return out
}

// Element is one visual element instance: an id unique within its tree, a
// canonical type tag, a property tree split into content and design regions,
// and exclusively owned children.
type Element struct {
	ID         valueobjects.ElementID
	Type       string
	Properties *PropertyNode
	Children   []*Element

	// raw carries properties of trees imported from storage verbatim, since
	// wire values cannot be raised back to canonical form losslessly.
	raw map[string]interface{}
}

// NewElement creates an element with a fresh random id and no children.
func NewElement(elementType string) *Element {
	return &Element{
		ID:         valueobjects.NewElementID(),
		Type:       elementType,
		Properties: NewPropertyNode(),
	}
}

// AppendChild appends a child, transferring ownership.
func (e *Element) AppendChild(child *Element) {
	e.Children = append(e.Children, child)
}

// SetPropertyValues places breakpoint/state keyed canonical values at a
// resolved path inside the element's property tree.
func (e *Element) SetPropertyValues(path []schema.Segment, values map[string]valueobjects.CanonicalValue) {
	if e.Properties == nil {
		e.Properties = NewPropertyNode()
	}
	e.Properties.SetValues(path, values)
}

// PropertiesWire returns the JSON-ready property object: compiled canonical
// properties when present, otherwise whatever the imported tree carried.
func (e *Element) PropertiesWire() map[string]interface{} {
	if e.Properties != nil && !e.Properties.IsEmpty() {
		if m, ok := e.Properties.Wire().(map[string]interface{}); ok {
			return m
		}
	}
	return e.raw
}

// Clone produces a structural copy with a freshly generated id for every
// copied node. A deep clone copies the whole subtree; a shallow clone copies
// the node with an emptied child list.
func (e *Element) Clone(deep bool) *Element {
	out := &Element{
		ID:   valueobjects.NewElementID(),
		Type: e.Type,
	}
	if e.Properties != nil {
		out.Properties = e.Properties.clone()
	}
	if e.raw != nil {
		out.raw = deepCopyMap(e.raw)
	}
	if deep {
		out.Children = make([]*Element, 0, len(e.Children))
		for _, child := range e.Children {
			out.Children = append(out.Children, child.Clone(true))
		}
	}
	return out
}

func deepCopyMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return deepCopyMap(t)
	case []interface{}:
		items := make([]interface{}, len(t))
		for i, item := range t {
			items[i] = deepCopyValue(item)
		}
		return items
	default:
		return t
	}
}

type wireData struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

type wireNode struct {
	ID       string     `json:"id"`
	Data     wireData   `json:"data"`
	Children []*Element `json:"children,omitempty"`
}

// MarshalJSON renders the document-tree wire shape:
// {id, data: {type, properties}, children}.
func (e *Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireNode{
		ID: e.ID.String(),
		Data: wireData{
			Type:       e.Type,
			Properties: e.PropertiesWire(),
		},
		Children: e.Children,
	})
}

// UnmarshalJSON decodes the wire shape, keeping properties in their raw form.
func (e *Element) UnmarshalJSON(data []byte) error {
	var node wireNode
	if err := json.Unmarshal(data, &node); err != nil {
		return err
	}
	id, err := valueobjects.NewElementIDFromString(node.ID)
	if err != nil {
		id = valueobjects.NewElementID()
	}
	e.ID = id
	e.Type = node.Data.Type
	e.raw = node.Data.Properties
	e.Children = node.Children
	e.Properties = NewPropertyNode()
	return nil
}

// ElementTree is the distinguished wrapper exchanged with the content store.
type ElementTree struct {
	Root *Element
}

// NewElementTree creates a tree with the reserved root node.
func NewElementTree() *ElementTree {
	rootID, _ := valueobjects.NewElementIDFromString("root")
	return &ElementTree{
		Root: &Element{
			ID:         rootID,
			Type:       "root",
			Properties: NewPropertyNode(),
		},
	}
}

type wireTree struct {
	Root *Element `json:"root"`
}

// MarshalJSON renders {root: Node}.
func (t *ElementTree) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireTree{Root: t.Root})
}

// UnmarshalJSON decodes {root: Node}. A missing or null root normalizes to
// an empty root node so stored documents can never yield a rootless tree.
func (t *ElementTree) UnmarshalJSON(data []byte) error {
	var wire wireTree
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Root == nil {
		wire.Root = NewElementTree().Root
	}
	t.Root = wire.Root
	return nil
}
