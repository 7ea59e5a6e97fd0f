// Package view is a minimal retained node tree that stands in for the
// visual container a player is mounted on. It carries identity, state
// classes, attributes and inline styles; it performs no layout.
package view

import (
	"strings"
	"sync"

	"github.com/samber/lo"
)

// Kind is the tag of a node.
type Kind string

// Node kinds used by players.
const (
	Element  Kind = "div"
	Controls Kind = "controls"
	Video    Kind = "video"
	Source   Kind = "source"
	Text     Kind = "#text"
)

// Node is an element of the tree.
type Node struct {
	mu sync.RWMutex

	Kind Kind
	ID   string

	classes  []string
	attrs    map[string]string
	style    map[string]string
	parent   *Node
	children []*Node
}

// NewNode returns a detached node.
func NewNode(kind Kind, id string) *Node {
	return &Node{
		Kind:  kind,
		ID:    id,
		attrs: make(map[string]string),
		style: make(map[string]string),
	}
}

// IsElement reports whether the node can hold children and classes.
func (n *Node) IsElement() bool {
	return n != nil && n.Kind != Text
}

// AddClass adds each space separated class not already present.
func (n *Node) AddClass(classes string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, c := range strings.Fields(classes) {
		if !lo.Contains(n.classes, c) {
			n.classes = append(n.classes, c)
		}
	}
}

// RemoveClass removes each space separated class.
func (n *Node) RemoveClass(classes string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.classes = lo.Without(n.classes, strings.Fields(classes)...)
}

// HasClass reports whether class is set.
func (n *Node) HasClass(class string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return lo.Contains(n.classes, class)
}

// Classes returns the classes in the order they were added.
func (n *Node) Classes() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return append([]string(nil), n.classes...)
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(name, value string) {
	n.mu.Lock()
	n.attrs[name] = value
	n.mu.Unlock()
}

// Attr returns an attribute value.
func (n *Node) Attr(name string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	v, ok := n.attrs[name]
	return v, ok
}

// SetStyle sets an inline style property.
func (n *Node) SetStyle(prop, value string) {
	n.mu.Lock()
	n.style[prop] = value
	n.mu.Unlock()
}

// Style returns an inline style property.
func (n *Node) Style(prop string) string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.style[prop]
}

// Parent returns the parent node, or nil if detached.
func (n *Node) Parent() *Node {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.parent
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return append([]*Node(nil), n.children...)
}

// FirstChild returns the first child, if any.
func (n *Node) FirstChild() *Node {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// AppendChild adds child as the last child, moving it from its previous
// parent.
func (n *Node) AppendChild(child *Node) {
	n.insert(child, -1)
}

// InsertFirst adds child as the first child, moving it from its previous
// parent.
func (n *Node) InsertFirst(child *Node) {
	n.insert(child, 0)
}

func (n *Node) insert(child *Node, at int) {
	child.Detach()

	n.mu.Lock()
	if at < 0 || at >= len(n.children) {
		n.children = append(n.children, child)
	} else {
		n.children = append(n.children[:at], append([]*Node{child}, n.children[at:]...)...)
	}
	n.mu.Unlock()

	child.mu.Lock()
	child.parent = n
	child.mu.Unlock()
}

// Detach removes the node from its parent. It returns false if the node
// had no parent.
func (n *Node) Detach() bool {
	n.mu.Lock()
	parent := n.parent
	n.parent = nil
	n.mu.Unlock()

	if parent == nil {
		return false
	}

	parent.mu.Lock()
	defer parent.mu.Unlock()
	for i, c := range parent.children {
		if c == n {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			break
		}
	}

	return true
}

// Find returns the first node in the subtree, n included, with the given
// ID.
func (n *Node) Find(id string) *Node {
	if n == nil || id == "" {
		return nil
	}
	if n.ID == id {
		return n
	}

	for _, c := range n.Children() {
		if found := c.Find(id); found != nil {
			return found
		}
	}

	return nil
}
