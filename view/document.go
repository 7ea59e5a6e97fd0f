package view

// Document is the root of a node tree.
type Document struct {
	Body *Node
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{Body: NewNode(Element, "")}
}

// FindByID returns the node with the given ID, or nil.
func (d *Document) FindByID(id string) *Node {
	if d == nil {
		return nil
	}

	return d.Body.Find(id)
}
