package dom

// Document is a complete HTML page: a root element preceded by the
// <!DOCTYPE html> annotation when rendered. Wrapping the root in a
// Document is what distinguishes a servable page from a fragment.
type Document struct {
	Root *Element
}

// NewDocument wraps the root element in a Document.
func NewDocument(root *Element) *Document {
	return &Document{Root: root}
}
