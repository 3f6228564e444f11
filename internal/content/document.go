package content

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Document is the root of a rich-text content tree. It is persisted as a
// UTF-8 JSON string with Type "document" and an ordered Content slice.
type Document struct {
	Type    NodeType `json:"type"`
	Content []Node   `json:"content"`
}

// FallbackText is the body of the paragraph substituted for documents that
// cannot be decoded. Public pages render it instead of failing.
const FallbackText = "This content could not be displayed."

var ErrInvalidDocument = errors.New("invalid document")

// NewDocument returns a document containing the given blocks.
func NewDocument(blocks ...Node) *Document {
	return &Document{Type: NodeDocument, Content: blocks}
}

// FallbackDocument returns the single-paragraph document used in place of
// content that failed to decode.
func FallbackDocument() *Document {
	return NewDocument(Paragraph(Text(FallbackText)))
}

// Parse decodes a stored document string, validating the root sentinel.
// The editor's serializer historically emitted both "document" and "doc";
// both are accepted and normalized to "document".
func Parse(raw string) (*Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.Type != NodeDocument && doc.Type != "doc" {
		return nil, fmt.Errorf("%w: unexpected root type %q", ErrInvalidDocument, doc.Type)
	}
	doc.Type = NodeDocument
	return &doc, nil
}

// ParseOrFallback decodes a stored document string, substituting the
// fallback paragraph when the string is not valid JSON or does not match
// the node schema. It never returns nil and never panics: a corrupt single
// post must not take down a listing or a public page.
func ParseOrFallback(raw string) *Document {
	doc, err := Parse(raw)
	if err != nil {
		return FallbackDocument()
	}
	return doc
}

// JSON serializes the document to its wire form.
func (d *Document) JSON() (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{Type: d.Type}
	if d.Content != nil {
		out.Content = make([]Node, len(d.Content))
		for i, n := range d.Content {
			out.Content[i] = n.Clone()
		}
	}
	return out
}

// --- constructors used by the editor, fixtures and tests ---

// Text returns a text node, optionally marked.
func Text(text string, marks ...Mark) Node {
	return Node{Type: NodeText, Text: text, Marks: marks}
}

// Paragraph returns a paragraph node owning the given children.
func Paragraph(children ...Node) Node {
	return Node{Type: NodeParagraph, Content: children}
}

// Heading returns a heading node of the given level.
func Heading(level int, children ...Node) Node {
	return Node{Type: NodeHeading, Attrs: &Attrs{Level: level}, Content: children}
}

// Image returns an image block with the given source.
func Image(src string) Node {
	return Node{Type: NodeImage, Attrs: &Attrs{Src: src}}
}
