// Package content implements the rich-text document model used for blog
// posts and service pages: the block-tree node vocabulary, analysis and
// normalization of trees, and the two renderers (a stateless HTML string
// renderer and an interactive editor session) that consume them.
package content

// NodeType identifies the kind of a node in a document tree.
type NodeType string

const (
	NodeDocument       NodeType = "document"
	NodeParagraph      NodeType = "paragraph"
	NodeHeading        NodeType = "heading"
	NodeBulletList     NodeType = "bulletList"
	NodeOrderedList    NodeType = "orderedList"
	NodeListItem       NodeType = "listItem"
	NodeBlockquote     NodeType = "blockquote"
	NodeCodeBlock      NodeType = "codeBlock"
	NodeImage          NodeType = "image"
	NodeTable          NodeType = "table"
	NodeTableRow       NodeType = "tableRow"
	NodeTableCell      NodeType = "tableCell"
	NodeTableHeader    NodeType = "tableHeader"
	NodeHorizontalRule NodeType = "horizontalRule"
	NodeHardBreak      NodeType = "hardBreak"
	NodeText           NodeType = "text"
)

// MarkType identifies an inline mark applied to a text node.
type MarkType string

const (
	MarkBold       MarkType = "bold"
	MarkItalic     MarkType = "italic"
	MarkUnderline  MarkType = "underline"
	MarkStrike     MarkType = "strike"
	MarkCode       MarkType = "code"
	MarkLink       MarkType = "link"
	MarkHighlight  MarkType = "highlight"
	MarkTextStyle  MarkType = "textStyle"
	MarkFontFamily MarkType = "fontFamily"
)

// Alignment values for image nodes.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Node is one node of a document tree. The Type field discriminates the
// kind; the remaining fields are populated depending on it (the wire
// contract with the editor). Ownership of Content is exclusive and
// recursive — a tree, never a graph.
type Node struct {
	Type    NodeType `json:"type"`
	Attrs   *Attrs   `json:"attrs,omitempty"`
	Content []Node   `json:"content,omitempty"`
	Text    string   `json:"text,omitempty"`
	Marks   []Mark   `json:"marks,omitempty"`
}

// Attrs carries the per-kind node attributes. Pointer fields distinguish
// "absent" from "explicitly empty", which matters for image normalization.
type Attrs struct {
	// heading
	Level int `json:"level,omitempty"`
	// codeBlock
	Language string `json:"language,omitempty"`
	// image
	Src       string  `json:"src,omitempty"`
	Alt       string  `json:"alt,omitempty"`
	Title     string  `json:"title,omitempty"`
	Caption   *string `json:"caption,omitempty"`
	Width     *string `json:"width,omitempty"` // pixel string, nil = auto
	Alignment string  `json:"alignment,omitempty"`
	// orderedList
	Start int `json:"start,omitempty"`
}

// Mark is an inline formatting annotation on a text node. Marks are
// idempotent and composable; their order in the slice is not significant.
type Mark struct {
	Type  MarkType   `json:"type"`
	Attrs *MarkAttrs `json:"attrs,omitempty"`
}

// MarkAttrs carries mark attributes (link target, colors, font family).
type MarkAttrs struct {
	Href       string `json:"href,omitempty"`
	Color      string `json:"color,omitempty"`
	FontFamily string `json:"fontFamily,omitempty"`
}

// blockTypes are the node kinds treated as block-level separators when
// extracting plain text.
var blockTypes = map[NodeType]bool{
	NodeParagraph:   true,
	NodeHeading:     true,
	NodeBlockquote:  true,
	NodeCodeBlock:   true,
	NodeBulletList:  true,
	NodeOrderedList: true,
	NodeListItem:    true,
}

// IsBlock reports whether the node kind separates text blocks.
func (n *Node) IsBlock() bool {
	return blockTypes[n.Type]
}

// Clone returns a deep copy of the node.
func (n Node) Clone() Node {
	out := n
	if n.Attrs != nil {
		attrs := *n.Attrs
		if n.Attrs.Caption != nil {
			c := *n.Attrs.Caption
			attrs.Caption = &c
		}
		if n.Attrs.Width != nil {
			w := *n.Attrs.Width
			attrs.Width = &w
		}
		out.Attrs = &attrs
	}
	if n.Marks != nil {
		out.Marks = make([]Mark, len(n.Marks))
		for i, m := range n.Marks {
			out.Marks[i] = m
			if m.Attrs != nil {
				ma := *m.Attrs
				out.Marks[i].Attrs = &ma
			}
		}
	}
	if n.Content != nil {
		out.Content = make([]Node, len(n.Content))
		for i, child := range n.Content {
			out.Content[i] = child.Clone()
		}
	}
	return out
}

// HasMark reports whether a mark of the given type is applied to the node.
func (n *Node) HasMark(t MarkType) bool {
	for _, m := range n.Marks {
		if m.Type == t {
			return true
		}
	}
	return false
}
