package content

// Normalize returns a copy of the document in which every image node
// carries explicit caption, alignment and width attributes. The editor's
// own serialization and the HTML round trip are two different paths that
// can silently drop custom image attributes, so this transform runs before
// every persistence. The input is never mutated.
func Normalize(d *Document) *Document {
	if d == nil {
		return NewDocument()
	}
	out := d.Clone()
	out.Type = NodeDocument
	for i := range out.Content {
		normalizeNode(&out.Content[i])
	}
	return out
}

func normalizeNode(n *Node) {
	if n.Type == NodeImage {
		if n.Attrs == nil {
			n.Attrs = &Attrs{}
		}
		if n.Attrs.Caption == nil {
			empty := ""
			n.Attrs.Caption = &empty
		}
		switch n.Attrs.Alignment {
		case AlignLeft, AlignCenter, AlignRight:
		default:
			n.Attrs.Alignment = AlignCenter
		}
		// Width stays nil when absent: nil means auto.
	}
	for i := range n.Content {
		normalizeNode(&n.Content[i])
	}
}
