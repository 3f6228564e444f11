package content

import (
	"fmt"
	"html"
	"strings"
)

// The two renderers (this string renderer and the editor view) consume the
// same rule table so they cannot silently diverge on tags or nesting.

type renderRule struct {
	open  func(n *Node) string
	close func(n *Node) string
	void  bool // leaf tag, no children rendered
}

func staticRule(openTag, closeTag string) renderRule {
	return renderRule{
		open:  func(*Node) string { return openTag },
		close: func(*Node) string { return closeTag },
	}
}

var blockRules = map[NodeType]renderRule{
	NodeParagraph:  staticRule("<p>", "</p>"),
	NodeBulletList: staticRule("<ul>", "</ul>"),
	NodeListItem:   staticRule("<li>", "</li>"),
	NodeBlockquote: staticRule("<blockquote>", "</blockquote>"),
	NodeTable:      staticRule("<table><tbody>", "</tbody></table>"),
	NodeTableRow:   staticRule("<tr>", "</tr>"),
	NodeTableCell:  staticRule("<td>", "</td>"),
	NodeTableHeader: staticRule("<th>", "</th>"),

	NodeHeading: {
		open: func(n *Node) string {
			return fmt.Sprintf("<h%d>", headingLevel(n))
		},
		close: func(n *Node) string {
			return fmt.Sprintf("</h%d>", headingLevel(n))
		},
	},
	NodeOrderedList: {
		open: func(n *Node) string {
			if n.Attrs != nil && n.Attrs.Start > 1 {
				return fmt.Sprintf(`<ol start="%d">`, n.Attrs.Start)
			}
			return "<ol>"
		},
		close: func(*Node) string { return "</ol>" },
	},
	NodeCodeBlock: {
		open: func(n *Node) string {
			if n.Attrs != nil && n.Attrs.Language != "" {
				return fmt.Sprintf(`<pre><code class="language-%s">`, html.EscapeString(n.Attrs.Language))
			}
			return "<pre><code>"
		},
		close: func(*Node) string { return "</code></pre>" },
	},
	NodeHorizontalRule: {
		open: func(*Node) string { return "<hr>" },
		void: true,
	},
	NodeHardBreak: {
		open: func(*Node) string { return "<br>" },
		void: true,
	},
	NodeImage: {
		open: renderImage,
		void: true,
	},
}

// markOrder fixes the nesting of mark tags, outermost first: bold+italic
// always renders <strong><em>text</em></strong>.
var markOrder = []MarkType{
	MarkBold, MarkItalic, MarkUnderline, MarkStrike, MarkCode,
	MarkLink, MarkHighlight, MarkTextStyle, MarkFontFamily,
}

// RenderHTML renders a document tree to an HTML string. It is a pure
// function: no editor instance, no mutation of the input, safe during
// server-side page generation and Open Graph image layout. Unknown node
// kinds degrade to their children rather than failing.
func RenderHTML(d *Document) string {
	if d == nil {
		return ""
	}
	var sb strings.Builder
	for i := range d.Content {
		renderNode(&sb, &d.Content[i])
	}
	return sb.String()
}

// RenderHTMLString decodes a stored document string and renders it,
// substituting the fallback paragraph when decoding fails. It never
// panics — a corrupt post must not 500 a public page.
func RenderHTMLString(raw string) string {
	return RenderHTML(ParseOrFallback(raw))
}

func renderNode(sb *strings.Builder, n *Node) {
	if n.Type == NodeText {
		renderText(sb, n)
		return
	}

	rule, ok := blockRules[n.Type]
	if !ok {
		// Forward-compatible: recurse into whatever children exist.
		for i := range n.Content {
			renderNode(sb, &n.Content[i])
		}
		return
	}

	sb.WriteString(rule.open(n))
	if rule.void {
		return
	}
	for i := range n.Content {
		renderNode(sb, &n.Content[i])
	}
	sb.WriteString(rule.close(n))
}

func renderText(sb *strings.Builder, n *Node) {
	var openTags, closeTags []string
	for _, mt := range markOrder {
		mark, ok := findMark(n.Marks, mt)
		if !ok {
			continue
		}
		open, closing := markTags(mark)
		if open == "" {
			continue
		}
		openTags = append(openTags, open)
		closeTags = append(closeTags, closing)
	}

	for _, t := range openTags {
		sb.WriteString(t)
	}
	sb.WriteString(html.EscapeString(n.Text))
	for i := len(closeTags) - 1; i >= 0; i-- {
		sb.WriteString(closeTags[i])
	}
}

func findMark(marks []Mark, t MarkType) (Mark, bool) {
	for _, m := range marks {
		if m.Type == t {
			return m, true
		}
	}
	return Mark{}, false
}

func markTags(m Mark) (open, closing string) {
	switch m.Type {
	case MarkBold:
		return "<strong>", "</strong>"
	case MarkItalic:
		return "<em>", "</em>"
	case MarkUnderline:
		return "<u>", "</u>"
	case MarkStrike:
		return "<s>", "</s>"
	case MarkCode:
		return "<code>", "</code>"
	case MarkLink:
		href := ""
		if m.Attrs != nil {
			href = m.Attrs.Href
		}
		return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer">`, html.EscapeString(href)), "</a>"
	case MarkHighlight:
		if m.Attrs != nil && m.Attrs.Color != "" {
			return fmt.Sprintf(`<mark style="background-color: %s">`, html.EscapeString(m.Attrs.Color)), "</mark>"
		}
		return "<mark>", "</mark>"
	case MarkTextStyle:
		if m.Attrs == nil || m.Attrs.Color == "" {
			return "", ""
		}
		return fmt.Sprintf(`<span style="color: %s">`, html.EscapeString(m.Attrs.Color)), "</span>"
	case MarkFontFamily:
		if m.Attrs == nil || m.Attrs.FontFamily == "" {
			return "", ""
		}
		return fmt.Sprintf(`<span style="font-family: %s">`, html.EscapeString(m.Attrs.FontFamily)), "</span>"
	}
	return "", ""
}

func renderImage(n *Node) string {
	attrs := n.Attrs
	if attrs == nil || attrs.Src == "" {
		return ""
	}

	alignment := attrs.Alignment
	switch alignment {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		alignment = AlignCenter
	}

	var img strings.Builder
	img.WriteString(`<img src="`)
	img.WriteString(html.EscapeString(attrs.Src))
	img.WriteString(`"`)
	if attrs.Alt != "" {
		img.WriteString(fmt.Sprintf(` alt="%s"`, html.EscapeString(attrs.Alt)))
	}
	if attrs.Title != "" {
		img.WriteString(fmt.Sprintf(` title="%s"`, html.EscapeString(attrs.Title)))
	}
	if attrs.Width != nil && *attrs.Width != "" {
		img.WriteString(fmt.Sprintf(` style="width: %s"`, html.EscapeString(cssWidth(*attrs.Width))))
	}
	img.WriteString(">")

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<figure class="image image-%s">`, alignment))
	sb.WriteString(img.String())
	if attrs.Caption != nil && *attrs.Caption != "" {
		sb.WriteString("<figcaption>")
		sb.WriteString(html.EscapeString(*attrs.Caption))
		sb.WriteString("</figcaption>")
	}
	sb.WriteString("</figure>")
	return sb.String()
}

// cssWidth accepts widths stored either as a bare pixel count ("480") or a
// full CSS length ("480px", "75%").
func cssWidth(w string) string {
	if strings.HasSuffix(w, "px") || strings.HasSuffix(w, "%") {
		return w
	}
	return w + "px"
}

func headingLevel(n *Node) int {
	level := 1
	if n.Attrs != nil && n.Attrs.Level != 0 {
		level = n.Attrs.Level
	}
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return level
}
