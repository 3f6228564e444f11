package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestRenderMarkNestingOrder(t *testing.T) {
	doc := NewDocument(Paragraph(
		Text("text", Mark{Type: MarkItalic}, Mark{Type: MarkBold}),
	))
	// Bold wraps outermost regardless of mark order in the slice.
	assert.Equal(t, "<p><strong><em>text</em></strong></p>", RenderHTML(doc))
}

func TestRenderAllMarks(t *testing.T) {
	doc := NewDocument(Paragraph(
		Text("x",
			Mark{Type: MarkFontFamily, Attrs: &MarkAttrs{FontFamily: "Georgia"}},
			Mark{Type: MarkTextStyle, Attrs: &MarkAttrs{Color: "#336699"}},
			Mark{Type: MarkHighlight, Attrs: &MarkAttrs{Color: "#ffff00"}},
			Mark{Type: MarkLink, Attrs: &MarkAttrs{Href: "https://example.com"}},
			Mark{Type: MarkCode},
			Mark{Type: MarkStrike},
			Mark{Type: MarkUnderline},
			Mark{Type: MarkItalic},
			Mark{Type: MarkBold},
		),
	))
	want := `<p><strong><em><u><s><code>` +
		`<a href="https://example.com" target="_blank" rel="noopener noreferrer">` +
		`<mark style="background-color: #ffff00">` +
		`<span style="color: #336699">` +
		`<span style="font-family: Georgia">` +
		`x` +
		`</span></span></mark></a></code></s></u></em></strong></p>`
	assert.Equal(t, want, RenderHTML(doc))
}

func TestRenderHeadingLevels(t *testing.T) {
	assert.Equal(t, "<h2>About us</h2>", RenderHTML(NewDocument(Heading(2, Text("About us")))))
	// Out-of-range levels clamp into 1..6.
	assert.Equal(t, "<h6>deep</h6>", RenderHTML(NewDocument(Heading(9, Text("deep")))))
	assert.Equal(t, "<h1>flat</h1>", RenderHTML(NewDocument(Heading(-1, Text("flat")))))
	// Missing attrs default to h1.
	assert.Equal(t, "<h1>bare</h1>", RenderHTML(NewDocument(Node{Type: NodeHeading, Content: []Node{Text("bare")}})))
}

func TestRenderImageFigure(t *testing.T) {
	img := Node{Type: NodeImage, Attrs: &Attrs{
		Src:       "/media/42",
		Alt:       "ward",
		Caption:   strPtr("Our new ward"),
		Width:     strPtr("480"),
		Alignment: AlignRight,
	}}
	got := RenderHTML(NewDocument(img))
	assert.Equal(t,
		`<figure class="image image-right">`+
			`<img src="/media/42" alt="ward" style="width: 480px">`+
			`<figcaption>Our new ward</figcaption></figure>`,
		got)
}

func TestRenderImageDefaults(t *testing.T) {
	got := RenderHTML(NewDocument(Image("a.png")))
	assert.Equal(t, `<figure class="image image-center"><img src="a.png"></figure>`, got)

	// No src, nothing to show.
	assert.Equal(t, "", RenderHTML(NewDocument(Node{Type: NodeImage})))
}

func TestRenderListsAndTable(t *testing.T) {
	doc := NewDocument(
		Node{Type: NodeOrderedList, Attrs: &Attrs{Start: 3}, Content: []Node{
			{Type: NodeListItem, Content: []Node{Paragraph(Text("third"))}},
		}},
		Node{Type: NodeTable, Content: []Node{
			{Type: NodeTableRow, Content: []Node{
				{Type: NodeTableHeader, Content: []Node{Paragraph(Text("h"))}},
				{Type: NodeTableCell, Content: []Node{Paragraph(Text("c"))}},
			}},
		}},
	)
	want := `<ol start="3"><li><p>third</p></li></ol>` +
		`<table><tbody><tr><th><p>h</p></th><td><p>c</p></td></tr></tbody></table>`
	assert.Equal(t, want, RenderHTML(doc))
}

func TestRenderCodeBlock(t *testing.T) {
	doc := NewDocument(Node{
		Type:    NodeCodeBlock,
		Attrs:   &Attrs{Language: "go"},
		Content: []Node{Text("if x < 1 {}")},
	})
	assert.Equal(t, `<pre><code class="language-go">if x &lt; 1 {}</code></pre>`, RenderHTML(doc))
}

func TestRenderEscapesText(t *testing.T) {
	doc := NewDocument(Paragraph(Text(`<script>alert("x")</script>`)))
	got := RenderHTML(doc)
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
}

func TestRenderUnknownNodeDegrades(t *testing.T) {
	doc := NewDocument(Node{
		Type:    NodeType("callout"),
		Content: []Node{Paragraph(Text("still visible"))},
	})
	assert.Equal(t, "<p>still visible</p>", RenderHTML(doc))

	// Unknown leaf with no children renders nothing, and never panics.
	assert.Equal(t, "", RenderHTML(NewDocument(Node{Type: NodeType("widget")})))
}

func TestRenderHTMLStringFallback(t *testing.T) {
	for _, raw := range []string{
		"not json at all",
		`{"type":"banner","content":[]}`,
		`[1,2,3]`,
		"",
	} {
		got := RenderHTMLString(raw)
		assert.Equal(t, "<p>"+FallbackText+"</p>", got, "raw %q", raw)
	}
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	doc := NewDocument(Heading(2, Text("title")), Paragraph(Text("body")))
	before, _ := doc.JSON()
	_ = RenderHTML(doc)
	after, _ := doc.JSON()
	assert.Equal(t, before, after)
}
