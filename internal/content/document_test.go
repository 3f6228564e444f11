package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAcceptsBothRootSentinels(t *testing.T) {
	for _, raw := range []string{
		`{"type":"document","content":[{"type":"paragraph"}]}`,
		`{"type":"doc","content":[{"type":"paragraph"}]}`,
	} {
		doc, err := Parse(raw)
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, NodeDocument, doc.Type)
		assert.Len(t, doc.Content, 1)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		"",
		"{",
		`{"type":"paragraph","content":[]}`,
		`"just a string"`,
	} {
		_, err := Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidDocument, "raw %q", raw)
	}
}

func TestParseOrFallbackNeverNil(t *testing.T) {
	doc := ParseOrFallback("{{{")
	require.NotNil(t, doc)
	require.Len(t, doc.Content, 1)
	assert.Equal(t, NodeParagraph, doc.Content[0].Type)
	assert.Equal(t, FallbackText, doc.Content[0].Content[0].Text)
}

func TestJSONRoundTrip(t *testing.T) {
	doc := NewDocument(
		Heading(1, Text("Our services")),
		Paragraph(Text("We build "), Text("telehealth", Mark{Type: MarkBold}), Text(" platforms.")),
	)
	raw, err := doc.JSON()
	require.NoError(t, err)

	back, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}

func TestCloneIsDeep(t *testing.T) {
	caption := "before"
	doc := NewDocument(Node{Type: NodeImage, Attrs: &Attrs{Src: "a.png", Caption: &caption}})

	cl := doc.Clone()
	*cl.Content[0].Attrs.Caption = "after"
	cl.Content[0].Attrs.Src = "b.png"

	assert.Equal(t, "before", *doc.Content[0].Attrs.Caption)
	assert.Equal(t, "a.png", doc.Content[0].Attrs.Src)
}
