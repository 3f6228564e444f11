package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeImageDefaults(t *testing.T) {
	doc, err := Parse(`{"type":"document","content":[{"type":"image","attrs":{"src":"a.png"}}]}`)
	require.NoError(t, err)

	got := Normalize(doc)
	img := got.Content[0]
	require.NotNil(t, img.Attrs)
	assert.Equal(t, "a.png", img.Attrs.Src)
	require.NotNil(t, img.Attrs.Caption, "caption must be explicitly present")
	assert.Equal(t, "", *img.Attrs.Caption)
	assert.Equal(t, AlignCenter, img.Attrs.Alignment)
	assert.Nil(t, img.Attrs.Width, "nil width means auto")
}

func TestNormalizeImageWithoutAttrs(t *testing.T) {
	// Never an exception, even for an image with no attrs object at all.
	got := Normalize(NewDocument(Node{Type: NodeImage}))
	img := got.Content[0]
	require.NotNil(t, img.Attrs)
	require.NotNil(t, img.Attrs.Caption)
	assert.Equal(t, AlignCenter, img.Attrs.Alignment)
}

func TestNormalizeKeepsExistingImageAttrs(t *testing.T) {
	img := Node{Type: NodeImage, Attrs: &Attrs{
		Src:       "b.png",
		Caption:   strPtr("annual checkup"),
		Width:     strPtr("320"),
		Alignment: AlignLeft,
	}}
	got := Normalize(NewDocument(img)).Content[0]
	assert.Equal(t, "annual checkup", *got.Attrs.Caption)
	assert.Equal(t, "320", *got.Attrs.Width)
	assert.Equal(t, AlignLeft, got.Attrs.Alignment)
}

func TestNormalizeRejectsBogusAlignment(t *testing.T) {
	img := Node{Type: NodeImage, Attrs: &Attrs{Src: "c.png", Alignment: "justify"}}
	got := Normalize(NewDocument(img)).Content[0]
	assert.Equal(t, AlignCenter, got.Attrs.Alignment)
}

func TestNormalizeReachesNestedImages(t *testing.T) {
	doc := NewDocument(Node{Type: NodeTable, Content: []Node{
		{Type: NodeTableRow, Content: []Node{
			{Type: NodeTableCell, Content: []Node{Image("nested.png")}},
		}},
	}})
	got := Normalize(doc)
	img := got.Content[0].Content[0].Content[0].Content[0]
	require.NotNil(t, img.Attrs.Caption)
	assert.Equal(t, AlignCenter, img.Attrs.Alignment)
}

func TestNormalizeIsPure(t *testing.T) {
	doc := NewDocument(Image("a.png"))
	before, _ := doc.JSON()
	_ = Normalize(doc)
	after, _ := doc.JSON()
	assert.Equal(t, before, after, "input tree must not be mutated")
}

func TestNormalizeSurvivesSaveReloadRoundTrip(t *testing.T) {
	img := Node{Type: NodeImage, Attrs: &Attrs{Src: "a.png"}}
	normalized := Normalize(NewDocument(img))

	raw, err := normalized.JSON()
	require.NoError(t, err)
	reloaded, err := Parse(raw)
	require.NoError(t, err)

	got := reloaded.Content[0]
	require.NotNil(t, got.Attrs.Caption)
	assert.Equal(t, "", *got.Attrs.Caption)
	assert.Equal(t, AlignCenter, got.Attrs.Alignment)
}

func TestNormalizeNilDocument(t *testing.T) {
	got := Normalize(nil)
	require.NotNil(t, got)
	assert.Empty(t, got.Content)
}
