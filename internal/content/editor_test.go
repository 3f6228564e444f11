package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorStartsWithEmptyParagraph(t *testing.T) {
	e := NewEditor(EditorOptions{})
	snap := e.Snapshot()
	require.Len(t, snap.Content, 1)
	assert.Equal(t, NodeParagraph, snap.Content[0].Type)
	assert.True(t, IsEmpty(snap))
}

func TestEditorUpdateFiresSynchronously(t *testing.T) {
	var got *Document
	calls := 0
	e := NewEditor(EditorOptions{OnUpdate: func(d *Document) {
		got = d
		calls++
	}})

	require.NoError(t, e.InsertText("hello"))
	require.Equal(t, 1, calls, "callback fires within the mutating call")
	require.NotNil(t, got)
	assert.Equal(t, "hello", PlainText(got))
}

func TestEditorPublishesSnapshotsNotState(t *testing.T) {
	var got *Document
	e := NewEditor(EditorOptions{OnUpdate: func(d *Document) { got = d }})
	require.NoError(t, e.InsertText("original"))

	// Mutating the published snapshot must not reach the editor's copy.
	got.Content[0].Content[0].Text = "tampered"
	assert.Equal(t, "original", PlainText(e.Snapshot()))
}

func TestEditorExternalUpdateSuppressedWhileFocused(t *testing.T) {
	e := NewEditor(EditorOptions{})
	require.NoError(t, e.InsertText("draft in progress"))

	e.Focus()
	applied := e.SetContent(NewDocument(Paragraph(Text("incoming"))))
	assert.False(t, applied, "external updates are dropped while focused")
	assert.Equal(t, "draft in progress", PlainText(e.Snapshot()))

	e.Blur()
	applied = e.SetContent(NewDocument(Paragraph(Text("incoming"))))
	assert.True(t, applied)
	assert.Equal(t, "incoming", PlainText(e.Snapshot()))
}

func TestEditorIdenticalExternalUpdateSkipped(t *testing.T) {
	doc := NewDocument(Paragraph(Text("same")))
	e := NewEditor(EditorOptions{Content: doc})
	assert.False(t, e.SetContent(doc.Clone()), "unchanged content is not reapplied")
}

func TestEditorReadOnlyRejectsCommands(t *testing.T) {
	doc := NewDocument(Paragraph(Text("published post")))
	e := NewEditor(EditorOptions{Content: doc, ReadOnly: true})

	assert.ErrorIs(t, e.InsertText("x"), ErrEditorReadOnly)
	assert.ErrorIs(t, e.SetHeading(2), ErrEditorReadOnly)
	assert.ErrorIs(t, e.InsertImage("a.png", ""), ErrEditorReadOnly)

	// The read-only view still renders the same tree as the editable one.
	editable := NewEditor(EditorOptions{Content: doc})
	assert.Equal(t, editable.HTML(), e.HTML())
}

func TestEditorDestroyIsIdempotent(t *testing.T) {
	e := NewEditor(EditorOptions{})
	e.Destroy()
	assert.NotPanics(t, e.Destroy, "double destroy is a no-op")

	assert.ErrorIs(t, e.InsertText("x"), ErrEditorDestroyed)
	assert.False(t, e.SetContent(NewDocument(Paragraph(Text("x")))))
	assert.Equal(t, "", e.HTML())
	assert.NotPanics(t, e.Focus)
	assert.NotPanics(t, e.Blur)
}

func TestEditorToggleMark(t *testing.T) {
	e := NewEditor(EditorOptions{})
	require.NoError(t, e.InsertText("emphasis"))

	require.NoError(t, e.ToggleMark(Mark{Type: MarkBold}))
	assert.Contains(t, e.HTML(), "<strong>emphasis</strong>")

	require.NoError(t, e.ToggleMark(Mark{Type: MarkBold}))
	assert.NotContains(t, e.HTML(), "<strong>")
}

func TestEditorHeadingCommand(t *testing.T) {
	e := NewEditor(EditorOptions{})
	require.NoError(t, e.InsertText("Section"))
	require.NoError(t, e.SetHeading(3))
	assert.Contains(t, e.HTML(), "<h3>Section</h3>")

	require.NoError(t, e.SetHeading(0))
	assert.Contains(t, e.HTML(), "<p>Section</p>")
}

func TestEditorImageCommands(t *testing.T) {
	e := NewEditor(EditorOptions{})
	require.NoError(t, e.InsertText("intro"))
	require.NoError(t, e.InsertImage("/media/7", "clinic"))
	require.NoError(t, e.SetImageCaption(0, "Main clinic"))
	require.NoError(t, e.SetImageWidth(0, "640"))
	require.NoError(t, e.SetImageAlignment(0, AlignLeft))

	html := e.HTML()
	assert.Contains(t, html, `class="image image-left"`)
	assert.Contains(t, html, `width: 640px`)
	assert.Contains(t, html, "<figcaption>Main clinic</figcaption>")

	assert.Error(t, e.SetImageCaption(5, "nope"))
}

func TestEditorMatchesStatelessRenderer(t *testing.T) {
	doc := NewDocument(
		Heading(2, Text("Care teams")),
		Paragraph(Text("bold move", Mark{Type: MarkBold})),
		Node{Type: NodeImage, Attrs: &Attrs{Src: "x.png", Caption: strPtr("cap"), Alignment: AlignCenter}},
	)
	e := NewEditor(EditorOptions{Content: doc, ReadOnly: true})
	assert.Equal(t, RenderHTML(doc), e.HTML(), "both consumers share the rule table")
}

func TestEditorTextAfterImageOpensNewParagraph(t *testing.T) {
	e := NewEditor(EditorOptions{})
	require.NoError(t, e.InsertImage("a.png", ""))
	require.NoError(t, e.InsertText("after the image"))

	snap := e.Snapshot()
	last := snap.Content[len(snap.Content)-1]
	assert.Equal(t, NodeParagraph, last.Type)
	assert.Equal(t, "after the image", PlainText(NewDocument(last)))
}
