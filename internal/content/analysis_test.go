package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainTextSeparatesBlocks(t *testing.T) {
	doc := NewDocument(
		Paragraph(Text("A")),
		Paragraph(Text("B")),
	)
	assert.Equal(t, "A\n\nB", PlainText(doc))
}

func TestPlainTextHardBreak(t *testing.T) {
	doc := NewDocument(
		Paragraph(Text("first line"), Node{Type: NodeHardBreak}, Text("second line")),
	)
	assert.Equal(t, "first line\nsecond line", PlainText(doc))
}

func TestPlainTextListItems(t *testing.T) {
	doc := NewDocument(
		Node{Type: NodeBulletList, Content: []Node{
			{Type: NodeListItem, Content: []Node{Paragraph(Text("one"))}},
			{Type: NodeListItem, Content: []Node{Paragraph(Text("two"))}},
		}},
	)
	assert.Equal(t, "one\n\ntwo", PlainText(doc))
}

func TestPlainTextNeverHasTripleNewlines(t *testing.T) {
	// Empty paragraphs and rules between blocks would naively produce long
	// newline runs; they must collapse to at most two.
	doc := NewDocument(
		Paragraph(Text("A")),
		Paragraph(),
		Node{Type: NodeHorizontalRule},
		Paragraph(),
		Paragraph(Text("B")),
	)
	got := PlainText(Normalize(doc))
	assert.NotContains(t, got, "\n\n\n")
	assert.Equal(t, got, strings.TrimSpace(got))
	assert.Equal(t, "A\n\nB", got)
}

func TestWordCountScenario(t *testing.T) {
	doc := NewDocument(Paragraph(Text("The quick brown fox jumps")))
	assert.Equal(t, 5, WordCount(doc))
	assert.Equal(t, 1, ReadingTime(doc, 0))
}

func TestReadingTimeFloor(t *testing.T) {
	assert.Equal(t, 1, ReadingTime(NewDocument(), 0))
	assert.Equal(t, 1, ReadingTime(NewDocument(Paragraph(Text("hi"))), 200))
}

func TestReadingTimeRoundsUp(t *testing.T) {
	words := make([]string, 450)
	for i := range words {
		words[i] = "word"
	}
	doc := NewDocument(Paragraph(Text(strings.Join(words, " "))))
	assert.Equal(t, 3, ReadingTime(doc, 200))
	assert.Equal(t, 5, ReadingTime(doc, 100))
}

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"no blocks", `{"type":"document","content":[]}`, true},
		{"bare paragraph", `{"type":"document","content":[{"type":"paragraph"}]}`, true},
		{"whitespace only", `{"type":"document","content":[{"type":"paragraph","content":[{"type":"text","text":"   "}]}]}`, true},
		{"real text", `{"type":"document","content":[{"type":"paragraph","content":[{"type":"text","text":"hello"}]}]}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, IsEmpty(doc))
		})
	}
	assert.True(t, IsEmpty(nil))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "cafe-deja-vu", Slugify("Café  Déjà Vu!!"))
	assert.Equal(t, "10-tips-for-better-sleep", Slugify("10 Tips for Better Sleep"))
	assert.Equal(t, "telehealth-whats-next", Slugify("Telehealth: What's Next?"))
	assert.Equal(t, "a-b", Slugify("--a---b--"))
	assert.Equal(t, "", Slugify("!!!"))
	assert.Equal(t, "", Slugify("   "))
}

func TestSlugifyIdempotent(t *testing.T) {
	for _, title := range []string{
		"Café  Déjà Vu!!",
		"Understanding EHR Integration",
		"résumé & CV",
		"",
	} {
		once := Slugify(title)
		assert.Equal(t, once, Slugify(once), "title %q", title)
	}
}

func TestExcerpt(t *testing.T) {
	doc := NewDocument(
		Paragraph(Text("Remote patient monitoring is changing how care teams work.")),
		Paragraph(Text("Second paragraph that should not be glued on.")),
	)

	full := Excerpt(doc, 0)
	assert.NotContains(t, full, "\n")

	short := Excerpt(doc, 30)
	assert.True(t, strings.HasSuffix(short, "…"))
	assert.LessOrEqual(t, len([]rune(short)), 31)
	// Cut lands on a word boundary, not inside a word.
	assert.Equal(t, "Remote patient monitoring is…", short)
}
