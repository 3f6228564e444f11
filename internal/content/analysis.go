package content

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultWordsPerMinute is the reading speed assumed when none is given.
const DefaultWordsPerMinute = 200

var (
	newlineRuns    = regexp.MustCompile(`\n{3,}`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	hyphenRuns     = regexp.MustCompile(`-{2,}`)

	// NFD-decompose, drop combining marks, recompose. Turns "é" into "e".
	diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// PlainText extracts human-readable plain text from a document: text node
// payloads in depth-first order, a newline for each hard break, and a blank
// line between consecutive block-level nodes (never before the first).
// Runs of three or more newlines are collapsed to two and the result is
// trimmed, so excerpts and word counts see separated blocks instead of
// glued-together ones.
func PlainText(d *Document) string {
	if d == nil {
		return ""
	}
	var sb strings.Builder
	writeChildren(&sb, d.Content)

	out := newlineRuns.ReplaceAllString(sb.String(), "\n\n")
	return strings.TrimSpace(out)
}

func writeChildren(sb *strings.Builder, children []Node) {
	for i, child := range children {
		if i > 0 && child.IsBlock() {
			sb.WriteString("\n\n")
		}
		writeNode(sb, &child)
	}
}

func writeNode(sb *strings.Builder, n *Node) {
	switch n.Type {
	case NodeText:
		sb.WriteString(n.Text)
	case NodeHardBreak:
		sb.WriteString("\n")
	default:
		// Unknown kinds included: recurse if there is anything to recurse into.
		writeChildren(sb, n.Content)
	}
}

// WordCount returns the number of whitespace-separated tokens in the
// document's plain text.
func WordCount(d *Document) int {
	return len(strings.Fields(PlainText(d)))
}

// ReadingTime estimates reading time in whole minutes at the given speed
// (0 or negative means DefaultWordsPerMinute). The result is never below 1:
// a zero-minute read is not a meaningful UI signal.
func ReadingTime(d *Document, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	words := WordCount(d)
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// IsEmpty reports whether the document holds no real content. A freshly
// initialized editor contains a single empty paragraph, which must count as
// empty without being literally "no blocks", hence the three-way check.
func IsEmpty(d *Document) bool {
	if d == nil || len(d.Content) == 0 {
		return true
	}
	if len(d.Content) == 1 && d.Content[0].Type == NodeParagraph {
		p := d.Content[0]
		if len(p.Content) == 0 {
			return true
		}
		if len(p.Content) == 1 && p.Content[0].Type == NodeText &&
			strings.TrimSpace(p.Content[0].Text) == "" {
			return true
		}
	}
	return strings.TrimSpace(PlainText(d)) == ""
}

// Slugify derives a URL-safe identifier from an arbitrary title: combining
// diacritics are stripped, everything outside [a-z0-9 -] is dropped, and
// whitespace runs become single hyphens. Total and deterministic — slugs
// double as unique keys and public URLs.
func Slugify(title string) string {
	folded, _, err := transform.String(diacriticFolder, title)
	if err != nil {
		folded = title
	}
	folded = strings.ToLower(folded)

	var sb strings.Builder
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			sb.WriteRune(r)
		case unicode.IsSpace(r):
			sb.WriteRune(' ')
		}
	}

	slug := strings.TrimSpace(sb.String())
	slug = whitespaceRuns.ReplaceAllString(slug, "-")
	slug = hyphenRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Excerpt returns the leading plain text of the document, cut at a word
// boundary within limit runes, for listing views and meta descriptions.
func Excerpt(d *Document, limit int) string {
	text := whitespaceRuns.ReplaceAllString(PlainText(d), " ")
	if limit <= 0 || len([]rune(text)) <= limit {
		return text
	}

	runes := []rune(text)
	cut := limit
	for cut > 0 && !unicode.IsSpace(runes[cut]) {
		cut--
	}
	if cut == 0 {
		cut = limit
	}
	return strings.TrimSpace(string(runes[:cut])) + "…"
}
