package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"vitalpoint/internal/logger"

	"go.uber.org/zap"
)

const (
	ogWidth  = 1200
	ogHeight = 630

	ogTitleLineLen = 28
	ogTitleLines   = 3
)

// OGImageService renders social sharing cards as SVG. SVG keeps the service
// free of raster font dependencies while still letting crawlers and link
// previews pick up a branded image.
type OGImageService struct {
	siteName string
}

func NewOGImageService(siteName string) *OGImageService {
	return &OGImageService{siteName: siteName}
}

// Card builds a 1200x630 SVG for a post. Excerpt and read time are optional.
func (s *OGImageService) Card(ctx context.Context, title, excerpt string, readTimeMinutes int) string {
	logger.WithCtx(ctx).Debug("rendering og card", zap.String("title", title))

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		ogWidth, ogHeight, ogWidth, ogHeight)
	b.WriteString(`<rect width="100%" height="100%" fill="#0d2137"/>`)
	b.WriteString(`<rect x="0" y="0" width="12" height="630" fill="#2ec4b6"/>`)

	fmt.Fprintf(&b, `<text x="80" y="110" font-family="Georgia, serif" font-size="30" fill="#2ec4b6">%s</text>`,
		html.EscapeString(s.siteName))

	y := 220
	for _, line := range wrapLines(title, ogTitleLineLen, ogTitleLines) {
		fmt.Fprintf(&b, `<text x="80" y="%d" font-family="Georgia, serif" font-size="64" font-weight="bold" fill="#ffffff">%s</text>`,
			y, html.EscapeString(line))
		y += 80
	}

	if excerpt != "" {
		for _, line := range wrapLines(excerpt, 56, 2) {
			fmt.Fprintf(&b, `<text x="80" y="%d" font-family="Georgia, serif" font-size="28" fill="#c9d6df">%s</text>`,
				y, html.EscapeString(line))
			y += 40
		}
	}

	if readTimeMinutes > 0 {
		fmt.Fprintf(&b, `<text x="80" y="570" font-family="Georgia, serif" font-size="26" fill="#2ec4b6">%d min read</text>`,
			readTimeMinutes)
	}

	b.WriteString(`</svg>`)
	return b.String()
}

// wrapLines breaks text into at most maxLines lines of roughly lineLen runes,
// splitting on word boundaries and ellipsizing the last line on overflow.
func wrapLines(text string, lineLen, maxLines int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if len([]rune(current))+1+len([]rune(w)) > lineLen {
			lines = append(lines, current)
			current = w
			continue
		}
		current += " " + w
	}
	lines = append(lines, current)

	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] += "…"
	}
	return lines
}
