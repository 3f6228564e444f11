package services

import (
	"context"
	"strings"
	"testing"
)

func TestOGCard(t *testing.T) {
	svc := NewOGImageService("VitalPoint")

	svg := svc.Card(context.Background(), "Remote monitoring & primary care", "What changes for clinics.", 4)

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="630"`) {
		t.Errorf("unexpected svg prolog: %q", svg[:80])
	}
	if !strings.Contains(svg, "&amp;") || strings.Contains(svg, "monitoring & primary") {
		t.Error("title not escaped")
	}
	if !strings.Contains(svg, "4 min read") {
		t.Error("read time missing")
	}
	if !strings.Contains(svg, "VitalPoint") {
		t.Error("site name missing")
	}
}

func TestWrapLines(t *testing.T) {
	lines := wrapLines("one two three four five six seven eight nine ten", 12, 3)
	if len(lines) != 3 {
		t.Fatalf("lines = %v", lines)
	}
	if !strings.HasSuffix(lines[2], "…") {
		t.Errorf("overflow not ellipsized: %q", lines[2])
	}

	if got := wrapLines("", 10, 2); got != nil {
		t.Errorf("empty text produced lines: %v", got)
	}
}
