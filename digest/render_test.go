package digest

import (
	"strings"
	"testing"
	"time"

	"github.com/arthuhr-heslault/ai-newsletter/types"
)

func sampleArticles() []types.Article {
	return []types.Article{
		{
			Title:     "Big Model News",
			Link:      "https://example.com/big",
			Source:    "Lab Blog",
			Published: time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC),
			Authors:   "Ada, Grace",
			Summary:   "A short summary.",
		},
		{
			Title:     "Quiet Update",
			Source:    "Other Blog",
			Published: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		},
	}
}

func TestRender(t *testing.T) {
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	html, err := Render(sampleArticles(), 7, "lead sentence", now)
	if err != nil {
		t.Fatalf("Render returned unexpected error: %v", err)
	}

	for _, want := range []string{
		"Generated on 2024-06-03 12:00",
		"Last 7 days",
		"lead sentence",
		"Big Model News",
		"Lab Blog · 2024-06-02 09:30 · Ada, Grace",
		"A short summary.",
		`href="https://example.com/big"`,
		"Other Blog · 2024-06-01 08:00",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}

	// The authors separator must not appear for author-less articles
	if strings.Contains(html, "Other Blog · 2024-06-01 08:00 ·") {
		t.Error("author-less meta line should not carry a trailing separator")
	}
}

func TestRender_Empty(t *testing.T) {
	html, err := Render(nil, 7, LeadSummary(nil), time.Now())
	if err != nil {
		t.Fatalf("Render returned unexpected error: %v", err)
	}
	if !strings.Contains(html, "No articles found for this period.") {
		t.Error("empty digest should carry the empty-state paragraph")
	}
}

func TestRender_EscapesMarkup(t *testing.T) {
	articles := []types.Article{{
		Title:     `<script>alert("x")</script>`,
		Source:    "Src",
		Published: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}}
	html, err := Render(articles, 7, "", time.Now())
	if err != nil {
		t.Fatalf("Render returned unexpected error: %v", err)
	}
	if strings.Contains(html, `<script>alert`) {
		t.Error("article titles must be HTML-escaped")
	}
}

func TestLeadSummary(t *testing.T) {
	if got := LeadSummary(nil); got != "No articles available for this period." {
		t.Errorf("empty lead = %q", got)
	}
	lead := LeadSummary(sampleArticles())
	if !strings.Contains(lead, "Big Model News") || !strings.Contains(lead, "Quiet Update") {
		t.Errorf("lead should name the top titles, got %q", lead)
	}
}
