package feeds

import (
	"testing"
	"time"

	"github.com/arthuhr-heslault/ai-newsletter/types"
)

// fakeEntry is a literal Entry for tests.
type fakeEntry struct {
	title       string
	link        string
	pubTime     *time.Time
	pubText     string
	updTime     *time.Time
	updText     string
	alts        []string
	author      string
	authorNames []string
	summary     string
	description string
}

func (f fakeEntry) Title() (string, bool) { return f.title, f.title != "" }
func (f fakeEntry) Link() (string, bool) { return f.link, f.link != "" }
func (f fakeEntry) PublishedTime() (time.Time, bool) {
	if f.pubTime == nil {
		return time.Time{}, false
	}
	return *f.pubTime, true
}
func (f fakeEntry) PublishedText() (string, bool) { return f.pubText, f.pubText != "" }
func (f fakeEntry) UpdatedTime() (time.Time, bool) {
	if f.updTime == nil {
		return time.Time{}, false
	}
	return *f.updTime, true
}
func (f fakeEntry) UpdatedText() (string, bool) { return f.updText, f.updText != "" }
func (f fakeEntry) AltDateTexts() []string { return f.alts }
func (f fakeEntry) Author() (string, bool) { return f.author, f.author != "" }
func (f fakeEntry) AuthorNames() []string { return f.authorNames }
func (f fakeEntry) Summary() (string, bool) { return f.summary, f.summary != "" }
func (f fakeEntry) Description() (string, bool) { return f.description, f.description != "" }

func TestNormalize_DateFallbackOrder(t *testing.T) {
	n := NewNormalizer(time.UTC)
	structured := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		entry fakeEntry
		want  time.Time
		ok    bool
	}{
		{
			name:  "structured published wins over everything",
			entry: fakeEntry{title: "a", pubTime: &structured, pubText: "2020-01-01", updTime: &updated},
			want:  structured,
			ok:    true,
		},
		{
			name:  "published text when no structured published",
			entry: fakeEntry{title: "a", pubText: "2024-06-01 12:00:00", updTime: &updated},
			want:  structured,
			ok:    true,
		},
		{
			name:  "unparseable published text falls through to alternates",
			entry: fakeEntry{title: "a", pubText: "not a date", alts: []string{"also bad", "2024-06-01T12:00:00Z"}},
			want:  structured,
			ok:    true,
		},
		{
			name:  "structured updated when no published fields",
			entry: fakeEntry{title: "a", updTime: &updated},
			want:  updated,
			ok:    true,
		},
		{
			name:  "updated text as last resort",
			entry: fakeEntry{title: "a", updText: "2024-05-01T08:00:00Z"},
			want:  updated,
			ok:    true,
		},
		{
			name:  "no date-bearing fields yields no article",
			entry: fakeEntry{title: "a", summary: "text"},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article, ok := n.Normalize(tt.entry, "Src")
			if ok != tt.ok {
				t.Fatalf("Normalize ok = %v, want %v", ok, tt.ok)
			}
			if !tt.ok {
				return
			}
			if !article.Published.Equal(tt.want) {
				t.Errorf("Published = %v, want %v", article.Published, tt.want)
			}
		})
	}
}

func TestNormalize_TimezoneNormalization(t *testing.T) {
	n := NewNormalizer(time.UTC)

	naive, ok := n.Normalize(fakeEntry{title: "a", pubText: "2024-01-01T00:00:00"}, "Src")
	if !ok {
		t.Fatal("naive timestamp did not normalize")
	}
	explicit, ok := n.Normalize(fakeEntry{title: "b", pubText: "2024-01-01T00:00:00Z"}, "Src")
	if !ok {
		t.Fatal("explicit-UTC timestamp did not normalize")
	}
	if !naive.Published.Equal(explicit.Published) {
		t.Errorf("naive %v and explicit-UTC %v should be the same instant", naive.Published, explicit.Published)
	}
}

func TestNormalize_DisplayZoneConversion(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*3600)
	n := NewNormalizer(zone)

	article, ok := n.Normalize(fakeEntry{title: "a", pubText: "2024-01-01T00:00:00Z"}, "Src")
	if !ok {
		t.Fatal("timestamp did not normalize")
	}
	if article.Published.Location() != zone {
		t.Errorf("Published zone = %v, want %v", article.Published.Location(), zone)
	}
	want := time.Date(2024, 1, 1, 2, 0, 0, 0, zone)
	if !article.Published.Equal(want) {
		t.Errorf("Published = %v, want %v", article.Published, want)
	}
}

func TestNormalize_OptionalFields(t *testing.T) {
	n := NewNormalizer(time.UTC)
	pub := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("title placeholder and empty link", func(t *testing.T) {
		article, ok := n.Normalize(fakeEntry{pubTime: &pub}, "Src")
		if !ok {
			t.Fatal("entry did not normalize")
		}
		if article.Title != types.NoTitle {
			t.Errorf("Title = %q, want %q", article.Title, types.NoTitle)
		}
		if article.Link != "" {
			t.Errorf("Link = %q, want empty", article.Link)
		}
		if article.Source != "Src" {
			t.Errorf("Source = %q, want Src", article.Source)
		}
	})

	t.Run("single author preferred over list", func(t *testing.T) {
		article, _ := n.Normalize(fakeEntry{title: "a", pubTime: &pub, author: "Ada", authorNames: []string{"B", "C"}}, "Src")
		if article.Authors != "Ada" {
			t.Errorf("Authors = %q, want Ada", article.Authors)
		}
	})

	t.Run("author list joined with comma", func(t *testing.T) {
		article, _ := n.Normalize(fakeEntry{title: "a", pubTime: &pub, authorNames: []string{"B", "C"}}, "Src")
		if article.Authors != "B, C" {
			t.Errorf("Authors = %q, want %q", article.Authors, "B, C")
		}
	})

	t.Run("no author information stays absent", func(t *testing.T) {
		article, _ := n.Normalize(fakeEntry{title: "a", pubTime: &pub}, "Src")
		if article.Authors != "" {
			t.Errorf("Authors = %q, want empty", article.Authors)
		}
	})

	t.Run("summary preferred over description", func(t *testing.T) {
		article, _ := n.Normalize(fakeEntry{title: "a", pubTime: &pub, summary: "short", description: "long"}, "Src")
		if article.Summary != "short" {
			t.Errorf("Summary = %q, want short", article.Summary)
		}
	})

	t.Run("description used when summary absent", func(t *testing.T) {
		article, _ := n.Normalize(fakeEntry{title: "a", pubTime: &pub, description: "long"}, "Src")
		if article.Summary != "long" {
			t.Errorf("Summary = %q, want long", article.Summary)
		}
	})
}

func TestDedupeKey(t *testing.T) {
	linked := types.Article{Title: "X", Link: "https://example.com/x"}
	if linked.DedupeKey() != "https://example.com/x" {
		t.Errorf("DedupeKey = %q, want link", linked.DedupeKey())
	}
	unlinked := types.Article{Title: "X"}
	if unlinked.DedupeKey() != "X" {
		t.Errorf("DedupeKey = %q, want title", unlinked.DedupeKey())
	}
}
