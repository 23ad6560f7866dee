package feeds

import (
	"strings"
	"time"

	"github.com/arthuhr-heslault/ai-newsletter/types"

	"github.com/araddon/dateparse"
)

// Normalizer converts raw feed entries into canonical articles.
// Structured time breakdowns and zone-less text timestamps are read as
// UTC (syndication convention); every stored published time is then
// converted into the display zone, so the whole collection carries one
// consistent zone.
type Normalizer struct {
	zone *time.Location
}

// NewNormalizer builds a normalizer targeting the given display zone;
// nil means the process-local zone.
func NewNormalizer(zone *time.Location) *Normalizer {
	if zone == nil {
		zone = time.Local
	}
	return &Normalizer{zone: zone}
}

// Normalize derives an Article from one entry, or reports false when
// the entry carries no resolvable date. Dropping such entries is
// deliberate: an article without a published time cannot be ordered
// or windowed.
func (n *Normalizer) Normalize(e Entry, sourceName string) (types.Article, bool) {
	published, ok := n.resolveDate(e)
	if !ok {
		return types.Article{}, false
	}

	title := types.NoTitle
	if t, ok := e.Title(); ok {
		title = t
	}

	link := ""
	if l, ok := e.Link(); ok {
		link = l
	}

	id := link
	if id == "" {
		id = sourceName + "/" + title
	}

	return types.Article{
		ID:        types.GenerateID(id),
		Title:     title,
		Link:      link,
		Source:    sourceName,
		Published: published,
		Authors:   resolveAuthors(e),
		Summary:   resolveSummary(e),
	}, true
}

// resolveDate walks the date candidates in preference order: structured
// published, published text, alternate dialect fields, structured
// updated, updated text. Each parse failure falls through to the next
// candidate.
func (n *Normalizer) resolveDate(e Entry) (time.Time, bool) {
	if t, ok := e.PublishedTime(); ok {
		return t.In(n.zone), true
	}
	if s, ok := e.PublishedText(); ok {
		if t, ok := n.parseText(s); ok {
			return t, true
		}
	}
	for _, s := range e.AltDateTexts() {
		if t, ok := n.parseText(s); ok {
			return t, true
		}
	}
	if t, ok := e.UpdatedTime(); ok {
		return t.In(n.zone), true
	}
	if s, ok := e.UpdatedText(); ok {
		if t, ok := n.parseText(s); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func (n *Normalizer) parseText(s string) (time.Time, bool) {
	t, err := dateparse.ParseIn(strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t.In(n.zone), true
}

// resolveAuthors prefers the single author field, then joins the names
// from an authors list. Empty means absent.
func resolveAuthors(e Entry) string {
	if author, ok := e.Author(); ok {
		return author
	}
	if names := e.AuthorNames(); len(names) > 0 {
		return strings.Join(names, ", ")
	}
	return ""
}

// resolveSummary prefers the summary field over the description field.
func resolveSummary(e Entry) string {
	if s, ok := e.Summary(); ok {
		return s
	}
	if s, ok := e.Description(); ok {
		return s
	}
	return ""
}
