package feeds

import (
	"time"

	"github.com/mmcdole/gofeed"
)

// Entry is capability-probed access to one raw feed item. Feeds are
// loosely structured, so every accessor reports whether the field was
// actually present rather than assuming it exists.
type Entry interface {
	Title() (string, bool)
	Link() (string, bool)
	// PublishedTime is the feed's structured published breakdown.
	PublishedTime() (time.Time, bool)
	// PublishedText is the raw published field before parsing.
	PublishedText() (string, bool)
	UpdatedTime() (time.Time, bool)
	UpdatedText() (string, bool)
	// AltDateTexts are date strings from non-standard dialects
	// (secondary pubDate fields, Dublin Core dates).
	AltDateTexts() []string
	Author() (string, bool)
	// AuthorNames lists the names from an authors collection; entries
	// without a name are already excluded.
	AuthorNames() []string
	Summary() (string, bool)
	Description() (string, bool)
}

// feedEntry adapts a gofeed item to the Entry accessors.
type feedEntry struct {
	item *gofeed.Item
}

// WrapItem exposes a gofeed item as an Entry.
func WrapItem(item *gofeed.Item) Entry {
	return feedEntry{item: item}
}

func (e feedEntry) Title() (string, bool) {
	return e.item.Title, e.item.Title != ""
}

func (e feedEntry) Link() (string, bool) {
	return e.item.Link, e.item.Link != ""
}

func (e feedEntry) PublishedTime() (time.Time, bool) {
	if e.item.PublishedParsed == nil {
		return time.Time{}, false
	}
	return *e.item.PublishedParsed, true
}

func (e feedEntry) PublishedText() (string, bool) {
	return e.item.Published, e.item.Published != ""
}

func (e feedEntry) UpdatedTime() (time.Time, bool) {
	if e.item.UpdatedParsed == nil {
		return time.Time{}, false
	}
	return *e.item.UpdatedParsed, true
}

func (e feedEntry) UpdatedText() (string, bool) {
	return e.item.Updated, e.item.Updated != ""
}

func (e feedEntry) AltDateTexts() []string {
	var alts []string
	for _, key := range []string{"pubDate", "date", "dc:date"} {
		if v := e.item.Custom[key]; v != "" {
			alts = append(alts, v)
		}
	}
	if e.item.DublinCoreExt != nil {
		alts = append(alts, e.item.DublinCoreExt.Date...)
	}
	return alts
}

func (e feedEntry) Author() (string, bool) {
	if e.item.Author != nil && e.item.Author.Name != "" {
		return e.item.Author.Name, true
	}
	return "", false
}

func (e feedEntry) AuthorNames() []string {
	var names []string
	for _, a := range e.item.Authors {
		if a != nil && a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return names
}

func (e feedEntry) Summary() (string, bool) {
	// gofeed maps Atom <summary> and RSS <description> both onto
	// Description; Content carries the long form when present.
	return e.item.Description, e.item.Description != ""
}

func (e feedEntry) Description() (string, bool) {
	return e.item.Content, e.item.Content != ""
}
