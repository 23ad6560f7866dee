package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// NoTitle is the placeholder used for feed entries that carry no title.
const NoTitle = "(no title)"

// Article is the canonical, normalized representation of one feed entry.
// Published is always set; an entry without a resolvable date never
// becomes an Article.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Source    string    `json:"source"`
	Published time.Time `json:"published"`
	Authors   string    `json:"authors,omitempty"`
	Summary   string    `json:"summary,omitempty"`
}

// DedupeKey is the identity used to collapse duplicate articles:
// the link when non-empty, the title otherwise.
func (a Article) DedupeKey() string {
	if a.Link != "" {
		return a.Link
	}
	return a.Title
}

// Source is one registry entry: a display name, a feed endpoint and a
// coarse region tag. Defined once at startup and never mutated.
type Source struct {
	Name   string `json:"name" yaml:"name"`
	URL    string `json:"url" yaml:"url"`
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// GenerateID creates a short, stable ID by hashing the provided string input
func GenerateID(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])[:16]
}
