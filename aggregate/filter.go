package aggregate

import (
	"sort"
	"strings"
	"time"

	"github.com/arthuhr-heslault/ai-newsletter/types"
)

// Criteria are the optional, AND-combined predicates of the interactive
// view. Zero values mean "no constraint": empty Sources and Regions
// sets pass everything, a zero Start or End leaves that side of the
// window open, an empty Query matches all.
type Criteria struct {
	Start   time.Time
	End     time.Time
	Sources map[string]bool
	Regions map[string]bool
	Query   string
}

// RegionLookup maps a source name to its region tag.
type RegionLookup func(sourceName string) string

// Filter returns the articles matching every present criterion,
// preserving the input's relative order. The date window is inclusive
// on both ends; the query is a case-insensitive substring match on
// title or summary (an absent summary never matches).
func Filter(articles []types.Article, c Criteria, regionOf RegionLookup) []types.Article {
	query := strings.ToLower(strings.TrimSpace(c.Query))
	filtered := make([]types.Article, 0, len(articles))
	for _, a := range articles {
		if !c.Start.IsZero() && a.Published.Before(c.Start) {
			continue
		}
		if !c.End.IsZero() && a.Published.After(c.End) {
			continue
		}
		if len(c.Sources) > 0 && !c.Sources[a.Source] {
			continue
		}
		if len(c.Regions) > 0 && !c.Regions[regionOf(a.Source)] {
			continue
		}
		if query != "" && !matchesQuery(a, query) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

func matchesQuery(a types.Article, query string) bool {
	if strings.Contains(strings.ToLower(a.Title), query) {
		return true
	}
	return a.Summary != "" && strings.Contains(strings.ToLower(a.Summary), query)
}

// LatestWindow is the batch digest mode: only a trailing day window
// applies, then the result is truncated to the topN most recent
// articles in descending order.
func LatestWindow(articles []types.Article, days, topN int, now time.Time) []types.Article {
	windowed := Filter(articles, Criteria{
		Start: now.AddDate(0, 0, -days),
		End:   now,
	}, nil)
	sort.SliceStable(windowed, func(i, j int) bool {
		return windowed[i].Published.After(windowed[j].Published)
	})
	if len(windowed) > topN {
		windowed = windowed[:topN]
	}
	return windowed
}
