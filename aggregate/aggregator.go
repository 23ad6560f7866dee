package aggregate

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/arthuhr-heslault/ai-newsletter/config"
	"github.com/arthuhr-heslault/ai-newsletter/feeds"
	"github.com/arthuhr-heslault/ai-newsletter/types"
)

// SourceFetcher retrieves the raw entries for one feed URL.
type SourceFetcher interface {
	Fetch(ctx context.Context, url string) ([]feeds.Entry, error)
}

// Aggregator runs fetch and normalize across the whole registry and
// merges the results into one canonical, time-descending collection.
type Aggregator struct {
	registry   *feeds.Registry
	fetcher    SourceFetcher
	normalizer *feeds.Normalizer
	workers    int
}

// NewAggregator wires the aggregation pipeline together.
func NewAggregator(registry *feeds.Registry, fetcher SourceFetcher, normalizer *feeds.Normalizer) *Aggregator {
	return &Aggregator{
		registry:   registry,
		fetcher:    fetcher,
		normalizer: normalizer,
		workers:    config.FetchWorkers,
	}
}

// Aggregate fetches every registry source, normalizes the entries,
// deduplicates by link-else-title and sorts by published descending.
// Fetches run on a worker pool, but each source's batch stays
// contiguous and batches merge in registry order, so the first-seen
// dedupe tie-break always favors earlier registry position.
func (a *Aggregator) Aggregate(ctx context.Context) []types.Article {
	sources := a.registry.Sources()
	batches := make([][]types.Article, len(sources))

	var wg sync.WaitGroup
	jobs := make(chan int, len(sources))

	for w := 0; w < a.workers; w++ {
		go func() {
			for i := range jobs {
				batches[i] = a.fetchSource(ctx, sources[i])
				wg.Done()
			}
		}()
	}

	for i, src := range sources {
		if src.URL == "" {
			continue
		}
		wg.Add(1)
		jobs <- i
	}
	wg.Wait()
	close(jobs)

	var working []types.Article
	for _, batch := range batches {
		working = append(working, batch...)
	}

	deduped := Dedupe(working)
	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Published.After(deduped[j].Published)
	})
	return deduped
}

// fetchSource returns the normalized batch for one source. All fetch
// and normalize failures are absorbed here; a bad source contributes
// zero articles and never degrades the rest of the run.
func (a *Aggregator) fetchSource(ctx context.Context, src types.Source) []types.Article {
	entries, err := a.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		log.Printf("Warning: source %q contributed no articles: %v", src.Name, err)
		return nil
	}
	articles := make([]types.Article, 0, len(entries))
	for _, entry := range entries {
		if article, ok := a.normalizer.Normalize(entry, src.Name); ok {
			articles = append(articles, article)
		}
	}
	return articles
}

// Dedupe collapses articles sharing a dedupe key, keeping the first
// occurrence. Input order is the accumulated registry order, so
// first-seen-wins deliberately favors earlier sources over newer
// duplicates.
func Dedupe(articles []types.Article) []types.Article {
	seen := make(map[string]bool, len(articles))
	deduped := make([]types.Article, 0, len(articles))
	for _, a := range articles {
		key := a.DedupeKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, a)
	}
	return deduped
}
