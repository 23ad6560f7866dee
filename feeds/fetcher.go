package feeds

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/arthuhr-heslault/ai-newsletter/config"

	"github.com/mmcdole/gofeed"
)

// RetryPolicy bounds the fetch attempts for one source.
type RetryPolicy struct {
	Attempts    int
	BackoffBase time.Duration
	BackoffMax  time.Duration
}

// DefaultRetryPolicy mirrors the digest's operational defaults: three
// attempts with exponential backoff capped at eight seconds.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts:    config.FetchAttempts,
		BackoffBase: config.FetchBackoffBase,
		BackoffMax:  config.FetchBackoffMax,
	}
}

// Fetcher retrieves and parses one feed URL into raw entries. Callers
// treat any error as "zero entries from this source"; a failing source
// must never abort the aggregation of others.
type Fetcher struct {
	client *http.Client
	retry  RetryPolicy
}

// NewFetcher constructs a fetcher with a bounded per-request timeout.
func NewFetcher(retry RetryPolicy) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: config.FetchTimeout},
		retry:  retry,
	}
}

// Fetch retrieves and parses the feed at url, retrying transient
// failures per the retry policy. The parser is per-call because gofeed
// lazily initializes translator state on first parse; only the HTTP
// client is shared across concurrent fetches.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]Entry, error) {
	parser := gofeed.NewParser()
	parser.Client = f.client

	var lastErr error
	delay := f.retry.BackoffBase
	for attempt := 1; attempt <= f.retry.Attempts; attempt++ {
		feed, err := parser.ParseURLWithContext(url, ctx)
		if err == nil {
			entries := make([]Entry, 0, len(feed.Items))
			for _, item := range feed.Items {
				entries = append(entries, WrapItem(item))
			}
			return entries, nil
		}
		lastErr = err
		if attempt == f.retry.Attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
		if delay > f.retry.BackoffMax {
			delay = f.retry.BackoffMax
		}
	}
	return nil, fmt.Errorf("failed to fetch feed: %w", lastErr)
}
