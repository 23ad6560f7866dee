package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
 <channel>
  <title>Test Feed</title>
  <item>
   <title>First</title>
   <link>https://example.com/first</link>
   <pubDate>Sat, 01 Jun 2024 10:00:00 GMT</pubDate>
   <description>first summary</description>
  </item>
  <item>
   <title>Second</title>
   <link>https://example.com/second</link>
   <pubDate>Sun, 02 Jun 2024 10:00:00 GMT</pubDate>
  </item>
 </channel>
</rss>`

func testRetryPolicy(attempts int) RetryPolicy {
	return RetryPolicy{Attempts: attempts, BackoffBase: time.Millisecond, BackoffMax: 4 * time.Millisecond}
}

func TestFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f := NewFetcher(testRetryPolicy(1))
	entries, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch returned unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	title, ok := entries[0].Title()
	if !ok || title != "First" {
		t.Errorf("entries[0].Title() = %q, %v", title, ok)
	}
	if _, ok := entries[0].PublishedTime(); !ok {
		t.Error("entries[0] should carry a structured published time")
	}
	if summary, ok := entries[0].Summary(); !ok || summary != "first summary" {
		t.Errorf("entries[0].Summary() = %q, %v", summary, ok)
	}
	if _, ok := entries[1].Summary(); ok {
		t.Error("entries[1] should have no summary")
	}
}

func TestFetcher_ErrorAfterRetries(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher(testRetryPolicy(3))
	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("Fetch should fail against a persistently broken source")
	}
	if got := atomic.LoadInt32(&hits); got != 3 {
		t.Errorf("attempts = %d, want 3", got)
	}
}

func TestFetcher_RetryRecovers(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 2 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f := NewFetcher(testRetryPolicy(3))
	entries, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch should recover on retry: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("len(entries) = %d, want 2", len(entries))
	}
}

// Exercises one Fetcher from many goroutines at once, the way the
// aggregator's worker pool does. Meaningful under the race detector.
func TestFetcher_ConcurrentFetches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f := NewFetcher(testRetryPolicy(1))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entries, err := f.Fetch(context.Background(), srv.URL)
			if err != nil {
				t.Errorf("concurrent Fetch failed: %v", err)
				return
			}
			if len(entries) != 2 {
				t.Errorf("len(entries) = %d, want 2", len(entries))
			}
		}()
	}
	wg.Wait()
}

func TestFetcher_MalformedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer srv.Close()

	f := NewFetcher(testRetryPolicy(1))
	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("Fetch should report malformed feeds as errors")
	}
}
