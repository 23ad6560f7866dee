package config

import "time"

// Fetch Constants
const (
	// FetchTimeout bounds a single feed request so one hung source
	// cannot stall the whole aggregation
	FetchTimeout = 20 * time.Second

	// FetchAttempts is the number of tries per source before giving up
	FetchAttempts = 3

	// FetchBackoffBase is the delay before the first retry
	FetchBackoffBase = 500 * time.Millisecond

	// FetchBackoffMax caps the exponential backoff delay
	FetchBackoffMax = 8 * time.Second

	// FetchWorkers is the number of concurrent feed fetches
	FetchWorkers = 5
)

// Cache Constants
const (
	// CacheTTL is how long an aggregation result is reused before
	// sources are refetched
	CacheTTL = 15 * time.Minute

	// CacheKey is the redis key holding the article snapshot
	CacheKey = "newsletter:articles"
)

// Digest Constants
const (
	// DefaultPeriodDays is the digest lookback window
	DefaultPeriodDays = 7

	// DefaultTopN is the maximum number of articles in a digest
	DefaultTopN = 10

	// OutputDir is where digest artifacts are written
	OutputDir = "dist"

	// HTMLName and CSVName are the digest artifact file names
	HTMLName = "newsletter.html"
	CSVName  = "newsletter.csv"
)

// View Constants
const (
	// DefaultPerPage is the article page size for the interactive view
	DefaultPerPage = 10
)
