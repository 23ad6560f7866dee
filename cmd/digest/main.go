package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthuhr-heslault/ai-newsletter/aggregate"
	"github.com/arthuhr-heslault/ai-newsletter/config"
	"github.com/arthuhr-heslault/ai-newsletter/digest"
	"github.com/arthuhr-heslault/ai-newsletter/feeds"

	"github.com/joho/godotenv"
)

// The digest binary performs one scheduled run end to end: aggregate
// all sources, keep the trailing window, render HTML and CSV, then
// optionally email and upload the artifacts.
func main() {
	log.SetOutput(os.Stderr)
	log.Println("=== AI Newsletter Digest ===")

	_ = godotenv.Load()
	cfg := config.FromEnv()

	registry, err := feeds.LoadRegistry(cfg.SourcesFile)
	if err != nil {
		log.Fatalf("Failed to load source registry: %v", err)
	}

	ctx := context.Background()
	fetcher := feeds.NewFetcher(feeds.DefaultRetryPolicy())
	normalizer := feeds.NewNormalizer(cfg.DisplayZone)
	aggregator := aggregate.NewAggregator(registry, fetcher, normalizer)

	log.Printf("Aggregating %d source(s)...", len(registry.Sources()))
	all := aggregator.Aggregate(ctx)
	log.Printf("Aggregated %d article(s)", len(all))

	now := time.Now().In(cfg.DisplayZone)
	recent := aggregate.LatestWindow(all, cfg.PeriodDays, cfg.TopN, now)
	log.Printf("Window: last %d day(s), top %d -> %d article(s)", cfg.PeriodDays, cfg.TopN, len(recent))

	lead := digest.LeadSummary(recent)
	html, err := digest.Render(recent, cfg.PeriodDays, lead, now)
	if err != nil {
		log.Fatalf("Failed to render digest: %v", err)
	}

	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	htmlPath := filepath.Join(config.OutputDir, config.HTMLName)
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		log.Fatalf("Failed to write digest HTML: %v", err)
	}
	log.Printf("Wrote %s", htmlPath)

	csvPath := filepath.Join(config.OutputDir, config.CSVName)
	var sb strings.Builder
	if err := digest.WriteCSV(&sb, recent); err != nil {
		log.Fatalf("Failed to build digest CSV: %v", err)
	}
	if err := os.WriteFile(csvPath, []byte(sb.String()), 0o644); err != nil {
		log.Fatalf("Failed to write digest CSV: %v", err)
	}
	log.Printf("Wrote %s", csvPath)

	if err := digest.SendEmail(cfg, "Weekly AI Newsletter", html, []string{htmlPath, csvPath}); err != nil {
		log.Printf("Warning: email send failed: %v", err)
	}

	publisher, err := digest.NewPublisher(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3Prefix)
	if err != nil {
		log.Printf("Warning: failed to init S3 publisher: %v (uploads disabled)", err)
	}
	if publisher != nil {
		uploaded := publisher.Publish(ctx, []string{htmlPath, csvPath})
		log.Printf("S3 uploads complete: %d item(s)", uploaded)
	} else {
		log.Println("S3 not configured; skipping uploads")
	}

	log.Println("=== Digest Run Complete ===")
}
