package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/arthuhr-heslault/ai-newsletter/aggregate"
	"github.com/arthuhr-heslault/ai-newsletter/api"
	"github.com/arthuhr-heslault/ai-newsletter/config"
	"github.com/arthuhr-heslault/ai-newsletter/feeds"
	"github.com/arthuhr-heslault/ai-newsletter/summarize"
	"github.com/arthuhr-heslault/ai-newsletter/types"

	"github.com/joho/godotenv"
)

func main() {
	log.SetOutput(os.Stderr)

	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()
	cfg := config.FromEnv()

	registry, err := feeds.LoadRegistry(cfg.SourcesFile)
	if err != nil {
		log.Fatalf("Failed to load source registry: %v", err)
	}
	log.Printf("Registry loaded: %d source(s)", len(registry.Sources()))

	fetcher := feeds.NewFetcher(feeds.DefaultRetryPolicy())
	normalizer := feeds.NewNormalizer(cfg.DisplayZone)
	aggregator := aggregate.NewAggregator(registry, fetcher, normalizer)

	var store aggregate.SnapshotStore
	if cfg.RedisAddr != "" {
		if rs := aggregate.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, config.CacheTTL); rs != nil {
			log.Printf("Using redis cache store at %s", cfg.RedisAddr)
			store = rs
			defer rs.Close()
		}
	}
	cache := aggregate.NewCache(func(ctx context.Context) []types.Article {
		return aggregator.Aggregate(ctx)
	}, store, config.CacheTTL)

	summarizer := summarize.New()
	if summarizer.Available() {
		log.Println("Summarization capability: available")
	} else {
		log.Println("Summarization capability: not configured")
	}

	r := api.NewRouter(api.Deps{
		Registry:   registry,
		Cache:      cache,
		Summarizer: summarizer,
	})

	addr := ":" + cfg.Port
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/sources")
	log.Println("  GET  /api/articles")
	log.Println("  POST /api/refresh")
	log.Println("  POST /api/summarize")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
