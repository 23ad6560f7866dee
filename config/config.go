package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config is the runtime configuration, resolved from the environment.
// Load .env beforehand (godotenv) if one is present.
type Config struct {
	// Port for the API server
	Port string

	// SourcesFile optionally overrides the built-in registry (YAML)
	SourcesFile string

	// PeriodDays and TopN shape the batch digest
	PeriodDays int
	TopN       int

	// Email settings; Recipient empty means sending is skipped
	EmailSender   string
	EmailPassword string
	Recipient     string
	SMTPHost      string
	SMTPPort      int

	// RedisAddr, when set, enables the redis cache snapshot store
	RedisAddr     string
	RedisPassword string

	// S3Bucket, when set, enables digest artifact uploads
	S3Bucket string
	S3Region string
	S3Prefix string

	// DisplayZone is the zone articles are normalized into
	DisplayZone *time.Location
}

// FromEnv builds a Config from environment variables, applying defaults.
func FromEnv() Config {
	return Config{
		Port:          GetEnvOrDefault("PORT", "8080"),
		SourcesFile:   os.Getenv("SOURCES_FILE"),
		PeriodDays:    getEnvInt("PERIOD_DAYS", DefaultPeriodDays),
		TopN:          getEnvInt("TOP_N", DefaultTopN),
		EmailSender:   os.Getenv("EMAIL_SENDER"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
		Recipient:     os.Getenv("RECIPIENT_EMAIL"),
		SMTPHost:      GetEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		S3Region:      os.Getenv("S3_REGION"),
		S3Prefix:      os.Getenv("S3_PREFIX"),
		DisplayZone:   displayZone(),
	}
}

// GetEnvOrDefault returns the environment value for key, or def when unset.
func GetEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

// displayZone resolves DIGEST_TZ as an IANA zone name, falling back to
// the process-local zone.
func displayZone() *time.Location {
	name := os.Getenv("DIGEST_TZ")
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Warning: invalid DIGEST_TZ=%q, using local zone", name)
		return time.Local
	}
	return loc
}
