package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port    string
	DataDir string

	// Optional backends. Empty means the feature is disabled.
	MongoURI string
	NATSURL  string

	SummaryAPIURL  string
	SummaryAPIKey  string
	SummaryTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		Port:           getenv("PORT", "8080"),
		DataDir:        getenv("DATA_DIR", "./data"),
		MongoURI:       os.Getenv("MONGO_URI"),
		NATSURL:        os.Getenv("NATS_URL"),
		SummaryAPIURL:  os.Getenv("SUMMARY_API_URL"),
		SummaryAPIKey:  os.Getenv("SUMMARY_API_KEY"),
		SummaryTimeout: 30 * time.Second,
	}

	if v := os.Getenv("SUMMARY_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			log.Printf("[WARN] Invalid SUMMARY_TIMEOUT_SECONDS %q, using default", v)
		} else {
			cfg.SummaryTimeout = time.Duration(seconds) * time.Second
		}
	}

	if cfg.SummaryAPIURL == "" {
		log.Printf("[WARN] SUMMARY_API_URL not set, trending summaries will fail with the error sentinel")
	}

	return cfg
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
