package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Vaibhav01-bit/WordWave/config"
	"github.com/Vaibhav01-bit/WordWave/kvstore"
	"github.com/Vaibhav01-bit/WordWave/metrics"
	"github.com/Vaibhav01-bit/WordWave/notify"
	"github.com/Vaibhav01-bit/WordWave/router"
	"github.com/Vaibhav01-bit/WordWave/store"
	"github.com/Vaibhav01-bit/WordWave/summary"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	metrics.Init("wordwave-service", "1.0", "production")

	kv := buildKV(cfg)
	notifier := buildNotifier(cfg)
	summarizer := summary.NewClient(cfg.SummaryAPIURL, cfg.SummaryAPIKey, cfg.SummaryTimeout)

	articles := store.NewArticleStore(kv, summarizer, notifier)
	articles.Initialize()

	sessions := store.NewSessionStore(kv)
	sessions.Initialize()

	r := router.Setup(articles, sessions)

	log.Printf("Starting the wordwave service on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// buildKV selects the persistence backend: Mongo when MONGO_URI is set,
// local JSON files otherwise.
func buildKV(cfg config.Config) kvstore.KV {
	if cfg.MongoURI != "" {
		log.Printf("Connecting to MongoDB at %s", cfg.MongoURI)
		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatalf("MongoDB connection error: %v", err)
		}
		if err := client.Ping(context.Background(), nil); err != nil {
			log.Fatalf("MongoDB ping error: %v", err)
		}
		log.Println("MongoDB connection successful")
		return kvstore.NewMongoStore(client.Database("wordwavedb"))
	}

	fileStore, err := kvstore.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to create data directory %s: %v", cfg.DataDir, err)
	}
	log.Printf("Using file storage at %s", cfg.DataDir)
	return fileStore
}

// buildNotifier always logs; when NATS_URL is set, events are additionally
// published for other services.
func buildNotifier(cfg config.Config) notify.Notifier {
	if cfg.NATSURL == "" {
		log.Println("NATS_URL not set, store events will only be logged")
		return notify.LogNotifier{}
	}

	natsNotifier, err := notify.NewNATSNotifier(cfg.NATSURL, notify.DefaultSubject)
	if err != nil {
		log.Printf("[ERROR] NATS connection failed, falling back to log notifier: %v", err)
		return notify.LogNotifier{}
	}

	log.Printf("Publishing store events to NATS at %s", cfg.NATSURL)
	return notify.MultiNotifier{notify.LogNotifier{}, natsNotifier}
}
