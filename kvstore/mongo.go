package kvstore

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Vaibhav01-bit/WordWave/metrics"
)

const mongoOpTimeout = 5 * time.Second

// kvDocument is how a slot is stored: one document per key, the JSON value
// kept verbatim so file and Mongo backends stay interchangeable.
type kvDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// MongoStore keeps each key as a document in a single collection. Same
// best-effort contract as FileStore; it does not use Mongo transactions.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection("kv")}
}

func (s *MongoStore) Load(key string, into interface{}) bool {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	var doc kvDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("[WARN] Failed to read %s from mongo: %v", key, err)
		}
		metrics.KVOperationsTotal.WithLabelValues("load", "mongo", "absent").Inc()
		return false
	}

	if err := json.Unmarshal([]byte(doc.Value), into); err != nil {
		log.Printf("[WARN] Corrupt value under %s, treating as absent: %v", key, err)
		metrics.KVOperationsTotal.WithLabelValues("load", "mongo", "corrupt").Inc()
		return false
	}

	metrics.KVOperationsTotal.WithLabelValues("load", "mongo", "ok").Inc()
	return true
}

func (s *MongoStore) Save(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("[ERROR] Failed to encode value for %s: %v", key, err)
		metrics.KVOperationsTotal.WithLabelValues("save", "mongo", "error").Inc()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	_, err = s.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		kvDocument{Key: key, Value: string(data)},
		options.Replace().SetUpsert(true))
	if err != nil {
		log.Printf("[ERROR] Failed to write %s to mongo: %v", key, err)
		metrics.KVOperationsTotal.WithLabelValues("save", "mongo", "error").Inc()
		return
	}

	metrics.KVOperationsTotal.WithLabelValues("save", "mongo", "ok").Inc()
}

func (s *MongoStore) Clear(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		log.Printf("[ERROR] Failed to clear %s from mongo: %v", key, err)
		metrics.KVOperationsTotal.WithLabelValues("clear", "mongo", "error").Inc()
		return
	}
	metrics.KVOperationsTotal.WithLabelValues("clear", "mongo", "ok").Inc()
}
