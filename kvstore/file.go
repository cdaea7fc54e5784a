package kvstore

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/Vaibhav01-bit/WordWave/metrics"
)

// FileStore keeps one JSON file per key inside a directory. It is the
// default backend.
type FileStore struct {
	dir string
}

// NewFileStore creates the backing directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(key string, into interface{}) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] Failed to read %s: %v", key, err)
		}
		metrics.KVOperationsTotal.WithLabelValues("load", "file", "absent").Inc()
		return false
	}

	if err := json.Unmarshal(data, into); err != nil {
		log.Printf("[WARN] Corrupt value under %s, treating as absent: %v", key, err)
		metrics.KVOperationsTotal.WithLabelValues("load", "file", "corrupt").Inc()
		return false
	}

	metrics.KVOperationsTotal.WithLabelValues("load", "file", "ok").Inc()
	return true
}

func (s *FileStore) Save(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("[ERROR] Failed to encode value for %s: %v", key, err)
		metrics.KVOperationsTotal.WithLabelValues("save", "file", "error").Inc()
		return
	}

	if err := os.WriteFile(s.path(key), data, 0o600); err != nil {
		log.Printf("[ERROR] Failed to write %s: %v", key, err)
		metrics.KVOperationsTotal.WithLabelValues("save", "file", "error").Inc()
		return
	}

	metrics.KVOperationsTotal.WithLabelValues("save", "file", "ok").Inc()
}

func (s *FileStore) Clear(key string) {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		log.Printf("[ERROR] Failed to clear %s: %v", key, err)
		metrics.KVOperationsTotal.WithLabelValues("clear", "file", "error").Inc()
		return
	}
	metrics.KVOperationsTotal.WithLabelValues("clear", "file", "ok").Inc()
}
