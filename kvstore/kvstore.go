// Package kvstore provides the flat key-value persistence layer backing the
// article and session stores. Values are JSON-encoded under string keys.
//
// The contract is best-effort: a missing or corrupt value loads as absent and
// a failed write is logged and swallowed. In-memory state stays authoritative
// for the rest of the session. Concurrent writers are not synchronized;
// last write wins.
package kvstore

// Store keys, one per logical dataset. Stable across the process lifetime.
const (
	ArticlesKey = "wordwave_articles"
	TrendingKey = "wordwave_trending_article"
	AuthKey     = "wordwave_auth"
	UserKey     = "wordwave_user"
)

// KV is the persisted store adapter. Load reports false when the key is
// absent or its value cannot be decoded; the caller substitutes a default.
type KV interface {
	Load(key string, into interface{}) bool
	Save(key string, value interface{})
	Clear(key string)
}
