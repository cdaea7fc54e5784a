// Package store owns the application state: the article collection with its
// trending slot and derived weekly-popular view, and the user session. State
// is mirrored to the persisted key-value adapter after every mutation.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Vaibhav01-bit/WordWave/kvstore"
	"github.com/Vaibhav01-bit/WordWave/metrics"
	"github.com/Vaibhav01-bit/WordWave/model"
	"github.com/Vaibhav01-bit/WordWave/notify"
	"github.com/Vaibhav01-bit/WordWave/summary"
)

// Summary sentinels held in the trending slot while the collaborator call is
// in flight or after it failed.
const (
	PlaceholderSummary = "Generating summary..."
	ErrorSummary       = "Could not generate summary. Please try again."
)

// Weekly-popular window and size.
const (
	popularWindow = 7 * 24 * time.Hour
	popularLimit  = 5
)

var (
	// ErrNotFound is returned when a mutation targets an unknown article id.
	ErrNotFound = errors.New("article not found")

	// ErrNoAuthor is returned when an article is submitted without an
	// authenticated author. Nothing is written.
	ErrNoAuthor = errors.New("article author is required")
)

// ArticleStore holds the article collection, the single trending slot, and
// the derived weekly-popular list. All state is guarded by one mutex; every
// mutation persists a full snapshot and recomputes the popular view before
// returning.
type ArticleStore struct {
	mu         sync.RWMutex
	kv         kvstore.KV
	summarizer summary.Summarizer
	notifier   notify.Notifier

	articles  []model.Article
	trending  *model.TrendingArticle
	popular   []model.Article
	promotion uint64

	initialized bool
	now         func() time.Time
}

// NewArticleStore wires the store to its collaborators. Initialize must be
// called before any other operation.
func NewArticleStore(kv kvstore.KV, summarizer summary.Summarizer, notifier notify.Notifier) *ArticleStore {
	return &ArticleStore{
		kv:         kv,
		summarizer: summarizer,
		notifier:   notifier,
		now:        time.Now,
	}
}

// sampleArticle is seeded when storage is empty so the app never starts
// blank.
func sampleArticle(now time.Time) model.Article {
	content := "WordWave is a community blogging platform where anyone can write, " +
		"share, and discover articles. Submit a draft from the submit page and an " +
		"admin will review and publish it for everyone to read.\n\n" +
		"Once published, readers can like your article, and the most liked articles " +
		"of the week show up in the Most Popular This Week list. Admins can also " +
		"promote a standout article to the trending slot, where a short summary is " +
		"generated automatically to entice readers.\n\n" +
		"Whether you are here to write or just to read, welcome aboard. Have a look " +
		"around, find something interesting, and leave a like when an article earns it."
	return model.Article{
		ID:          "1",
		Title:       "Getting Started with WordWave",
		Content:     content,
		Published:   true,
		CreatedAt:   now,
		Likes:       15,
		Author:      "admin",
		ReadingTime: model.ReadingTime(content),
	}
}

// Initialize loads persisted state, seeding a single sample article when the
// collection is absent or empty. Safe to call once; later calls are no-ops.
func (s *ArticleStore) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		log.Printf("[WARN] Article store already initialized")
		return
	}

	var articles []model.Article
	if !s.kv.Load(kvstore.ArticlesKey, &articles) || len(articles) == 0 {
		articles = []model.Article{sampleArticle(s.now())}
		log.Printf("[INFO] No stored articles found, seeding sample article")
	}
	s.articles = migrate(articles)

	var trending model.TrendingArticle
	if s.kv.Load(kvstore.TrendingKey, &trending) {
		s.trending = &trending
	}

	s.recomputePopular()
	s.initialized = true
	metrics.ArticlesTotal.Set(float64(len(s.articles)))
	log.Printf("[INFO] Article store initialized with %d articles", len(s.articles))
}

// migrate fills fields that older persisted snapshots lack.
func migrate(articles []model.Article) []model.Article {
	for i := range articles {
		if articles[i].Author == "" {
			articles[i].Author = "unknown"
		}
		if articles[i].ReadingTime < 1 {
			articles[i].ReadingTime = model.ReadingTime(articles[i].Content)
		}
		if articles[i].Likes < 0 {
			articles[i].Likes = 0
		}
	}
	return articles
}

// NewArticle is the caller-supplied part of a submission.
type NewArticle struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AddArticle creates an unpublished article for the given author and
// prepends it to the collection.
func (s *ArticleStore) AddArticle(data NewArticle, author string) (model.Article, error) {
	if author == "" {
		metrics.ArticleMutationsTotal.WithLabelValues("add", "rejected").Inc()
		return model.Article{}, ErrNoAuthor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	article := model.Article{
		ID:          uuid.NewString(),
		Title:       data.Title,
		Content:     data.Content,
		Published:   false,
		CreatedAt:   s.now(),
		Likes:       0,
		Author:      author,
		ReadingTime: model.ReadingTime(data.Content),
	}

	s.articles = append([]model.Article{article}, s.articles...)
	s.persistArticles()
	s.recomputePopular()

	metrics.ArticleMutationsTotal.WithLabelValues("add", "ok").Inc()
	log.Printf("[INFO] Article %s submitted by %s", article.ID, author)
	return article, nil
}

// UpdateArticleStatus publishes or unpublishes an article.
func (s *ArticleStore) UpdateArticleStatus(id string, published bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		metrics.ArticleMutationsTotal.WithLabelValues("status", "not_found").Inc()
		return ErrNotFound
	}

	s.articles[i].Published = published
	s.persistArticles()
	s.recomputePopular()

	state := "Unpublished"
	if published {
		state = "Published"
	}
	s.notifier.Notify(notify.Event{
		Severity: notify.SeverityInfo,
		Title:    "Article " + state,
		Message:  fmt.Sprintf("%q has been successfully %s.", s.articles[i].Title, strings.ToLower(state)),
	})

	metrics.ArticleMutationsTotal.WithLabelValues("status", "ok").Inc()
	return nil
}

// DeleteArticle removes an article. Deleting an unknown id reports
// ErrNotFound and writes nothing, so repeated deletes are safe.
func (s *ArticleStore) DeleteArticle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		metrics.ArticleMutationsTotal.WithLabelValues("delete", "not_found").Inc()
		return ErrNotFound
	}

	title := s.articles[i].Title
	s.articles = append(s.articles[:i], s.articles[i+1:]...)
	s.persistArticles()
	s.recomputePopular()

	s.notifier.Notify(notify.Event{
		Severity: notify.SeverityInfo,
		Title:    "Article Deleted",
		Message:  fmt.Sprintf("%q has been successfully deleted.", title),
	})

	metrics.ArticleMutationsTotal.WithLabelValues("delete", "ok").Inc()
	return nil
}

// LikeArticle increments the like counter by one. Unknown ids are a no-op;
// the second return reports whether the article was found.
func (s *ArticleStore) LikeArticle(id string) (model.Article, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		metrics.ArticleMutationsTotal.WithLabelValues("like", "not_found").Inc()
		return model.Article{}, false
	}

	s.articles[i].Likes++
	s.persistArticles()
	s.recomputePopular()

	metrics.ArticleMutationsTotal.WithLabelValues("like", "ok").Inc()
	return s.articles[i], true
}

// GetArticleByID is a pure lookup with no side effects.
func (s *ArticleStore) GetArticleByID(id string) (model.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Article{}, false
	}
	return s.articles[i], true
}

// Articles returns every article, newest first.
func (s *ArticleStore) Articles() []model.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortByCreatedAtDesc(s.articles)
}

// Published returns published articles, newest first.
func (s *ArticleStore) Published() []model.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	published := make([]model.Article, 0, len(s.articles))
	for _, a := range s.articles {
		if a.Published {
			published = append(published, a)
		}
	}
	return sortByCreatedAtDesc(published)
}

// Search filters published articles by a case-insensitive substring match
// over title and content. An empty query returns all published articles.
func (s *ArticleStore) Search(query string) []model.Article {
	published := s.Published()
	if query == "" {
		return published
	}

	q := strings.ToLower(query)
	matched := published[:0]
	for _, a := range published {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Content), q) {
			matched = append(matched, a)
		}
	}
	return matched
}

// ByAuthor returns the author's own articles, newest first, drafts included.
func (s *ArticleStore) ByAuthor(author string) []model.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	own := make([]model.Article, 0)
	for _, a := range s.articles {
		if a.Author == author {
			own = append(own, a)
		}
	}
	return sortByCreatedAtDesc(own)
}

// WeeklyPopular returns the derived top-5-by-likes view over published
// articles from the trailing 7 days.
func (s *ArticleStore) WeeklyPopular() []model.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	popular := make([]model.Article, len(s.popular))
	copy(popular, s.popular)
	return popular
}

// Trending returns the current trending slot, if one has been promoted.
func (s *ArticleStore) Trending() (model.TrendingArticle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.trending == nil {
		return model.TrendingArticle{}, false
	}
	return *s.trending, true
}

// SetTrendingArticle promotes an article to the trending slot in two phases:
// the slot is synchronously replaced with a placeholder record, then the
// summary is generated in the background and the slot finalized. Each
// promotion carries a token; a completion that lost to a newer promotion is
// discarded instead of clobbering the newer slot.
func (s *ArticleStore) SetTrendingArticle(article model.Article) {
	s.mu.Lock()
	s.promotion++
	token := s.promotion
	s.trending = &model.TrendingArticle{Title: article.Title, Summary: PlaceholderSummary}
	s.kv.Save(kvstore.TrendingKey, s.trending)
	s.mu.Unlock()

	s.notifier.Notify(notify.Event{
		Severity: notify.SeverityInfo,
		Title:    "Trending Article Updated",
		Message:  fmt.Sprintf("%q is now trending. Summary is being generated.", article.Title),
	})
	metrics.TrendingPromotionsTotal.WithLabelValues("started").Inc()

	go s.resolveSummary(token, article)
}

func (s *ArticleStore) resolveSummary(token uint64, article model.Article) {
	result, err := s.summarizer.Summarize(context.Background(), article.Title, article.Content)

	s.mu.Lock()
	if token != s.promotion {
		s.mu.Unlock()
		log.Printf("[INFO] Discarding stale summary for %q, a newer promotion exists", article.Title)
		metrics.TrendingPromotionsTotal.WithLabelValues("stale").Inc()
		return
	}

	if err != nil || result == "" {
		s.trending = &model.TrendingArticle{Title: article.Title, Summary: ErrorSummary}
		s.kv.Save(kvstore.TrendingKey, s.trending)
		s.mu.Unlock()

		log.Printf("[ERROR] Failed to generate trending summary for %q: %v", article.Title, err)
		s.notifier.Notify(notify.Event{
			Severity: notify.SeverityError,
			Title:    "Error",
			Message:  "Could not generate trending summary.",
		})
		metrics.TrendingPromotionsTotal.WithLabelValues("error").Inc()
		return
	}

	s.trending = &model.TrendingArticle{Title: article.Title, Summary: result}
	s.kv.Save(kvstore.TrendingKey, s.trending)
	s.mu.Unlock()

	log.Printf("[INFO] Trending summary generated for %q", article.Title)
	metrics.TrendingPromotionsTotal.WithLabelValues("ok").Inc()
}

// indexOf returns the position of the article with the given id, or -1.
// Callers must hold the lock.
func (s *ArticleStore) indexOf(id string) int {
	for i := range s.articles {
		if s.articles[i].ID == id {
			return i
		}
	}
	return -1
}

// persistArticles mirrors the full collection to the adapter. Callers must
// hold the lock.
func (s *ArticleStore) persistArticles() {
	s.kv.Save(kvstore.ArticlesKey, s.articles)
	metrics.ArticlesTotal.Set(float64(len(s.articles)))
}

// recomputePopular rebuilds the weekly-popular view from scratch. It is a
// pure function of the collection and the clock, cheap at this scale.
// Callers must hold the lock.
func (s *ArticleStore) recomputePopular() {
	s.popular = weeklyPopular(s.articles, s.now())
}

func weeklyPopular(articles []model.Article, now time.Time) []model.Article {
	cutoff := now.Add(-popularWindow)

	popular := make([]model.Article, 0, popularLimit)
	for _, a := range articles {
		if a.Published && a.CreatedAt.After(cutoff) {
			popular = append(popular, a)
		}
	}

	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].Likes > popular[j].Likes
	})

	if len(popular) > popularLimit {
		popular = popular[:popularLimit]
	}
	return popular
}

func sortByCreatedAtDesc(articles []model.Article) []model.Article {
	sorted := make([]model.Article, len(articles))
	copy(sorted, articles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}
