// Package handler exposes the stores over HTTP. Handlers translate requests
// into store operations and map store errors to JSON responses; they never
// touch store state directly.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vaibhav01-bit/WordWave/model"
	"github.com/Vaibhav01-bit/WordWave/store"
)

type ArticleHandler struct {
	articles *store.ArticleStore
	sessions *store.SessionStore
}

func NewArticleHandler(articles *store.ArticleStore, sessions *store.SessionStore) *ArticleHandler {
	return &ArticleHandler{articles: articles, sessions: sessions}
}

// ListArticles returns published articles newest first, optionally filtered
// by the q search parameter.
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	query := c.DefaultQuery("q", "")
	articles := h.articles.Search(query)

	c.JSON(http.StatusOK, gin.H{
		"count":    len(articles),
		"articles": articles,
	})
}

// ListAllArticles returns every article including drafts, for the admin
// review list.
func (h *ArticleHandler) ListAllArticles(c *gin.Context) {
	articles := h.articles.Articles()
	c.JSON(http.StatusOK, gin.H{
		"count":    len(articles),
		"articles": articles,
	})
}

// GetArticle returns a single article by id.
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, ok := h.articles.GetArticleByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}
	c.JSON(http.StatusOK, article)
}

type submitRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// SubmitArticle creates an unpublished article authored by the session user.
func (h *ArticleHandler) SubmitArticle(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := h.sessions.User()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required to submit articles"})
		return
	}

	article, err := h.articles.AddArticle(store.NewArticle{Title: req.Title, Content: req.Content}, user.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoAuthor) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, article)
}

// LikeArticle increments an article's like counter.
func (h *ArticleHandler) LikeArticle(c *gin.Context) {
	article, ok := h.articles.LikeArticle(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}
	c.JSON(http.StatusOK, article)
}

type statusRequest struct {
	Published *bool `json:"published" binding:"required"`
}

// UpdateStatus publishes or unpublishes an article.
func (h *ArticleHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.articles.UpdateArticleStatus(c.Param("id"), *req.Published); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated", "published": *req.Published})
}

// DeleteArticle removes an article.
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.articles.DeleteArticle(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}

// WeeklyPopular returns the derived most-popular-this-week view.
func (h *ArticleHandler) WeeklyPopular(c *gin.Context) {
	articles := h.articles.WeeklyPopular()
	c.JSON(http.StatusOK, gin.H{
		"count":    len(articles),
		"articles": articles,
	})
}

// GetTrending returns the current trending slot.
func (h *ArticleHandler) GetTrending(c *gin.Context) {
	trending, ok := h.articles.Trending()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no trending article"})
		return
	}
	c.JSON(http.StatusOK, trending)
}

// PromoteTrending promotes an article to the trending slot. The response
// carries the placeholder record; the summary resolves in the background.
func (h *ArticleHandler) PromoteTrending(c *gin.Context) {
	article, ok := h.articles.GetArticleByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	h.articles.SetTrendingArticle(article)

	// Respond with the placeholder record; the summary resolves in the
	// background and is visible on subsequent reads.
	c.JSON(http.StatusAccepted, model.TrendingArticle{
		Title:   article.Title,
		Summary: store.PlaceholderSummary,
	})
}

// Profile returns the session user's own articles, drafts included.
func (h *ArticleHandler) Profile(c *gin.Context) {
	user, ok := h.sessions.User()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}

	articles := h.articles.ByAuthor(user.Username)
	c.JSON(http.StatusOK, gin.H{
		"count":    len(articles),
		"articles": articles,
	})
}
