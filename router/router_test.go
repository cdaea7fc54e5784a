package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vaibhav01-bit/WordWave/kvstore"
	"github.com/Vaibhav01-bit/WordWave/model"
	"github.com/Vaibhav01-bit/WordWave/notify"
	"github.com/Vaibhav01-bit/WordWave/store"
)

type stubSummarizer struct{}

func (stubSummarizer) Summarize(_ context.Context, title, _ string) (string, error) {
	return "summary of " + title, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	articles := store.NewArticleStore(kv, stubSummarizer{}, notify.LogNotifier{})
	articles.Initialize()

	sessions := store.NewSessionStore(kv)
	sessions.Initialize()

	return Setup(articles, sessions)
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, role string) {
	t.Helper()
	body := `{"id":"u1","username":"alice","email":"alice@example.com","role":"` + role + `"}`
	w := do(r, http.MethodPost, "/wordwave-api/auth/login", body)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/", "/health", "/ready"} {
		w := do(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestListArticlesServesSeed(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/wordwave-api/articles", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count    int             `json:"count"`
		Articles []model.Article `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.True(t, resp.Articles[0].Published)
	assert.Equal(t, 15, resp.Articles[0].Likes)
}

func TestSubmitRequiresLogin(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/wordwave-api/articles", `{"title":"T","content":"c"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitPublishLikeSearchFlow(t *testing.T) {
	r := newTestRouter(t)
	login(t, r, model.RoleAdmin)

	w := do(r, http.MethodPost, "/wordwave-api/articles",
		`{"title":"Gopher Diaries","content":"notes on building small services"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Article
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.Published)
	assert.Equal(t, "alice", created.Author)

	// Drafts are invisible on the public list.
	w = do(r, http.MethodGet, "/wordwave-api/articles?q=gopher", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)

	// Publish, then it shows up.
	w = do(r, http.MethodPatch, "/wordwave-api/articles/"+created.ID+"/status", `{"published":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/wordwave-api/articles?q=gopher", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.ID)

	// Like it.
	w = do(r, http.MethodPost, "/wordwave-api/articles/"+created.ID+"/like", "")
	require.Equal(t, http.StatusOK, w.Code)
	var liked model.Article
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &liked))
	assert.Equal(t, 1, liked.Likes)
}

func TestAdminRoutesForbiddenForUsers(t *testing.T) {
	r := newTestRouter(t)
	login(t, r, model.RoleUser)

	w := do(r, http.MethodPatch, "/wordwave-api/articles/1/status", `{"published":false}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodDelete, "/wordwave-api/articles/1", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodPost, "/wordwave-api/trending/1", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTrendingPromotion(t *testing.T) {
	r := newTestRouter(t)
	login(t, r, model.RoleAdmin)

	// No trending slot before the first promotion.
	w := do(r, http.MethodGet, "/wordwave-api/trending", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/wordwave-api/trending/1", "")
	require.Equal(t, http.StatusAccepted, w.Code)

	var placeholder model.TrendingArticle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placeholder))
	assert.Equal(t, store.PlaceholderSummary, placeholder.Summary)

	assert.Eventually(t, func() bool {
		w := do(r, http.MethodGet, "/wordwave-api/trending", "")
		return w.Code == http.StatusOK && strings.Contains(w.Body.String(), "summary of")
	}, time.Second, 5*time.Millisecond)
}

func TestPromoteUnknownArticle(t *testing.T) {
	r := newTestRouter(t)
	login(t, r, model.RoleAdmin)

	w := do(r, http.MethodPost, "/wordwave-api/trending/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/wordwave-api/auth/session", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	login(t, r, model.RoleUser)

	w = do(r, http.MethodGet, "/wordwave-api/auth/session", "")
	assert.Contains(t, w.Body.String(), `"authenticated":true`)

	w = do(r, http.MethodPost, "/wordwave-api/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/login"`)

	w = do(r, http.MethodGet, "/wordwave-api/auth/session", "")
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}

func TestProfileListsOwnDrafts(t *testing.T) {
	r := newTestRouter(t)
	login(t, r, model.RoleUser)

	w := do(r, http.MethodPost, "/wordwave-api/articles", `{"title":"Draft","content":"wip"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodGet, "/wordwave-api/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Draft")
}

func TestWeeklyPopularEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/wordwave-api/popular", "")
	require.Equal(t, http.StatusOK, w.Code)

	// The seed article is published this week with 15 likes.
	var resp struct {
		Count    int             `json:"count"`
		Articles []model.Article `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, 15, resp.Articles[0].Likes)
}
