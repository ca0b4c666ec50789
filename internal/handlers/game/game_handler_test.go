package game

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gameads-service/internal/domain/game"
	xerrors "gameads-service/internal/pkg/errors"
	gameUsecase "gameads-service/internal/service/game"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGameStore struct {
	games  map[int64]*game.Game
	nextID int64
}

func newFakeGameStore() *fakeGameStore {
	return &fakeGameStore{games: map[int64]*game.Game{}, nextID: 1}
}

func (f *fakeGameStore) List(ctx context.Context, filter game.ListFilter) ([]*game.Game, error) {
	var out []*game.Game
	for _, g := range f.games {
		if !g.IsActive {
			continue
		}
		if filter.Category != "" && g.Category != filter.Category {
			continue
		}
		if filter.FeaturedOnly && !g.Featured {
			continue
		}
		out = append(out, g)
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeGameStore) ListAll(ctx context.Context) ([]*game.Game, error) {
	var out []*game.Game
	for _, g := range f.games {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGameStore) NewReleases(ctx context.Context, limit int) ([]*game.Game, error) {
	var out []*game.Game
	for _, g := range f.games {
		if g.IsActive && g.IsNewRelease {
			out = append(out, g)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeGameStore) GetByID(ctx context.Context, id int64) (*game.Game, error) {
	g, ok := f.games[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGameStore) Create(ctx context.Context, g *game.Game) error {
	g.ID = f.nextID
	f.nextID++
	g.CreatedAt = time.Now()
	g.UpdatedAt = g.CreatedAt
	cp := *g
	f.games[g.ID] = &cp
	return nil
}

func (f *fakeGameStore) Update(ctx context.Context, g *game.Game) error {
	if _, ok := f.games[g.ID]; !ok {
		return xerrors.ErrNotFound
	}
	cp := *g
	f.games[g.ID] = &cp
	return nil
}

func (f *fakeGameStore) UpdateOrder(ctx context.Context, updates []game.OrderUpdate) error {
	for _, u := range updates {
		if g, ok := f.games[u.ID]; ok {
			g.Order = u.Order
		}
	}
	return nil
}

func (f *fakeGameStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.games[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(f.games, id)
	return nil
}

func setupRouter(t *testing.T) (*gin.Engine, *fakeGameStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newFakeGameStore()
	svc := gameUsecase.NewGameService(store, zap.NewNop())
	h := NewGameHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/sitemap.xml", h.Sitemap("https://games.example.com"))
	r.GET("/api/games", h.List)
	r.GET("/api/games/featured", h.Featured)
	r.GET("/api/games/:id", h.Get)
	r.POST("/api/games", h.Create)
	r.PATCH("/api/games/reorder", h.Reorder)
	r.PUT("/api/games/:id", h.Update)
	r.DELETE("/api/games/:id", h.Delete)
	return r, store
}

func postGame(t *testing.T, r *gin.Engine, req gin.H) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(req))
	httpReq := httptest.NewRequest(http.MethodPost, "/api/games", &buf)
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

func validPayload() gin.H {
	return gin.H{
		"title":            "Space Farm",
		"description":      "Grow crops in orbit.",
		"shortDescription": "Orbital farming sim",
		"image":            "https://cdn.example.com/space-farm.png",
		"category":         "Simulation",
		"platforms":        []string{"iOS", "Android"},
	}
}

func TestCreateAndGetGame(t *testing.T) {
	r, _ := setupRouter(t)

	w := postGame(t, r, validPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var created game.Game
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/games/1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCreateGameMissingFields(t *testing.T) {
	r, _ := setupRouter(t)

	w := postGame(t, r, gin.H{"title": "No description"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateGameBadCategory(t *testing.T) {
	r, _ := setupRouter(t)

	payload := validPayload()
	payload["category"] = "Bogus"
	w := postGame(t, r, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetGameNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/games/99", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Game not found")

	req = httptest.NewRequest(http.MethodGet, "/api/games/not-a-number", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteGame(t *testing.T) {
	r, store := setupRouter(t)

	require.Equal(t, http.StatusCreated, postGame(t, r, validPayload()).Code)
	require.Len(t, store.games, 1)

	req := httptest.NewRequest(http.MethodDelete, "/api/games/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.games)
}

func TestReorderGames(t *testing.T) {
	r, store := setupRouter(t)
	require.Equal(t, http.StatusCreated, postGame(t, r, validPayload()).Code)
	require.Equal(t, http.StatusCreated, postGame(t, r, validPayload()).Code)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(gin.H{
		"games": []gin.H{{"id": 1, "order": 2}, {"id": 2, "order": 1}},
	}))
	req := httptest.NewRequest(http.MethodPatch, "/api/games/reorder", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Games reordered successfully")
	assert.Equal(t, 2, store.games[1].Order)
	assert.Equal(t, 1, store.games[2].Order)

	// Empty list fails validation.
	buf.Reset()
	require.NoError(t, json.NewEncoder(&buf).Encode(gin.H{"games": []gin.H{}}))
	req = httptest.NewRequest(http.MethodPatch, "/api/games/reorder", &buf)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSitemap(t *testing.T) {
	r, _ := setupRouter(t)
	require.Equal(t, http.StatusCreated, postGame(t, r, validPayload()).Code)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, xmlHeaderPrefix))
	assert.Contains(t, body, "<loc>https://games.example.com/</loc>")
	assert.Contains(t, body, "<loc>https://games.example.com/game/1</loc>")
	assert.Contains(t, body, "<changefreq>monthly</changefreq>")
}

const xmlHeaderPrefix = "<?xml"
