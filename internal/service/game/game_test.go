package game

import (
	"context"
	"testing"
	"time"

	"gameads-service/internal/domain/game"
	xerrors "gameads-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeGameStore keeps listings in memory keyed by id.
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

func validRequest() *game.UpsertRequest {
	return &game.UpsertRequest{
		Title:            "Space Farm",
		Description:      "Grow crops in orbit.",
		ShortDescription: "Orbital farming sim",
		Image:            "https://cdn.example.com/space-farm.png",
		Category:         "Simulation",
		Platforms:        []string{"iOS", "Android"},
	}
}

func TestCreateGame(t *testing.T) {
	store := newFakeGameStore()
	svc := NewGameService(store, zap.NewNop())

	g, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotZero(t, g.ID)
	assert.True(t, g.IsActive)
	assert.False(t, g.ReleaseDate.IsZero())
}

func TestCreateGameRejectsUnknownCategory(t *testing.T) {
	store := newFakeGameStore()
	svc := NewGameService(store, zap.NewNop())

	req := validRequest()
	req.Category = "Roguelike-Deckbuilder"
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
	assert.Empty(t, store.games)
}

func TestCreateGameExplicitInactive(t *testing.T) {
	store := newFakeGameStore()
	svc := NewGameService(store, zap.NewNop())

	inactive := false
	req := validRequest()
	req.IsActive = &inactive

	g, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, g.IsActive)
}

func TestUpdateGameKeepsReleaseDate(t *testing.T) {
	store := newFakeGameStore()
	svc := NewGameService(store, zap.NewNop())

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Title = "Space Farm Deluxe"
	updated, err := svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Space Farm Deluxe", updated.Title)
	assert.Equal(t, created.ReleaseDate, updated.ReleaseDate)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateMissingGame(t *testing.T) {
	store := newFakeGameStore()
	svc := NewGameService(store, zap.NewNop())

	_, err := svc.Update(context.Background(), 42, validRequest())
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestFeaturedFiltersAndCaps(t *testing.T) {
	store := newFakeGameStore()
	svc := NewGameService(store, zap.NewNop())

	for i := 0; i < 7; i++ {
		req := validRequest()
		req.Featured = true
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}
	req := validRequest()
	req.Featured = false
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	games, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, games, 5)
	for _, g := range games {
		assert.True(t, g.Featured)
	}
}

func TestReorder(t *testing.T) {
	store := newFakeGameStore()
	svc := NewGameService(store, zap.NewNop())

	a, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	b, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	err = svc.Reorder(context.Background(), &game.ReorderRequest{Games: []game.OrderUpdate{
		{ID: a.ID, Order: 2},
		{ID: b.ID, Order: 1},
	}})
	require.NoError(t, err)

	assert.Equal(t, 2, store.games[a.ID].Order)
	assert.Equal(t, 1, store.games[b.ID].Order)
}

func TestDeleteGame(t *testing.T) {
	store := newFakeGameStore()
	svc := NewGameService(store, zap.NewNop())

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), xerrors.ErrNotFound)
}
