// internal/service/game/game.go
package game

import (
	"context"
	"fmt"
	"time"

	"gameads-service/internal/domain/game"
	xerrors "gameads-service/internal/pkg/errors"

	"go.uber.org/zap"
)

const (
	featuredLimit    = 5
	newReleasesLimit = 6
)

// GameStore is the persistence contract for catalog listings.
type GameStore interface {
	List(ctx context.Context, filter game.ListFilter) ([]*game.Game, error)
	ListAll(ctx context.Context) ([]*game.Game, error)
	NewReleases(ctx context.Context, limit int) ([]*game.Game, error)
	GetByID(ctx context.Context, id int64) (*game.Game, error)
	Create(ctx context.Context, g *game.Game) error
	Update(ctx context.Context, g *game.Game) error
	UpdateOrder(ctx context.Context, updates []game.OrderUpdate) error
	Delete(ctx context.Context, id int64) error
}

type GameService struct {
	store  GameStore
	logger *zap.Logger
}

func NewGameService(store GameStore, logger *zap.Logger) *GameService {
	return &GameService{store: store, logger: logger}
}

// List returns active games for the public site.
func (s *GameService) List(ctx context.Context, filter game.ListFilter) ([]*game.Game, error) {
	return s.store.List(ctx, filter)
}

// ListAll returns everything, inactive listings included, for the dashboard.
func (s *GameService) ListAll(ctx context.Context) ([]*game.Game, error) {
	return s.store.ListAll(ctx)
}

// Featured returns the homepage carousel games.
func (s *GameService) Featured(ctx context.Context) ([]*game.Game, error) {
	return s.store.List(ctx, game.ListFilter{FeaturedOnly: true, Limit: featuredLimit})
}

// NewReleases returns the latest releases strip.
func (s *GameService) NewReleases(ctx context.Context) ([]*game.Game, error) {
	return s.store.NewReleases(ctx, newReleasesLimit)
}

// Get returns one game by id.
func (s *GameService) Get(ctx context.Context, id int64) (*game.Game, error) {
	return s.store.GetByID(ctx, id)
}

func fromRequest(req *game.UpsertRequest) *game.Game {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &game.Game{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Image:            req.Image,
		Thumbnail:        req.Thumbnail,
		Category:         req.Category,
		Platforms:        req.Platforms,
		Links:            req.Links,
		TrailerURL:       req.TrailerURL,
		Featured:         req.Featured,
		IsNewRelease:     req.IsNewRelease,
		Order:            req.Order,
		ReleaseDate:      time.Now(),
		IsActive:         active,
	}
}

// Create adds a listing.
func (s *GameService) Create(ctx context.Context, req *game.UpsertRequest) (*game.Game, error) {
	if !game.ValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", xerrors.ErrInvalidInput, req.Category)
	}

	g := fromRequest(req)
	if err := s.store.Create(ctx, g); err != nil {
		return nil, err
	}

	s.logger.Info("game created", zap.Int64("id", g.ID), zap.String("title", g.Title))
	return g, nil
}

// Update overwrites a listing, keeping its original release date.
func (s *GameService) Update(ctx context.Context, id int64, req *game.UpsertRequest) (*game.Game, error) {
	if !game.ValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", xerrors.ErrInvalidInput, req.Category)
	}

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	g := fromRequest(req)
	g.ID = id
	g.ReleaseDate = existing.ReleaseDate
	g.CreatedAt = existing.CreatedAt

	if err := s.store.Update(ctx, g); err != nil {
		return nil, err
	}

	s.logger.Info("game updated", zap.Int64("id", id))
	return g, nil
}

// Reorder repositions listings in the catalog ordering.
func (s *GameService) Reorder(ctx context.Context, req *game.ReorderRequest) error {
	if err := s.store.UpdateOrder(ctx, req.Games); err != nil {
		return err
	}
	s.logger.Info("games reordered", zap.Int("count", len(req.Games)))
	return nil
}

// Delete removes a listing.
func (s *GameService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("game deleted", zap.Int64("id", id))
	return nil
}
