// internal/repository/postgres/game_repo.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gameads-service/internal/domain/game"
	xerrors "gameads-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type GameRepository struct {
	db *pgxpool.Pool
}

func NewGameRepository(db *pgxpool.Pool) *GameRepository {
	return &GameRepository{db: db}
}

const gameColumns = `
	id, title, description, short_description, image, thumbnail,
	category, platforms, links, trailer_url,
	featured, is_new_release, sort_order, release_date, is_active,
	created_at, updated_at
`

func scanGame(row pgx.Row) (*game.Game, error) {
	var g game.Game
	var linksJSON []byte

	err := row.Scan(
		&g.ID, &g.Title, &g.Description, &g.ShortDescription, &g.Image, &g.Thumbnail,
		&g.Category, &g.Platforms, &linksJSON, &g.TrailerURL,
		&g.Featured, &g.IsNewRelease, &g.Order, &g.ReleaseDate, &g.IsActive,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan game: %w", err)
	}

	if len(linksJSON) > 0 {
		if err := json.Unmarshal(linksJSON, &g.Links); err != nil {
			return nil, fmt.Errorf("failed to unmarshal store links: %w", err)
		}
	}
	return &g, nil
}

func (r *GameRepository) queryGames(ctx context.Context, query string, args ...interface{}) ([]*game.Game, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	games := make([]*game.Game, 0)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// List returns active games matching the filter, ordered for display.
func (r *GameRepository) List(ctx context.Context, filter game.ListFilter) ([]*game.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE is_active = TRUE`
	args := []interface{}{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.FeaturedOnly {
		query += " AND featured = TRUE"
	}

	query += " ORDER BY sort_order ASC, created_at DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	return r.queryGames(ctx, query, args...)
}

// ListAll returns every game including inactive ones, for the admin dashboard.
func (r *GameRepository) ListAll(ctx context.Context) ([]*game.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games ORDER BY sort_order ASC, created_at DESC`
	return r.queryGames(ctx, query)
}

// NewReleases returns the latest active new releases.
func (r *GameRepository) NewReleases(ctx context.Context, limit int) ([]*game.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games
		WHERE is_active = TRUE AND is_new_release = TRUE
		ORDER BY release_date DESC
		LIMIT $1
	`
	return r.queryGames(ctx, query, limit)
}

// GetByID retrieves a single game.
func (r *GameRepository) GetByID(ctx context.Context, id int64) (*game.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`
	return scanGame(r.db.QueryRow(ctx, query, id))
}

// Create inserts a new listing.
func (r *GameRepository) Create(ctx context.Context, g *game.Game) error {
	linksJSON, err := json.Marshal(g.Links)
	if err != nil {
		return fmt.Errorf("failed to marshal store links: %w", err)
	}

	query := `
		INSERT INTO games (
			title, description, short_description, image, thumbnail,
			category, platforms, links, trailer_url,
			featured, is_new_release, sort_order, release_date, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRow(ctx, query,
		g.Title, g.Description, g.ShortDescription, g.Image, g.Thumbnail,
		g.Category, pq.Array([]string(g.Platforms)), linksJSON, g.TrailerURL,
		g.Featured, g.IsNewRelease, g.Order, g.ReleaseDate, g.IsActive,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

// Update overwrites a listing.
func (r *GameRepository) Update(ctx context.Context, g *game.Game) error {
	linksJSON, err := json.Marshal(g.Links)
	if err != nil {
		return fmt.Errorf("failed to marshal store links: %w", err)
	}

	query := `
		UPDATE games
		SET title = $1, description = $2, short_description = $3, image = $4, thumbnail = $5,
		    category = $6, platforms = $7, links = $8, trailer_url = $9,
		    featured = $10, is_new_release = $11, sort_order = $12, release_date = $13, is_active = $14,
		    updated_at = NOW()
		WHERE id = $15
	`

	tag, err := r.db.Exec(ctx, query,
		g.Title, g.Description, g.ShortDescription, g.Image, g.Thumbnail,
		g.Category, pq.Array([]string(g.Platforms)), linksJSON, g.TrailerURL,
		g.Featured, g.IsNewRelease, g.Order, g.ReleaseDate, g.IsActive,
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// UpdateOrder repositions several listings in one round trip.
func (r *GameRepository) UpdateOrder(ctx context.Context, updates []game.OrderUpdate) error {
	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(`UPDATE games SET sort_order = $1, updated_at = NOW() WHERE id = $2`, u.Order, u.ID)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range updates {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to reorder games: %w", err)
		}
	}
	return nil
}

// Delete removes a listing permanently.
func (r *GameRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
