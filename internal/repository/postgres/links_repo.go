// internal/repository/postgres/links_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gameads-service/internal/domain/links"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LinksRepository struct {
	db *pgxpool.Pool
}

func NewLinksRepository(db *pgxpool.Pool) *LinksRepository {
	return &LinksRepository{db: db}
}

const linksColumns = `
	id, tiktok, rednote, youtube, facebook, instagram,
	twitter, twitch, kick, linkedin, discord, reddit,
	created_at, updated_at
`

func scanLinks(row pgx.Row) (*links.PlatformLinks, error) {
	var p links.PlatformLinks
	err := row.Scan(
		&p.ID, &p.TikTok, &p.Rednote, &p.YouTube, &p.Facebook, &p.Instagram,
		&p.Twitter, &p.Twitch, &p.Kick, &p.LinkedIn, &p.Discord, &p.Reddit,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetOrCreate returns the singleton row, inserting an empty one if missing.
func (r *LinksRepository) GetOrCreate(ctx context.Context) (*links.PlatformLinks, error) {
	query := `SELECT ` + linksColumns + ` FROM platform_links ORDER BY id LIMIT 1`

	p, err := scanLinks(r.db.QueryRow(ctx, query))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get platform links: %w", err)
	}

	insert := `INSERT INTO platform_links DEFAULT VALUES RETURNING ` + linksColumns
	p, err = scanLinks(r.db.QueryRow(ctx, insert))
	if err != nil {
		return nil, fmt.Errorf("failed to create platform links: %w", err)
	}
	return p, nil
}

// Save persists the full set of link fields.
func (r *LinksRepository) Save(ctx context.Context, p *links.PlatformLinks) error {
	query := `
		UPDATE platform_links
		SET tiktok = $1, rednote = $2, youtube = $3, facebook = $4, instagram = $5,
		    twitter = $6, twitch = $7, kick = $8, linkedin = $9, discord = $10, reddit = $11,
		    updated_at = NOW()
		WHERE id = $12
	`

	_, err := r.db.Exec(ctx, query,
		p.TikTok, p.Rednote, p.YouTube, p.Facebook, p.Instagram,
		p.Twitter, p.Twitch, p.Kick, p.LinkedIn, p.Discord, p.Reddit,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to save platform links: %w", err)
	}
	return nil
}
