// internal/service/links/links.go
package links

import (
	"context"

	"gameads-service/internal/domain/links"

	"go.uber.org/zap"
)

// LinksStore is the persistence contract for the singleton links row.
type LinksStore interface {
	GetOrCreate(ctx context.Context) (*links.PlatformLinks, error)
	Save(ctx context.Context, p *links.PlatformLinks) error
}

type LinksService struct {
	store  LinksStore
	logger *zap.Logger
}

func NewLinksService(store LinksStore, logger *zap.Logger) *LinksService {
	return &LinksService{store: store, logger: logger}
}

// Get returns the social links, creating the empty row on first access.
func (s *LinksService) Get(ctx context.Context) (*links.PlatformLinks, error) {
	return s.store.GetOrCreate(ctx)
}

// Update overwrites the submitted fields and persists.
func (s *LinksService) Update(ctx context.Context, req *links.UpdateRequest) (*links.PlatformLinks, error) {
	p, err := s.store.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	p.Apply(req)
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("platform links updated")
	return p, nil
}
