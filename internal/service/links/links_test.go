package links

import (
	"context"
	"testing"

	"gameads-service/internal/domain/links"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLinksStore struct {
	row *links.PlatformLinks
}

func (f *fakeLinksStore) GetOrCreate(ctx context.Context) (*links.PlatformLinks, error) {
	if f.row == nil {
		f.row = &links.PlatformLinks{ID: 1}
	}
	cp := *f.row
	return &cp, nil
}

func (f *fakeLinksStore) Save(ctx context.Context, p *links.PlatformLinks) error {
	cp := *p
	f.row = &cp
	return nil
}

func strPtr(s string) *string { return &s }

func TestGetCreatesEmptyRow(t *testing.T) {
	store := &fakeLinksStore{}
	svc := NewLinksService(store, zap.NewNop())

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, p.YouTube)
	assert.NotNil(t, store.row)
}

func TestUpdateOverwritesOnlySubmittedFields(t *testing.T) {
	store := &fakeLinksStore{row: &links.PlatformLinks{
		ID:      1,
		YouTube: "https://youtube.com/@old",
		Twitter: "https://twitter.com/old",
	}}
	svc := NewLinksService(store, zap.NewNop())

	p, err := svc.Update(context.Background(), &links.UpdateRequest{
		YouTube: strPtr("https://youtube.com/@new"),
		Discord: strPtr("https://discord.gg/abc"),
	})
	require.NoError(t, err)

	assert.Equal(t, "https://youtube.com/@new", p.YouTube)
	assert.Equal(t, "https://discord.gg/abc", p.Discord)
	assert.Equal(t, "https://twitter.com/old", p.Twitter)
	assert.Equal(t, p.YouTube, store.row.YouTube)
}

func TestUpdateCanClearField(t *testing.T) {
	store := &fakeLinksStore{row: &links.PlatformLinks{
		ID:     1,
		TikTok: "https://tiktok.com/@old",
	}}
	svc := NewLinksService(store, zap.NewNop())

	p, err := svc.Update(context.Background(), &links.UpdateRequest{
		TikTok: strPtr(""),
	})
	require.NoError(t, err)
	assert.Empty(t, p.TikTok)
}
