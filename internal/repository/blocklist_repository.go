package repository

import (
	"context"
	"learnhub_backend/internal/kvstore"
	"time"
)

// BlocklistRepository persists the cached disposable-email domain list
// and its last-refresh timestamp (unix milliseconds).
type BlocklistRepository struct {
	store kvstore.Store
}

func NewBlocklistRepository(store kvstore.Store) *BlocklistRepository {
	return &BlocklistRepository{store: store}
}

func (r *BlocklistRepository) Domains(ctx context.Context) ([]string, bool) {
	domains, ok := ReadDoc[[]string](ctx, r.store, KeyBlocklist)
	if !ok || len(domains) == 0 {
		return nil, false
	}
	return domains, true
}

func (r *BlocklistRepository) SetDomains(ctx context.Context, domains []string) error {
	return WriteDoc(ctx, r.store, KeyBlocklist, domains)
}

func (r *BlocklistRepository) LastRefresh(ctx context.Context) (time.Time, bool) {
	millis, ok := ReadDoc[int64](ctx, r.store, KeyBlocklistTimestamp)
	if !ok || millis == 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(millis), true
}

func (r *BlocklistRepository) SetLastRefresh(ctx context.Context, t time.Time) error {
	return WriteDoc(ctx, r.store, KeyBlocklistTimestamp, t.UnixMilli())
}
