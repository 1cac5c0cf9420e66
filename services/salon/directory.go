package salon

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	salonRepo "salonflow/database/repository/salon"
	"salonflow/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Directory resolves salons for the public booking page and the dashboard.
type Directory interface {
	GetBySlug(ctx context.Context, slug string) (*models.Salon, error)
	GetByID(ctx context.Context, id string) (*models.Salon, error)
	// InvalidateSlug drops a cached slug entry after a salon changes.
	InvalidateSlug(ctx context.Context, slug string)
}

// CachedDirectory fronts the salon repository with a Redis cache keyed by
// slug. The public booking page resolves the same slug on every request,
// so slug lookups are the read-hot path.
type CachedDirectory struct {
	Repo   salonRepo.SalonRepository
	Cache  *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func (d *CachedDirectory) logger() *zap.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return zap.L()
}

func slugCacheKey(slug string) string {
	return fmt.Sprintf("salon:slug:%s", slug)
}

// GetBySlug resolves a salon by its public slug, serving from cache when
// possible. A missing salon is never cached.
func (d *CachedDirectory) GetBySlug(ctx context.Context, slug string) (*models.Salon, error) {
	if d.Cache != nil {
		cached, err := d.Cache.Get(ctx, slugCacheKey(slug)).Result()
		if err == nil {
			var salon models.Salon
			if err := json.Unmarshal([]byte(cached), &salon); err == nil {
				return &salon, nil
			}
			// Corrupt entry; fall through to the repository.
			d.Cache.Del(ctx, slugCacheKey(slug))
		}
	}

	salon, err := d.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if d.Cache != nil {
		ttl := d.TTL
		if ttl == 0 {
			ttl = 5 * time.Minute
		}
		if data, err := json.Marshal(salon); err == nil {
			if err := d.Cache.Set(ctx, slugCacheKey(slug), data, ttl).Err(); err != nil {
				d.logger().Warn("salon directory: failed to cache slug lookup",
					zap.String("slug", slug), zap.Error(err))
			}
		}
	}
	return salon, nil
}

// GetByID resolves a salon by its id, always hitting the repository.
func (d *CachedDirectory) GetByID(ctx context.Context, id string) (*models.Salon, error) {
	return d.Repo.GetByID(ctx, id)
}

// InvalidateSlug drops the cached entry for a slug.
func (d *CachedDirectory) InvalidateSlug(ctx context.Context, slug string) {
	if d.Cache == nil {
		return
	}
	if err := d.Cache.Del(ctx, slugCacheKey(slug)).Err(); err != nil {
		d.logger().Warn("salon directory: failed to invalidate slug cache",
			zap.String("slug", slug), zap.Error(err))
	}
}
