package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/medicino/medicino/internal/domain/entities"
	"github.com/medicino/medicino/internal/domain/providers"
	"github.com/medicino/medicino/internal/domain/repositories"
)

// CachedConditionAdapter wraps a ConditionRepository with a Redis-backed
// snapshot cache. The full-table snapshot is what every diagnosis request
// reads, so it is the one read path worth caching.
type CachedConditionAdapter struct {
	adapter repositories.ConditionRepository
	cache   providers.CacheProvider
}

// NewCachedConditionAdapter creates a new cached condition adapter
func NewCachedConditionAdapter(adapter repositories.ConditionRepository, cache providers.CacheProvider) repositories.ConditionRepository {
	return &CachedConditionAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	conditionSnapshotTTL = 300
	conditionByIDTTL     = 600
)

const snapshotCacheKey = "conditions:snapshot"

func conditionCacheKey(id int64) string {
	return fmt.Sprintf("condition:%d", id)
}

// GetByID retrieves a condition by ID with caching
func (a *CachedConditionAdapter) GetByID(ctx context.Context, id int64) (*entities.Condition, error) {
	cacheKey := conditionCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var condition entities.Condition
		if err := json.Unmarshal(cached, &condition); err == nil {
			return &condition, nil
		}
		log.Warn().Int64("condition_id", id).Msg("failed to unmarshal cached condition")
	}

	condition, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.storeAsync(cacheKey, condition, conditionByIDTTL)
	return condition, nil
}

// Snapshot returns the full active-condition table, served from cache when
// fresh. Snapshot order is preserved through the JSON round-trip, so the
// matcher's tie-break behaves identically on hits and misses.
func (a *CachedConditionAdapter) Snapshot(ctx context.Context) ([]*entities.Condition, error) {
	if cached, err := a.cache.Get(ctx, snapshotCacheKey); err == nil {
		var conditions []*entities.Condition
		if err := json.Unmarshal(cached, &conditions); err == nil {
			return conditions, nil
		}
		log.Warn().Msg("failed to unmarshal cached condition snapshot")
	}

	conditions, err := a.adapter.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	a.storeAsync(snapshotCacheKey, conditions, conditionSnapshotTTL)
	return conditions, nil
}

// List bypasses the cache: filtered listings are too varied to be worth
// keying individually, and the HTTP response cache covers the hot ones.
func (a *CachedConditionAdapter) List(ctx context.Context, filter repositories.ConditionFilter) ([]*entities.Condition, error) {
	return a.adapter.List(ctx, filter)
}

// Categories bypasses the cache for the same reason as List.
func (a *CachedConditionAdapter) Categories(ctx context.Context) ([]string, error) {
	return a.adapter.Categories(ctx)
}

// Create writes through and invalidates the snapshot.
func (a *CachedConditionAdapter) Create(ctx context.Context, condition *entities.Condition) error {
	if err := a.adapter.Create(ctx, condition); err != nil {
		return err
	}
	if err := a.cache.Delete(ctx, snapshotCacheKey); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate condition snapshot cache")
	}
	return nil
}

// storeAsync updates the cache off the request path.
func (a *CachedConditionAdapter) storeAsync(key string, value interface{}, ttlSeconds int) {
	go func() {
		bgCtx := context.Background()
		data, err := json.Marshal(value)
		if err != nil {
			return
		}
		if err := a.cache.Set(bgCtx, key, data, ttlSeconds); err != nil {
			log.Warn().Str("key", key).Err(err).Msg("failed to cache conditions")
		}
	}()
}
