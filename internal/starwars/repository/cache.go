package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
	"github.com/tair/starwars-favorites/pkg/logger"
)

const cacheKeyPrefix = "starwars:catalog:"

// CacheConfig holds catalog cache configuration
type CacheConfig struct {
	TTL time.Duration
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{TTL: 5 * time.Minute}
}

// CachedEntityRepository caches people and planets in Redis. Those records
// are never mutated by the API so entries only expire by TTL or an explicit
// InvalidateCatalog after seeding. Users are always read through.
type CachedEntityRepository struct {
	domain.EntityRepository
	rdb *redis.Client
	ttl time.Duration
}

// NewCachedEntityRepository wraps next with a Redis cache
func NewCachedEntityRepository(next domain.EntityRepository, rdb *redis.Client, cfg CacheConfig) *CachedEntityRepository {
	if cfg.TTL <= 0 {
		cfg = DefaultCacheConfig()
	}
	return &CachedEntityRepository{EntityRepository: next, rdb: rdb, ttl: cfg.TTL}
}

func (r *CachedEntityRepository) FindPersonByID(ctx context.Context, id uint) (*domain.Person, error) {
	key := fmt.Sprintf("%sperson:%d", cacheKeyPrefix, id)
	var person domain.Person
	if r.get(ctx, key, &person) {
		return &person, nil
	}

	found, err := r.EntityRepository.FindPersonByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.set(ctx, key, found)
	return found, nil
}

func (r *CachedEntityRepository) FindAllPeople(ctx context.Context) ([]domain.Person, error) {
	key := cacheKeyPrefix + "people"
	var people []domain.Person
	if r.get(ctx, key, &people) {
		return people, nil
	}

	people, err := r.EntityRepository.FindAllPeople(ctx)
	if err != nil {
		return nil, err
	}
	r.set(ctx, key, people)
	return people, nil
}

func (r *CachedEntityRepository) FindPlanetByID(ctx context.Context, id uint) (*domain.Planet, error) {
	key := fmt.Sprintf("%splanet:%d", cacheKeyPrefix, id)
	var planet domain.Planet
	if r.get(ctx, key, &planet) {
		return &planet, nil
	}

	found, err := r.EntityRepository.FindPlanetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.set(ctx, key, found)
	return found, nil
}

func (r *CachedEntityRepository) FindAllPlanets(ctx context.Context) ([]domain.Planet, error) {
	key := cacheKeyPrefix + "planets"
	var planets []domain.Planet
	if r.get(ctx, key, &planets) {
		return planets, nil
	}

	planets, err := r.EntityRepository.FindAllPlanets(ctx)
	if err != nil {
		return nil, err
	}
	r.set(ctx, key, planets)
	return planets, nil
}

// get loads key into dest. Redis failures are logged and treated as a miss.
func (r *CachedEntityRepository) get(ctx context.Context, key string, dest interface{}) bool {
	data, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Corrupt cache entry")
		return false
	}

	logger.Debug(ctx).Str("cache_key", key).Msg("Cache hit")
	return true
}

func (r *CachedEntityRepository) set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, key, data, r.ttl).Err(); err != nil {
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Cache write failed")
	}
}

// InvalidateCatalog drops every cached catalog entry
func InvalidateCatalog(ctx context.Context, rdb *redis.Client) (int, error) {
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := rdb.Scan(ctx, cursor, cacheKeyPrefix+"*", 100).Result()
		if err != nil {
			return removed, fmt.Errorf("failed to scan cache keys: %w", err)
		}
		if len(keys) > 0 {
			n, err := rdb.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("failed to delete cache keys: %w", err)
			}
			removed += int(n)
		}
		cursor = next
		if cursor == 0 {
			return removed, nil
		}
	}
}
