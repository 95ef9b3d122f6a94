//go:build wireinject
// +build wireinject

package starwars

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tair/starwars-favorites/internal/starwars/delivery/http"
	"github.com/tair/starwars-favorites/internal/starwars/domain"
	"github.com/tair/starwars-favorites/internal/starwars/repository"
)

// InitializeHTTPHandler initializes the HTTP handler on PostgreSQL
func InitializeHTTPHandler(
	db *gorm.DB,
	rdb *redis.Client,
	cacheCfg repository.CacheConfig,
	events domain.EventPublisher,
	metrics *http.Metrics,
) (*http.StarWarsHandler, error) {
	wire.Build(
		PostgresRepositorySet,
		HandlerSet,
	)
	return nil, nil
}

// InitializeMemoryHTTPHandler initializes the HTTP handler on an in-memory store
func InitializeMemoryHTTPHandler(
	store *repository.MemoryStore,
	events domain.EventPublisher,
	metrics *http.Metrics,
) (*http.StarWarsHandler, error) {
	wire.Build(
		MemoryRepositorySet,
		HandlerSet,
	)
	return nil, nil
}
