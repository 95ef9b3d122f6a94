package starwars

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tair/starwars-favorites/internal/starwars/delivery/http"
	"github.com/tair/starwars-favorites/internal/starwars/domain"
	"github.com/tair/starwars-favorites/internal/starwars/repository"
	"github.com/tair/starwars-favorites/internal/starwars/usecase/command"
	"github.com/tair/starwars-favorites/internal/starwars/usecase/query"
)

// ProvideGormEntityRepository provides the catalog repository on PostgreSQL.
// Reads go through Redis when rdb is set, and every call is traced.
func ProvideGormEntityRepository(db *gorm.DB, rdb *redis.Client, cfg repository.CacheConfig) domain.EntityRepository {
	var repo domain.EntityRepository = repository.NewGormEntityRepository(db)
	if rdb != nil {
		repo = repository.NewCachedEntityRepository(repo, rdb, cfg)
	}
	return repository.NewTracingEntityRepository(repo)
}

// ProvideGormFavoriteRepository provides the favorites repository on PostgreSQL
func ProvideGormFavoriteRepository(db *gorm.DB) domain.FavoriteRepository {
	return repository.NewTracingFavoriteRepository(repository.NewGormFavoriteRepository(db))
}

// ProvideMemoryEntityRepository provides the catalog repository on the in-memory store
func ProvideMemoryEntityRepository(store *repository.MemoryStore) domain.EntityRepository {
	return repository.NewTracingEntityRepository(store)
}

// ProvideMemoryFavoriteRepository provides the favorites repository on the in-memory store
func ProvideMemoryFavoriteRepository(store *repository.MemoryStore) domain.FavoriteRepository {
	return repository.NewTracingFavoriteRepository(store)
}

// ProvideCommandHandlers provides all command handlers
func ProvideCommandHandlers(
	addPlanet *command.AddFavoritePlanetHandler,
	addPeople *command.AddFavoritePeopleHandler,
	removePlanet *command.RemoveFavoritePlanetHandler,
	removePeople *command.RemoveFavoritePeopleHandler,
) *http.CommandHandlers {
	return &http.CommandHandlers{
		AddPlanet:    addPlanet,
		AddPeople:    addPeople,
		RemovePlanet: removePlanet,
		RemovePeople: removePeople,
	}
}

// ProvideQueryHandlers provides all query handlers
func ProvideQueryHandlers(
	listUsers *query.ListUsersHandler,
	listPeople *query.ListPeopleHandler,
	getPerson *query.GetPersonHandler,
	listPlanets *query.ListPlanetsHandler,
	getPlanet *query.GetPlanetHandler,
	userFavorites *query.ListUserFavoritesHandler,
) *http.QueryHandlers {
	return &http.QueryHandlers{
		ListUsers:     listUsers,
		ListPeople:    listPeople,
		GetPerson:     getPerson,
		ListPlanets:   listPlanets,
		GetPlanet:     getPlanet,
		UserFavorites: userFavorites,
	}
}

// Wire sets
var PostgresRepositorySet = wire.NewSet(
	ProvideGormEntityRepository,
	ProvideGormFavoriteRepository,
)

var MemoryRepositorySet = wire.NewSet(
	ProvideMemoryEntityRepository,
	ProvideMemoryFavoriteRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewAddFavoritePlanetHandler,
	command.NewAddFavoritePeopleHandler,
	command.NewRemoveFavoritePlanetHandler,
	command.NewRemoveFavoritePeopleHandler,
	ProvideCommandHandlers,
)

var QueryHandlerSet = wire.NewSet(
	query.NewListUsersHandler,
	query.NewListPeopleHandler,
	query.NewGetPersonHandler,
	query.NewListPlanetsHandler,
	query.NewGetPlanetHandler,
	query.NewListUserFavoritesHandler,
	ProvideQueryHandlers,
)

var HandlerSet = wire.NewSet(
	CommandHandlerSet,
	QueryHandlerSet,
	http.NewStarWarsHandlerWithDI,
)
