package domain

import "context"

// EntityRepository defines the contract for user, person and planet lookups.
// Missing records are reported as ErrNotFound.
type EntityRepository interface {
	FindUserByID(ctx context.Context, id uint) (*User, error)
	FindAllUsers(ctx context.Context) ([]User, error)
	FindPersonByID(ctx context.Context, id uint) (*Person, error)
	FindAllPeople(ctx context.Context) ([]Person, error)
	FindPlanetByID(ctx context.Context, id uint) (*Planet, error)
	FindAllPlanets(ctx context.Context) ([]Planet, error)
}

// FavoriteRepository defines the contract for favorite relationships.
// Create returns ErrConflict when the (user, target) pair already exists.
type FavoriteRepository interface {
	CreatePlanet(ctx context.Context, fav *FavoritePlanet) error
	FindPlanetByUserAndTarget(ctx context.Context, userID, planetID uint) (*FavoritePlanet, error)
	FindPlanetsByUser(ctx context.Context, userID uint) ([]FavoritePlanet, error)
	DeletePlanet(ctx context.Context, id uint) error

	CreatePeople(ctx context.Context, fav *FavoritePeople) error
	FindPeopleByUserAndTarget(ctx context.Context, userID, peopleID uint) (*FavoritePeople, error)
	FindPeopleByUser(ctx context.Context, userID uint) ([]FavoritePeople, error)
	DeletePeople(ctx context.Context, id uint) error
}

// EventPublisher announces favorite changes to other systems
type EventPublisher interface {
	PublishFavoriteChanged(ctx context.Context, change FavoriteChange) error
}
