package query

import (
	"context"
	"fmt"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
)

// ListUserFavoritesQuery represents the query to list a user's favorites
type ListUserFavoritesQuery struct {
	UserID uint
}

// ListUserFavoritesHandler handles list user favorites query
type ListUserFavoritesHandler struct {
	entities  domain.EntityRepository
	favorites domain.FavoriteRepository
}

// NewListUserFavoritesHandler creates a new list user favorites handler
func NewListUserFavoritesHandler(entities domain.EntityRepository, favorites domain.FavoriteRepository) *ListUserFavoritesHandler {
	return &ListUserFavoritesHandler{entities: entities, favorites: favorites}
}

// Handle executes the list user favorites query
func (h *ListUserFavoritesHandler) Handle(ctx context.Context, query ListUserFavoritesQuery) (*domain.UserFavorites, error) {
	if _, err := h.entities.FindUserByID(ctx, query.UserID); err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	planets, err := h.favorites.FindPlanetsByUser(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite planets: %w", err)
	}

	people, err := h.favorites.FindPeopleByUser(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite people: %w", err)
	}

	result := &domain.UserFavorites{
		Planets: planets,
		People:  people,
	}
	if result.Planets == nil {
		result.Planets = []domain.FavoritePlanet{}
	}
	if result.People == nil {
		result.People = []domain.FavoritePeople{}
	}
	return result, nil
}
