package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
)

// AddFavoritePlanetCommand represents the command to mark a planet as favorite
type AddFavoritePlanetCommand struct {
	UserID   uint
	PlanetID uint
}

// AddFavoritePlanetHandler handles add favorite planet command
type AddFavoritePlanetHandler struct {
	entities  domain.EntityRepository
	favorites domain.FavoriteRepository
	events    domain.EventPublisher
}

// NewAddFavoritePlanetHandler creates a new add favorite planet handler
func NewAddFavoritePlanetHandler(entities domain.EntityRepository, favorites domain.FavoriteRepository, events domain.EventPublisher) *AddFavoritePlanetHandler {
	return &AddFavoritePlanetHandler{entities: entities, favorites: favorites, events: events}
}

// Handle executes the add favorite planet command. Existence checks run
// before the duplicate check; the unique index still guards the insert.
func (h *AddFavoritePlanetHandler) Handle(ctx context.Context, cmd AddFavoritePlanetCommand) (*domain.FavoritePlanet, error) {
	if _, err := h.entities.FindPlanetByID(ctx, cmd.PlanetID); err != nil {
		return nil, fmt.Errorf("failed to find planet: %w", err)
	}

	if _, err := h.entities.FindUserByID(ctx, cmd.UserID); err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	_, err := h.favorites.FindPlanetByUserAndTarget(ctx, cmd.UserID, cmd.PlanetID)
	switch {
	case err == nil:
		return nil, domain.Conflict(domain.MsgPlanetDuplicate)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("failed to check favorite planet: %w", err)
	}

	fav := &domain.FavoritePlanet{
		UserID:   cmd.UserID,
		PlanetID: cmd.PlanetID,
	}

	if err := h.favorites.CreatePlanet(ctx, fav); err != nil {
		return nil, fmt.Errorf("failed to add favorite planet: %w", err)
	}

	publish(ctx, h.events, domain.FavoriteChange{
		Action:     domain.ActionAdded,
		Kind:       domain.KindPlanet,
		FavoriteID: fav.ID,
		UserID:     fav.UserID,
		TargetID:   fav.PlanetID,
	})

	return fav, nil
}
