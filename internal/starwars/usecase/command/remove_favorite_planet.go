package command

import (
	"context"
	"fmt"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
)

// RemoveFavoritePlanetCommand represents the command to unmark a favorite planet
type RemoveFavoritePlanetCommand struct {
	UserID   uint
	PlanetID uint
}

// RemoveFavoritePlanetHandler handles remove favorite planet command
type RemoveFavoritePlanetHandler struct {
	entities  domain.EntityRepository
	favorites domain.FavoriteRepository
	events    domain.EventPublisher
}

// NewRemoveFavoritePlanetHandler creates a new remove favorite planet handler
func NewRemoveFavoritePlanetHandler(entities domain.EntityRepository, favorites domain.FavoriteRepository, events domain.EventPublisher) *RemoveFavoritePlanetHandler {
	return &RemoveFavoritePlanetHandler{entities: entities, favorites: favorites, events: events}
}

// Handle executes the remove favorite planet command and returns the
// confirmation message
func (h *RemoveFavoritePlanetHandler) Handle(ctx context.Context, cmd RemoveFavoritePlanetCommand) (string, error) {
	if _, err := h.entities.FindPlanetByID(ctx, cmd.PlanetID); err != nil {
		return "", fmt.Errorf("failed to find planet: %w", err)
	}

	fav, err := h.favorites.FindPlanetByUserAndTarget(ctx, cmd.UserID, cmd.PlanetID)
	if err != nil {
		return "", fmt.Errorf("failed to find favorite planet: %w", err)
	}

	if err := h.favorites.DeletePlanet(ctx, fav.ID); err != nil {
		return "", fmt.Errorf("failed to remove favorite planet: %w", err)
	}

	publish(ctx, h.events, domain.FavoriteChange{
		Action:     domain.ActionRemoved,
		Kind:       domain.KindPlanet,
		FavoriteID: fav.ID,
		UserID:     fav.UserID,
		TargetID:   fav.PlanetID,
	})

	return domain.MsgFavoritePlanetDel, nil
}
