package command

import (
	"context"
	"fmt"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
)

// RemoveFavoritePeopleCommand represents the command to unmark a favorite person
type RemoveFavoritePeopleCommand struct {
	UserID   uint
	PeopleID uint
}

// RemoveFavoritePeopleHandler handles remove favorite people command
type RemoveFavoritePeopleHandler struct {
	entities  domain.EntityRepository
	favorites domain.FavoriteRepository
	events    domain.EventPublisher
}

// NewRemoveFavoritePeopleHandler creates a new remove favorite people handler
func NewRemoveFavoritePeopleHandler(entities domain.EntityRepository, favorites domain.FavoriteRepository, events domain.EventPublisher) *RemoveFavoritePeopleHandler {
	return &RemoveFavoritePeopleHandler{entities: entities, favorites: favorites, events: events}
}

// Handle executes the remove favorite people command
func (h *RemoveFavoritePeopleHandler) Handle(ctx context.Context, cmd RemoveFavoritePeopleCommand) (string, error) {
	if _, err := h.entities.FindPersonByID(ctx, cmd.PeopleID); err != nil {
		return "", fmt.Errorf("failed to find person: %w", err)
	}

	fav, err := h.favorites.FindPeopleByUserAndTarget(ctx, cmd.UserID, cmd.PeopleID)
	if err != nil {
		return "", fmt.Errorf("failed to find favorite people: %w", err)
	}

	if err := h.favorites.DeletePeople(ctx, fav.ID); err != nil {
		return "", fmt.Errorf("failed to remove favorite people: %w", err)
	}

	publish(ctx, h.events, domain.FavoriteChange{
		Action:     domain.ActionRemoved,
		Kind:       domain.KindPeople,
		FavoriteID: fav.ID,
		UserID:     fav.UserID,
		TargetID:   fav.PeopleID,
	})

	return domain.MsgFavoritePeopleDel, nil
}
