package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
)

// AddFavoritePeopleCommand represents the command to mark a person as favorite
type AddFavoritePeopleCommand struct {
	UserID   uint
	PeopleID uint
}

// AddFavoritePeopleHandler handles add favorite people command
type AddFavoritePeopleHandler struct {
	entities  domain.EntityRepository
	favorites domain.FavoriteRepository
	events    domain.EventPublisher
}

// NewAddFavoritePeopleHandler creates a new add favorite people handler
func NewAddFavoritePeopleHandler(entities domain.EntityRepository, favorites domain.FavoriteRepository, events domain.EventPublisher) *AddFavoritePeopleHandler {
	return &AddFavoritePeopleHandler{entities: entities, favorites: favorites, events: events}
}

// Handle executes the add favorite people command
func (h *AddFavoritePeopleHandler) Handle(ctx context.Context, cmd AddFavoritePeopleCommand) (*domain.FavoritePeople, error) {
	if _, err := h.entities.FindPersonByID(ctx, cmd.PeopleID); err != nil {
		return nil, fmt.Errorf("failed to find person: %w", err)
	}

	if _, err := h.entities.FindUserByID(ctx, cmd.UserID); err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	_, err := h.favorites.FindPeopleByUserAndTarget(ctx, cmd.UserID, cmd.PeopleID)
	switch {
	case err == nil:
		return nil, domain.Conflict(domain.MsgPeopleDuplicate)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("failed to check favorite people: %w", err)
	}

	fav := &domain.FavoritePeople{
		UserID:   cmd.UserID,
		PeopleID: cmd.PeopleID,
	}

	if err := h.favorites.CreatePeople(ctx, fav); err != nil {
		return nil, fmt.Errorf("failed to add favorite people: %w", err)
	}

	publish(ctx, h.events, domain.FavoriteChange{
		Action:     domain.ActionAdded,
		Kind:       domain.KindPeople,
		FavoriteID: fav.ID,
		UserID:     fav.UserID,
		TargetID:   fav.PeopleID,
	})

	return fav, nil
}
