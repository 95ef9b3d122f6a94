package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
	"github.com/tair/starwars-favorites/internal/starwars/repository"
)

type recordingPublisher struct {
	changes []domain.FavoriteChange
	err     error
}

func (p *recordingPublisher) PublishFavoriteChanged(_ context.Context, change domain.FavoriteChange) error {
	p.changes = append(p.changes, change)
	return p.err
}

// failingFavorites makes every favorite lookup fail with a storage error
type failingFavorites struct {
	*repository.MemoryStore
}

func (f failingFavorites) FindPlanetByUserAndTarget(context.Context, uint, uint) (*domain.FavoritePlanet, error) {
	return nil, errors.New("connection refused")
}

func setupCommandTest(t *testing.T) (*repository.MemoryStore, *recordingPublisher) {
	t.Helper()

	store := repository.NewMemoryStore()
	store.AddUser(&domain.User{ID: 1, Email: "luke@rebels.org", Password: "x", IsActive: true})
	store.AddPlanet(&domain.Planet{ID: 5, Name: "Tatooine", Population: 200000, Diameter: 10465})
	store.AddPerson(&domain.Person{ID: 3, Name: "Leia Organa", ColorEyes: "brown", Gender: "female"})

	return store, &recordingPublisher{}
}

func TestAddFavoritePlanet(t *testing.T) {
	ctx := context.Background()
	store, events := setupCommandTest(t)
	handler := NewAddFavoritePlanetHandler(store, store, events)

	fav, err := handler.Handle(ctx, AddFavoritePlanetCommand{UserID: 1, PlanetID: 5})
	require.NoError(t, err)
	assert.Equal(t, domain.FavoritePlanet{ID: 1, UserID: 1, PlanetID: 5}, *fav)

	_, err = handler.Handle(ctx, AddFavoritePlanetCommand{UserID: 1, PlanetID: 5})
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Equal(t, domain.MsgPlanetDuplicate, err.Error())

	require.Len(t, events.changes, 1)
	assert.Equal(t, domain.FavoriteChange{
		Action:     domain.ActionAdded,
		Kind:       domain.KindPlanet,
		FavoriteID: 1,
		UserID:     1,
		TargetID:   5,
	}, events.changes[0])
}

func TestAddFavoritePlanet_NotFound(t *testing.T) {
	ctx := context.Background()
	store, events := setupCommandTest(t)
	handler := NewAddFavoritePlanetHandler(store, store, events)

	tests := []struct {
		name    string
		cmd     AddFavoritePlanetCommand
		message string
	}{
		{"missing planet", AddFavoritePlanetCommand{UserID: 1, PlanetID: 99}, domain.MsgPlanetNotFound},
		{"missing planet and user", AddFavoritePlanetCommand{UserID: 42, PlanetID: 99}, domain.MsgPlanetNotFound},
		{"missing user", AddFavoritePlanetCommand{UserID: 42, PlanetID: 5}, domain.MsgUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(ctx, tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrNotFound))

			var derr *domain.Error
			require.True(t, errors.As(err, &derr))
			assert.Equal(t, tt.message, derr.Message)
		})
	}
	assert.Empty(t, events.changes)
}

func TestAddFavoritePlanet_LookupFailure(t *testing.T) {
	store, _ := setupCommandTest(t)
	handler := NewAddFavoritePlanetHandler(store, failingFavorites{store}, nil)

	_, err := handler.Handle(context.Background(), AddFavoritePlanetCommand{UserID: 1, PlanetID: 5})
	require.Error(t, err)
	assert.False(t, domain.IsExpected(err))
}

func TestAddFavoritePeople_PublishFailureDoesNotFail(t *testing.T) {
	store, events := setupCommandTest(t)
	events.err = errors.New("broker unavailable")
	handler := NewAddFavoritePeopleHandler(store, store, events)

	fav, err := handler.Handle(context.Background(), AddFavoritePeopleCommand{UserID: 1, PeopleID: 3})
	require.NoError(t, err)
	assert.Equal(t, domain.FavoritePeople{ID: 1, UserID: 1, PeopleID: 3}, *fav)
	assert.Len(t, events.changes, 1)
}

func TestAddFavoritePeople_Errors(t *testing.T) {
	ctx := context.Background()
	store, _ := setupCommandTest(t)
	handler := NewAddFavoritePeopleHandler(store, store, nil)

	_, err := handler.Handle(ctx, AddFavoritePeopleCommand{UserID: 1, PeopleID: 999})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = handler.Handle(ctx, AddFavoritePeopleCommand{UserID: 1, PeopleID: 3})
	require.NoError(t, err)
	_, err = handler.Handle(ctx, AddFavoritePeopleCommand{UserID: 1, PeopleID: 3})
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Equal(t, domain.MsgPeopleDuplicate, err.Error())
}

func TestRemoveFavoritePlanet(t *testing.T) {
	ctx := context.Background()
	store, events := setupCommandTest(t)
	add := NewAddFavoritePlanetHandler(store, store, nil)
	remove := NewRemoveFavoritePlanetHandler(store, store, events)

	_, err := remove.Handle(ctx, RemoveFavoritePlanetCommand{UserID: 1, PlanetID: 5})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = add.Handle(ctx, AddFavoritePlanetCommand{UserID: 1, PlanetID: 5})
	require.NoError(t, err)

	msg, err := remove.Handle(ctx, RemoveFavoritePlanetCommand{UserID: 1, PlanetID: 5})
	require.NoError(t, err)
	assert.Equal(t, domain.MsgFavoritePlanetDel, msg)

	_, err = remove.Handle(ctx, RemoveFavoritePlanetCommand{UserID: 1, PlanetID: 5})
	var derr *domain.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.MsgFavoriteNotFound, derr.Message)

	_, err = remove.Handle(ctx, RemoveFavoritePlanetCommand{UserID: 1, PlanetID: 77})
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.MsgPlanetNotFound, derr.Message)

	require.Len(t, events.changes, 1)
	assert.Equal(t, domain.ActionRemoved, events.changes[0].Action)
}

func TestRemoveFavoritePeople(t *testing.T) {
	ctx := context.Background()
	store, _ := setupCommandTest(t)
	add := NewAddFavoritePeopleHandler(store, store, nil)
	remove := NewRemoveFavoritePeopleHandler(store, store, nil)

	_, err := remove.Handle(ctx, RemoveFavoritePeopleCommand{UserID: 1, PeopleID: 999})
	var derr *domain.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.MsgPeopleNotFound, derr.Message)

	_, err = add.Handle(ctx, AddFavoritePeopleCommand{UserID: 1, PeopleID: 3})
	require.NoError(t, err)

	msg, err := remove.Handle(ctx, RemoveFavoritePeopleCommand{UserID: 1, PeopleID: 3})
	require.NoError(t, err)
	assert.Equal(t, domain.MsgFavoritePeopleDel, msg)
}
