package query

import (
	"context"
	"fmt"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
)

// ListPeopleHandler handles list people query
type ListPeopleHandler struct {
	repo domain.EntityRepository
}

// NewListPeopleHandler creates a new list people handler
func NewListPeopleHandler(repo domain.EntityRepository) *ListPeopleHandler {
	return &ListPeopleHandler{repo: repo}
}

// Handle returns every person, never nil
func (h *ListPeopleHandler) Handle(ctx context.Context) ([]domain.Person, error) {
	people, err := h.repo.FindAllPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	if people == nil {
		people = []domain.Person{}
	}
	return people, nil
}

// ListPlanetsHandler handles list planets query
type ListPlanetsHandler struct {
	repo domain.EntityRepository
}

// NewListPlanetsHandler creates a new list planets handler
func NewListPlanetsHandler(repo domain.EntityRepository) *ListPlanetsHandler {
	return &ListPlanetsHandler{repo: repo}
}

// Handle returns every planet, never nil
func (h *ListPlanetsHandler) Handle(ctx context.Context) ([]domain.Planet, error) {
	planets, err := h.repo.FindAllPlanets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list planets: %w", err)
	}
	if planets == nil {
		planets = []domain.Planet{}
	}
	return planets, nil
}

// ListUsersHandler handles list users query
type ListUsersHandler struct {
	repo domain.EntityRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.EntityRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle returns every user, never nil. Passwords are dropped by the JSON encoding of domain.User.
func (h *ListUsersHandler) Handle(ctx context.Context) ([]domain.User, error) {
	users, err := h.repo.FindAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
