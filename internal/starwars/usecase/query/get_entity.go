package query

import (
	"context"
	"fmt"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
)

// GetPersonQuery represents the query to get a person by ID
type GetPersonQuery struct {
	ID uint
}

// GetPersonHandler handles get person query
type GetPersonHandler struct {
	repo domain.EntityRepository
}

// NewGetPersonHandler creates a new get person handler
func NewGetPersonHandler(repo domain.EntityRepository) *GetPersonHandler {
	return &GetPersonHandler{repo: repo}
}

// Handle executes the get person query
func (h *GetPersonHandler) Handle(ctx context.Context, query GetPersonQuery) (*domain.Person, error) {
	person, err := h.repo.FindPersonByID(ctx, query.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return person, nil
}

// GetPlanetQuery represents the query to get a planet by ID
type GetPlanetQuery struct {
	ID uint
}

// GetPlanetHandler handles get planet query
type GetPlanetHandler struct {
	repo domain.EntityRepository
}

// NewGetPlanetHandler creates a new get planet handler
func NewGetPlanetHandler(repo domain.EntityRepository) *GetPlanetHandler {
	return &GetPlanetHandler{repo: repo}
}

// Handle executes the get planet query
func (h *GetPlanetHandler) Handle(ctx context.Context, query GetPlanetQuery) (*domain.Planet, error) {
	planet, err := h.repo.FindPlanetByID(ctx, query.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get planet: %w", err)
	}
	return planet, nil
}
