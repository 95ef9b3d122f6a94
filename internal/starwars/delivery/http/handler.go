package http

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
	"github.com/tair/starwars-favorites/internal/starwars/usecase/command"
	"github.com/tair/starwars-favorites/internal/starwars/usecase/query"
)

// StarWarsHandler handles HTTP requests for the catalog and favorites
type StarWarsHandler struct {
	// Command handlers
	addPlanetHandler    *command.AddFavoritePlanetHandler
	addPeopleHandler    *command.AddFavoritePeopleHandler
	removePlanetHandler *command.RemoveFavoritePlanetHandler
	removePeopleHandler *command.RemoveFavoritePeopleHandler

	// Query handlers
	listUsersHandler     *query.ListUsersHandler
	listPeopleHandler    *query.ListPeopleHandler
	getPersonHandler     *query.GetPersonHandler
	listPlanetsHandler   *query.ListPlanetsHandler
	getPlanetHandler     *query.GetPlanetHandler
	userFavoritesHandler *query.ListUserFavoritesHandler

	metrics *Metrics
}

// NewStarWarsHandler creates a new handler (manual DI)
func NewStarWarsHandler(entities domain.EntityRepository, favorites domain.FavoriteRepository, events domain.EventPublisher, metrics *Metrics) *StarWarsHandler {
	return &StarWarsHandler{
		addPlanetHandler:     command.NewAddFavoritePlanetHandler(entities, favorites, events),
		addPeopleHandler:     command.NewAddFavoritePeopleHandler(entities, favorites, events),
		removePlanetHandler:  command.NewRemoveFavoritePlanetHandler(entities, favorites, events),
		removePeopleHandler:  command.NewRemoveFavoritePeopleHandler(entities, favorites, events),
		listUsersHandler:     query.NewListUsersHandler(entities),
		listPeopleHandler:    query.NewListPeopleHandler(entities),
		getPersonHandler:     query.NewGetPersonHandler(entities),
		listPlanetsHandler:   query.NewListPlanetsHandler(entities),
		getPlanetHandler:     query.NewGetPlanetHandler(entities),
		userFavoritesHandler: query.NewListUserFavoritesHandler(entities, favorites),
		metrics:              metrics,
	}
}

// NewStarWarsHandlerWithDI creates a new handler using dependency injection
func NewStarWarsHandlerWithDI(
	commands *CommandHandlers,
	queries *QueryHandlers,
	metrics *Metrics,
) *StarWarsHandler {
	return &StarWarsHandler{
		addPlanetHandler:     commands.AddPlanet,
		addPeopleHandler:     commands.AddPeople,
		removePlanetHandler:  commands.RemovePlanet,
		removePeopleHandler:  commands.RemovePeople,
		listUsersHandler:     queries.ListUsers,
		listPeopleHandler:    queries.ListPeople,
		getPersonHandler:     queries.GetPerson,
		listPlanetsHandler:   queries.ListPlanets,
		getPlanetHandler:     queries.GetPlanet,
		userFavoritesHandler: queries.UserFavorites,
		metrics:              metrics,
	}
}

// CommandHandlers holds all command handlers
type CommandHandlers struct {
	AddPlanet    *command.AddFavoritePlanetHandler
	AddPeople    *command.AddFavoritePeopleHandler
	RemovePlanet *command.RemoveFavoritePlanetHandler
	RemovePeople *command.RemoveFavoritePeopleHandler
}

// QueryHandlers holds all query handlers
type QueryHandlers struct {
	ListUsers     *query.ListUsersHandler
	ListPeople    *query.ListPeopleHandler
	GetPerson     *query.GetPersonHandler
	ListPlanets   *query.ListPlanetsHandler
	GetPlanet     *query.GetPlanetHandler
	UserFavorites *query.ListUserFavoritesHandler
}

// ListUsers handles GET /users
func (h *StarWarsHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.listUsersHandler.Handle(r.Context())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// ListPeople handles GET /people. The body is a flat array.
func (h *StarWarsHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.listPeopleHandler.Handle(r.Context())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, people)
}

// GetPerson handles GET /people/{id}
func (h *StarWarsHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid people ID")
		return
	}

	person, err := h.getPersonHandler.Handle(r.Context(), query.GetPersonQuery{ID: id})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, person)
}

// ListPlanets handles GET /planets
func (h *StarWarsHandler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.listPlanetsHandler.Handle(r.Context())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, planets)
}

// GetPlanet handles GET /planets/{id}
func (h *StarWarsHandler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid planet ID")
		return
	}

	planet, err := h.getPlanetHandler.Handle(r.Context(), query.GetPlanetQuery{ID: id})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, planet)
}

// GetUserFavorites handles GET /users/{id}/favorites
func (h *StarWarsHandler) GetUserFavorites(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	favorites, err := h.userFavoritesHandler.Handle(r.Context(), query.ListUserFavoritesQuery{UserID: id})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, favorites)
}

// AddFavoritePlanet handles POST /favorite/user/{user_id}/planet/{planet_id}
func (h *StarWarsHandler) AddFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	userID, planetID, ok := favoriteIDs(w, r, "planet_id")
	if !ok {
		return
	}

	fav, err := h.addPlanetHandler.Handle(r.Context(), command.AddFavoritePlanetCommand{
		UserID:   userID,
		PlanetID: planetID,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.metrics.favoriteChanged(domain.ActionAdded, domain.KindPlanet)
	respondJSON(w, http.StatusCreated, fav)
}

// AddFavoritePeople handles POST /favorite/user/{user_id}/people/{people_id}
func (h *StarWarsHandler) AddFavoritePeople(w http.ResponseWriter, r *http.Request) {
	userID, peopleID, ok := favoriteIDs(w, r, "people_id")
	if !ok {
		return
	}

	fav, err := h.addPeopleHandler.Handle(r.Context(), command.AddFavoritePeopleCommand{
		UserID:   userID,
		PeopleID: peopleID,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.metrics.favoriteChanged(domain.ActionAdded, domain.KindPeople)
	respondJSON(w, http.StatusCreated, fav)
}

// RemoveFavoritePlanet handles DELETE /favorite/user/{user_id}/planet/{planet_id}
func (h *StarWarsHandler) RemoveFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	userID, planetID, ok := favoriteIDs(w, r, "planet_id")
	if !ok {
		return
	}

	msg, err := h.removePlanetHandler.Handle(r.Context(), command.RemoveFavoritePlanetCommand{
		UserID:   userID,
		PlanetID: planetID,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.metrics.favoriteChanged(domain.ActionRemoved, domain.KindPlanet)
	respondJSON(w, http.StatusOK, MessageResponse{Message: msg})
}

// RemoveFavoritePeople handles DELETE /favorite/user/{user_id}/people/{people_id}
func (h *StarWarsHandler) RemoveFavoritePeople(w http.ResponseWriter, r *http.Request) {
	userID, peopleID, ok := favoriteIDs(w, r, "people_id")
	if !ok {
		return
	}

	msg, err := h.removePeopleHandler.Handle(r.Context(), command.RemoveFavoritePeopleCommand{
		UserID:   userID,
		PeopleID: peopleID,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.metrics.favoriteChanged(domain.ActionRemoved, domain.KindPeople)
	respondJSON(w, http.StatusOK, MessageResponse{Message: msg})
}

func favoriteIDs(w http.ResponseWriter, r *http.Request, targetVar string) (uint, uint, bool) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return 0, 0, false
	}
	targetID, err := pathID(r, targetVar)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid target ID")
		return 0, 0, false
	}
	return userID, targetID, true
}

// RegisterRoutes registers all API routes
func (h *StarWarsHandler) RegisterRoutes(router *mux.Router) {
	routes := []struct {
		method  string
		path    string
		handler http.HandlerFunc
	}{
		{http.MethodGet, "/users", h.ListUsers},
		{http.MethodGet, "/users/{id:[0-9]+}/favorites", h.GetUserFavorites},
		{http.MethodGet, "/people", h.ListPeople},
		{http.MethodGet, "/people/{id:[0-9]+}", h.GetPerson},
		{http.MethodGet, "/planets", h.ListPlanets},
		{http.MethodGet, "/planets/{id:[0-9]+}", h.GetPlanet},
		{http.MethodPost, "/favorite/user/{user_id:[0-9]+}/planet/{planet_id:[0-9]+}", h.AddFavoritePlanet},
		{http.MethodDelete, "/favorite/user/{user_id:[0-9]+}/planet/{planet_id:[0-9]+}", h.RemoveFavoritePlanet},
		{http.MethodPost, "/favorite/user/{user_id:[0-9]+}/people/{people_id:[0-9]+}", h.AddFavoritePeople},
		{http.MethodDelete, "/favorite/user/{user_id:[0-9]+}/people/{people_id:[0-9]+}", h.RemoveFavoritePeople},
	}

	for _, rt := range routes {
		router.HandleFunc(rt.path, h.metrics.instrument(rt.path, rt.handler)).Methods(rt.method)
	}

	router.HandleFunc("/", Sitemap(router)).Methods(http.MethodGet)
}

// RegisterHealthCheck registers health check endpoint. A nil db reports
// healthy, which is the case for the in-memory store.
func (h *StarWarsHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				respondError(w, http.StatusServiceUnavailable, "Database unavailable")
				return
			}
		}

		respondJSON(w, http.StatusOK, MessageResponse{Message: "Starwars service is healthy"})
	}).Methods(http.MethodGet)
}
