package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListUsers godoc
// @Summary List all users
// @Description Users are serialized with id and email only
// @Tags Users
// @Produce json
// @Success 200 {array} object{id=int,email=string}
// @Failure 500 {object} ErrorResponse
// @Router /users [get]
func (h *StarWarsHandler) ListUsersDoc() {}

// GetUserFavorites godoc
// @Summary List a user's favorites
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{favorite_planets=array,favorite_people=array}
// @Failure 404 {object} ErrorResponse
// @Router /users/{id}/favorites [get]
func (h *StarWarsHandler) GetUserFavoritesDoc() {}

// ListPeople godoc
// @Summary List all people
// @Tags People
// @Produce json
// @Success 200 {array} object{id=int,name=string,color_eyes=string,gender=string}
// @Router /people [get]
func (h *StarWarsHandler) ListPeopleDoc() {}

// GetPerson godoc
// @Summary Get a person by ID
// @Tags People
// @Produce json
// @Param id path int true "People ID"
// @Success 200 {object} object{id=int,name=string,color_eyes=string,gender=string}
// @Failure 404 {object} ErrorResponse
// @Router /people/{id} [get]
func (h *StarWarsHandler) GetPersonDoc() {}

// ListPlanets godoc
// @Summary List all planets
// @Tags Planets
// @Produce json
// @Success 200 {array} object{id=int,name=string,population=int,diameter=int}
// @Router /planets [get]
func (h *StarWarsHandler) ListPlanetsDoc() {}

// GetPlanet godoc
// @Summary Get a planet by ID
// @Tags Planets
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {object} object{id=int,name=string,population=int,diameter=int}
// @Failure 404 {object} ErrorResponse
// @Router /planets/{id} [get]
func (h *StarWarsHandler) GetPlanetDoc() {}

// AddFavoritePlanet godoc
// @Summary Mark a planet as favorite
// @Tags Favorites
// @Produce json
// @Param user_id path int true "User ID"
// @Param planet_id path int true "Planet ID"
// @Success 201 {object} object{id=int,user_id=int,planet_id=int}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /favorite/user/{user_id}/planet/{planet_id} [post]
func (h *StarWarsHandler) AddFavoritePlanetDoc() {}

// RemoveFavoritePlanet godoc
// @Summary Remove a favorite planet
// @Tags Favorites
// @Produce json
// @Param user_id path int true "User ID"
// @Param planet_id path int true "Planet ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /favorite/user/{user_id}/planet/{planet_id} [delete]
func (h *StarWarsHandler) RemoveFavoritePlanetDoc() {}

// AddFavoritePeople godoc
// @Summary Mark a person as favorite
// @Tags Favorites
// @Produce json
// @Param user_id path int true "User ID"
// @Param people_id path int true "People ID"
// @Success 201 {object} object{id=int,user_id=int,people_id=int}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /favorite/user/{user_id}/people/{people_id} [post]
func (h *StarWarsHandler) AddFavoritePeopleDoc() {}

// RemoveFavoritePeople godoc
// @Summary Remove a favorite person
// @Tags Favorites
// @Produce json
// @Param user_id path int true "User ID"
// @Param people_id path int true "People ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /favorite/user/{user_id}/people/{people_id} [delete]
func (h *StarWarsHandler) RemoveFavoritePeopleDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 503 {object} ErrorResponse
// @Router /health [get]
func (h *StarWarsHandler) HealthCheckDoc() {}
