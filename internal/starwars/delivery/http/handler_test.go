package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
	"github.com/tair/starwars-favorites/internal/starwars/repository"
)

type testServer struct {
	handler http.Handler
	metrics *Metrics
	store   *repository.MemoryStore
}

func setupServer(t *testing.T) *testServer {
	t.Helper()

	store := repository.NewMemoryStore()
	store.AddUser(&domain.User{ID: 1, Email: "luke@rebels.org", Password: "secret-hash", IsActive: true})
	store.AddPerson(&domain.Person{ID: 1, Name: "Luke Skywalker", ColorEyes: "blue", Gender: "male"})
	store.AddPerson(&domain.Person{ID: 3, Name: "Leia Organa", ColorEyes: "brown", Gender: "female"})
	store.AddPlanet(&domain.Planet{ID: 5, Name: "Tatooine", Population: 200000, Diameter: 10465})

	metrics := NewMetrics(prometheus.NewRegistry())
	h := NewStarWarsHandler(store, store, nil, metrics)

	router := mux.NewRouter()
	h.RegisterRoutes(router)
	h.RegisterHealthCheck(router, nil)
	RegisterMiddlewares(router, &MiddlewareConfig{EnableRecovery: true, EnableLogging: true})

	return &testServer{handler: StripTrailingSlash(router), metrics: metrics, store: store}
}

func (s *testServer) do(t *testing.T, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestFavoritePlanetLifecycle(t *testing.T) {
	s := setupServer(t)
	path := "/favorite/user/1/planet/5"

	rec := s.do(t, http.MethodPost, path)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"user_id":1,"planet_id":5}`, rec.Body.String())

	rec = s.do(t, http.MethodPost, path)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrorResponse{Message: "Planet already added as favorite", StatusCode: 400}, decodeError(t, rec))

	rec = s.do(t, http.MethodGet, "/users/1/favorites")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"favorite_planets":[{"id":1,"user_id":1,"planet_id":5}],"favorite_people":[]}`, rec.Body.String())

	rec = s.do(t, http.MethodDelete, path)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Favorite Planet deleted"}`, rec.Body.String())

	rec = s.do(t, http.MethodDelete, path)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ErrorResponse{Message: "Favorite not found", StatusCode: 404}, decodeError(t, rec))

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.favoritesChanges.WithLabelValues(domain.ActionAdded, domain.KindPlanet)))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.favoritesChanges.WithLabelValues(domain.ActionRemoved, domain.KindPlanet)))
}

func TestFavoritePeopleLifecycle(t *testing.T) {
	s := setupServer(t)
	path := "/favorite/user/1/people/3"

	rec := s.do(t, http.MethodPost, path)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"user_id":1,"people_id":3}`, rec.Body.String())

	rec = s.do(t, http.MethodPost, path)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "People already added as favorite", decodeError(t, rec).Message)

	rec = s.do(t, http.MethodDelete, path)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Favorite People deleted"}`, rec.Body.String())
}

func TestAddFavorite_NotFound(t *testing.T) {
	s := setupServer(t)

	tests := []struct {
		name    string
		method  string
		path    string
		message string
	}{
		{"unknown planet", http.MethodPost, "/favorite/user/1/planet/99", "Planet not found"},
		{"unknown planet before unknown user", http.MethodPost, "/favorite/user/42/planet/99", "Planet not found"},
		{"unknown user", http.MethodPost, "/favorite/user/42/planet/5", "User not found"},
		{"unknown person", http.MethodPost, "/favorite/user/1/people/999", "People not found"},
		{"delete unknown person", http.MethodDelete, "/favorite/user/1/people/999", "People not found"},
		{"delete missing favorite", http.MethodDelete, "/favorite/user/1/people/3", "Favorite not found"},
		{"zero id", http.MethodPost, "/favorite/user/1/planet/0", "Planet not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, tt.method, tt.path)
			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, ErrorResponse{Message: tt.message, StatusCode: 404}, decodeError(t, rec))
		})
	}
}

func TestGetEntities(t *testing.T) {
	s := setupServer(t)

	rec := s.do(t, http.MethodGet, "/people/1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Luke Skywalker","color_eyes":"blue","gender":"male"}`, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/people/999")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ErrorResponse{Message: "People not found", StatusCode: 404}, decodeError(t, rec))

	rec = s.do(t, http.MethodGet, "/planets/5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":5,"name":"Tatooine","population":200000,"diameter":10465}`, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/planets/6")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Planet not found", decodeError(t, rec).Message)
}

func TestListEndpoints(t *testing.T) {
	s := setupServer(t)

	rec := s.do(t, http.MethodGet, "/people")
	require.Equal(t, http.StatusOK, rec.Code)
	var people []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &people))
	require.Len(t, people, 2)
	assert.Equal(t, "Luke Skywalker", people[0]["name"])

	rec = s.do(t, http.MethodGet, "/planets/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":5,"name":"Tatooine","population":200000,"diameter":10465}]`, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/users")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"email":"luke@rebels.org"}]`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestEmptyCollections(t *testing.T) {
	store := repository.NewMemoryStore()
	store.AddUser(&domain.User{ID: 7, Email: "rey@jakku.org"})
	h := NewStarWarsHandler(store, store, nil, NewMetrics(prometheus.NewRegistry()))
	router := mux.NewRouter()
	h.RegisterRoutes(router)

	for path, want := range map[string]string{
		"/people":            `[]`,
		"/planets":           `[]`,
		"/users/7/favorites": `{"favorite_planets":[],"favorite_people":[]}`,
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, want, rec.Body.String(), path)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/8/favorites", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeError(t, rec).Message)
}

func TestInvalidIDs(t *testing.T) {
	s := setupServer(t)

	rec := s.do(t, http.MethodGet, "/people/abc")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/people/99999999999999999999")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 400, decodeError(t, rec).StatusCode)

	rec = s.do(t, http.MethodPut, "/favorite/user/1/planet/5")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

type brokenEntities struct {
	*repository.MemoryStore
}

func (brokenEntities) FindAllPlanets(context.Context) ([]domain.Planet, error) {
	return nil, errors.New("connection reset by peer")
}

func TestStorageFailureIs500(t *testing.T) {
	store := repository.NewMemoryStore()
	h := NewStarWarsHandler(brokenEntities{store}, store, nil, NewMetrics(prometheus.NewRegistry()))
	router := mux.NewRouter()
	h.RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/planets", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, 500, body.StatusCode)
	assert.NotContains(t, body.Message, "connection reset")
}

func TestHealthAndSitemap(t *testing.T) {
	s := setupServer(t)

	rec := s.do(t, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = s.do(t, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
	body := rec.Body.String()
	for _, link := range []string{"/users", "/people", "/planets", "/health"} {
		assert.Contains(t, body, `href="`+link+`"`)
	}
	assert.NotContains(t, body, "{id")
}

func TestRequestMetrics(t *testing.T) {
	s := setupServer(t)

	s.do(t, http.MethodGet, "/people/1")
	s.do(t, http.MethodGet, "/people/999")

	ok := s.metrics.requestCounter.WithLabelValues(http.MethodGet, "/people/{id:[0-9]+}", "200")
	notFound := s.metrics.requestCounter.WithLabelValues(http.MethodGet, "/people/{id:[0-9]+}", "404")
	assert.Equal(t, 1.0, testutil.ToFloat64(ok))
	assert.Equal(t, 1.0, testutil.ToFloat64(notFound))
}

func TestRecoveryMiddleware(t *testing.T) {
	router := mux.NewRouter()
	router.Use(RecoveryMiddleware())
	router.HandleFunc("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 500, decodeError(t, rec).StatusCode)
}
