package starwars

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliveryhttp "github.com/tair/starwars-favorites/internal/starwars/delivery/http"
	"github.com/tair/starwars-favorites/internal/starwars/domain"
	"github.com/tair/starwars-favorites/internal/starwars/repository"
)

func TestInitializeMemoryHTTPHandler(t *testing.T) {
	store := repository.NewMemoryStore()
	store.AddUser(&domain.User{Email: "luke@rebels.org"})
	store.AddPlanet(&domain.Planet{Name: "Tatooine", Population: 200000, Diameter: 10465})

	handler, err := InitializeMemoryHTTPHandler(store, nil, deliveryhttp.NewMetrics(prometheus.NewRegistry()))
	require.NoError(t, err)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/favorite/user/1/planet/1", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	favs, err := store.FindPlanetsByUser(t.Context(), 1)
	require.NoError(t, err)
	assert.Len(t, favs, 1)
}

func TestProvideMemoryRepositoriesAreTraced(t *testing.T) {
	store := repository.NewMemoryStore()

	assert.IsType(t, &repository.TracingEntityRepository{}, ProvideMemoryEntityRepository(store))
	assert.IsType(t, &repository.TracingFavoriteRepository{}, ProvideMemoryFavoriteRepository(store))
}
