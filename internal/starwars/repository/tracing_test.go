package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
)

func TestTracingRepositories(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	ctx := context.Background()
	store := NewMemoryStore()
	store.AddPlanet(&domain.Planet{Name: "Hoth"})
	store.AddUser(&domain.User{Email: "luke@rebels.org"})

	entities := NewTracingEntityRepository(store)
	favorites := NewTracingFavoriteRepository(store)

	_, err := entities.FindPlanetByID(ctx, 1)
	require.NoError(t, err)

	_, err = entities.FindPersonByID(ctx, 42)
	require.Error(t, err)

	require.NoError(t, favorites.CreatePlanet(ctx, &domain.FavoritePlanet{UserID: 1, PlanetID: 1}))
	err = favorites.CreatePlanet(ctx, &domain.FavoritePlanet{UserID: 1, PlanetID: 1})
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 4)
	for _, span := range spans {
		assert.NotEqual(t, codes.Error, span.Status().Code, span.Name())
	}
	assert.NotEmpty(t, spans[1].Events(), "expected error is still recorded")
}
