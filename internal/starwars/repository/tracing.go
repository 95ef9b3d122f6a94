package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
)

var tracer = otel.Tracer("starwars-repository")

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan records err on the span. Missing records are an expected outcome
// and do not mark the span as failed.
func endSpan(span trace.Span, err error) {
	defer span.End()
	if err == nil {
		return
	}
	span.RecordError(err)
	if !domain.IsExpected(err) {
		span.SetStatus(codes.Error, err.Error())
	}
}

// TracingEntityRepository wraps an EntityRepository with tracing
type TracingEntityRepository struct {
	next domain.EntityRepository
}

// NewTracingEntityRepository creates a new entity repository with tracing
func NewTracingEntityRepository(next domain.EntityRepository) *TracingEntityRepository {
	return &TracingEntityRepository{next: next}
}

func (r *TracingEntityRepository) FindUserByID(ctx context.Context, id uint) (user *domain.User, err error) {
	ctx, span := startSpan(ctx, "repository.FindUserByID", attribute.Int("user.id", int(id)))
	defer func() { endSpan(span, err) }()

	user, err = r.next.FindUserByID(ctx, id)
	if err == nil {
		span.SetAttributes(attribute.String("user.email", user.Email))
	}
	return user, err
}

func (r *TracingEntityRepository) FindAllUsers(ctx context.Context) (users []domain.User, err error) {
	ctx, span := startSpan(ctx, "repository.FindAllUsers")
	defer func() { endSpan(span, err) }()

	users, err = r.next.FindAllUsers(ctx)
	span.SetAttributes(attribute.Int("result.count", len(users)))
	return users, err
}

func (r *TracingEntityRepository) FindPersonByID(ctx context.Context, id uint) (person *domain.Person, err error) {
	ctx, span := startSpan(ctx, "repository.FindPersonByID", attribute.Int("person.id", int(id)))
	defer func() { endSpan(span, err) }()

	person, err = r.next.FindPersonByID(ctx, id)
	if err == nil {
		span.SetAttributes(attribute.String("person.name", person.Name))
	}
	return person, err
}

func (r *TracingEntityRepository) FindAllPeople(ctx context.Context) (people []domain.Person, err error) {
	ctx, span := startSpan(ctx, "repository.FindAllPeople")
	defer func() { endSpan(span, err) }()

	people, err = r.next.FindAllPeople(ctx)
	span.SetAttributes(attribute.Int("result.count", len(people)))
	return people, err
}

func (r *TracingEntityRepository) FindPlanetByID(ctx context.Context, id uint) (planet *domain.Planet, err error) {
	ctx, span := startSpan(ctx, "repository.FindPlanetByID", attribute.Int("planet.id", int(id)))
	defer func() { endSpan(span, err) }()

	planet, err = r.next.FindPlanetByID(ctx, id)
	if err == nil {
		span.SetAttributes(attribute.String("planet.name", planet.Name))
	}
	return planet, err
}

func (r *TracingEntityRepository) FindAllPlanets(ctx context.Context) (planets []domain.Planet, err error) {
	ctx, span := startSpan(ctx, "repository.FindAllPlanets")
	defer func() { endSpan(span, err) }()

	planets, err = r.next.FindAllPlanets(ctx)
	span.SetAttributes(attribute.Int("result.count", len(planets)))
	return planets, err
}

// TracingFavoriteRepository wraps a FavoriteRepository with tracing
type TracingFavoriteRepository struct {
	next domain.FavoriteRepository
}

// NewTracingFavoriteRepository creates a new favorite repository with tracing
func NewTracingFavoriteRepository(next domain.FavoriteRepository) *TracingFavoriteRepository {
	return &TracingFavoriteRepository{next: next}
}

func (r *TracingFavoriteRepository) CreatePlanet(ctx context.Context, fav *domain.FavoritePlanet) (err error) {
	ctx, span := startSpan(ctx, "repository.CreateFavoritePlanet",
		attribute.Int("user.id", int(fav.UserID)),
		attribute.Int("planet.id", int(fav.PlanetID)),
	)
	defer func() { endSpan(span, err) }()

	if err = r.next.CreatePlanet(ctx, fav); err == nil {
		span.SetAttributes(attribute.Int("favorite.id", int(fav.ID)))
	}
	return err
}

func (r *TracingFavoriteRepository) FindPlanetByUserAndTarget(ctx context.Context, userID, planetID uint) (fav *domain.FavoritePlanet, err error) {
	ctx, span := startSpan(ctx, "repository.FindFavoritePlanet",
		attribute.Int("user.id", int(userID)),
		attribute.Int("planet.id", int(planetID)),
	)
	defer func() { endSpan(span, err) }()

	return r.next.FindPlanetByUserAndTarget(ctx, userID, planetID)
}

func (r *TracingFavoriteRepository) FindPlanetsByUser(ctx context.Context, userID uint) (favs []domain.FavoritePlanet, err error) {
	ctx, span := startSpan(ctx, "repository.FindFavoritePlanetsByUser", attribute.Int("user.id", int(userID)))
	defer func() { endSpan(span, err) }()

	favs, err = r.next.FindPlanetsByUser(ctx, userID)
	span.SetAttributes(attribute.Int("result.count", len(favs)))
	return favs, err
}

func (r *TracingFavoriteRepository) DeletePlanet(ctx context.Context, id uint) (err error) {
	ctx, span := startSpan(ctx, "repository.DeleteFavoritePlanet", attribute.Int("favorite.id", int(id)))
	defer func() { endSpan(span, err) }()

	return r.next.DeletePlanet(ctx, id)
}

func (r *TracingFavoriteRepository) CreatePeople(ctx context.Context, fav *domain.FavoritePeople) (err error) {
	ctx, span := startSpan(ctx, "repository.CreateFavoritePeople",
		attribute.Int("user.id", int(fav.UserID)),
		attribute.Int("people.id", int(fav.PeopleID)),
	)
	defer func() { endSpan(span, err) }()

	if err = r.next.CreatePeople(ctx, fav); err == nil {
		span.SetAttributes(attribute.Int("favorite.id", int(fav.ID)))
	}
	return err
}

func (r *TracingFavoriteRepository) FindPeopleByUserAndTarget(ctx context.Context, userID, peopleID uint) (fav *domain.FavoritePeople, err error) {
	ctx, span := startSpan(ctx, "repository.FindFavoritePeople",
		attribute.Int("user.id", int(userID)),
		attribute.Int("people.id", int(peopleID)),
	)
	defer func() { endSpan(span, err) }()

	return r.next.FindPeopleByUserAndTarget(ctx, userID, peopleID)
}

func (r *TracingFavoriteRepository) FindPeopleByUser(ctx context.Context, userID uint) (favs []domain.FavoritePeople, err error) {
	ctx, span := startSpan(ctx, "repository.FindFavoritePeopleByUser", attribute.Int("user.id", int(userID)))
	defer func() { endSpan(span, err) }()

	favs, err = r.next.FindPeopleByUser(ctx, userID)
	span.SetAttributes(attribute.Int("result.count", len(favs)))
	return favs, err
}

func (r *TracingFavoriteRepository) DeletePeople(ctx context.Context, id uint) (err error) {
	ctx, span := startSpan(ctx, "repository.DeleteFavoritePeople", attribute.Int("favorite.id", int(id)))
	defer func() { endSpan(span, err) }()

	return r.next.DeletePeople(ctx, id)
}
