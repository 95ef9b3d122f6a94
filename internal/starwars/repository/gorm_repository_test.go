package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
)

func setupGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestGormEntityRepository_FindPlanetByID(t *testing.T) {
	db, mock := setupGormMock(t)
	repo := NewGormEntityRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "planets" WHERE "planets"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "population", "diameter"}).
			AddRow(5, "Tatooine", 200000, 10465))

	planet, err := repo.FindPlanetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.Planet{ID: 5, Name: "Tatooine", Population: 200000, Diameter: 10465}, *planet)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormEntityRepository_FindPersonByID_NotFound(t *testing.T) {
	db, mock := setupGormMock(t)
	repo := NewGormEntityRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "people" WHERE "people"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color_eyes", "gender"}))

	_, err := repo.FindPersonByID(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, domain.MsgPeopleNotFound, err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormEntityRepository_FindUserByID_DatabaseError(t *testing.T) {
	db, mock := setupGormMock(t)
	repo := NewGormEntityRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByID(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, domain.IsExpected(err))
	assert.Contains(t, err.Error(), "failed to find user")
}

func TestGormEntityRepository_FindAllUsers(t *testing.T) {
	db, mock := setupGormMock(t)
	repo := NewGormEntityRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "is_active"}).
			AddRow(1, "luke@rebels.org", "secret", true).
			AddRow(2, "leia@rebels.org", "secret", true))

	users, err := repo.FindAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "leia@rebels.org", users[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormFavoriteRepository_CreatePlanet(t *testing.T) {
	db, mock := setupGormMock(t)
	repo := NewGormFavoriteRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "favorite_planets" \("user_id","planet_id"\) VALUES \(\$1,\$2\) RETURNING "id"`).
		WithArgs(1, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	fav := &domain.FavoritePlanet{UserID: 1, PlanetID: 5}
	require.NoError(t, repo.CreatePlanet(context.Background(), fav))
	assert.Equal(t, uint(1), fav.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormFavoriteRepository_CreatePlanet_UniqueViolation(t *testing.T) {
	db, mock := setupGormMock(t)
	repo := NewGormFavoriteRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "favorite_planets"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	err := repo.CreatePlanet(context.Background(), &domain.FavoritePlanet{UserID: 1, PlanetID: 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Equal(t, domain.MsgPlanetDuplicate, err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormFavoriteRepository_CreatePeople_UniqueViolation(t *testing.T) {
	db, mock := setupGormMock(t)
	repo := NewGormFavoriteRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "favorite_people"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.CreatePeople(context.Background(), &domain.FavoritePeople{UserID: 1, PeopleID: 3})
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Equal(t, domain.MsgPeopleDuplicate, err.Error())
}

func TestGormFavoriteRepository_FindPlanetByUserAndTarget(t *testing.T) {
	db, mock := setupGormMock(t)
	repo := NewGormFavoriteRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "favorite_planets" WHERE user_id = \$1 AND planet_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "planet_id"}))

	_, err := repo.FindPlanetByUserAndTarget(context.Background(), 1, 5)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, domain.MsgFavoriteNotFound, err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormFavoriteRepository_FindPeopleByUser(t *testing.T) {
	db, mock := setupGormMock(t)
	repo := NewGormFavoriteRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "favorite_people" WHERE user_id = \$1 ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "people_id"}).
			AddRow(1, 1, 3).
			AddRow(4, 1, 7))

	favs, err := repo.FindPeopleByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.FavoritePeople{
		{ID: 1, UserID: 1, PeopleID: 3},
		{ID: 4, UserID: 1, PeopleID: 7},
	}, favs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormFavoriteRepository_DeletePlanet(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db, mock := setupGormMock(t)
		repo := NewGormFavoriteRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "favorite_planets" WHERE "favorite_planets"."id" = \$1`).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.DeletePlanet(context.Background(), 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already gone", func(t *testing.T) {
		db, mock := setupGormMock(t)
		repo := NewGormFavoriteRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "favorite_planets"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.DeletePlanet(context.Background(), 1)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
