package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
)

// AutoMigrate creates tables, unique indexes and foreign keys
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Person{},
		&domain.Planet{},
		&domain.FavoritePlanet{},
		&domain.FavoritePeople{},
	)
}

// GormEntityRepository implements EntityRepository interface using GORM
type GormEntityRepository struct {
	db *gorm.DB
}

// NewGormEntityRepository creates a new GORM entity repository
func NewGormEntityRepository(db *gorm.DB) *GormEntityRepository {
	return &GormEntityRepository{db: db}
}

func (r *GormEntityRepository) FindUserByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFoundOr(err, domain.MsgUserNotFound, "failed to find user")
	}
	return &user, nil
}

func (r *GormEntityRepository) FindAllUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	return users, nil
}

func (r *GormEntityRepository) FindPersonByID(ctx context.Context, id uint) (*domain.Person, error) {
	var person domain.Person
	if err := r.db.WithContext(ctx).First(&person, id).Error; err != nil {
		return nil, notFoundOr(err, domain.MsgPeopleNotFound, "failed to find person")
	}
	return &person, nil
}

func (r *GormEntityRepository) FindAllPeople(ctx context.Context) ([]domain.Person, error) {
	var people []domain.Person
	if err := r.db.WithContext(ctx).Order("id").Find(&people).Error; err != nil {
		return nil, fmt.Errorf("failed to find people: %w", err)
	}
	return people, nil
}

func (r *GormEntityRepository) FindPlanetByID(ctx context.Context, id uint) (*domain.Planet, error) {
	var planet domain.Planet
	if err := r.db.WithContext(ctx).First(&planet, id).Error; err != nil {
		return nil, notFoundOr(err, domain.MsgPlanetNotFound, "failed to find planet")
	}
	return &planet, nil
}

func (r *GormEntityRepository) FindAllPlanets(ctx context.Context) ([]domain.Planet, error) {
	var planets []domain.Planet
	if err := r.db.WithContext(ctx).Order("id").Find(&planets).Error; err != nil {
		return nil, fmt.Errorf("failed to find planets: %w", err)
	}
	return planets, nil
}

// GormFavoriteRepository implements FavoriteRepository interface using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GORM favorite repository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// CreatePlanet inserts a favorite planet. The unique index on
// (user_id, planet_id) rejects duplicates that slipped past the caller.
func (r *GormFavoriteRepository) CreatePlanet(ctx context.Context, fav *domain.FavoritePlanet) error {
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Conflict(domain.MsgPlanetDuplicate)
		}
		return fmt.Errorf("failed to create favorite planet: %w", err)
	}
	return nil
}

func (r *GormFavoriteRepository) FindPlanetByUserAndTarget(ctx context.Context, userID, planetID uint) (*domain.FavoritePlanet, error) {
	var fav domain.FavoritePlanet
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND planet_id = ?", userID, planetID).
		First(&fav).Error
	if err != nil {
		return nil, notFoundOr(err, domain.MsgFavoriteNotFound, "failed to find favorite planet")
	}
	return &fav, nil
}

func (r *GormFavoriteRepository) FindPlanetsByUser(ctx context.Context, userID uint) ([]domain.FavoritePlanet, error) {
	var favs []domain.FavoritePlanet
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&favs).Error; err != nil {
		return nil, fmt.Errorf("failed to find favorite planets: %w", err)
	}
	return favs, nil
}

func (r *GormFavoriteRepository) DeletePlanet(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.FavoritePlanet{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete favorite planet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NotFound(domain.MsgFavoriteNotFound)
	}
	return nil
}

// CreatePeople inserts a favorite person, see CreatePlanet
func (r *GormFavoriteRepository) CreatePeople(ctx context.Context, fav *domain.FavoritePeople) error {
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Conflict(domain.MsgPeopleDuplicate)
		}
		return fmt.Errorf("failed to create favorite people: %w", err)
	}
	return nil
}

func (r *GormFavoriteRepository) FindPeopleByUserAndTarget(ctx context.Context, userID, peopleID uint) (*domain.FavoritePeople, error) {
	var fav domain.FavoritePeople
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND people_id = ?", userID, peopleID).
		First(&fav).Error
	if err != nil {
		return nil, notFoundOr(err, domain.MsgFavoriteNotFound, "failed to find favorite people")
	}
	return &fav, nil
}

func (r *GormFavoriteRepository) FindPeopleByUser(ctx context.Context, userID uint) ([]domain.FavoritePeople, error) {
	var favs []domain.FavoritePeople
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&favs).Error; err != nil {
		return nil, fmt.Errorf("failed to find favorite people: %w", err)
	}
	return favs, nil
}

func (r *GormFavoriteRepository) DeletePeople(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.FavoritePeople{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete favorite people: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NotFound(domain.MsgFavoriteNotFound)
	}
	return nil
}

func notFoundOr(err error, notFoundMsg, failureMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFound(notFoundMsg)
	}
	return fmt.Errorf("%s: %w", failureMsg, err)
}
