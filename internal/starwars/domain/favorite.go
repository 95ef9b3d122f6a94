package domain

// Target kinds a user can mark as favorite
const (
	KindPlanet = "planet"
	KindPeople = "people"
)

// FavoritePlanet links a user to a planet. At most one row per (user, planet).
type FavoritePlanet struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	UserID   uint `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_planets_user_planet"`
	PlanetID uint `json:"planet_id" gorm:"not null;uniqueIndex:idx_favorite_planets_user_planet;index"`

	// Owning side only, used for foreign keys. Never loaded.
	User   *User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Planet *Planet `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (FavoritePlanet) TableName() string {
	return "favorite_planets"
}

// FavoritePeople links a user to a person. At most one row per (user, person).
type FavoritePeople struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	UserID   uint `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_people_user_people"`
	PeopleID uint `json:"people_id" gorm:"not null;uniqueIndex:idx_favorite_people_user_people;index"`

	User   *User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Person *Person `json:"-" gorm:"foreignKey:PeopleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (FavoritePeople) TableName() string {
	return "favorite_people"
}

// UserFavorites groups every favorite owned by one user
type UserFavorites struct {
	Planets []FavoritePlanet `json:"favorite_planets"`
	People  []FavoritePeople `json:"favorite_people"`
}

// FavoriteChange describes an add or remove of a favorite
type FavoriteChange struct {
	Action     string
	Kind       string
	FavoriteID uint
	UserID     uint
	TargetID   uint
}

// Favorite change actions
const (
	ActionAdded   = "added"
	ActionRemoved = "removed"
)
