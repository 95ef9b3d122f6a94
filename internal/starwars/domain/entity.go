package domain

// User represents a registered user. Users are created by an external
// registration flow and are read-only here.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"size:120;uniqueIndex;not null"`
	Password string `json:"-" gorm:"size:80;not null"` // Never expose password in JSON
	IsActive bool   `json:"-" gorm:"not null"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// Person represents a Star Wars character
type Person struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:120;not null"`
	ColorEyes string `json:"color_eyes" gorm:"size:50;not null"`
	Gender    string `json:"gender" gorm:"size:50;not null"`
}

// TableName specifies the table name
func (Person) TableName() string {
	return "people"
}

// Planet represents a Star Wars planet
type Planet struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"size:120;not null"`
	Population int64  `json:"population" gorm:"not null"`
	Diameter   int64  `json:"diameter" gorm:"not null"`
}

// TableName specifies the table name
func (Planet) TableName() string {
	return "planets"
}
