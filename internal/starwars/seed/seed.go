// Package seed loads the catalog and a few users into an empty store.
package seed

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
	"github.com/tair/starwars-favorites/internal/starwars/repository"
	"github.com/tair/starwars-favorites/pkg/logger"
)

//go:embed seed.yaml
var defaultData []byte

// User is a seeded account with a plaintext password that gets hashed on load
type User struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Inactive bool   `yaml:"inactive"`
}

// Person is a seeded character
type Person struct {
	Name      string `yaml:"name"`
	ColorEyes string `yaml:"color_eyes"`
	Gender    string `yaml:"gender"`
}

// Planet is a seeded planet
type Planet struct {
	Name       string `yaml:"name"`
	Population int64  `yaml:"population"`
	Diameter   int64  `yaml:"diameter"`
}

// Data is the content of a seed file
type Data struct {
	Users   []User   `yaml:"users"`
	People  []Person `yaml:"people"`
	Planets []Planet `yaml:"planets"`
}

// Result reports how many rows were inserted per table. A table that
// already had rows is skipped and reports zero.
type Result struct {
	Users   int
	People  int
	Planets int
}

// Default returns the embedded seed data
func Default() (*Data, error) {
	return Parse(defaultData)
}

// Parse decodes seed data from YAML
func Parse(b []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &data, nil
}

// Seeder writes seed data into PostgreSQL with COPY
type Seeder struct {
	db   *sql.DB
	cost int
}

// NewSeeder creates a seeder hashing passwords with bcrypt's default cost
func NewSeeder(db *sql.DB) *Seeder {
	return &Seeder{db: db, cost: bcrypt.DefaultCost}
}

// WithCost overrides the bcrypt cost
func (s *Seeder) WithCost(cost int) *Seeder {
	s.cost = cost
	return s
}

// Seed fills every empty table. Tables are independent so a partially
// seeded database is completed on the next run.
func (s *Seeder) Seed(ctx context.Context, data *Data) (Result, error) {
	var res Result

	users, err := hashUsers(data.Users, s.cost)
	if err != nil {
		return res, err
	}

	userRows := make([][]interface{}, 0, len(users))
	for _, u := range users {
		userRows = append(userRows, []interface{}{u.Email, u.Password, u.IsActive})
	}
	if res.Users, err = s.copyInto(ctx, "users", []string{"email", "password", "is_active"}, userRows); err != nil {
		return res, err
	}

	peopleRows := make([][]interface{}, 0, len(data.People))
	for _, p := range data.People {
		peopleRows = append(peopleRows, []interface{}{p.Name, p.ColorEyes, p.Gender})
	}
	if res.People, err = s.copyInto(ctx, "people", []string{"name", "color_eyes", "gender"}, peopleRows); err != nil {
		return res, err
	}

	planetRows := make([][]interface{}, 0, len(data.Planets))
	for _, p := range data.Planets {
		planetRows = append(planetRows, []interface{}{p.Name, p.Population, p.Diameter})
	}
	if res.Planets, err = s.copyInto(ctx, "planets", []string{"name", "population", "diameter"}, planetRows); err != nil {
		return res, err
	}

	logger.Info(ctx).
		Int("users", res.Users).
		Int("people", res.People).
		Int("planets", res.Planets).
		Msg("Seed completed")

	return res, nil
}

func (s *Seeder) copyInto(ctx context.Context, table string, columns []string, rows [][]interface{}) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+pq.QuoteIdentifier(table)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	if count > 0 {
		logger.Info(ctx).Str("table", table).Int("rows", count).Msg("Table not empty, skipping")
		return 0, nil
	}

	txn, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer txn.Rollback()

	stmt, err := txn.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare COPY: %w", err)
	}

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			stmt.Close()
			return 0, fmt.Errorf("failed to copy into %s: %w", table, err)
		}
	}

	// Flush COPY
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return 0, fmt.Errorf("failed to flush COPY: %w", err)
	}

	if err := stmt.Close(); err != nil {
		return 0, fmt.Errorf("failed to close statement: %w", err)
	}

	if err := txn.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	return len(rows), nil
}

// LoadIntoMemory fills an in-memory store, assigning ids in file order
func LoadIntoMemory(store *repository.MemoryStore, data *Data, cost int) error {
	users, err := hashUsers(data.Users, cost)
	if err != nil {
		return err
	}
	for i := range users {
		store.AddUser(&users[i])
	}
	for _, p := range data.People {
		store.AddPerson(&domain.Person{Name: p.Name, ColorEyes: p.ColorEyes, Gender: p.Gender})
	}
	for _, p := range data.Planets {
		store.AddPlanet(&domain.Planet{Name: p.Name, Population: p.Population, Diameter: p.Diameter})
	}
	return nil
}

func hashUsers(seeds []User, cost int) ([]domain.User, error) {
	users := make([]domain.User, 0, len(seeds))
	for _, u := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", u.Email, err)
		}
		users = append(users, domain.User{
			Email:    u.Email,
			Password: string(hash),
			IsActive: !u.Inactive,
		})
	}
	return users, nil
}
