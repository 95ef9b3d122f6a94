package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDSN(t *testing.T) {
	t.Run("fields", func(t *testing.T) {
		cfg := Config{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "starwars", SSLMode: "disable"}
		assert.Equal(t, "host=db port=5432 user=u password=p dbname=starwars sslmode=disable", cfg.DSN())
	})

	t.Run("url wins", func(t *testing.T) {
		cfg := Config{URL: "postgresql://u:p@db/starwars", Host: "ignored"}
		assert.Equal(t, "postgresql://u:p@db/starwars", cfg.DSN())
	})

	t.Run("legacy scheme", func(t *testing.T) {
		cfg := Config{URL: "postgres://u:p@db:5432/starwars?sslmode=require"}
		assert.Equal(t, "postgresql://u:p@db:5432/starwars?sslmode=require", cfg.DSN())
	})
}
