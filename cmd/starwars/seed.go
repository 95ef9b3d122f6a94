package main

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/tair/starwars-favorites/internal/config"
	"github.com/tair/starwars-favorites/internal/starwars/repository"
	"github.com/tair/starwars-favorites/internal/starwars/seed"
	"github.com/tair/starwars-favorites/pkg/database"
	"github.com/tair/starwars-favorites/pkg/logger"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load users, people and planets into empty PostgreSQL tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.StorageType != config.StoragePostgres {
				return fmt.Errorf("seed requires STORAGE_TYPE=%s", config.StoragePostgres)
			}

			data, err := loadSeedData(file)
			if err != nil {
				return err
			}
			return runSeed(cmd.Context(), cfg, data)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML seed file (default: bundled catalog)")
	return cmd
}

func loadSeedData(file string) (*seed.Data, error) {
	if file == "" {
		return seed.Default()
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return seed.Parse(b)
}

func runSeed(ctx context.Context, cfg *config.Config, data *seed.Data) error {
	// Schema is owned by GORM; COPY needs the lib/pq driver.
	gdb, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		return err
	}
	if err := repository.AutoMigrate(gdb); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.Close()
	}

	db, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := seed.NewSeeder(db).Seed(ctx, data)
	if err != nil {
		return err
	}

	if cfg.RedisAddr != "" && res.People+res.Planets > 0 {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		removed, err := repository.InvalidateCatalog(ctx, rdb)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to invalidate catalog cache")
		} else {
			logger.Logger.Info().Int("keys", removed).Msg("Catalog cache invalidated")
		}
	}

	return nil
}
