package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tair/starwars-favorites/internal/config"
	"github.com/tair/starwars-favorites/pkg/logger"
)

var v = config.New()

var rootCmd = &cobra.Command{
	Use:   "starwars",
	Short: "Star Wars favorites API",
	Long: `starwars serves a read-only Star Wars catalog of people and planets
and lets users mark entries as favorites.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(func() {
		config.LoadEnvFiles()
	})

	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("storage", "", "storage backend (postgres or memory)")
	bindFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlag("storage_type", rootCmd.PersistentFlags().Lookup("storage"))

	rootCmd.AddCommand(newServeCmd(), newSeedCmd(), newEventsCmd())
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads configuration and sets up the global logger
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("storage", cfg.StorageType).
		Msg("Starting starwars service")

	return cfg, nil
}

// bindFlag lets a command line flag override the environment
func bindFlag(key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("Failed to bind %s flag: %v", key, err))
	}
}
