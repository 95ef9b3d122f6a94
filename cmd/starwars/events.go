package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/tair/starwars-favorites/kafka"
	"github.com/tair/starwars-favorites/pkg/logger"
	"github.com/tair/starwars-favorites/pkg/tracing"
)

func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Consume and log favorite change events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(cfg.KafkaBrokers) == 0 {
				return errors.New("KAFKA_BROKERS is not set")
			}

			if cfg.TracingEnabled {
				tp, err := tracing.InitTracer(cfg.ServiceName+"-events", cfg.JaegerEndpoint)
				if err != nil {
					return err
				}
				defer tracing.Shutdown(context.Background(), tp)
			}

			consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, []string{cfg.KafkaTopic})
			if err != nil {
				return err
			}
			defer consumer.Close()

			consumer.RegisterHandler(kafka.EventTypeFavoriteAdded, logFavoriteEvent)
			consumer.RegisterHandler(kafka.EventTypeFavoriteRemoved, logFavoriteEvent)

			if err := consumer.Start(cmd.Context()); err != nil {
				return err
			}

			<-cmd.Context().Done()
			logger.Logger.Info().Msg("Event consumer stopped")
			return nil
		},
	}
}

func logFavoriteEvent(ctx context.Context, event kafka.FavoriteChangedEvent) error {
	logger.Info(ctx).
		Str("event_id", event.EventID).
		Str("event_type", event.EventType).
		Str("kind", event.Kind).
		Uint("favorite_id", event.FavoriteID).
		Uint("user_id", event.UserID).
		Uint("target_id", event.TargetID).
		Time("occurred_at", event.Timestamp).
		Msg("Favorite changed")
	return nil
}
