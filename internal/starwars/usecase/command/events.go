package command

import (
	"context"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
	"github.com/tair/starwars-favorites/pkg/logger"
)

// publish announces a change. Failures are logged and never fail the command.
func publish(ctx context.Context, events domain.EventPublisher, change domain.FavoriteChange) {
	if events == nil {
		return
	}

	if err := events.PublishFavoriteChanged(ctx, change); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("action", change.Action).
			Str("kind", change.Kind).
			Uint("user_id", change.UserID).
			Uint("target_id", change.TargetID).
			Msg("Failed to publish favorite event")
	}
}
