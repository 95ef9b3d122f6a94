package kafka

import (
	"time"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
)

// FavoriteChangedEvent is published whenever a favorite is added or removed
type FavoriteChangedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	Kind       string    `json:"kind"`
	FavoriteID uint      `json:"favorite_id"`
	UserID     uint      `json:"user_id"`
	TargetID   uint      `json:"target_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeFavoriteAdded   = "favorite.added"
	EventTypeFavoriteRemoved = "favorite.removed"
)

// DefaultTopic is used when no topic is configured
const DefaultTopic = "favorite-events"

// EventTypeFor maps a domain action onto its event type
func EventTypeFor(action string) string {
	if action == domain.ActionRemoved {
		return EventTypeFavoriteRemoved
	}
	return EventTypeFavoriteAdded
}
