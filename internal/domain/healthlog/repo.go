package healthlog

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNoEvent is returned when no event matches the lookup.
var ErrNoEvent = errors.New("no health event found")

// Repository is the append-only persistence contract for health events.
// There are deliberately no update or delete operations.
type Repository interface {
	// Append stores a new event and fills in its id and server timestamp.
	Append(ctx context.Context, e *HealthEvent) error

	// Latest returns the event at the given rank within the user's events
	// of one type, ordered newest first. skip=0 is the most recent event,
	// skip=1 the one before it.
	Latest(ctx context.Context, userID uuid.UUID, eventType EventType, skip int) (*HealthEvent, error)

	// CountVerifiedToday counts a user's verified events of one type
	// recorded on the current calendar date.
	CountVerifiedToday(ctx context.Context, userID uuid.UUID, eventType EventType) (int, error)

	// ListByUser returns a page of a user's events, newest first, and the
	// total count.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*HealthEvent, int, error)
}
