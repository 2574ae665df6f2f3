package healthlog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns a Postgres-backed health event repository.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const eventCols = `id, user_id, event_type, value, verified, note, timestamp`

func scanEvent(row pgx.Row) (*HealthEvent, error) {
	var e HealthEvent
	err := row.Scan(&e.ID, &e.UserID, &e.EventType, &e.Value, &e.Verified, &e.Note, &e.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoEvent
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repoPG) Append(ctx context.Context, e *HealthEvent) error {
	e.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO health_event (id, user_id, event_type, value, verified, note)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING timestamp`,
		e.ID, e.UserID, e.EventType, e.Value, e.Verified, e.Note,
	).Scan(&e.Timestamp)
}

func (r *repoPG) Latest(ctx context.Context, userID uuid.UUID, eventType EventType, skip int) (*HealthEvent, error) {
	return scanEvent(r.pool.QueryRow(ctx, `
		SELECT `+eventCols+` FROM health_event
		WHERE user_id = $1 AND event_type = $2
		ORDER BY timestamp DESC
		OFFSET $3 LIMIT 1`,
		userID, eventType, skip))
}

func (r *repoPG) CountVerifiedToday(ctx context.Context, userID uuid.UUID, eventType EventType) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM health_event
		WHERE user_id = $1 AND event_type = $2
		  AND verified = TRUE
		  AND timestamp::date = CURRENT_DATE`,
		userID, eventType,
	).Scan(&count)
	return count, err
}

func (r *repoPG) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*HealthEvent, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM health_event WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventCols+` FROM health_event
		WHERE user_id = $1
		ORDER BY timestamp DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*HealthEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, e)
	}
	return items, total, rows.Err()
}
