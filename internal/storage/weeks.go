package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// UpsertWeek ensures a week row exists for the Monday-anchored start date
// and returns its label, if any.
func (db *DB) UpsertWeek(ctx context.Context, userID int, weekStart time.Time) (*string, error) {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO weeks (user_id, week_start_date) VALUES ($1, $2)
		 ON CONFLICT (user_id, week_start_date) DO NOTHING`,
		userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("upserting week: %w", err)
	}
	return db.WeekLabel(ctx, userID, weekStart)
}

// WeekLabel returns the optional label attached to a training week. Missing
// week rows are fine: unlabeled, not an error.
func (db *DB) WeekLabel(ctx context.Context, userID int, weekStart time.Time) (*string, error) {
	var label *string
	err := db.Pool.QueryRow(ctx,
		`SELECT label FROM weeks WHERE user_id = $1 AND week_start_date = $2`,
		userID, weekStart,
	).Scan(&label)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching week label: %w", err)
	}
	return label, nil
}
