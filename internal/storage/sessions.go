package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/meltforce/hybrid/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

const sessionColumns = `id, user_id, sport_id, session_date, duration_minutes, intensity_rpe, notes, focus`

// InsertSession persists one validated session.
func (db *DB) InsertSession(ctx context.Context, s models.Session) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO activity_sessions (id, user_id, sport_id, session_date, duration_minutes, intensity_rpe, notes, focus)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		s.ID, s.UserID, s.SportID, s.Date, s.DurationMinutes, s.IntensityRPE, s.Notes, s.Focus)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

// UpdateSession replaces the mutable fields of an existing session.
func (db *DB) UpdateSession(ctx context.Context, s models.Session) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE activity_sessions
		 SET sport_id = $3, session_date = $4, duration_minutes = $5, intensity_rpe = $6, notes = $7, focus = $8
		 WHERE id = $1 AND user_id = $2`,
		s.ID, s.UserID, s.SportID, s.Date, s.DurationMinutes, s.IntensityRPE, s.Notes, s.Focus)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSession removes one session.
func (db *DB) DeleteSession(ctx context.Context, id uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM activity_sessions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSession fetches one session by ID.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID, userID int) (*models.Session, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM activity_sessions WHERE id = $1 AND user_id = $2`, id, userID)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching session: %w", err)
	}
	return s, nil
}

// SessionsInRange returns a user's sessions whose calendar day falls inside
// the inclusive [start, end] range, ordered by date then ID for determinism.
// A zero start or end leaves that side unbounded (lifetime queries).
func (db *DB) SessionsInRange(ctx context.Context, userID int, start, end time.Time) ([]models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM activity_sessions WHERE user_id = $1`
	args := []any{userID}
	if !start.IsZero() {
		args = append(args, start)
		query += fmt.Sprintf(" AND session_date >= $%d", len(args))
	}
	if !end.IsZero() {
		args = append(args, end)
		query += fmt.Sprintf(" AND session_date <= $%d", len(args))
	}
	query += " ORDER BY session_date ASC, id ASC"

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

func scanSession(row pgx.Row) (*models.Session, error) {
	var s models.Session
	if err := row.Scan(&s.ID, &s.UserID, &s.SportID, &s.Date,
		&s.DurationMinutes, &s.IntensityRPE, &s.Notes, &s.Focus); err != nil {
		return nil, err
	}
	return &s, nil
}
