package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/meltforce/hybrid/internal/models"
)

// ReplaceDailyLoads swaps out the materialized per-day loads for the
// inclusive [start, end] range in one transaction. The cache is never
// patched in place: the whole touched range is deleted and rewritten from
// the freshly replayed rows.
func (db *DB) ReplaceDailyLoads(ctx context.Context, userID int, start, end time.Time, rows []models.MuscleDailyLoad) (int64, error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("beginning daily load tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM daily_muscle_loads WHERE user_id = $1 AND day >= $2 AND day <= $3`,
		userID, start, end)
	if err != nil {
		return 0, fmt.Errorf("clearing daily loads: %w", err)
	}

	var inserted int64
	if len(rows) > 0 {
		query := `INSERT INTO daily_muscle_loads (user_id, muscle_id, day, load_score) VALUES `
		args := make([]any, 0, len(rows)*4)
		valueStrings := make([]string, 0, len(rows))

		for i, r := range rows {
			base := i * 4
			valueStrings = append(valueStrings, fmt.Sprintf(
				"($%d,$%d,$%d,$%d)", base+1, base+2, base+3, base+4))
			args = append(args, r.UserID, r.MuscleID, r.Day, r.LoadScore)
		}
		query += strings.Join(valueStrings, ",")

		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("inserting daily loads: %w", err)
		}
		inserted = tag.RowsAffected()
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing daily loads: %w", err)
	}
	return inserted, nil
}

// DailyLoadsInRange reads the materialized cache for the inclusive range.
func (db *DB) DailyLoadsInRange(ctx context.Context, userID int, start, end time.Time) ([]models.MuscleDailyLoad, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT user_id, muscle_id, day, load_score
		 FROM daily_muscle_loads
		 WHERE user_id = $1 AND day >= $2 AND day <= $3
		 ORDER BY day, muscle_id`,
		userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying daily loads: %w", err)
	}
	defer rows.Close()

	var loads []models.MuscleDailyLoad
	for rows.Next() {
		var l models.MuscleDailyLoad
		if err := rows.Scan(&l.UserID, &l.MuscleID, &l.Day, &l.LoadScore); err != nil {
			return nil, fmt.Errorf("scanning daily load: %w", err)
		}
		loads = append(loads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return loads, nil
}
