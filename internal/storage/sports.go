package storage

import (
	"context"
	"fmt"

	"github.com/meltforce/hybrid/internal/models"
)

// ListSports returns all sports with their focuses.
func (db *DB) ListSports(ctx context.Context) ([]models.Sport, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT sport_id, name, default_intensity_scale FROM sports ORDER BY sport_id`)
	if err != nil {
		return nil, fmt.Errorf("querying sports: %w", err)
	}
	defer rows.Close()

	var sports []models.Sport
	index := make(map[int]int)
	for rows.Next() {
		var s models.Sport
		if err := rows.Scan(&s.SportID, &s.Name, &s.DefaultIntensityScale); err != nil {
			return nil, fmt.Errorf("scanning sport: %w", err)
		}
		index[s.SportID] = len(sports)
		sports = append(sports, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	focusRows, err := db.Pool.Query(ctx,
		`SELECT focus_id, sport_id, name FROM sport_focuses ORDER BY sport_id, focus_id`)
	if err != nil {
		return nil, fmt.Errorf("querying sport focuses: %w", err)
	}
	defer focusRows.Close()

	for focusRows.Next() {
		var f models.SportFocus
		if err := focusRows.Scan(&f.FocusID, &f.SportID, &f.Name); err != nil {
			return nil, fmt.Errorf("scanning sport focus: %w", err)
		}
		if i, ok := index[f.SportID]; ok {
			sports[i].Focuses = append(sports[i].Focuses, f)
		}
	}
	if err := focusRows.Err(); err != nil {
		return nil, err
	}
	return sports, nil
}

// CoefficientTable returns every (sport, muscle) base-load row.
func (db *DB) CoefficientTable(ctx context.Context) ([]models.SportMuscleCoefficient, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT sport_id, muscle_id, base_load_per_minute, is_unilateral, has_emphasis
		 FROM sport_muscle_coefficients
		 ORDER BY sport_id, muscle_id`)
	if err != nil {
		return nil, fmt.Errorf("querying coefficients: %w", err)
	}
	defer rows.Close()

	var coeffs []models.SportMuscleCoefficient
	for rows.Next() {
		var c models.SportMuscleCoefficient
		if err := rows.Scan(&c.SportID, &c.MuscleID, &c.BaseLoadPerMinute, &c.IsUnilateral, &c.HasEmphasis); err != nil {
			return nil, fmt.Errorf("scanning coefficient: %w", err)
		}
		coeffs = append(coeffs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return coeffs, nil
}
