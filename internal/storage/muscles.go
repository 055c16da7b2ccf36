package storage

import (
	"context"
	"fmt"

	"github.com/meltforce/hybrid/internal/models"
)

// MuscleGroups returns every tracked muscle with its sensitivity tier.
func (db *DB) MuscleGroups(ctx context.Context) ([]models.MuscleGroup, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT muscle_id, name, COALESCE(tier, '') FROM muscle_groups ORDER BY muscle_id`)
	if err != nil {
		return nil, fmt.Errorf("querying muscle groups: %w", err)
	}
	defer rows.Close()

	var muscles []models.MuscleGroup
	for rows.Next() {
		var m models.MuscleGroup
		if err := rows.Scan(&m.MuscleID, &m.Name, &m.Tier); err != nil {
			return nil, fmt.Errorf("scanning muscle group: %w", err)
		}
		muscles = append(muscles, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return muscles, nil
}
