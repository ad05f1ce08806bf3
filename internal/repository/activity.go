package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
)

const activityColumns = `id, user_id, name, description, category, mood_impact, energy_impact,
	duration_minutes, is_recurring, is_active, created_at, updated_at`

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func scanActivity(row rowScanner) (*models.Activity, error) {
	var (
		a    models.Activity
		desc sql.NullString
	)
	err := row.Scan(&a.ID, &a.UserID, &a.Name, &desc, &a.Category, &a.MoodImpact, &a.EnergyImpact,
		&a.DurationMinutes, &a.IsRecurring, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if desc.Valid {
		a.Description = &desc.String
	}
	return &a, nil
}

func (r *activityRepository) Create(ctx context.Context, a *models.Activity) (*models.Activity, error) {
	if a.ID == "" {
		a.ID = newID()
	}
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO activities (id, user_id, name, description, category, mood_impact,
			energy_impact, duration_minutes, is_recurring, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+activityColumns,
		a.ID, a.UserID, a.Name, a.Description, a.Category, a.MoodImpact, a.EnergyImpact,
		a.DurationMinutes, a.IsRecurring, a.IsActive)

	saved, err := scanActivity(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return saved, nil
}

func (r *activityRepository) GetByID(ctx context.Context, userID, id string) (*models.Activity, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE id = $1 AND user_id = $2`, id, userID)
	a, err := scanActivity(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", notFound(err))
	}
	return a, nil
}

func (r *activityRepository) List(ctx context.Context, userID string, activeOnly bool) ([]models.Activity, error) {
	q := `SELECT ` + activityColumns + ` FROM activities WHERE user_id = $1`
	if activeOnly {
		q += ` AND is_active`
	}
	q += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

func (r *activityRepository) Update(ctx context.Context, a *models.Activity) (*models.Activity, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE activities SET name = $3, description = $4, category = $5, mood_impact = $6,
			energy_impact = $7, duration_minutes = $8, is_recurring = $9, is_active = $10,
			updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+activityColumns,
		a.ID, a.UserID, a.Name, a.Description, a.Category, a.MoodImpact, a.EnergyImpact,
		a.DurationMinutes, a.IsRecurring, a.IsActive)

	saved, err := scanActivity(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", notFound(err))
	}
	return saved, nil
}

func (r *activityRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	if err := affected(res); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}
