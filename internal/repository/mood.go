package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
)

const moodColumns = `id, user_id, entry_date, mood, energy, stress, anxiety, sleep_hours,
	sleep_quality, activity_ids, tags, notes, created_at, updated_at`

type moodRepository struct {
	db *sql.DB
}

func NewMoodRepository(db *sql.DB) MoodRepository {
	return &moodRepository{db: db}
}

func scanMood(row rowScanner) (*models.MoodEntry, error) {
	var (
		e     models.MoodEntry
		notes sql.NullString
	)
	err := row.Scan(&e.ID, &e.UserID, &e.Date, &e.Mood, &e.Energy, &e.Stress, &e.Anxiety,
		&e.SleepHours, &e.SleepQuality, jsonStrings{&e.ActivityIDs}, jsonStrings{&e.Tags},
		&notes, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if notes.Valid {
		e.Notes = &notes.String
	}
	return &e, nil
}

func (r *moodRepository) Upsert(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	activityIDs, err := encodeList(entry.ActivityIDs)
	if err != nil {
		return nil, err
	}
	tags, err := encodeList(entry.Tags)
	if err != nil {
		return nil, err
	}
	if entry.ID == "" {
		entry.ID = newID()
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO mood_entries (id, user_id, entry_date, mood, energy, stress, anxiety,
			sleep_hours, sleep_quality, activity_ids, tags, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id, entry_date) DO UPDATE SET
			mood = EXCLUDED.mood,
			energy = EXCLUDED.energy,
			stress = EXCLUDED.stress,
			anxiety = EXCLUDED.anxiety,
			sleep_hours = EXCLUDED.sleep_hours,
			sleep_quality = EXCLUDED.sleep_quality,
			activity_ids = EXCLUDED.activity_ids,
			tags = EXCLUDED.tags,
			notes = EXCLUDED.notes,
			updated_at = now()
		RETURNING `+moodColumns,
		entry.ID, entry.UserID, dayParam(entry.Date), entry.Mood, entry.Energy, entry.Stress,
		entry.Anxiety, entry.SleepHours, entry.SleepQuality, activityIDs, tags, entry.Notes)

	saved, err := scanMood(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert mood entry: %w", err)
	}
	return saved, nil
}

func (r *moodRepository) GetByID(ctx context.Context, userID, id string) (*models.MoodEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+moodColumns+` FROM mood_entries WHERE id = $1 AND user_id = $2`, id, userID)
	e, err := scanMood(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entry: %w", notFound(err))
	}
	return e, nil
}

func (r *moodRepository) List(ctx context.Context, userID string, limit, offset int) ([]models.MoodEntry, error) {
	return r.query(ctx, `SELECT `+moodColumns+` FROM mood_entries
		WHERE user_id = $1 ORDER BY entry_date DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
}

func (r *moodRepository) ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.MoodEntry, error) {
	return r.query(ctx, `SELECT `+moodColumns+` FROM mood_entries
		WHERE user_id = $1 AND entry_date >= $2 AND entry_date <= $3
		ORDER BY entry_date ASC`, userID, dayParam(start), dayParam(end))
}

func (r *moodRepository) query(ctx context.Context, q string, args ...any) ([]models.MoodEntry, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}
	defer rows.Close()

	entries := []models.MoodEntry{}
	for rows.Next() {
		e, err := scanMood(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mood entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}
	return entries, nil
}

func (r *moodRepository) Update(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	activityIDs, err := encodeList(entry.ActivityIDs)
	if err != nil {
		return nil, err
	}
	tags, err := encodeList(entry.Tags)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE mood_entries SET mood = $3, energy = $4, stress = $5, anxiety = $6,
			sleep_hours = $7, sleep_quality = $8, activity_ids = $9, tags = $10,
			notes = $11, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+moodColumns,
		entry.ID, entry.UserID, entry.Mood, entry.Energy, entry.Stress, entry.Anxiety,
		entry.SleepHours, entry.SleepQuality, activityIDs, tags, entry.Notes)

	saved, err := scanMood(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update mood entry: %w", notFound(err))
	}
	return saved, nil
}

func (r *moodRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mood_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete mood entry: %w", err)
	}
	if err := affected(res); err != nil {
		return fmt.Errorf("failed to delete mood entry: %w", err)
	}
	return nil
}

// dayParam renders t as a DATE literal in t's own location
func dayParam(t time.Time) string {
	return t.Format("2006-01-02")
}
