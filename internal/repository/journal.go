package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
)

const journalColumns = `id, user_id, entry_date, title, content, mood, tags, is_private,
	word_count, reading_time, created_at, updated_at`

type journalRepository struct {
	db *sql.DB
}

func NewJournalRepository(db *sql.DB) JournalRepository {
	return &journalRepository{db: db}
}

func scanJournal(row rowScanner) (*models.JournalEntry, error) {
	var e models.JournalEntry
	err := row.Scan(&e.ID, &e.UserID, &e.Date, &e.Title, &e.Content, &e.Mood,
		jsonStrings{&e.Tags}, &e.IsPrivate, &e.WordCount, &e.ReadingTime, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *journalRepository) Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	tags, err := encodeList(entry.Tags)
	if err != nil {
		return nil, err
	}
	if entry.ID == "" {
		entry.ID = newID()
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO journal_entries (id, user_id, entry_date, title, content, mood, tags,
			is_private, word_count, reading_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+journalColumns,
		entry.ID, entry.UserID, entry.Date, entry.Title, entry.Content, entry.Mood, tags,
		entry.IsPrivate, entry.WordCount, entry.ReadingTime)

	saved, err := scanJournal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}
	return saved, nil
}

func (r *journalRepository) GetByID(ctx context.Context, userID, id string) (*models.JournalEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+journalColumns+` FROM journal_entries WHERE id = $1 AND user_id = $2`, id, userID)
	e, err := scanJournal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry: %w", notFound(err))
	}
	return e, nil
}

func (r *journalRepository) List(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntry, error) {
	return r.query(ctx, `SELECT `+journalColumns+` FROM journal_entries
		WHERE user_id = $1 ORDER BY entry_date DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
}

func (r *journalRepository) ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.JournalEntry, error) {
	return r.query(ctx, `SELECT `+journalColumns+` FROM journal_entries
		WHERE user_id = $1 AND entry_date >= $2 AND entry_date <= $3
		ORDER BY entry_date ASC`, userID, start, end)
}

func (r *journalRepository) query(ctx context.Context, q string, args ...any) ([]models.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		e, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

func (r *journalRepository) Update(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	tags, err := encodeList(entry.Tags)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE journal_entries SET title = $3, content = $4, mood = $5, tags = $6,
			is_private = $7, word_count = $8, reading_time = $9, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+journalColumns,
		entry.ID, entry.UserID, entry.Title, entry.Content, entry.Mood, tags,
		entry.IsPrivate, entry.WordCount, entry.ReadingTime)

	saved, err := scanJournal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", notFound(err))
	}
	return saved, nil
}

func (r *journalRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	if err := affected(res); err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	return nil
}

func (r *journalRepository) Count(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM journal_entries WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return n, nil
}
