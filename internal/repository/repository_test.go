package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

var moodCols = []string{"id", "user_id", "entry_date", "mood", "energy", "stress", "anxiety",
	"sleep_hours", "sleep_quality", "activity_ids", "tags", "notes", "created_at", "updated_at"}

var journalCols = []string{"id", "user_id", "entry_date", "title", "content", "mood", "tags",
	"is_private", "word_count", "reading_time", "created_at", "updated_at"}

var activityCols = []string{"id", "user_id", "name", "description", "category", "mood_impact",
	"energy_impact", "duration_minutes", "is_recurring", "is_active", "created_at", "updated_at"}

func TestMoodRepository_Upsert(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMoodRepository(db)
	day := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO mood_entries .* ON CONFLICT \(user_id, entry_date\) DO UPDATE SET`).
		WithArgs(sqlmock.AnyArg(), "user-1", "2026-10-17", "happy", 7, 3, 2, 7.5, "good",
			[]byte(`["act-1"]`), []byte(`[]`), nil).
		WillReturnRows(sqlmock.NewRows(moodCols).AddRow(
			"mood-1", "user-1", day, "happy", 7, 3, 2, 7.5, "good",
			[]byte(`["act-1"]`), []byte(`[]`), nil, now, now))

	saved, err := repo.Upsert(context.Background(), &models.MoodEntry{
		UserID: "user-1", Date: day, Mood: models.MoodHappy, Energy: 7, Stress: 3, Anxiety: 2,
		SleepHours: 7.5, SleepQuality: models.SleepQualityGood, ActivityIDs: []string{"act-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "mood-1", saved.ID)
	assert.Equal(t, models.MoodHappy, saved.Mood)
	assert.Equal(t, []string{"act-1"}, saved.ActivityIDs)
	assert.Equal(t, []string{}, saved.Tags)
	assert.Nil(t, saved.Notes)
}

func TestMoodRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMoodRepository(db)

	mock.ExpectQuery(`SELECT .* FROM mood_entries WHERE id = \$1 AND user_id = \$2`).
		WithArgs("mood-1", "someone-else").
		WillReturnRows(sqlmock.NewRows(moodCols))

	_, err := repo.GetByID(context.Background(), "someone-else", "mood-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMoodRepository_ListByDateRange(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMoodRepository(db)
	start := time.Date(2026, time.September, 17, 15, 4, 0, 0, time.UTC)
	end := time.Date(2026, time.October, 17, 15, 4, 0, 0, time.UTC)
	notes := "long day"

	mock.ExpectQuery(`SELECT .* FROM mood_entries WHERE user_id = \$1 AND entry_date >= \$2 AND entry_date <= \$3 ORDER BY entry_date ASC`).
		WithArgs("user-1", "2026-09-17", "2026-10-17").
		WillReturnRows(sqlmock.NewRows(moodCols).
			AddRow("m1", "user-1", start, "sad", 3, 8, 6, 5.0, "poor", []byte(`[]`), []byte(`["work"]`), notes, end, end).
			AddRow("m2", "user-1", end, "neutral", 5, 5, 5, 7.0, "fair", nil, nil, nil, end, end))

	entries, err := repo.ListByDateRange(context.Background(), "user-1", start, end)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, []string{"work"}, entries[0].Tags)
	require.NotNil(t, entries[0].Notes)
	assert.Equal(t, "long day", *entries[0].Notes)
	assert.Equal(t, []string{}, entries[1].ActivityIDs)
}

func TestMoodRepository_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMoodRepository(db)

	mock.ExpectExec(`DELETE FROM mood_entries`).WithArgs("m1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM mood_entries`).WithArgs("m2", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "user-1", "m1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "user-1", "m2"), ErrNotFound)
}

func TestJournalRepository_CreateAndCount(t *testing.T) {
	db, mock := newMock(t)
	repo := NewJournalRepository(db)
	written := time.Date(2026, time.October, 17, 21, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO journal_entries`).
		WithArgs(sqlmock.AnyArg(), "user-1", written, "Evening", "one two three", "neutral",
			[]byte(`["gratitude"]`), true, 3, 1).
		WillReturnRows(sqlmock.NewRows(journalCols).AddRow(
			"j1", "user-1", written, "Evening", "one two three", "neutral", []byte(`["gratitude"]`),
			true, 3, 1, written, written))
	mock.ExpectQuery(`SELECT count\(\*\) FROM journal_entries WHERE user_id = \$1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	entry := &models.JournalEntry{UserID: "user-1", Date: written, Title: "Evening",
		Mood: models.MoodNeutral, Tags: []string{"gratitude"}, IsPrivate: true}
	entry.SetContent("one two three")

	saved, err := repo.Create(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, "j1", saved.ID)
	assert.Equal(t, 3, saved.WordCount)

	n, err := repo.Count(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestJournalRepository_UpdateNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewJournalRepository(db)

	mock.ExpectQuery(`UPDATE journal_entries SET`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &models.JournalEntry{ID: "j1", UserID: "user-1"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityRepository_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewActivityRepository(db)
	now := time.Now()

	mock.ExpectQuery(`FROM activities WHERE user_id = \$1 AND is_active ORDER BY name ASC`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(activityCols).
			AddRow("a1", "user-1", "Running", "5k loop", "exercise", 4, 3, 30, true, true, now, now).
			AddRow("a2", "user-1", "Reading", nil, "learning", 2, 0, 45, false, true, now, now))

	activities, err := repo.List(context.Background(), "user-1", true)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, models.ActivityCategoryExercise, activities[0].Category)
	require.NotNil(t, activities[0].Description)
	assert.Nil(t, activities[1].Description)
}

func TestActivityRepository_CreateError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewActivityRepository(db)

	mock.ExpectQuery(`INSERT INTO activities`).WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &models.Activity{UserID: "user-1", Name: "Yoga"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestUserRepository_Upsert(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users .* ON CONFLICT \(id\) DO UPDATE`).
		WithArgs("user-1", "me@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "created_at", "updated_at"}).
			AddRow("user-1", "me@example.com", now, now))

	u, err := repo.Upsert(context.Background(), &models.User{ID: "user-1", Email: "me@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", u.Email)
}

func TestMigrate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), db))
	assert.Contains(t, schema, "UNIQUE (user_id, entry_date)")
}

func TestNormalizeDatabaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgresql://u:p@db:5432/moodtrail", "postgres://u:p@db:5432/moodtrail"},
		{" postgres://u:p@db/moodtrail?sslmode=require&pgbouncer=true ", "postgres://u:p@db/moodtrail?sslmode=require"},
		{"postgresql+psycopg://u@db/moodtrail", "postgres://u@db/moodtrail"},
		{"host=db user=u dbname=moodtrail", "host=db user=u dbname=moodtrail"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeDatabaseURL(tt.in), tt.in)
	}
}
