package repository

import (
	"context"
	"errors"
	"time"

	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// ErrNotFound is returned when a row does not exist or belongs to another user
var ErrNotFound = errors.New("not found")

// MoodRepository stores at most one mood entry per user per calendar day
type MoodRepository interface {
	// Upsert inserts entry or replaces the user's entry for the same day
	Upsert(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	GetByID(ctx context.Context, userID, id string) (*models.MoodEntry, error)
	List(ctx context.Context, userID string, limit, offset int) ([]models.MoodEntry, error)
	ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.MoodEntry, error)
	Update(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

type JournalRepository interface {
	Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error)
	GetByID(ctx context.Context, userID, id string) (*models.JournalEntry, error)
	List(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntry, error)
	ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.JournalEntry, error)
	Update(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error)
	Delete(ctx context.Context, userID, id string) error
	// Count returns how many entries the user has ever written
	Count(ctx context.Context, userID string) (int, error)
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) (*models.Activity, error)
	GetByID(ctx context.Context, userID, id string) (*models.Activity, error)
	List(ctx context.Context, userID string, activeOnly bool) ([]models.Activity, error)
	Update(ctx context.Context, activity *models.Activity) (*models.Activity, error)
	Delete(ctx context.Context, userID, id string) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Upsert records a user seen through the auth provider
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
}
