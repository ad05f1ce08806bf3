package service

import (
	"context"
	"errors"
	"time"

	"github.com/JonnyWalker81/moodtrail/backend/internal/analytics"
	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
)

var (
	// ErrInvalidMetric is returned for a trend metric the API does not chart
	ErrInvalidMetric = errors.New("invalid metric")
	// ErrFutureDate is returned when an entry is dated after today
	ErrFutureDate = errors.New("date is in the future")
	// ErrUnknownActivity is returned when a mood entry references an
	// activity the user does not own
	ErrUnknownActivity = errors.New("unknown activity")
	// ErrAuthUnavailable is returned when no auth provider is configured
	ErrAuthUnavailable = errors.New("auth provider not configured")
	// ErrInvalidCredentials is returned when the auth provider rejects a login
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ListOptions bounds a list query. Nil Start/End means unbounded on that side.
type ListOptions struct {
	Start  *time.Time
	End    *time.Time
	Limit  int
	Offset int
}

type MoodService interface {
	// Record stores the entry for the requested day, replacing any entry the
	// user already has for that day
	Record(ctx context.Context, userID string, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error)
	Get(ctx context.Context, userID, id string) (*models.MoodEntry, error)
	List(ctx context.Context, userID string, opts ListOptions) ([]models.MoodEntry, error)
	Update(ctx context.Context, userID, id string, req *models.UpdateMoodEntryRequest) (*models.MoodEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

type JournalService interface {
	Create(ctx context.Context, userID string, req *models.CreateJournalEntryRequest) (*models.JournalEntry, error)
	Get(ctx context.Context, userID, id string) (*models.JournalEntry, error)
	List(ctx context.Context, userID string, opts ListOptions) ([]models.JournalEntry, error)
	Update(ctx context.Context, userID, id string, req *models.UpdateJournalEntryRequest) (*models.JournalEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

type ActivityService interface {
	Create(ctx context.Context, userID string, req *models.CreateActivityRequest) (*models.Activity, error)
	Get(ctx context.Context, userID, id string) (*models.Activity, error)
	List(ctx context.Context, userID string, activeOnly bool) ([]models.Activity, error)
	Update(ctx context.Context, userID, id string, req *models.UpdateActivityRequest) (*models.Activity, error)
	Delete(ctx context.Context, userID, id string) error
}

// AnalyticsService loads a user's records and runs the analytics engine
// over them. Nothing it computes is stored.
type AnalyticsService interface {
	Overview(ctx context.Context, userID, period string) (*analytics.Overview, error)
	MoodReport(ctx context.Context, userID, period string) (*analytics.MoodReport, error)
	JournalReport(ctx context.Context, userID, period string) (*analytics.JournalReport, error)
	ActivityReport(ctx context.Context, userID string) (*analytics.ActivityReport, error)
	Trend(ctx context.Context, userID, period, metric string) (*TrendReport, error)
	Streaks(ctx context.Context, userID string) (*StreakReport, error)
	Insights(ctx context.Context, userID, period string) (*analytics.InsightReport, error)
}

type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	// CurrentUser returns the signed-in user. A user the database has not
	// seen yet is resolved through the auth provider with accessToken.
	CurrentUser(ctx context.Context, userID, accessToken string) (*models.User, error)
}
