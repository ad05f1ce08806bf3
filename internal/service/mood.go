package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JonnyWalker81/moodtrail/backend/internal/analytics"
	"github.com/JonnyWalker81/moodtrail/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
	"github.com/JonnyWalker81/moodtrail/backend/internal/repository"
)

// DefaultListLimit applies when a list request does not set a limit
const DefaultListLimit = 50

type moodService struct {
	moodRepo     repository.MoodRepository
	activityRepo repository.ActivityRepository
	now          func() time.Time
}

func NewMoodService(moodRepo repository.MoodRepository, activityRepo repository.ActivityRepository) MoodService {
	return &moodService{moodRepo: moodRepo, activityRepo: activityRepo, now: time.Now}
}

func (s *moodService) Record(ctx context.Context, userID string, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error) {
	day, err := entryDay(req.Date, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.checkActivities(ctx, userID, req.ActivityIDs); err != nil {
		return nil, err
	}

	entry := &models.MoodEntry{
		UserID:       userID,
		Date:         day,
		Mood:         req.Mood,
		Energy:       req.Energy,
		Stress:       req.Stress,
		Anxiety:      req.Anxiety,
		SleepHours:   req.SleepHours,
		SleepQuality: req.SleepQuality,
		ActivityIDs:  req.ActivityIDs,
		Tags:         req.Tags,
		Notes:        req.Notes,
	}

	saved, err := s.moodRepo.Upsert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to record mood: %w", err)
	}
	logger.Ctx(ctx).Info("mood recorded",
		logger.String("entry_id", saved.ID),
		logger.String("day", analytics.DayKey(saved.Date)))
	return saved, nil
}

func (s *moodService) Get(ctx context.Context, userID, id string) (*models.MoodEntry, error) {
	return s.moodRepo.GetByID(ctx, userID, id)
}

func (s *moodService) List(ctx context.Context, userID string, opts ListOptions) ([]models.MoodEntry, error) {
	if opts.Start != nil || opts.End != nil {
		start, end := opts.bounds(s.now())
		return s.moodRepo.ListByDateRange(ctx, userID, start, end)
	}
	return s.moodRepo.List(ctx, userID, opts.limit(), opts.Offset)
}

func (s *moodService) Update(ctx context.Context, userID, id string, req *models.UpdateMoodEntryRequest) (*models.MoodEntry, error) {
	entry, err := s.moodRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Mood != nil {
		entry.Mood = *req.Mood
	}
	if req.Energy != nil {
		entry.Energy = *req.Energy
	}
	if req.Stress != nil {
		entry.Stress = *req.Stress
	}
	if req.Anxiety != nil {
		entry.Anxiety = *req.Anxiety
	}
	if req.SleepHours != nil {
		entry.SleepHours = *req.SleepHours
	}
	if req.SleepQuality != nil {
		entry.SleepQuality = *req.SleepQuality
	}
	if req.ActivityIDs != nil {
		if err := s.checkActivities(ctx, userID, req.ActivityIDs); err != nil {
			return nil, err
		}
		entry.ActivityIDs = req.ActivityIDs
	}
	if req.Tags != nil {
		entry.Tags = req.Tags
	}
	req.Notes.Apply(&entry.Notes)

	return s.moodRepo.Update(ctx, entry)
}

func (s *moodService) Delete(ctx context.Context, userID, id string) error {
	return s.moodRepo.Delete(ctx, userID, id)
}

// checkActivities rejects references to activities the user does not own
func (s *moodService) checkActivities(ctx context.Context, userID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := validateIDs(ids); err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownActivity, err)
	}

	owned, err := s.activityRepo.List(ctx, userID, false)
	if err != nil {
		return fmt.Errorf("failed to load activities: %w", err)
	}
	known := make(map[string]struct{}, len(owned))
	for _, a := range owned {
		known[a.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownActivity, id)
		}
	}
	return nil
}

// entryDay resolves the calendar day an entry belongs to: the requested
// date or today, truncated to midnight in its own location. A day after
// today in that location is rejected.
func entryDay(requested *time.Time, now time.Time) (time.Time, error) {
	day := now
	if requested != nil {
		day = *requested
	}
	day = analytics.StartOfDay(day)
	if analytics.DayKey(day) > analytics.DayKey(now.In(day.Location())) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrFutureDate, analytics.DayKey(day))
	}
	return day, nil
}

func (o ListOptions) limit() int {
	if o.Limit <= 0 {
		return DefaultListLimit
	}
	return o.Limit
}

// bounds fills an open side of the range: the start defaults to a year
// before end, the end to now
func (o ListOptions) bounds(now time.Time) (time.Time, time.Time) {
	end := now
	if o.End != nil {
		end = *o.End
	}
	start := end.AddDate(-1, 0, 0)
	if o.Start != nil {
		start = *o.Start
	}
	return start, end
}
