package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
	"github.com/JonnyWalker81/moodtrail/backend/internal/repository"
	"github.com/JonnyWalker81/moodtrail/backend/internal/repository/mocks"
)

func newTestMoodService(t *testing.T) (*moodService, *mocks.MockMoodRepository, *mocks.MockActivityRepository) {
	ctrl := gomock.NewController(t)
	moodRepo := mocks.NewMockMoodRepository(ctrl)
	activityRepo := mocks.NewMockActivityRepository(ctrl)
	svc := NewMoodService(moodRepo, activityRepo).(*moodService)
	svc.now = func() time.Time { return testNow }
	return svc, moodRepo, activityRepo
}

func TestMoodService_Record(t *testing.T) {
	t.Run("defaults to today at midnight", func(t *testing.T) {
		svc, moodRepo, _ := newTestMoodService(t)
		moodRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *models.MoodEntry) (*models.MoodEntry, error) {
				assert.Equal(t, day(17), e.Date)
				assert.Equal(t, testUser, e.UserID)
				saved := *e
				saved.ID = "mood-1"
				return &saved, nil
			})

		got, err := svc.Record(ctx, testUser, &models.CreateMoodEntryRequest{
			Mood: models.MoodHappy, Energy: 6, Stress: 4, Anxiety: 3,
			SleepHours: 7.5, SleepQuality: models.SleepQualityGood,
		})
		require.NoError(t, err)
		assert.Equal(t, "mood-1", got.ID)
	})

	t.Run("rejects a future day", func(t *testing.T) {
		svc, _, _ := newTestMoodService(t)
		tomorrow := day(18).Add(9 * time.Hour)

		_, err := svc.Record(ctx, testUser, &models.CreateMoodEntryRequest{Date: &tomorrow, Mood: models.MoodSad})
		assert.ErrorIs(t, err, ErrFutureDate)
	})

	t.Run("later today is still today", func(t *testing.T) {
		svc, moodRepo, _ := newTestMoodService(t)
		tonight := day(17).Add(23 * time.Hour)
		moodRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *models.MoodEntry) (*models.MoodEntry, error) {
				assert.Equal(t, day(17), e.Date)
				return e, nil
			})

		_, err := svc.Record(ctx, testUser, &models.CreateMoodEntryRequest{Date: &tonight, Mood: models.MoodSad})
		require.NoError(t, err)
	})

	t.Run("rejects activities the user does not own", func(t *testing.T) {
		svc, _, activityRepo := newTestMoodService(t)
		activityRepo.EXPECT().List(gomock.Any(), testUser, false).
			Return([]models.Activity{{ID: testActivityID}}, nil)

		_, err := svc.Record(ctx, testUser, &models.CreateMoodEntryRequest{
			Mood:        models.MoodHappy,
			ActivityIDs: []string{testActivityID, "0192a6b8-0000-7000-8000-000000000000"},
		})
		assert.ErrorIs(t, err, ErrUnknownActivity)
	})

	t.Run("rejects malformed activity ids without a lookup", func(t *testing.T) {
		svc, _, _ := newTestMoodService(t)
		_, err := svc.Record(ctx, testUser, &models.CreateMoodEntryRequest{
			Mood:        models.MoodHappy,
			ActivityIDs: []string{"running"},
		})
		assert.ErrorIs(t, err, ErrUnknownActivity)
	})

	t.Run("wraps repository failures", func(t *testing.T) {
		svc, moodRepo, _ := newTestMoodService(t)
		boom := errors.New("connection reset")
		moodRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := svc.Record(ctx, testUser, &models.CreateMoodEntryRequest{Mood: models.MoodHappy})
		assert.ErrorIs(t, err, boom)
	})
}

func TestMoodService_Update(t *testing.T) {
	notes := "slept badly"
	existing := func() *models.MoodEntry {
		return &models.MoodEntry{ID: "mood-1", UserID: testUser, Date: day(16), Mood: models.MoodSad, Energy: 3, Notes: &notes}
	}

	t.Run("null notes clears them", func(t *testing.T) {
		svc, moodRepo, _ := newTestMoodService(t)
		moodRepo.EXPECT().GetByID(gomock.Any(), testUser, "mood-1").Return(existing(), nil)
		moodRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *models.MoodEntry) (*models.MoodEntry, error) {
				return e, nil
			})

		got, err := svc.Update(ctx, testUser, "mood-1", &models.UpdateMoodEntryRequest{
			Energy: ptr(8),
			Notes:  models.Nullable[string]{Set: true},
		})
		require.NoError(t, err)
		assert.Equal(t, 8, got.Energy)
		assert.Equal(t, models.MoodSad, got.Mood)
		assert.Nil(t, got.Notes)
	})

	t.Run("absent notes are kept", func(t *testing.T) {
		svc, moodRepo, _ := newTestMoodService(t)
		moodRepo.EXPECT().GetByID(gomock.Any(), testUser, "mood-1").Return(existing(), nil)
		moodRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *models.MoodEntry) (*models.MoodEntry, error) {
				return e, nil
			})

		got, err := svc.Update(ctx, testUser, "mood-1", &models.UpdateMoodEntryRequest{Mood: ptr(models.MoodHappy)})
		require.NoError(t, err)
		require.NotNil(t, got.Notes)
		assert.Equal(t, notes, *got.Notes)
	})

	t.Run("missing entry", func(t *testing.T) {
		svc, moodRepo, _ := newTestMoodService(t)
		moodRepo.EXPECT().GetByID(gomock.Any(), testUser, "mood-9").Return(nil, repository.ErrNotFound)

		_, err := svc.Update(ctx, testUser, "mood-9", &models.UpdateMoodEntryRequest{})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestMoodService_List(t *testing.T) {
	t.Run("paged without a range", func(t *testing.T) {
		svc, moodRepo, _ := newTestMoodService(t)
		moodRepo.EXPECT().List(gomock.Any(), testUser, DefaultListLimit, 0).Return(sampleMoods(), nil)

		got, err := svc.List(ctx, testUser, ListOptions{})
		require.NoError(t, err)
		assert.Len(t, got, 4)
	})

	t.Run("open start reaches back a year", func(t *testing.T) {
		svc, moodRepo, _ := newTestMoodService(t)
		end := day(10)
		moodRepo.EXPECT().ListByDateRange(gomock.Any(), testUser, end.AddDate(-1, 0, 0), end).Return(nil, nil)

		_, err := svc.List(ctx, testUser, ListOptions{End: &end})
		require.NoError(t, err)
	})
}
