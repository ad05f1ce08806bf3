package service

import (
	"context"
	"time"

	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
)

// fixed clock shared by the service tests
var testNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

const (
	testUser       = "0192a6b8-1c1e-7c3a-9f00-5a1b2c3d4e5f"
	testActivityID = "0192a6b8-2d2f-7c3a-9f00-5a1b2c3d4e60"
)

var ctx = context.Background()

func day(d int) time.Time {
	return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func sampleMoods() []models.MoodEntry {
	moods := make([]models.MoodEntry, 0, 4)
	for d := 14; d <= 17; d++ {
		moods = append(moods, models.MoodEntry{
			ID:           "mood-" + day(d).Format("0102"),
			UserID:       testUser,
			Date:         day(d),
			Mood:         models.MoodVeryHappy,
			Energy:       7,
			Stress:       3,
			Anxiety:      2,
			SleepHours:   8,
			SleepQuality: models.SleepQualityGood,
			ActivityIDs:  []string{testActivityID},
			Tags:         []string{"outdoors"},
		})
	}
	return moods
}
