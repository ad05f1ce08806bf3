package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
)

func TestTopN(t *testing.T) {
	labels := []string{"a", "b", "a", "c", "b", "a"}

	assert.Equal(t, []Ranked{{"a", 3}, {"b", 2}, {"c", 1}}, TopN(labels, 10))
	assert.Equal(t, []Ranked{{"a", 3}, {"b", 2}}, TopN(labels, 2))
	assert.Equal(t, []Ranked{{"a", 3}, {"b", 2}, {"c", 1}}, TopN(labels, 0))
}

func TestTopN_TiesKeepFirstSeenOrder(t *testing.T) {
	labels := []string{"sleep", "work", "gym", "work", "gym", "sleep", "read"}
	assert.Equal(t,
		[]Ranked{{"sleep", 2}, {"work", 2}, {"gym", 2}, {"read", 1}},
		TopN(labels, 10))
}

func TestTopN_Empty(t *testing.T) {
	got := TopN(nil, 10)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRankRecords(t *testing.T) {
	records := []models.Record{
		models.MoodEntry{Tags: []string{"work", "tired"}},
		models.JournalEntry{Tags: []string{"tired"}},
		models.Activity{Category: models.ActivityCategoryExercise},
		models.MoodEntry{},
	}

	assert.Equal(t, []Ranked{{"tired", 2}, {"work", 1}}, RankRecords(records, DimensionTags, 10))
	assert.Equal(t, []Ranked{{"exercise", 1}}, RankRecords(records, DimensionCategory, 10))
}

func TestDistribution(t *testing.T) {
	records := AsRecords([]models.MoodEntry{
		{Mood: models.MoodHappy},
		{Mood: models.MoodSad},
		{Mood: models.MoodHappy},
	})
	assert.Equal(t, map[string]int{"happy": 2, "sad": 1}, Distribution(records, DimensionMood))
}
