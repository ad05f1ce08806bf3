// Package analytics derives statistics, daily trend series, streaks,
// frequency rankings and rule-based insights from in-memory record sets.
//
// Every function in this package is pure: it reads the records it is handed,
// never mutates them, and keeps no state between calls. Storage, transport
// and authentication are the caller's concern.
package analytics

import (
	"errors"
	"fmt"

	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
)

// Metric names a numeric field the engine can extract from a record
type Metric string

const (
	MetricMood         Metric = "mood"
	MetricEnergy       Metric = "energy"
	MetricStress       Metric = "stress"
	MetricAnxiety      Metric = "anxiety"
	MetricSleepHours   Metric = "sleep_hours"
	MetricSleepQuality Metric = "sleep_quality"
	MetricWordCount    Metric = "word_count"
	MetricReadingTime  Metric = "reading_time"
	MetricMoodImpact   Metric = "mood_impact"
	MetricEnergyImpact Metric = "energy_impact"
	MetricDuration     Metric = "duration"
)

// Dimension names a categorical field the engine can extract from a record
type Dimension string

const (
	DimensionTags       Dimension = "tags"
	DimensionMood       Dimension = "mood"
	DimensionActivities Dimension = "activities"
	DimensionCategory   Dimension = "category"
)

// ErrUnknownMetric is matched by every error the extractor returns. Getting
// one means a call site asked for a field the record kind does not carry.
var ErrUnknownMetric = errors.New("unknown metric")

// UnknownMetricError reports which metric/dimension was requested on which kind
type UnknownMetricError struct {
	Name string
	Kind models.RecordKind
}

func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("unknown metric %q for %s record", e.Name, e.Kind)
}

func (e *UnknownMetricError) Is(target error) bool {
	return target == ErrUnknownMetric
}

// MoodScore maps a mood category to its 1-5 ordinal score using the shared table
func MoodScore(m models.Mood) float64 {
	return float64(models.MoodScores[m])
}

// Extract returns the numeric value of metric m for record r
func Extract(r models.Record, m Metric) (float64, error) {
	if isNil(r) {
		return 0, &UnknownMetricError{Name: string(m)}
	}
	switch rec := r.(type) {
	case models.MoodEntry:
		return extractMood(rec, m)
	case *models.MoodEntry:
		return extractMood(*rec, m)
	case models.JournalEntry:
		return extractJournal(rec, m)
	case *models.JournalEntry:
		return extractJournal(*rec, m)
	case models.Activity:
		return extractActivity(rec, m)
	case *models.Activity:
		return extractActivity(*rec, m)
	}
	return 0, &UnknownMetricError{Name: string(m), Kind: kindOf(r)}
}

func extractMood(e models.MoodEntry, m Metric) (float64, error) {
	switch m {
	case MetricMood:
		return MoodScore(e.Mood), nil
	case MetricEnergy:
		return float64(e.Energy), nil
	case MetricStress:
		return float64(e.Stress), nil
	case MetricAnxiety:
		return float64(e.Anxiety), nil
	case MetricSleepHours:
		return e.SleepHours, nil
	case MetricSleepQuality:
		return float64(e.SleepQuality.Score()), nil
	}
	return 0, &UnknownMetricError{Name: string(m), Kind: models.RecordKindMood}
}

func extractJournal(e models.JournalEntry, m Metric) (float64, error) {
	switch m {
	case MetricMood:
		return MoodScore(e.Mood), nil
	case MetricWordCount:
		return float64(e.WordCount), nil
	case MetricReadingTime:
		return float64(e.ReadingTime), nil
	}
	return 0, &UnknownMetricError{Name: string(m), Kind: models.RecordKindJournal}
}

func extractActivity(a models.Activity, m Metric) (float64, error) {
	switch m {
	case MetricMoodImpact:
		return float64(a.MoodImpact), nil
	case MetricEnergyImpact:
		return float64(a.EnergyImpact), nil
	case MetricDuration:
		return float64(a.DurationMinutes), nil
	}
	return 0, &UnknownMetricError{Name: string(m), Kind: models.RecordKindActivity}
}

// Labels returns the categorical values of dimension d for record r.
// A record with no tags yields an empty slice, not an error.
func Labels(r models.Record, d Dimension) ([]string, error) {
	if isNil(r) {
		return nil, &UnknownMetricError{Name: string(d)}
	}
	switch rec := r.(type) {
	case models.MoodEntry:
		return moodLabels(rec, d)
	case *models.MoodEntry:
		return moodLabels(*rec, d)
	case models.JournalEntry:
		return journalLabels(rec, d)
	case *models.JournalEntry:
		return journalLabels(*rec, d)
	case models.Activity:
		return activityLabels(rec, d)
	case *models.Activity:
		return activityLabels(*rec, d)
	}
	return nil, &UnknownMetricError{Name: string(d), Kind: kindOf(r)}
}

func moodLabels(e models.MoodEntry, d Dimension) ([]string, error) {
	switch d {
	case DimensionTags:
		return e.Tags, nil
	case DimensionMood:
		return []string{string(e.Mood)}, nil
	case DimensionActivities:
		return e.ActivityIDs, nil
	}
	return nil, &UnknownMetricError{Name: string(d), Kind: models.RecordKindMood}
}

func journalLabels(e models.JournalEntry, d Dimension) ([]string, error) {
	switch d {
	case DimensionTags:
		return e.Tags, nil
	case DimensionMood:
		return []string{string(e.Mood)}, nil
	}
	return nil, &UnknownMetricError{Name: string(d), Kind: models.RecordKindJournal}
}

func activityLabels(a models.Activity, d Dimension) ([]string, error) {
	if d == DimensionCategory {
		return []string{string(a.Category)}, nil
	}
	return nil, &UnknownMetricError{Name: string(d), Kind: models.RecordKindActivity}
}

// isNil reports whether r is a nil interface or a typed nil record pointer
func isNil(r models.Record) bool {
	switch rec := r.(type) {
	case nil:
		return true
	case *models.MoodEntry:
		return rec == nil
	case *models.JournalEntry:
		return rec == nil
	case *models.Activity:
		return rec == nil
	}
	return false
}

func kindOf(r models.Record) models.RecordKind {
	if isNil(r) {
		return ""
	}
	return r.RecordKind()
}
