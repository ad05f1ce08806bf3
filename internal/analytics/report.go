package analytics

import (
	"time"

	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
)

// MoodReport summarizes mood check-ins over a period
type MoodReport struct {
	TotalEntries  int            `json:"total_entries"`
	Mood          Stats          `json:"mood"`
	Energy        Stats          `json:"energy"`
	Stress        Stats          `json:"stress"`
	Anxiety       Stats          `json:"anxiety"`
	SleepHours    Stats          `json:"sleep_hours"`
	SleepQuality  Stats          `json:"sleep_quality"`
	MoodTrend     Series         `json:"mood_trend"`
	Distribution  map[string]int `json:"distribution"`
	TopTags       []Ranked       `json:"top_tags"`
	TopActivities []Ranked       `json:"top_activities"`
	CurrentStreak int            `json:"current_streak"`
	LongestStreak StreakRun      `json:"longest_streak"`
}

// JournalReport summarizes journal writing over a period
type JournalReport struct {
	TotalEntries     int            `json:"total_entries"`
	TotalWords       int            `json:"total_words"`
	AverageWords     float64        `json:"average_words"`
	TotalReadingTime int            `json:"total_reading_time"`
	WordCount        Stats          `json:"word_count"`
	WordCountTrend   Series         `json:"word_count_trend"`
	TopTags          []Ranked       `json:"top_tags"`
	MoodDistribution map[string]int `json:"mood_distribution"`
	CurrentStreak    int            `json:"current_streak"`
	LongestStreak    StreakRun      `json:"longest_streak"`
}

// ActivityReport summarizes the user's activity catalogue
type ActivityReport struct {
	Total                int      `json:"total"`
	Active               int      `json:"active"`
	Recurring            int      `json:"recurring"`
	Categories           []Ranked `json:"categories"`
	MoodImpact           Stats    `json:"mood_impact"`
	EnergyImpact         Stats    `json:"energy_impact"`
	TotalDurationMinutes int      `json:"total_duration_minutes"`
}

// Overview bundles every report with the generated insights
type Overview struct {
	Mood     MoodReport     `json:"mood"`
	Journal  JournalReport  `json:"journal"`
	Activity ActivityReport `json:"activity"`
	Insights InsightReport  `json:"insights"`
}

// OverviewInput is the record snapshot an Overview is computed from
type OverviewInput struct {
	Moods      []models.MoodEntry
	Journals   []models.JournalEntry
	Activities []models.Activity
	// WritingHistory is the journal set the writing streak walks. Streaks
	// can outlast the reporting period, so callers usually pass a longer
	// window here; nil falls back to Journals.
	WritingHistory    []models.JournalEntry
	HasJournalHistory bool
	Today             time.Time
	TopN              int
}

// AsRecords widens a typed slice into the engine's record view
func AsRecords[T models.Record](items []T) []models.Record {
	records := make([]models.Record, len(items))
	for i := range items {
		records[i] = items[i]
	}
	return records
}

// BuildMoodReport computes mood statistics. Activity IDs referenced by the
// entries are resolved to names through activities; unknown IDs are kept.
func BuildMoodReport(entries []models.MoodEntry, activities []models.Activity, today time.Time, topN int) MoodReport {
	records := AsRecords(entries)
	series := Aggregate(records,
		MetricMood, MetricEnergy, MetricStress, MetricAnxiety, MetricSleepHours, MetricSleepQuality)

	return MoodReport{
		TotalEntries:  len(entries),
		Mood:          SummarizeSeries(series[MetricMood]),
		Energy:        SummarizeSeries(series[MetricEnergy]),
		Stress:        SummarizeSeries(series[MetricStress]),
		Anxiety:       SummarizeSeries(series[MetricAnxiety]),
		SleepHours:    SummarizeSeries(series[MetricSleepHours]),
		SleepQuality:  SummarizeSeries(series[MetricSleepQuality]),
		MoodTrend:     series[MetricMood],
		Distribution:  Distribution(records, DimensionMood),
		TopTags:       RankRecords(records, DimensionTags, topN),
		TopActivities: resolveActivityNames(RankRecords(records, DimensionActivities, topN), activities),
		CurrentStreak: RecordStreak(records, today),
		LongestStreak: LongestRecordStreak(records),
	}
}

// BuildJournalReport computes journal statistics. history drives the
// writing streak; nil means entries.
func BuildJournalReport(entries, history []models.JournalEntry, today time.Time, topN int) JournalReport {
	records := AsRecords(entries)
	if history == nil {
		history = entries
	}
	historyRecords := AsRecords(history)

	report := JournalReport{
		TotalEntries:     len(entries),
		TopTags:          RankRecords(records, DimensionTags, topN),
		MoodDistribution: Distribution(records, DimensionMood),
		WordCountTrend:   DailySeries(records, MetricWordCount),
		CurrentStreak:    RecordStreak(historyRecords, today),
		LongestStreak:    LongestRecordStreak(historyRecords),
	}

	words := make([]float64, len(entries))
	for i, e := range entries {
		report.TotalWords += e.WordCount
		report.TotalReadingTime += e.ReadingTime
		words[i] = float64(e.WordCount)
	}
	report.WordCount = Summarize(words)
	if len(entries) > 0 {
		report.AverageWords = float64(report.TotalWords) / float64(len(entries))
	}
	return report
}

// BuildActivityReport computes catalogue statistics over activities
func BuildActivityReport(activities []models.Activity, topN int) ActivityReport {
	records := AsRecords(activities)
	report := ActivityReport{
		Total:      len(activities),
		Categories: RankRecords(records, DimensionCategory, topN),
	}

	moodImpact := make([]float64, 0, len(activities))
	energyImpact := make([]float64, 0, len(activities))
	for _, a := range activities {
		if a.IsActive {
			report.Active++
		}
		if a.IsRecurring {
			report.Recurring++
		}
		report.TotalDurationMinutes += a.DurationMinutes
		moodImpact = append(moodImpact, float64(a.MoodImpact))
		energyImpact = append(energyImpact, float64(a.EnergyImpact))
	}
	report.MoodImpact = Summarize(moodImpact)
	report.EnergyImpact = Summarize(energyImpact)
	return report
}

// BuildOverview runs every report over in and feeds their aggregates to the
// insight rules
func BuildOverview(in OverviewInput) Overview {
	topN := in.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	mood := BuildMoodReport(in.Moods, in.Activities, in.Today, topN)
	journal := BuildJournalReport(in.Journals, in.WritingHistory, in.Today, topN)
	activity := BuildActivityReport(in.Activities, topN)

	var top *Ranked
	if len(mood.TopActivities) > 0 {
		first := mood.TopActivities[0]
		top = &first
	}

	return Overview{
		Mood:     mood,
		Journal:  journal,
		Activity: activity,
		Insights: GenerateInsights(InsightInput{
			Mood:              mood.Mood,
			Sleep:             mood.SleepHours,
			Stress:            mood.Stress,
			TopActivity:       top,
			WritingStreak:     journal.CurrentStreak,
			HasJournalHistory: in.HasJournalHistory || len(in.Journals) > 0,
		}),
	}
}

func resolveActivityNames(ranked []Ranked, activities []models.Activity) []Ranked {
	names := make(map[string]string, len(activities))
	for _, a := range activities {
		names[a.ID] = a.Name
	}
	for i := range ranked {
		if name, ok := names[ranked[i].Label]; ok && name != "" {
			ranked[i].Label = name
		}
	}
	return ranked
}
