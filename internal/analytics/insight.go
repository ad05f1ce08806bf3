package analytics

import "fmt"

// Thresholds used by the insight rules
const (
	LowMoodThreshold       = 3.0
	HighMoodThreshold      = 4.0
	MinSleepHours          = 7.0
	HighStressThreshold    = 7.0
	WritingStreakMilestone = 7
)

// InsightInput carries the aggregates the insight rules read
type InsightInput struct {
	Mood   Stats
	Sleep  Stats
	Stress Stats
	// TopActivity is the most frequent activity in the period, nil if none
	TopActivity *Ranked
	// WritingStreak is the current journaling streak in days
	WritingStreak int
	// HasJournalHistory is true when the user has ever written a journal entry
	HasJournalHistory bool
}

// InsightReport holds the generated messages in rule order
type InsightReport struct {
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

type insightRule func(in InsightInput, out *InsightReport)

// insightRules is evaluated in order; every rule runs independently and may
// add nothing, an insight, a recommendation, or both.
var insightRules = []insightRule{
	lowMoodRule,
	greatMoodRule,
	shortSleepRule,
	highStressRule,
	topActivityRule,
	writingStreakRule,
	startWritingRule,
}

// GenerateInsights applies the rule table to in. Stats-driven rules only
// fire when their Stats has data (Count > 0), so an empty period never reads
// as a zero mean below the low-mood or short-sleep thresholds.
func GenerateInsights(in InsightInput) InsightReport {
	out := InsightReport{
		Insights:        []string{},
		Recommendations: []string{},
	}
	for _, rule := range insightRules {
		rule(in, &out)
	}
	return out
}

func lowMoodRule(in InsightInput, out *InsightReport) {
	if in.Mood.Count == 0 || in.Mood.Mean >= LowMoodThreshold {
		return
	}
	out.Insights = append(out.Insights, "Your mood has been lower than average this period.")
	out.Recommendations = append(out.Recommendations,
		"Consider engaging in mood-boosting activities like exercise, time outdoors, or connecting with friends. If low mood persists, consider reaching out to a mental health professional.")
}

func greatMoodRule(in InsightInput, out *InsightReport) {
	if in.Mood.Count == 0 || in.Mood.Mean <= HighMoodThreshold {
		return
	}
	out.Insights = append(out.Insights, "You've been in a great mood lately! Keep up whatever you're doing.")
}

func shortSleepRule(in InsightInput, out *InsightReport) {
	if in.Sleep.Count == 0 || in.Sleep.Mean >= MinSleepHours {
		return
	}
	out.Insights = append(out.Insights,
		fmt.Sprintf("You're averaging %.1f hours of sleep, below the recommended 7-9 hours.", in.Sleep.Mean))
	out.Recommendations = append(out.Recommendations,
		"Try to keep a consistent sleep schedule by going to bed and waking up at the same time every day.")
}

func highStressRule(in InsightInput, out *InsightReport) {
	if in.Stress.Count == 0 || in.Stress.Mean <= HighStressThreshold {
		return
	}
	out.Insights = append(out.Insights, "Your stress levels have been high recently.")
	out.Recommendations = append(out.Recommendations,
		"Consider stress-reduction techniques such as meditation, deep breathing, or regular physical activity.")
}

func topActivityRule(in InsightInput, out *InsightReport) {
	if in.TopActivity == nil || in.TopActivity.Label == "" {
		return
	}
	out.Insights = append(out.Insights,
		fmt.Sprintf("%q is your most frequent activity.", in.TopActivity.Label))
	out.Recommendations = append(out.Recommendations,
		fmt.Sprintf("Consider incorporating %q into your routine more often.", in.TopActivity.Label))
}

func writingStreakRule(in InsightInput, out *InsightReport) {
	if in.WritingStreak <= WritingStreakMilestone {
		return
	}
	out.Insights = append(out.Insights,
		fmt.Sprintf("Amazing! You've been journaling for %d days in a row.", in.WritingStreak))
}

func startWritingRule(in InsightInput, out *InsightReport) {
	if in.WritingStreak != 0 || !in.HasJournalHistory {
		return
	}
	out.Recommendations = append(out.Recommendations,
		"Try writing in your journal every day to build a consistent reflection habit.")
}
