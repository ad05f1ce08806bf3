package models

import "time"

// Mood is one of the five fixed mood categories
type Mood string

const (
	MoodVerySad   Mood = "very_sad"
	MoodSad       Mood = "sad"
	MoodNeutral   Mood = "neutral"
	MoodHappy     Mood = "happy"
	MoodVeryHappy Mood = "very_happy"
)

// Moods lists every mood category in ascending score order
var Moods = []Mood{MoodVerySad, MoodSad, MoodNeutral, MoodHappy, MoodVeryHappy}

// MoodScores is the single mood -> ordinal score table. Every mood-derived
// statistic reads it; do not re-derive scores elsewhere.
var MoodScores = map[Mood]int{
	MoodVerySad:   1,
	MoodSad:       2,
	MoodNeutral:   3,
	MoodHappy:     4,
	MoodVeryHappy: 5,
}

// Score returns the 1-5 ordinal score, or 0 for an unknown mood
func (m Mood) Score() int {
	return MoodScores[m]
}

// Valid reports whether m is one of the five fixed categories
func (m Mood) Valid() bool {
	_, ok := MoodScores[m]
	return ok
}

// SleepQuality is the four-level self-reported sleep rating
type SleepQuality string

const (
	SleepQualityPoor      SleepQuality = "poor"
	SleepQualityFair      SleepQuality = "fair"
	SleepQualityGood      SleepQuality = "good"
	SleepQualityExcellent SleepQuality = "excellent"
)

var sleepQualityScores = map[SleepQuality]int{
	SleepQualityPoor:      1,
	SleepQualityFair:      2,
	SleepQualityGood:      3,
	SleepQualityExcellent: 4,
}

// Score returns the 1-4 ordinal score, or 0 when unset
func (q SleepQuality) Score() int {
	return sleepQualityScores[q]
}

// MoodEntry is the daily mood check-in. A user has at most one per calendar day.
type MoodEntry struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	Date         time.Time    `json:"date"`
	Mood         Mood         `json:"mood"`
	Energy       int          `json:"energy"`
	Stress       int          `json:"stress"`
	Anxiety      int          `json:"anxiety"`
	SleepHours   float64      `json:"sleep_hours"`
	SleepQuality SleepQuality `json:"sleep_quality"`
	ActivityIDs  []string     `json:"activity_ids"`
	Tags         []string     `json:"tags"`
	Notes        *string      `json:"notes,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (e MoodEntry) RecordKind() RecordKind { return RecordKindMood }
func (e MoodEntry) RecordedAt() time.Time  { return e.Date }

// CreateMoodEntryRequest creates or replaces the entry for a calendar day.
// Date defaults to today when omitted.
type CreateMoodEntryRequest struct {
	Date         *time.Time   `json:"date"`
	Mood         Mood         `json:"mood" binding:"required,oneof=very_sad sad neutral happy very_happy"`
	Energy       int          `json:"energy" binding:"required,min=1,max=10"`
	Stress       int          `json:"stress" binding:"required,min=1,max=10"`
	Anxiety      int          `json:"anxiety" binding:"required,min=1,max=10"`
	SleepHours   float64      `json:"sleep_hours" binding:"min=0,max=24"`
	SleepQuality SleepQuality `json:"sleep_quality" binding:"required,oneof=poor fair good excellent"`
	ActivityIDs  []string     `json:"activity_ids"`
	Tags         []string     `json:"tags" binding:"max=20,dive,max=50"`
	Notes        *string      `json:"notes" binding:"omitempty,max=2000"`
}

// UpdateMoodEntryRequest carries a partial update; absent fields are untouched
type UpdateMoodEntryRequest struct {
	Mood         *Mood            `json:"mood" binding:"omitempty,oneof=very_sad sad neutral happy very_happy"`
	Energy       *int             `json:"energy" binding:"omitempty,min=1,max=10"`
	Stress       *int             `json:"stress" binding:"omitempty,min=1,max=10"`
	Anxiety      *int             `json:"anxiety" binding:"omitempty,min=1,max=10"`
	SleepHours   *float64         `json:"sleep_hours" binding:"omitempty,min=0,max=24"`
	SleepQuality *SleepQuality    `json:"sleep_quality" binding:"omitempty,oneof=poor fair good excellent"`
	ActivityIDs  []string         `json:"activity_ids"`
	Tags         []string         `json:"tags" binding:"omitempty,max=20,dive,max=50"`
	Notes        Nullable[string] `json:"notes"`
}
