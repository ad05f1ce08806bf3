package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/JonnyWalker81/moodtrail/backend/internal/analytics"
)

const sampleExport = `{
  "moods": [
    {"id": "m1", "date": "2026-10-14T00:00:00Z", "mood": "sad", "energy": 3, "stress": 8, "anxiety": 6, "sleep_hours": 5, "sleep_quality": "poor", "activity_ids": ["a1"], "tags": ["work"]},
    {"id": "m2", "date": "2026-10-15T00:00:00Z", "mood": "very_sad", "energy": 2, "stress": 9, "anxiety": 7, "sleep_hours": 6, "sleep_quality": "poor", "activity_ids": ["a1"], "tags": ["work"]},
    {"id": "m3", "date": "2026-10-16T00:00:00Z", "mood": "sad", "energy": 3, "stress": 8, "anxiety": 6, "sleep_hours": 6, "sleep_quality": "fair", "activity_ids": [], "tags": []},
    {"id": "m4", "date": "2026-10-17T00:00:00Z", "mood": "neutral", "energy": 4, "stress": 7, "anxiety": 5, "sleep_hours": 5, "sleep_quality": "fair", "activity_ids": ["a1"], "tags": ["rest"]},
    {"id": "old", "date": "2025-01-02T00:00:00Z", "mood": "very_happy", "energy": 9, "stress": 1, "anxiety": 1, "sleep_hours": 9, "sleep_quality": "excellent"}
  ],
  "journals": [
    {"id": "j1", "date": "2026-09-01T21:00:00Z", "title": "t", "content": "short note", "mood": "sad", "word_count": 2, "reading_time": 1}
  ],
  "activities": [
    {"id": "a1", "name": "Running", "category": "exercise", "mood_impact": 3, "energy_impact": 2, "duration_minutes": 30, "is_active": true}
  ]
}`

var analyzeNow = time.Date(2026, 10, 17, 23, 59, 59, 0, time.UTC)

func TestAnalyze_JSON(t *testing.T) {
	var out bytes.Buffer
	err := analyze(strings.NewReader(sampleExport), &out, "week", "json", analyzeNow, 5)
	require.NoError(t, err)

	var got struct {
		Period   analytics.Range    `json:"period"`
		Overview analytics.Overview `json:"overview"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	assert.Equal(t, analytics.PeriodWeek, got.Period.Period)
	assert.Equal(t, 4, got.Overview.Mood.TotalEntries)
	assert.InDelta(t, 5.5, got.Overview.Mood.SleepHours.Mean, 1e-9)
	assert.Equal(t, 0, got.Overview.Journal.TotalEntries)
	assert.Contains(t, got.Overview.Insights.Insights,
		"You're averaging 5.5 hours of sleep, below the recommended 7-9 hours.")
	assert.Contains(t, got.Overview.Insights.Insights, `"Running" is your most frequent activity.`)
	assert.Contains(t, got.Overview.Insights.Recommendations,
		"Try writing in your journal every day to build a consistent reflection habit.")
}

func TestAnalyze_YAMLUsesSnakeCase(t *testing.T) {
	var out bytes.Buffer
	err := analyze(strings.NewReader(sampleExport), &out, "month", "yaml", analyzeNow, 5)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	overview, ok := doc["overview"].(map[string]any)
	require.True(t, ok)
	mood, ok := overview["mood"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 4, mood["total_entries"])
	assert.Contains(t, out.String(), "sleep_hours:")
}

func TestAnalyze_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		period string
		format string
	}{
		{"bad period", sampleExport, "fortnight", "json"},
		{"bad format", sampleExport, "week", "xml"},
		{"bad input", "{not json", "week", "json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := analyze(strings.NewReader(tt.input), &bytes.Buffer{}, tt.period, tt.format, analyzeNow, 5)
			assert.Error(t, err)
		})
	}
}
