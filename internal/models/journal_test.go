package models

import "testing"

func TestReadingTime(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 0},
		{1, 1},
		{200, 1},
		{201, 2},
		{1000, 5},
	}
	for _, tt := range tests {
		if got := ReadingTime(tt.words); got != tt.want {
			t.Errorf("ReadingTime(%d) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestJournalEntry_SetContent(t *testing.T) {
	var e JournalEntry
	e.SetContent("  today I went   for a\nlong walk ")
	if e.WordCount != 7 {
		t.Errorf("WordCount = %d, want 7", e.WordCount)
	}
	if e.ReadingTime != 1 {
		t.Errorf("ReadingTime = %d, want 1", e.ReadingTime)
	}
}

func TestMoodScore(t *testing.T) {
	for i, m := range Moods {
		if m.Score() != i+1 {
			t.Errorf("%s.Score() = %d, want %d", m, m.Score(), i+1)
		}
	}
	if Mood("ecstatic").Valid() {
		t.Error("unknown mood must not be valid")
	}
}
