package models

import (
	"strings"
	"time"
)

// WordsPerMinute is the reading speed used to derive ReadingTime
const WordsPerMinute = 200

// JournalEntry is a free-form journal post
type JournalEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Mood        Mood      `json:"mood"`
	Tags        []string  `json:"tags"`
	IsPrivate   bool      `json:"is_private"`
	WordCount   int       `json:"word_count"`
	ReadingTime int       `json:"reading_time"` // minutes
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e JournalEntry) RecordKind() RecordKind { return RecordKindJournal }
func (e JournalEntry) RecordedAt() time.Time  { return e.Date }

// CountWords counts whitespace-separated words
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ReadingTime returns ceil(words / WordsPerMinute) minutes
func ReadingTime(words int) int {
	if words <= 0 {
		return 0
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

// SetContent updates Content along with the derived word count and reading time
func (e *JournalEntry) SetContent(content string) {
	e.Content = content
	e.WordCount = CountWords(content)
	e.ReadingTime = ReadingTime(e.WordCount)
}

// CreateJournalEntryRequest represents the request to create a journal entry
type CreateJournalEntryRequest struct {
	Date      *time.Time `json:"date"`
	Title     string     `json:"title" binding:"required,max=200"`
	Content   string     `json:"content" binding:"required"`
	Mood      Mood       `json:"mood" binding:"required,oneof=very_sad sad neutral happy very_happy"`
	Tags      []string   `json:"tags" binding:"max=20,dive,max=50"`
	IsPrivate *bool      `json:"is_private"`
}

// UpdateJournalEntryRequest represents a partial journal update
type UpdateJournalEntryRequest struct {
	Title     *string  `json:"title" binding:"omitempty,max=200"`
	Content   *string  `json:"content"`
	Mood      *Mood    `json:"mood" binding:"omitempty,oneof=very_sad sad neutral happy very_happy"`
	Tags      []string `json:"tags" binding:"omitempty,max=20,dive,max=50"`
	IsPrivate *bool    `json:"is_private"`
}
