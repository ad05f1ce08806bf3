package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JonnyWalker81/moodtrail/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
	"github.com/JonnyWalker81/moodtrail/backend/internal/repository"
)

type journalService struct {
	journalRepo repository.JournalRepository
	now         func() time.Time
}

func NewJournalService(journalRepo repository.JournalRepository) JournalService {
	return &journalService{journalRepo: journalRepo, now: time.Now}
}

func (s *journalService) Create(ctx context.Context, userID string, req *models.CreateJournalEntryRequest) (*models.JournalEntry, error) {
	now := s.now()
	written := now
	if req.Date != nil {
		written = *req.Date
		if _, err := entryDay(req.Date, now); err != nil {
			return nil, err
		}
	}

	entry := &models.JournalEntry{
		UserID:    userID,
		Date:      written,
		Title:     req.Title,
		Mood:      req.Mood,
		Tags:      req.Tags,
		IsPrivate: true,
	}
	if req.IsPrivate != nil {
		entry.IsPrivate = *req.IsPrivate
	}
	entry.SetContent(req.Content)

	saved, err := s.journalRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}
	logger.Ctx(ctx).Info("journal entry created",
		logger.String("entry_id", saved.ID),
		logger.Int("word_count", saved.WordCount))
	return saved, nil
}

func (s *journalService) Get(ctx context.Context, userID, id string) (*models.JournalEntry, error) {
	return s.journalRepo.GetByID(ctx, userID, id)
}

func (s *journalService) List(ctx context.Context, userID string, opts ListOptions) ([]models.JournalEntry, error) {
	if opts.Start != nil || opts.End != nil {
		start, end := opts.bounds(s.now())
		return s.journalRepo.ListByDateRange(ctx, userID, start, end)
	}
	return s.journalRepo.List(ctx, userID, opts.limit(), opts.Offset)
}

func (s *journalService) Update(ctx context.Context, userID, id string, req *models.UpdateJournalEntryRequest) (*models.JournalEntry, error) {
	entry, err := s.journalRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Content != nil {
		entry.SetContent(*req.Content)
	}
	if req.Mood != nil {
		entry.Mood = *req.Mood
	}
	if req.Tags != nil {
		entry.Tags = req.Tags
	}
	if req.IsPrivate != nil {
		entry.IsPrivate = *req.IsPrivate
	}

	return s.journalRepo.Update(ctx, entry)
}

func (s *journalService) Delete(ctx context.Context, userID, id string) error {
	return s.journalRepo.Delete(ctx, userID, id)
}
