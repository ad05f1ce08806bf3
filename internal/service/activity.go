package service

import (
	"context"
	"fmt"

	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
	"github.com/JonnyWalker81/moodtrail/backend/internal/repository"
)

type activityService struct {
	activityRepo repository.ActivityRepository
}

func NewActivityService(activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

func (s *activityService) Create(ctx context.Context, userID string, req *models.CreateActivityRequest) (*models.Activity, error) {
	activity := &models.Activity{
		UserID:          userID,
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		MoodImpact:      req.MoodImpact,
		EnergyImpact:    req.EnergyImpact,
		DurationMinutes: req.DurationMinutes,
		IsRecurring:     req.IsRecurring,
		IsActive:        true,
	}
	saved, err := s.activityRepo.Create(ctx, activity)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return saved, nil
}

func (s *activityService) Get(ctx context.Context, userID, id string) (*models.Activity, error) {
	return s.activityRepo.GetByID(ctx, userID, id)
}

func (s *activityService) List(ctx context.Context, userID string, activeOnly bool) ([]models.Activity, error) {
	return s.activityRepo.List(ctx, userID, activeOnly)
}

func (s *activityService) Update(ctx context.Context, userID, id string, req *models.UpdateActivityRequest) (*models.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		activity.Name = *req.Name
	}
	req.Description.Apply(&activity.Description)
	if req.Category != nil {
		activity.Category = *req.Category
	}
	if req.MoodImpact != nil {
		activity.MoodImpact = *req.MoodImpact
	}
	if req.EnergyImpact != nil {
		activity.EnergyImpact = *req.EnergyImpact
	}
	if req.DurationMinutes != nil {
		activity.DurationMinutes = *req.DurationMinutes
	}
	if req.IsRecurring != nil {
		activity.IsRecurring = *req.IsRecurring
	}
	if req.IsActive != nil {
		activity.IsActive = *req.IsActive
	}

	return s.activityRepo.Update(ctx, activity)
}

func (s *activityService) Delete(ctx context.Context, userID, id string) error {
	return s.activityRepo.Delete(ctx, userID, id)
}
