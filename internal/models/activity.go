package models

import "time"

// ActivityCategory is one of the 17 fixed activity categories
type ActivityCategory string

const (
	ActivityCategoryExercise      ActivityCategory = "exercise"
	ActivityCategorySocial        ActivityCategory = "social"
	ActivityCategoryWork          ActivityCategory = "work"
	ActivityCategoryHobby         ActivityCategory = "hobby"
	ActivityCategoryRelaxation    ActivityCategory = "relaxation"
	ActivityCategoryLearning      ActivityCategory = "learning"
	ActivityCategoryCreative      ActivityCategory = "creative"
	ActivityCategoryOutdoor       ActivityCategory = "outdoor"
	ActivityCategoryEntertainment ActivityCategory = "entertainment"
	ActivityCategorySelfCare      ActivityCategory = "self_care"
	ActivityCategoryHousehold     ActivityCategory = "household"
	ActivityCategoryFamily        ActivityCategory = "family"
	ActivityCategoryTravel        ActivityCategory = "travel"
	ActivityCategoryMindfulness   ActivityCategory = "mindfulness"
	ActivityCategoryHealth        ActivityCategory = "health"
	ActivityCategorySpiritual     ActivityCategory = "spiritual"
	ActivityCategoryOther         ActivityCategory = "other"
)

// ActivityCategories lists all categories in declaration order
var ActivityCategories = []ActivityCategory{
	ActivityCategoryExercise,
	ActivityCategorySocial,
	ActivityCategoryWork,
	ActivityCategoryHobby,
	ActivityCategoryRelaxation,
	ActivityCategoryLearning,
	ActivityCategoryCreative,
	ActivityCategoryOutdoor,
	ActivityCategoryEntertainment,
	ActivityCategorySelfCare,
	ActivityCategoryHousehold,
	ActivityCategoryFamily,
	ActivityCategoryTravel,
	ActivityCategoryMindfulness,
	ActivityCategoryHealth,
	ActivityCategorySpiritual,
	ActivityCategoryOther,
}

// Activity is a user-defined activity that mood entries can reference
type Activity struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	Name            string           `json:"name"`
	Description     *string          `json:"description,omitempty"`
	Category        ActivityCategory `json:"category"`
	MoodImpact      int              `json:"mood_impact"`
	EnergyImpact    int              `json:"energy_impact"`
	DurationMinutes int              `json:"duration_minutes"`
	IsRecurring     bool             `json:"is_recurring"`
	IsActive        bool             `json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (a Activity) RecordKind() RecordKind { return RecordKindActivity }
func (a Activity) RecordedAt() time.Time  { return a.CreatedAt }

// CreateActivityRequest represents the request to create an activity
type CreateActivityRequest struct {
	Name            string           `json:"name" binding:"required,max=100"`
	Description     *string          `json:"description" binding:"omitempty,max=500"`
	Category        ActivityCategory `json:"category" binding:"required,oneof=exercise social work hobby relaxation learning creative outdoor entertainment self_care household family travel mindfulness health spiritual other"`
	MoodImpact      int              `json:"mood_impact" binding:"min=-5,max=5"`
	EnergyImpact    int              `json:"energy_impact" binding:"min=-5,max=5"`
	DurationMinutes int              `json:"duration_minutes" binding:"min=0,max=1440"`
	IsRecurring     bool             `json:"is_recurring"`
}

// UpdateActivityRequest represents a partial activity update
type UpdateActivityRequest struct {
	Name            *string           `json:"name" binding:"omitempty,max=100"`
	Description     Nullable[string]  `json:"description"`
	Category        *ActivityCategory `json:"category" binding:"omitempty,oneof=exercise social work hobby relaxation learning creative outdoor entertainment self_care household family travel mindfulness health spiritual other"`
	MoodImpact      *int              `json:"mood_impact" binding:"omitempty,min=-5,max=5"`
	EnergyImpact    *int              `json:"energy_impact" binding:"omitempty,min=-5,max=5"`
	DurationMinutes *int              `json:"duration_minutes" binding:"omitempty,min=0,max=1440"`
	IsRecurring     *bool             `json:"is_recurring"`
	IsActive        *bool             `json:"is_active"`
}
