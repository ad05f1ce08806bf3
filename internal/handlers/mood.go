package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
	"github.com/JonnyWalker81/moodtrail/backend/internal/service"
)

type MoodHandler struct {
	moodService      service.MoodService
	analyticsService service.AnalyticsService
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService service.MoodService, analyticsService service.AnalyticsService) *MoodHandler {
	return &MoodHandler{
		moodService:      moodService,
		analyticsService: analyticsService,
	}
}

// RecordMood handles POST /api/v1/moods. A second check-in on the same day
// replaces the first.
func (h *MoodHandler) RecordMood(c *gin.Context) {
	var req models.CreateMoodEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.moodService.Record(c.Request.Context(), currentUser(c), &req)
	if err != nil {
		writeError(c, err, "mood entry", "")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetMoods handles GET /api/v1/moods
func (h *MoodHandler) GetMoods(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	entries, err := h.moodService.List(c.Request.Context(), currentUser(c), opts)
	if err != nil {
		writeError(c, err, "mood entry", "")
		return
	}
	if entries == nil {
		entries = []models.MoodEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// GetMood handles GET /api/v1/moods/:id
func (h *MoodHandler) GetMood(c *gin.Context) {
	id, ok := pathID(c, "mood entry")
	if !ok {
		return
	}

	entry, err := h.moodService.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		writeError(c, err, "mood entry", id)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// UpdateMood handles PUT /api/v1/moods/:id
func (h *MoodHandler) UpdateMood(c *gin.Context) {
	id, ok := pathID(c, "mood entry")
	if !ok {
		return
	}
	var req models.UpdateMoodEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.moodService.Update(c.Request.Context(), currentUser(c), id, &req)
	if err != nil {
		writeError(c, err, "mood entry", id)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteMood handles DELETE /api/v1/moods/:id
func (h *MoodHandler) DeleteMood(c *gin.Context) {
	id, ok := pathID(c, "mood entry")
	if !ok {
		return
	}

	if err := h.moodService.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		writeError(c, err, "mood entry", id)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMoodStats handles GET /api/v1/moods/stats
func (h *MoodHandler) GetMoodStats(c *gin.Context) {
	report, err := h.analyticsService.MoodReport(c.Request.Context(), currentUser(c), c.Query("period"))
	if err != nil {
		writeError(c, err, "mood report", "")
		return
	}
	c.JSON(http.StatusOK, report)
}
