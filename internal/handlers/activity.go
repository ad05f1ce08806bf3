package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/moodtrail/backend/internal/apierror"
	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
	"github.com/JonnyWalker81/moodtrail/backend/internal/service"
)

type ActivityHandler struct {
	activityService  service.ActivityService
	analyticsService service.AnalyticsService
}

func NewActivityHandler(activityService service.ActivityService, analyticsService service.AnalyticsService) *ActivityHandler {
	return &ActivityHandler{
		activityService:  activityService,
		analyticsService: analyticsService,
	}
}

// CreateActivity handles POST /api/v1/activities
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req models.CreateActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := h.activityService.Create(c.Request.Context(), currentUser(c), &req)
	if err != nil {
		writeError(c, err, "activity", "")
		return
	}
	c.JSON(http.StatusCreated, activity)
}

// GetActivities handles GET /api/v1/activities?active=true
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	activeOnly := false
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			apierror.Write(c, apierror.Validation(apierror.RequestID(c), []apierror.FieldError{
				{Field: "active", Message: "must be a boolean value", Code: "boolean"},
			}))
			return
		}
		activeOnly = v
	}

	activities, err := h.activityService.List(c.Request.Context(), currentUser(c), activeOnly)
	if err != nil {
		writeError(c, err, "activity", "")
		return
	}
	if activities == nil {
		activities = []models.Activity{}
	}
	c.JSON(http.StatusOK, activities)
}

func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, ok := pathID(c, "activity")
	if !ok {
		return
	}

	activity, err := h.activityService.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		writeError(c, err, "activity", id)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id, ok := pathID(c, "activity")
	if !ok {
		return
	}
	var req models.UpdateActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := h.activityService.Update(c.Request.Context(), currentUser(c), id, &req)
	if err != nil {
		writeError(c, err, "activity", id)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id, ok := pathID(c, "activity")
	if !ok {
		return
	}

	if err := h.activityService.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		writeError(c, err, "activity", id)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetActivityStats handles GET /api/v1/activities/stats
func (h *ActivityHandler) GetActivityStats(c *gin.Context) {
	report, err := h.analyticsService.ActivityReport(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err, "activity report", "")
		return
	}
	c.JSON(http.StatusOK, report)
}
