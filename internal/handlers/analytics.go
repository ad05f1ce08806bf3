package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/moodtrail/backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetOverview handles GET /api/v1/analytics/overview?period=
func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	overview, err := h.analyticsService.Overview(c.Request.Context(), currentUser(c), c.Query("period"))
	if err != nil {
		writeError(c, err, "overview", "")
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GetTrends handles GET /api/v1/analytics/trends?period=&metric=
func (h *AnalyticsHandler) GetTrends(c *gin.Context) {
	trend, err := h.analyticsService.Trend(c.Request.Context(), currentUser(c), c.Query("period"), c.Query("metric"))
	if err != nil {
		writeError(c, err, "trend", "")
		return
	}
	c.JSON(http.StatusOK, trend)
}

// GetStreaks handles GET /api/v1/analytics/streaks
func (h *AnalyticsHandler) GetStreaks(c *gin.Context) {
	streaks, err := h.analyticsService.Streaks(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err, "streaks", "")
		return
	}
	c.JSON(http.StatusOK, streaks)
}

// GetInsights handles GET /api/v1/analytics/insights?period=
func (h *AnalyticsHandler) GetInsights(c *gin.Context) {
	insights, err := h.analyticsService.Insights(c.Request.Context(), currentUser(c), c.Query("period"))
	if err != nil {
		writeError(c, err, "insights", "")
		return
	}
	c.JSON(http.StatusOK, insights)
}
