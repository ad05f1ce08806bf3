package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
	"github.com/JonnyWalker81/moodtrail/backend/internal/service"
)

type JournalHandler struct {
	journalService   service.JournalService
	analyticsService service.AnalyticsService
}

func NewJournalHandler(journalService service.JournalService, analyticsService service.AnalyticsService) *JournalHandler {
	return &JournalHandler{
		journalService:   journalService,
		analyticsService: analyticsService,
	}
}

// CreateJournal handles POST /api/v1/journals
func (h *JournalHandler) CreateJournal(c *gin.Context) {
	var req models.CreateJournalEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.journalService.Create(c.Request.Context(), currentUser(c), &req)
	if err != nil {
		writeError(c, err, "journal entry", "")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetJournals handles GET /api/v1/journals
func (h *JournalHandler) GetJournals(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	entries, err := h.journalService.List(c.Request.Context(), currentUser(c), opts)
	if err != nil {
		writeError(c, err, "journal entry", "")
		return
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (h *JournalHandler) GetJournal(c *gin.Context) {
	id, ok := pathID(c, "journal entry")
	if !ok {
		return
	}

	entry, err := h.journalService.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		writeError(c, err, "journal entry", id)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *JournalHandler) UpdateJournal(c *gin.Context) {
	id, ok := pathID(c, "journal entry")
	if !ok {
		return
	}
	var req models.UpdateJournalEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.journalService.Update(c.Request.Context(), currentUser(c), id, &req)
	if err != nil {
		writeError(c, err, "journal entry", id)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *JournalHandler) DeleteJournal(c *gin.Context) {
	id, ok := pathID(c, "journal entry")
	if !ok {
		return
	}

	if err := h.journalService.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		writeError(c, err, "journal entry", id)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetJournalStats handles GET /api/v1/journals/stats
func (h *JournalHandler) GetJournalStats(c *gin.Context) {
	report, err := h.analyticsService.JournalReport(c.Request.Context(), currentUser(c), c.Query("period"))
	if err != nil {
		writeError(c, err, "journal report", "")
		return
	}
	c.JSON(http.StatusOK, report)
}
