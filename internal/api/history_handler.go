package api

import (
	"errors"
	"net/http"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/service"

	"github.com/gin-gonic/gin"
)

// HistoryHandler holds the history service dependency.
type HistoryHandler struct {
	historyService service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// LogEntryRequest defines the JSON for logging one workout entry. Strength
// entries carry sets; cardio entries carry run metrics. The type field is
// optional, a cardio_ exercise id implies cardio.
type LogEntryRequest struct {
	ID         string           `json:"id"`
	Type       domain.EntryType `json:"type"`
	ExerciseID string           `json:"exerciseId"`
	Date       string           `json:"date"`
	DayKey     string           `json:"dayKey"`
	SlotID     string           `json:"slotId"`
	Sets       []domain.Set     `json:"sets"`
	Notes      string           `json:"notes"`
	Distance   float64          `json:"distance"`
	Duration   int              `json:"duration"`
	Calories   int              `json:"calories"`
	Pace       string           `json:"pace"`
}

// LogEntry handles POST /gym/history.
func (h *HistoryHandler) LogEntry(c *gin.Context) {
	var req LogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	record := domain.HistoryRecord{
		ID:         req.ID,
		Type:       req.Type,
		ExerciseID: req.ExerciseID,
		Date:       req.Date,
		DayKey:     req.DayKey,
		SlotID:     req.SlotID,
		Sets:       req.Sets,
		Notes:      req.Notes,
		Distance:   req.Distance,
		Duration:   req.Duration,
		Calories:   req.Calories,
		Pace:       req.Pace,
	}

	saved, err := h.historyService.Log(c.Request.Context(), record)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to log history entry.")
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// ListHistory handles GET /gym/history.
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	records, err := h.historyService.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list history.")
		return
	}
	if records == nil {
		records = []domain.HistoryRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// ListExerciseHistory handles GET /gym/history/exercise/:exerciseId.
func (h *HistoryHandler) ListExerciseHistory(c *gin.Context) {
	records, err := h.historyService.GetForExercise(c.Request.Context(), c.Param("exerciseId"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list history.")
		return
	}
	if records == nil {
		records = []domain.HistoryRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// DeleteEntry handles DELETE /gym/history/:id.
func (h *HistoryHandler) DeleteEntry(c *gin.Context) {
	err := h.historyService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrHistoryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete history entry.")
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearExerciseHistory handles DELETE /gym/history/exercise/:exerciseId.
func (h *HistoryHandler) ClearExerciseHistory(c *gin.Context) {
	deleted, err := h.historyService.ClearForExercise(c.Request.Context(), c.Param("exerciseId"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to clear history.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
