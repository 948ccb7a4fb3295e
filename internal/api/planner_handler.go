package api

import (
	"errors"
	"net/http"

	"github.com/ayushjpeg/Gym/internal/service"

	"github.com/gin-gonic/gin"
)

// PlannerHandler holds the planner service dependency.
type PlannerHandler struct {
	plannerService service.PlannerService
}

// NewPlannerHandler creates a new PlannerHandler.
func NewPlannerHandler(plannerService service.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService}
}

// Bootstrap handles GET /gym/bootstrap.
func (h *PlannerHandler) Bootstrap(c *gin.Context) {
	payload, err := h.plannerService.Bootstrap(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load bootstrap payload.")
		return
	}
	c.JSON(http.StatusOK, payload)
}

// DayPlan handles GET /gym/plan/:dayKey.
func (h *PlannerHandler) DayPlan(c *gin.Context) {
	plan, err := h.plannerService.DayPlan(c.Request.Context(), c.Param("dayKey"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownDayKey):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotStrengthDay):
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to resolve day plan.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"dayKey": c.Param("dayKey"), "slots": plan})
}

// WeekOverview handles GET /gym/week/:weekKey/overview.
func (h *PlannerHandler) WeekOverview(c *gin.Context) {
	overview, err := h.plannerService.WeekOverview(c.Request.Context(), c.Param("weekKey"))
	if err != nil {
		if errors.Is(err, service.ErrBadWeekKey) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to build week overview.")
		return
	}
	c.JSON(http.StatusOK, overview)
}

// WeeklyVolume handles GET /gym/week/:weekKey/volume.
func (h *PlannerHandler) WeeklyVolume(c *gin.Context) {
	volume, err := h.plannerService.WeeklyVolume(c.Request.Context(), c.Param("weekKey"))
	if err != nil {
		if errors.Is(err, service.ErrBadWeekKey) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to aggregate weekly volume.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"weekKey": c.Param("weekKey"), "volume": volume})
}
