package api

import (
	"errors"
	"net/http"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler holds the assignment service dependency.
type AssignmentHandler struct {
	assignmentService service.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignmentService service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// UpdateAssignmentRequest defines the JSON for a manual slot substitution.
// An empty selectedExerciseId reverts the slot to its template default.
type UpdateAssignmentRequest struct {
	SelectedExerciseID *string `json:"selectedExerciseId" binding:"required"`
}

// ListAssignments handles GET /gym/assignments.
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.assignmentService.GetAllAssignments(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list assignments.")
		return
	}
	if assignments == nil {
		assignments = []domain.SlotAssignment{}
	}
	c.JSON(http.StatusOK, assignments)
}

// UpdateAssignment handles PATCH /gym/assignments/:id.
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	var req UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SelectedExerciseID == nil {
		abortWithError(c, http.StatusBadRequest, "selectedExerciseId is required")
		return
	}

	assignment, err := h.assignmentService.UpdateSelection(c.Request.Context(), c.Param("id"), *req.SelectedExerciseID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusUnprocessableEntity, "selected exercise does not exist")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update assignment.")
		}
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// SubstituteAssignment handles POST /gym/assignments/:id/substitute.
func (h *AssignmentHandler) SubstituteAssignment(c *gin.Context) {
	assignment, err := h.assignmentService.Substitute(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNoAlternatives):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to substitute assignment.")
		}
		return
	}
	c.JSON(http.StatusOK, assignment)
}
