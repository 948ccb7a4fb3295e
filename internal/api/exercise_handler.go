package api

import (
	"errors"
	"net/http"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs ---

// CreateExerciseRequest defines the expected JSON for creating an exercise.
type CreateExerciseRequest struct {
	ID              string `json:"id" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Equipment       string `json:"equipment"`
	PrimaryMuscle   string `json:"primaryMuscle" binding:"required"`
	SecondaryMuscle string `json:"secondaryMuscle"`
	RestSeconds     int    `json:"restSeconds"`
	TargetNotes     string `json:"targetNotes"`
	Notes           string `json:"notes"`
}

// UpdateExerciseRequest defines the JSON for a partial exercise update.
// Pointer fields distinguish "not sent" from "set to empty".
type UpdateExerciseRequest struct {
	Name            *string `json:"name"`
	Equipment       *string `json:"equipment"`
	PrimaryMuscle   *string `json:"primaryMuscle"`
	SecondaryMuscle *string `json:"secondaryMuscle"`
	RestSeconds     *int    `json:"restSeconds"`
	TargetNotes     *string `json:"targetNotes"`
	Notes           *string `json:"notes"`
}

// VideoUploadRequest carries the content type of the upcoming upload.
type VideoUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// ListExercises handles GET /gym/exercises.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.GetAllExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list exercises.")
		return
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	c.JSON(http.StatusOK, exercises)
}

// CreateExercise handles POST /gym/exercises.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise := domain.Exercise{
		ID:              req.ID,
		Name:            req.Name,
		Equipment:       req.Equipment,
		PrimaryMuscle:   req.PrimaryMuscle,
		SecondaryMuscle: req.SecondaryMuscle,
		RestSeconds:     req.RestSeconds,
		TargetNotes:     req.TargetNotes,
		Notes:           req.Notes,
		LastSession:     []domain.Set{},
	}

	created, err := h.exerciseService.CreateExercise(c.Request.Context(), exercise)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseExists):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise.")
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetExercise handles GET /gym/exercises/:id.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to get exercise.")
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// UpdateExercise handles PATCH /gym/exercises/:id.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load exercise.")
		return
	}

	if req.Name != nil {
		exercise.Name = *req.Name
	}
	if req.Equipment != nil {
		exercise.Equipment = *req.Equipment
	}
	if req.PrimaryMuscle != nil {
		exercise.PrimaryMuscle = *req.PrimaryMuscle
	}
	if req.SecondaryMuscle != nil {
		exercise.SecondaryMuscle = *req.SecondaryMuscle
	}
	if req.RestSeconds != nil {
		exercise.RestSeconds = *req.RestSeconds
	}
	if req.TargetNotes != nil {
		exercise.TargetNotes = *req.TargetNotes
	}
	if req.Notes != nil {
		exercise.Notes = *req.Notes
	}

	updated, err := h.exerciseService.UpdateExercise(c.Request.Context(), *exercise)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update exercise.")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteExercise handles DELETE /gym/exercises/:id.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	err := h.exerciseService.DeleteExercise(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise.")
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateVideoUploadURL handles POST /gym/exercises/:id/video-upload-url.
func (h *ExerciseHandler) CreateVideoUploadURL(c *gin.Context) {
	var req VideoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	uploadURL, objectKey, err := h.exerciseService.GenerateVideoUploadURL(c.Request.Context(), c.Param("id"), req.ContentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNoVideoAttached):
			abortWithError(c, http.StatusServiceUnavailable, "Object storage is not configured.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create upload URL.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploadUrl": uploadURL, "objectKey": objectKey})
}

// GetVideoDownloadURL handles GET /gym/exercises/:id/video-download-url.
func (h *ExerciseHandler) GetVideoDownloadURL(c *gin.Context) {
	downloadURL, err := h.exerciseService.GenerateVideoDownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNoVideoAttached):
			abortWithError(c, http.StatusNotFound, "Exercise has no demo video.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create download URL.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": downloadURL})
}
