package api

import (
	"net/http"

	"github.com/ayushjpeg/Gym/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every endpoint onto the router. Everything under /api
// is guarded by the API key middleware; /ping stays open for health checks.
func SetupRoutes(
	router *gin.Engine,
	apiKey string,
	exerciseService service.ExerciseService,
	historyService service.HistoryService,
	assignmentService service.AssignmentService,
	plannerService service.PlannerService,
) {
	exerciseHandler := NewExerciseHandler(exerciseService)
	historyHandler := NewHistoryHandler(historyService)
	assignmentHandler := NewAssignmentHandler(assignmentService)
	plannerHandler := NewPlannerHandler(plannerService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	gym := router.Group("/api/gym")
	gym.Use(APIKeyMiddleware(apiKey))
	{
		gym.GET("/bootstrap", plannerHandler.Bootstrap)

		exercises := gym.Group("/exercises")
		{
			exercises.GET("", exerciseHandler.ListExercises)
			exercises.POST("", exerciseHandler.CreateExercise)
			exercises.GET("/:id", exerciseHandler.GetExercise)
			exercises.PATCH("/:id", exerciseHandler.UpdateExercise)
			exercises.DELETE("/:id", exerciseHandler.DeleteExercise)
			exercises.POST("/:id/video-upload-url", exerciseHandler.CreateVideoUploadURL)
			exercises.GET("/:id/video-download-url", exerciseHandler.GetVideoDownloadURL)
		}

		history := gym.Group("/history")
		{
			history.GET("", historyHandler.ListHistory)
			history.POST("", historyHandler.LogEntry)
			history.DELETE("/:id", historyHandler.DeleteEntry)
			history.GET("/exercise/:exerciseId", historyHandler.ListExerciseHistory)
			history.DELETE("/exercise/:exerciseId", historyHandler.ClearExerciseHistory)
		}

		assignments := gym.Group("/assignments")
		{
			assignments.GET("", assignmentHandler.ListAssignments)
			assignments.PATCH("/:id", assignmentHandler.UpdateAssignment)
			assignments.POST("/:id/substitute", assignmentHandler.SubstituteAssignment)
		}

		gym.GET("/plan/:dayKey", plannerHandler.DayPlan)
		gym.GET("/week/:weekKey/overview", plannerHandler.WeekOverview)
		gym.GET("/week/:weekKey/volume", plannerHandler.WeeklyVolume)
	}
}
