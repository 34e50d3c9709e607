package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trainingms/training-api/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	traineeService service.TraineeService,
	goalService service.GoalService,
	moduleService service.ModuleService,
	evaluationService service.EvaluationService,
) {
	traineeHandler := NewTraineeHandler(traineeService)
	goalHandler := NewGoalHandler(goalService)
	moduleHandler := NewModuleHandler(moduleService)
	evaluationHandler := NewEvaluationHandler(evaluationService)

	router.Use(RequestIDMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		traineeGroup := apiV1.Group("/trainees")
		{
			traineeGroup.GET("", traineeHandler.List)
			traineeGroup.GET("/:id", traineeHandler.GetByID)
			traineeGroup.POST("", traineeHandler.Create)
			traineeGroup.PUT("/:id", traineeHandler.Update)
			// DELETE cascades to the trainee's goals, modules and
			// evaluations. Irreversible.
			traineeGroup.DELETE("/:id", traineeHandler.Delete)
		}

		goalGroup := apiV1.Group("/goals")
		{
			goalGroup.GET("/by-trainee/:traineeId", goalHandler.ListByTrainee)
			goalGroup.GET("/active/:traineeId", goalHandler.GetActive)
			goalGroup.POST("", goalHandler.Create)
			goalGroup.PUT("/:id", goalHandler.Update)
			goalGroup.DELETE("/:id", goalHandler.Delete)
		}

		moduleGroup := apiV1.Group("/modules")
		{
			moduleGroup.GET("", moduleHandler.List)
			moduleGroup.GET("/:id", moduleHandler.GetByID)
			moduleGroup.POST("", moduleHandler.Create)
			moduleGroup.PUT("/:id", moduleHandler.Update)
			moduleGroup.DELETE("/:id", moduleHandler.Delete)
		}

		evaluationGroup := apiV1.Group("/evaluations")
		{
			evaluationGroup.GET("", evaluationHandler.List)
			evaluationGroup.GET("/:id", evaluationHandler.GetByID)
			evaluationGroup.POST("", evaluationHandler.Create)
			evaluationGroup.PUT("/:id", evaluationHandler.Update)
			// No DELETE: evaluations are append/amend-only.
		}
	}
}
