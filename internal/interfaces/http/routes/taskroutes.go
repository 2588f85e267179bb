package routes

import (
	"github.com/gin-gonic/gin"

	taskhandlers "opsportal/internal/interfaces/http/handlers/task"
	"opsportal/internal/interfaces/http/middleware"
	"opsportal/internal/shared/authorization"
)

type TaskRouteConfig struct {
	TaskHandler    *taskhandlers.TaskHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTaskRoutes(engine *gin.Engine, config *TaskRouteConfig) {
	tasks := engine.Group("/tasks")
	tasks.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts
		tasks.POST("",
			authorization.RequireAdmin(),
			config.TaskHandler.CreateTask)
		tasks.GET("",
			config.TaskHandler.ListTasks)

		tasks.POST("/:id/comments",
			config.TaskHandler.AddComment)
		tasks.PATCH("/:id/status",
			config.TaskHandler.UpdateTaskStatus)

		tasks.GET("/:id",
			config.TaskHandler.GetTask)
	}
}
