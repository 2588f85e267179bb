package routes

import (
	"github.com/gin-gonic/gin"

	agenthandlers "opsportal/internal/interfaces/http/handlers/agent"
	"opsportal/internal/interfaces/http/middleware"
	"opsportal/internal/shared/authorization"
)

type AgentRouteConfig struct {
	AgentHandler   *agenthandlers.AgentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAgentRoutes(engine *gin.Engine, config *AgentRouteConfig) {
	agents := engine.Group("/agents")
	agents.Use(config.AuthMiddleware.RequireAuth())
	{
		// Registration is open to any authenticated identity; everything
		// else on this group is admin-only.
		agents.POST("/register",
			config.AgentHandler.Register)

		agents.GET("",
			authorization.RequireAdmin(),
			config.AgentHandler.List)
		agents.GET("/penalties",
			authorization.RequireAdmin(),
			config.AgentHandler.PenaltyOverview)

		agents.POST("/:id/approve",
			authorization.RequireAdmin(),
			config.AgentHandler.Approve)
		agents.PATCH("/:id/status",
			authorization.RequireAdmin(),
			config.AgentHandler.ChangeStatus)
		agents.DELETE("/:id",
			authorization.RequireAdmin(),
			config.AgentHandler.Reject)
	}
}
