package routes

import (
	"github.com/gin-gonic/gin"

	compliancehandlers "opsportal/internal/interfaces/http/handlers/compliance"
	"opsportal/internal/interfaces/http/middleware"
	"opsportal/internal/shared/authorization"
)

type ComplianceRouteConfig struct {
	ComplianceHandler *compliancehandlers.ComplianceHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupComplianceRoutes(engine *gin.Engine, config *ComplianceRouteConfig) {
	compliance := engine.Group("/compliance")
	compliance.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		compliance.POST("/runs/deadlines",
			config.ComplianceHandler.RunDeadlineScan)
		compliance.POST("/runs/responsiveness",
			config.ComplianceHandler.RunResponsivenessScan)

		compliance.GET("/violations",
			config.ComplianceHandler.ListViolations)
	}
}
