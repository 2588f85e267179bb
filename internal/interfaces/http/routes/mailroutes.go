package routes

import (
	"github.com/gin-gonic/gin"

	mailhandlers "opsportal/internal/interfaces/http/handlers/mail"
	"opsportal/internal/interfaces/http/middleware"
	"opsportal/internal/shared/authorization"
)

type MailRouteConfig struct {
	MailHandler    *mailhandlers.MailHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupMailRoutes(engine *gin.Engine, config *MailRouteConfig) {
	mail := engine.Group("/mail")
	mail.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		mail.POST("",
			config.MailHandler.Send)
	}
}
