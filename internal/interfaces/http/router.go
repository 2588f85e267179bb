// Package http assembles the gin engine: global middleware, static records
// serving, and per-domain route groups.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	agenthandlers "opsportal/internal/interfaces/http/handlers/agent"
	compliancehandlers "opsportal/internal/interfaces/http/handlers/compliance"
	mailhandlers "opsportal/internal/interfaces/http/handlers/mail"
	taskhandlers "opsportal/internal/interfaces/http/handlers/task"
	"opsportal/internal/interfaces/http/middleware"
	"opsportal/internal/interfaces/http/routes"
	"opsportal/internal/shared/config"
	"opsportal/internal/shared/logger"
)

type RouterConfig struct {
	TaskHandler       *taskhandlers.TaskHandler
	AgentHandler      *agenthandlers.AgentHandler
	ComplianceHandler *compliancehandlers.ComplianceHandler
	MailHandler       *mailhandlers.MailHandler
	AuthMiddleware    *middleware.AuthMiddleware

	ServerConfig  *config.ServerConfig
	RecordsConfig *config.RecordsConfig
}

type Router struct {
	engine *gin.Engine
	config *RouterConfig
	logger logger.Interface
}

func NewRouter(cfg *RouterConfig, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.CustomLogger(log))
	engine.Use(middleware.CORS(cfg.ServerConfig.AllowedOrigins))
	engine.Use(middleware.ErrorHandler())

	return &Router{
		engine: engine,
		config: cfg,
		logger: log,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Violation record PDFs. The handler writes them under the records dir
	// and stores the public URL on the violation row.
	r.engine.Static("/records", r.config.RecordsConfig.Dir)

	routes.SetupTaskRoutes(r.engine, &routes.TaskRouteConfig{
		TaskHandler:    r.config.TaskHandler,
		AuthMiddleware: r.config.AuthMiddleware,
	})

	routes.SetupAgentRoutes(r.engine, &routes.AgentRouteConfig{
		AgentHandler:   r.config.AgentHandler,
		AuthMiddleware: r.config.AuthMiddleware,
	})

	routes.SetupComplianceRoutes(r.engine, &routes.ComplianceRouteConfig{
		ComplianceHandler: r.config.ComplianceHandler,
		AuthMiddleware:    r.config.AuthMiddleware,
	})

	routes.SetupMailRoutes(r.engine, &routes.MailRouteConfig{
		MailHandler:    r.config.MailHandler,
		AuthMiddleware: r.config.AuthMiddleware,
	})

	r.logger.Infow("routes registered")
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
