package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	agentusecases "opsportal/internal/application/agent/usecases"
	complianceusecases "opsportal/internal/application/compliance/usecases"
	mailusecases "opsportal/internal/application/mail/usecases"
	taskusecases "opsportal/internal/application/task/usecases"
	"opsportal/internal/infrastructure/auth"
	"opsportal/internal/infrastructure/config"
	"opsportal/internal/infrastructure/database"
	"opsportal/internal/infrastructure/documents"
	"opsportal/internal/infrastructure/email"
	"opsportal/internal/infrastructure/migration"
	"opsportal/internal/infrastructure/persistence/migrations"
	"opsportal/internal/infrastructure/repository"
	"opsportal/internal/infrastructure/runlock"
	"opsportal/internal/infrastructure/scheduler"
	httpRouter "opsportal/internal/interfaces/http"
	agenthandlers "opsportal/internal/interfaces/http/handlers/agent"
	compliancehandlers "opsportal/internal/interfaces/http/handlers/compliance"
	mailhandlers "opsportal/internal/interfaces/http/handlers/mail"
	taskhandlers "opsportal/internal/interfaces/http/handlers/task"
	"opsportal/internal/interfaces/http/middleware"
	"opsportal/internal/shared/biztime"
	"opsportal/internal/shared/db"
	"opsportal/internal/shared/logger"
	"opsportal/internal/shared/services/markdown"
)

var (
	env         string
	autoMigrate bool
	noScheduler bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the ops portal HTTP server with the compliance scheduler.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&noScheduler, "no-scheduler", false, "Disable the in-process compliance scheduler (use a dedicated worker instead)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	biztime.MustInit(cfg.Server.Timezone)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	if err := handleMigrations(log); err != nil {
		log.Fatalw("migration handling failed", "error", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}
	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())

	// Repositories and shared infrastructure
	taskRepo := repository.NewTaskRepository(database.Get())
	commentRepo := repository.NewCommentRepository(database.Get())
	profileRepo := repository.NewProfileRepository(database.Get())
	violationRepo := repository.NewViolationRepository(database.Get())
	txMgr := db.NewTransactionManager(database.Get())

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		PortalURL:   cfg.Email.PortalURL,
	})

	bluePageGen, err := documents.NewBluePageGenerator(cfg.Records.Dir, cfg.Records.BaseURL, log)
	if err != nil {
		log.Fatalw("failed to initialize blue page generator", "error", err)
	}

	runLocker := runlock.NewRedisRunLock(redisClient)
	markdownSvc := markdown.NewMarkdownService()

	// Use cases
	createTaskUC := taskusecases.NewCreateTaskUseCase(taskRepo, profileRepo, emailService, log)
	addCommentUC := taskusecases.NewAddCommentUseCase(taskRepo, commentRepo, profileRepo, txMgr, log)
	changeStatusUC := taskusecases.NewChangeStatusUseCase(taskRepo, log)
	replyGrace := time.Duration(cfg.Compliance.ReplyGraceMinutes) * time.Minute
	getTaskUC := taskusecases.NewGetTaskUseCase(taskRepo, commentRepo, replyGrace, log)
	listTasksUC := taskusecases.NewListTasksUseCase(taskRepo, replyGrace, log)

	registerAgentUC := agentusecases.NewRegisterAgentUseCase(profileRepo, log)
	approveAgentUC := agentusecases.NewApproveAgentUseCase(profileRepo, emailService, log)
	rejectAgentUC := agentusecases.NewRejectAgentUseCase(profileRepo, log)
	changeAgentStatusUC := agentusecases.NewChangeAgentStatusUseCase(profileRepo, emailService, log)
	listAgentsUC := agentusecases.NewListAgentsUseCase(profileRepo, log)
	penaltyOverviewUC := agentusecases.NewPenaltyOverviewUseCase(profileRepo, violationRepo, log)

	processDeadlinesUC := complianceusecases.NewProcessDeadlinesUseCase(
		taskRepo,
		profileRepo,
		violationRepo,
		bluePageGen,
		emailService,
		runLocker,
		txMgr,
		cfg.Compliance.PenaltyAmount,
		time.Duration(cfg.Compliance.PerTaskTimeoutSeconds)*time.Second,
		log,
	)
	checkResponsivenessUC := complianceusecases.NewCheckResponsivenessUseCase(
		taskRepo,
		profileRepo,
		emailService,
		runLocker,
		time.Duration(cfg.Compliance.ReplyGraceMinutes)*time.Minute,
		log,
	)
	listViolationsUC := complianceusecases.NewListViolationsUseCase(violationRepo, profileRepo, log)

	sendAdminMailUC := mailusecases.NewSendAdminMailUseCase(profileRepo, markdownSvc, emailService, log)

	// Handlers and router
	authMiddleware := middleware.NewAuthMiddleware(auth.NewJWTService(cfg.Auth.JWTSecret), log)

	router := httpRouter.NewRouter(&httpRouter.RouterConfig{
		TaskHandler:       taskhandlers.NewTaskHandler(createTaskUC, addCommentUC, changeStatusUC, getTaskUC, listTasksUC),
		AgentHandler:      agenthandlers.NewAgentHandler(registerAgentUC, approveAgentUC, rejectAgentUC, changeAgentStatusUC, listAgentsUC, penaltyOverviewUC),
		ComplianceHandler: compliancehandlers.NewComplianceHandler(processDeadlinesUC, checkResponsivenessUC, listViolationsUC),
		MailHandler:       mailhandlers.NewMailHandler(sendAdminMailUC),
		AuthMiddleware:    authMiddleware,
		ServerConfig:      &cfg.Server,
		RecordsConfig:     &cfg.Records,
	}, log)
	router.SetupRoutes()

	// Compliance scheduler. The redis run lock keeps a dedicated worker and
	// an in-process scheduler from double-running the same scan.
	if !noScheduler {
		schedMgr, err := scheduler.NewSchedulerManager(log)
		if err != nil {
			log.Fatalw("failed to create scheduler", "error", err)
		}
		if err := schedMgr.RegisterComplianceJobs(
			processDeadlinesUC,
			checkResponsivenessUC,
			time.Duration(cfg.Compliance.DeadlineScanMinutes)*time.Minute,
			time.Duration(cfg.Compliance.ReplyScanMinutes)*time.Minute,
		); err != nil {
			log.Fatalw("failed to register compliance jobs", "error", err)
		}
		schedMgr.Start()
		defer func() {
			if err := schedMgr.Stop(); err != nil {
				log.Errorw("failed to stop scheduler", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(log logger.Interface) error {
	if autoMigrate {
		log.Infow("running auto-migration")
		if err := migrations.MigrateAll(database.Get()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Infow("auto-migration completed successfully")
		return nil
	}

	scriptsPath, err := filepath.Abs("./migrations")
	if err != nil {
		log.Warnw("failed to get migration scripts path", "error", err)
		return nil
	}

	strategy := migration.NewGooseStrategy(scriptsPath)
	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
	} else {
		log.Infow("current migration version", "version", version)
	}

	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
