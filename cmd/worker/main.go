// Dedicated compliance worker. Runs only the scheduled scans; pair it with
// the server's --no-scheduler flag in multi-instance deploys.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	complianceusecases "opsportal/internal/application/compliance/usecases"
	"opsportal/internal/infrastructure/config"
	"opsportal/internal/infrastructure/database"
	"opsportal/internal/infrastructure/documents"
	"opsportal/internal/infrastructure/email"
	"opsportal/internal/infrastructure/repository"
	"opsportal/internal/infrastructure/runlock"
	"opsportal/internal/infrastructure/scheduler"
	"opsportal/internal/shared/biztime"
	"opsportal/internal/shared/db"
	"opsportal/internal/shared/logger"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting compliance worker", "environment", env)

	biztime.MustInit(cfg.Server.Timezone)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

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

	taskRepo := repository.NewTaskRepository(database.Get())
	profileRepo := repository.NewProfileRepository(database.Get())
	violationRepo := repository.NewViolationRepository(database.Get())

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
	txMgr := db.NewTransactionManager(database.Get())

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
	log.Infow("compliance worker started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	log.Infow("received signal, shutting down", "signal", sig)

	if err := schedMgr.Stop(); err != nil {
		log.Errorw("failed to stop scheduler", "error", err)
	}

	log.Infow("compliance worker stopped")
}
