package usecases

import (
	"context"
	"fmt"
	"time"

	"opsportal/internal/application/compliance/dto"
	"opsportal/internal/domain/profile"
	"opsportal/internal/domain/task"
	"opsportal/internal/domain/violation"
	"opsportal/internal/shared/biztime"
	"opsportal/internal/shared/errors"
	"opsportal/internal/shared/logger"
)

// ProcessDeadlinesUseCase issues blue pages: for every unfinished task whose
// deadline has passed and that has not been penalized yet, it renders the
// violation record document, appends a violation, accrues the fixed penalty
// on the agent's profile, flags the task and emails the agent. Each task is
// processed independently so one failure never stalls the run.
type ProcessDeadlinesUseCase struct {
	taskRepo      task.TaskRepository
	profileRepo   profile.ProfileRepository
	violationRepo violation.ViolationRepository
	generator     BluePageGenerator
	notifier      ComplianceNotifier
	locker        RunLocker
	txMgr         TransactionRunner
	penaltyAmount int64
	lockTTL       time.Duration
	perTaskLimit  time.Duration
	logger        logger.Interface
}

func NewProcessDeadlinesUseCase(
	taskRepo task.TaskRepository,
	profileRepo profile.ProfileRepository,
	violationRepo violation.ViolationRepository,
	generator BluePageGenerator,
	notifier ComplianceNotifier,
	locker RunLocker,
	txMgr TransactionRunner,
	penaltyAmount int64,
	perTaskLimit time.Duration,
	logger logger.Interface,
) *ProcessDeadlinesUseCase {
	return &ProcessDeadlinesUseCase{
		taskRepo:      taskRepo,
		profileRepo:   profileRepo,
		violationRepo: violationRepo,
		generator:     generator,
		notifier:      notifier,
		locker:        locker,
		txMgr:         txMgr,
		penaltyAmount: penaltyAmount,
		lockTTL:       10 * time.Minute,
		perTaskLimit:  perTaskLimit,
		logger:        logger,
	}
}

func (uc *ProcessDeadlinesUseCase) Execute(ctx context.Context) (*dto.ProcessDeadlinesResult, error) {
	now := biztime.NowUTC()
	result := &dto.ProcessDeadlinesResult{
		StartedAt: now,
		Processed: []dto.ProcessedTask{},
	}

	acquired, err := uc.locker.Acquire(ctx, DeadlineRunLockKey, uc.lockTTL)
	if err != nil {
		uc.logger.Errorw("failed to acquire deadline run lock", "error", err)
		return nil, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !acquired {
		uc.logger.Infow("deadline run already in progress, skipping")
		result.Skipped = true
		return result, nil
	}
	defer func() {
		if err := uc.locker.Release(ctx, DeadlineRunLockKey); err != nil {
			uc.logger.Warnw("failed to release deadline run lock", "error", err)
		}
	}()

	tasks, err := uc.taskRepo.GetOverdueUnflagged(ctx, now)
	if err != nil {
		uc.logger.Errorw("failed to query overdue tasks", "error", err)
		return nil, fmt.Errorf("failed to query overdue tasks: %w", err)
	}

	uc.logger.Infow("deadline run started", "candidates", len(tasks))

	for _, t := range tasks {
		entry := uc.processTask(ctx, t)
		result.Processed = append(result.Processed, entry)
	}

	uc.logger.Infow("deadline run finished", "processed", len(result.Processed))
	return result, nil
}

func (uc *ProcessDeadlinesUseCase) processTask(ctx context.Context, t *task.Task) dto.ProcessedTask {
	taskCtx, cancel := context.WithTimeout(ctx, uc.perTaskLimit)
	defer cancel()

	agent, err := uc.profileRepo.GetByID(taskCtx, t.AssigneeID())
	if err != nil {
		uc.logger.Errorw("failed to load agent for overdue task", "task_id", t.ID(), "assignee_id", t.AssigneeID(), "error", err)
		return dto.ProcessedTask{TaskID: t.ID(), Status: "failed", Error: err.Error()}
	}

	issuedAt := biztime.NowUTC()
	pdfURL, err := uc.generator.Generate(taskCtx, BluePageData{
		TaskID:          t.ID(),
		TaskTitle:       t.Title(),
		AgentName:       agent.FullName(),
		AgentEmployeeID: agent.EmployeeID(),
		Deadline:        t.Deadline(),
		IssuedAt:        issuedAt,
		PenaltyAmount:   uc.penaltyAmount,
	})
	if err != nil {
		uc.logger.Errorw("failed to generate blue page document", "task_id", t.ID(), "error", err)
		return dto.ProcessedTask{TaskID: t.ID(), Status: "failed", Error: err.Error()}
	}

	v, err := violation.NewViolation(agent.ID(), t.ID(), violation.TypeDeadlineMissed, uc.penaltyAmount, pdfURL)
	if err != nil {
		uc.logger.Errorw("failed to create violation", "task_id", t.ID(), "error", err)
		return dto.ProcessedTask{TaskID: t.ID(), Status: "failed", Error: err.Error()}
	}

	// Violation insert, penalty accrual and the flag commit or roll back as
	// one unit, so a partial failure can never leave a penalty half-applied.
	txErr := uc.txMgr.RunInTransaction(taskCtx, func(txCtx context.Context) error {
		if err := uc.violationRepo.Save(txCtx, v); err != nil {
			return err
		}
		if err := uc.profileRepo.AccruePenalty(txCtx, agent.ID(), uc.penaltyAmount); err != nil {
			return fmt.Errorf("failed to accrue penalty: %w", err)
		}
		return uc.markBluePaged(txCtx, t)
	})
	if txErr != nil {
		if errors.IsDuplicateError(txErr) {
			// The violation exists, so an earlier run committed the full
			// pipeline for this task. Only the query flag needs repair.
			uc.logger.Warnw("violation already recorded for task, flagging only", "task_id", t.ID())
			if markErr := uc.markBluePaged(taskCtx, t); markErr != nil {
				return dto.ProcessedTask{TaskID: t.ID(), Status: "failed", Error: markErr.Error()}
			}
			return dto.ProcessedTask{TaskID: t.ID(), Status: "already_processed"}
		}
		uc.logger.Errorw("failed to commit penalty pipeline", "task_id", t.ID(), "agent_id", agent.ID(), "error", txErr)
		return dto.ProcessedTask{TaskID: t.ID(), Status: "failed", Error: txErr.Error()}
	}

	// Email is best effort; the penalty stands either way.
	if err := uc.notifier.SendBluePage(taskCtx, agent.Email(), agent.FullName(), t.Title(), pdfURL, uc.penaltyAmount); err != nil {
		uc.logger.Warnw("failed to send blue page email", "task_id", t.ID(), "agent_id", agent.ID(), "error", err)
	}

	uc.logger.Infow("blue page issued",
		"task_id", t.ID(),
		"agent_id", agent.ID(),
		"violation_id", v.ID(),
		"penalty", uc.penaltyAmount,
	)
	return dto.ProcessedTask{
		TaskID:      t.ID(),
		Status:      "processed",
		ViolationID: v.ID(),
		PDFURL:      pdfURL,
	}
}

func (uc *ProcessDeadlinesUseCase) markBluePaged(ctx context.Context, t *task.Task) error {
	if err := t.MarkBluePaged(); err != nil {
		return fmt.Errorf("failed to mark task blue-paged: %w", err)
	}
	if err := uc.taskRepo.Update(ctx, t); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}
