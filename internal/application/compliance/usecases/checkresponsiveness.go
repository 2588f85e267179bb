package usecases

import (
	"context"
	"fmt"
	"time"

	"opsportal/internal/application/compliance/dto"
	"opsportal/internal/domain/profile"
	"opsportal/internal/domain/task"
	"opsportal/internal/shared/biztime"
	"opsportal/internal/shared/logger"
)

// CheckResponsivenessUseCase flags tasks where the last admin comment has
// gone unanswered past the grace window and warns the assignee. A warning
// is sent once per admin comment; a newer admin comment re-arms it.
type CheckResponsivenessUseCase struct {
	taskRepo    task.TaskRepository
	profileRepo profile.ProfileRepository
	notifier    ComplianceNotifier
	locker      RunLocker
	grace       time.Duration
	lockTTL     time.Duration
	logger      logger.Interface
}

func NewCheckResponsivenessUseCase(
	taskRepo task.TaskRepository,
	profileRepo profile.ProfileRepository,
	notifier ComplianceNotifier,
	locker RunLocker,
	grace time.Duration,
	logger logger.Interface,
) *CheckResponsivenessUseCase {
	return &CheckResponsivenessUseCase{
		taskRepo:    taskRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
		locker:      locker,
		grace:       grace,
		lockTTL:     5 * time.Minute,
		logger:      logger,
	}
}

func (uc *CheckResponsivenessUseCase) Execute(ctx context.Context) (*dto.CheckResponsivenessResult, error) {
	now := biztime.NowUTC()
	result := &dto.CheckResponsivenessResult{
		StartedAt: now,
		Flagged:   []dto.FlaggedTask{},
	}

	acquired, err := uc.locker.Acquire(ctx, ResponsivenessRunLockKey, uc.lockTTL)
	if err != nil {
		uc.logger.Errorw("failed to acquire responsiveness run lock", "error", err)
		return nil, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !acquired {
		uc.logger.Infow("responsiveness run already in progress, skipping")
		result.Skipped = true
		return result, nil
	}
	defer func() {
		if err := uc.locker.Release(ctx, ResponsivenessRunLockKey); err != nil {
			uc.logger.Warnw("failed to release responsiveness run lock", "error", err)
		}
	}()

	cutoff := now.Add(-uc.grace)
	tasks, err := uc.taskRepo.GetUnansweredSince(ctx, cutoff)
	if err != nil {
		uc.logger.Errorw("failed to query unanswered tasks", "error", err)
		return nil, fmt.Errorf("failed to query unanswered tasks: %w", err)
	}

	uc.logger.Infow("responsiveness run started", "candidates", len(tasks))

	for _, t := range tasks {
		// Re-check in memory: the SQL candidate query is coarser than the
		// grace boundary and does not know about earlier warnings.
		if !t.HasUnansweredAdminComment(now, uc.grace) || !t.WarningArmed() {
			continue
		}

		agent, err := uc.profileRepo.GetByID(ctx, t.AssigneeID())
		if err != nil {
			uc.logger.Errorw("failed to load agent for unanswered task", "task_id", t.ID(), "assignee_id", t.AssigneeID(), "error", err)
			result.Flagged = append(result.Flagged, dto.FlaggedTask{TaskID: t.ID(), TaskTitle: t.Title(), Error: err.Error()})
			continue
		}

		if err := uc.notifier.SendResponsivenessWarning(ctx, agent.Email(), agent.FullName(), t.Title()); err != nil {
			uc.logger.Errorw("failed to send responsiveness warning", "task_id", t.ID(), "agent_id", agent.ID(), "error", err)
			result.Flagged = append(result.Flagged, dto.FlaggedTask{TaskID: t.ID(), TaskTitle: t.Title(), AgentName: agent.FullName(), Error: err.Error()})
			continue
		}

		t.MarkWarned(now)
		if err := uc.taskRepo.Update(ctx, t); err != nil {
			uc.logger.Errorw("failed to record warning timestamp", "task_id", t.ID(), "error", err)
		}

		uc.logger.Infow("responsiveness warning sent", "task_id", t.ID(), "agent_id", agent.ID())
		result.Flagged = append(result.Flagged, dto.FlaggedTask{
			TaskID:    t.ID(),
			TaskTitle: t.Title(),
			AgentName: agent.FullName(),
		})
	}

	uc.logger.Infow("responsiveness run finished", "flagged", len(result.Flagged))
	return result, nil
}
