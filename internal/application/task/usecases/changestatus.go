package usecases

import (
	"context"
	"fmt"
	"time"

	"opsportal/internal/domain/task"
	vo "opsportal/internal/domain/task/value_objects"
	"opsportal/internal/shared/authorization"
	"opsportal/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TaskID        uint
	RequestedBy   uint
	RequestorRole authorization.UserRole
	NewStatus     string
}

type ChangeStatusResult struct {
	TaskID    uint
	Status    string
	UpdatedAt time.Time
}

type ChangeStatusUseCase struct {
	taskRepo task.TaskRepository
	logger   logger.Interface
}

func NewChangeStatusUseCase(
	taskRepo task.TaskRepository,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "task_id", cmd.TaskID, "new_status", cmd.NewStatus)

	newStatus, err := vo.NewTaskStatus(cmd.NewStatus)
	if err != nil {
		return nil, err
	}

	t, err := uc.taskRepo.GetByID(ctx, cmd.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to load task", "task_id", cmd.TaskID, "error", err)
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	if !cmd.RequestorRole.IsAdmin() && t.AssigneeID() != cmd.RequestedBy {
		uc.logger.Warnw("user cannot change task status", "task_id", cmd.TaskID, "user_id", cmd.RequestedBy)
		return nil, fmt.Errorf("permission denied: only the assignee or an admin can move a task")
	}

	if err := t.ChangeStatus(newStatus); err != nil {
		uc.logger.Warnw("invalid status transition", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update task", "task_id", cmd.TaskID, "error", err)
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	uc.logger.Infow("task status changed", "task_id", cmd.TaskID, "status", t.Status())
	return &ChangeStatusResult{
		TaskID:    t.ID(),
		Status:    t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
