package usecases

import (
	"context"
	"fmt"
	"time"

	"opsportal/internal/domain/profile"
	"opsportal/internal/domain/task"
	"opsportal/internal/shared/errors"
	"opsportal/internal/shared/logger"
)

type CreateTaskCommand struct {
	Title       string
	Description string
	AssigneeID  uint
	CreatedBy   uint
	Deadline    time.Time
	Attachments []string
}

type CreateTaskResult struct {
	TaskID    uint
	CreatedAt time.Time
}

type CreateTaskUseCase struct {
	taskRepo    task.TaskRepository
	profileRepo profile.ProfileRepository
	notifier    AssignmentNotifier
	logger      logger.Interface
}

func NewCreateTaskUseCase(
	taskRepo task.TaskRepository,
	profileRepo profile.ProfileRepository,
	notifier AssignmentNotifier,
	logger logger.Interface,
) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo:    taskRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *CreateTaskUseCase) Execute(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	uc.logger.Infow("executing create task use case", "assignee_id", cmd.AssigneeID, "created_by", cmd.CreatedBy)

	assignee, err := uc.profileRepo.GetByID(ctx, cmd.AssigneeID)
	if err != nil {
		uc.logger.Errorw("failed to load assignee profile", "assignee_id", cmd.AssigneeID, "error", err)
		return nil, fmt.Errorf("failed to load assignee profile: %w", err)
	}

	if !assignee.IsActive() {
		uc.logger.Warnw("cannot assign task to inactive agent", "assignee_id", cmd.AssigneeID, "status", assignee.Status())
		return nil, errors.NewValidationError("tasks can only be assigned to active agents")
	}

	t, err := task.NewTask(cmd.Title, cmd.Description, cmd.AssigneeID, cmd.CreatedBy, cmd.Deadline, cmd.Attachments)
	if err != nil {
		uc.logger.Errorw("failed to create task", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.taskRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save task", "error", err)
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	// Assignment email is best effort; the task exists either way.
	if err := uc.notifier.SendTaskAssigned(ctx, assignee.Email(), assignee.FullName(), t.Title(), t.Deadline()); err != nil {
		uc.logger.Warnw("failed to send assignment email", "task_id", t.ID(), "assignee_id", cmd.AssigneeID, "error", err)
	}

	uc.logger.Infow("task created successfully", "task_id", t.ID(), "assignee_id", cmd.AssigneeID)
	return &CreateTaskResult{
		TaskID:    t.ID(),
		CreatedAt: t.CreatedAt(),
	}, nil
}
