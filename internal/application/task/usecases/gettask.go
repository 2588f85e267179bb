package usecases

import (
	"context"
	"fmt"
	"time"

	"opsportal/internal/application/task/dto"
	"opsportal/internal/domain/task"
	"opsportal/internal/shared/authorization"
	"opsportal/internal/shared/logger"
)

type GetTaskQuery struct {
	TaskID        uint
	RequestedBy   uint
	RequestorRole authorization.UserRole
}

type GetTaskUseCase struct {
	taskRepo    task.TaskRepository
	commentRepo task.CommentRepository
	replyGrace  time.Duration
	logger      logger.Interface
}

func NewGetTaskUseCase(
	taskRepo task.TaskRepository,
	commentRepo task.CommentRepository,
	replyGrace time.Duration,
	logger logger.Interface,
) *GetTaskUseCase {
	return &GetTaskUseCase{
		taskRepo:    taskRepo,
		commentRepo: commentRepo,
		replyGrace:  replyGrace,
		logger:      logger,
	}
}

func (uc *GetTaskUseCase) Execute(ctx context.Context, query GetTaskQuery) (*dto.TaskDTO, error) {
	t, err := uc.taskRepo.GetByID(ctx, query.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to load task", "task_id", query.TaskID, "error", err)
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	if !query.RequestorRole.IsAdmin() && t.AssigneeID() != query.RequestedBy {
		uc.logger.Warnw("user cannot view task", "task_id", query.TaskID, "user_id", query.RequestedBy)
		return nil, fmt.Errorf("permission denied: cannot view task")
	}

	comments, err := uc.commentRepo.GetByTaskID(ctx, query.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to load comments", "task_id", query.TaskID, "error", err)
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	taskDTO := dto.ToTaskDTO(t, uc.replyGrace)
	taskDTO.Comments = dto.ToCommentDTOs(comments)

	return &taskDTO, nil
}
