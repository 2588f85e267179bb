package usecases

import (
	"context"
	"fmt"
	"time"

	"opsportal/internal/application/task/dto"
	"opsportal/internal/domain/task"
	vo "opsportal/internal/domain/task/value_objects"
	"opsportal/internal/shared/authorization"
	"opsportal/internal/shared/logger"
)

type ListTasksQuery struct {
	RequestedBy   uint
	RequestorRole authorization.UserRole
	Status        string
	AssigneeID    *uint
	Page          int
	PageSize      int
}

type ListTasksResult struct {
	Tasks []dto.TaskDTO
	Total int64
}

type ListTasksUseCase struct {
	taskRepo   task.TaskRepository
	replyGrace time.Duration
	logger     logger.Interface
}

func NewListTasksUseCase(
	taskRepo task.TaskRepository,
	replyGrace time.Duration,
	logger logger.Interface,
) *ListTasksUseCase {
	return &ListTasksUseCase{
		taskRepo:   taskRepo,
		replyGrace: replyGrace,
		logger:     logger,
	}
}

func (uc *ListTasksUseCase) Execute(ctx context.Context, query ListTasksQuery) (*ListTasksResult, error) {
	filters := task.TaskFilter{
		AssigneeID: query.AssigneeID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewTaskStatus(query.Status)
		if err != nil {
			return nil, err
		}
		filters.Status = &status
	}

	// Employees only ever see their own board.
	if !query.RequestorRole.IsAdmin() {
		requestor := query.RequestedBy
		filters.AssigneeID = &requestor
	}

	tasks, total, err := uc.taskRepo.List(ctx, filters)
	if err != nil {
		uc.logger.Errorw("failed to list tasks", "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	taskDTOs := make([]dto.TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		taskDTOs = append(taskDTOs, dto.ToTaskDTO(t, uc.replyGrace))
	}

	return &ListTasksResult{
		Tasks: taskDTOs,
		Total: total,
	}, nil
}
