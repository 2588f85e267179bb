package usecases

import (
	"context"
	"time"

	"opsportal/internal/application/task/dto"
)

type CreateTaskExecutor interface {
	Execute(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type GetTaskExecutor interface {
	Execute(ctx context.Context, query GetTaskQuery) (*dto.TaskDTO, error)
}

type ListTasksExecutor interface {
	Execute(ctx context.Context, query ListTasksQuery) (*ListTasksResult, error)
}

// AssignmentNotifier delivers the "new task assigned" email. Delivery
// failures are logged but never fail the task creation.
type AssignmentNotifier interface {
	SendTaskAssigned(ctx context.Context, email, name, title string, deadline time.Time) error
}
