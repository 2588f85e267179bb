package task

import (
	"context"
	"time"

	vo "opsportal/internal/domain/task/value_objects"
)

type TaskRepository interface {
	Save(ctx context.Context, task *Task) error
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, taskID uint) error
	GetByID(ctx context.Context, taskID uint) (*Task, error)
	List(ctx context.Context, filters TaskFilter) ([]*Task, int64, error)

	// GetOverdueUnflagged returns unfinished tasks whose deadline passed
	// before now and that have not been blue-paged yet.
	GetOverdueUnflagged(ctx context.Context, now time.Time) ([]*Task, error)

	// GetUnansweredSince returns unfinished tasks whose last admin comment
	// was posted at or before cutoff and has no later employee reply.
	GetUnansweredSince(ctx context.Context, cutoff time.Time) ([]*Task, error)
}

type TaskFilter struct {
	Status     *vo.TaskStatus
	AssigneeID *uint
	BluePaged  *bool
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByTaskID(ctx context.Context, taskID uint) ([]*Comment, error)
}
