package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsportal/internal/domain/task"
	vo "opsportal/internal/domain/task/value_objects"
	"opsportal/internal/shared/authorization"
	"opsportal/internal/shared/biztime"
)

func testTask(t *testing.T, id uint, assigneeID uint, status vo.TaskStatus) *task.Task {
	t.Helper()

	now := biztime.NowUTC()
	tk, err := task.ReconstructTask(
		id, "Prepare audit file", "", assigneeID, 1,
		now.Add(72*time.Hour), status, false,
		nil, nil, nil,
		nil, now, now,
	)
	require.NoError(t, err)
	return tk
}

func TestChangeStatusUseCase_Execute(t *testing.T) {
	tests := []struct {
		name          string
		requestedBy   uint
		requestorRole authorization.UserRole
		fromStatus    vo.TaskStatus
		newStatus     string
		wantErr       bool
		wantStatus    string
	}{
		{
			name:          "assignee moves own task",
			requestedBy:   7,
			requestorRole: authorization.RoleEmployee,
			fromStatus:    vo.StatusTodo,
			newStatus:     "in_progress",
			wantStatus:    "in_progress",
		},
		{
			name:          "admin moves any task",
			requestedBy:   99,
			requestorRole: authorization.RoleAdmin,
			fromStatus:    vo.StatusInProgress,
			newStatus:     "done",
			wantStatus:    "done",
		},
		{
			name:          "other employee denied",
			requestedBy:   8,
			requestorRole: authorization.RoleEmployee,
			fromStatus:    vo.StatusTodo,
			newStatus:     "in_progress",
			wantErr:       true,
		},
		{
			name:          "invalid status string",
			requestedBy:   7,
			requestorRole: authorization.RoleEmployee,
			fromStatus:    vo.StatusTodo,
			newStatus:     "archived",
			wantErr:       true,
		},
		{
			name:          "invalid transition",
			requestedBy:   7,
			requestorRole: authorization.RoleEmployee,
			fromStatus:    vo.StatusDone,
			newStatus:     "todo",
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := testTask(t, 42, 7, tt.fromStatus)

			updated := false
			taskRepo := &mockTaskRepository{
				GetByIDFunc: func(ctx context.Context, taskID uint) (*task.Task, error) {
					return tk, nil
				},
				UpdateFunc: func(ctx context.Context, t *task.Task) error {
					updated = true
					return nil
				},
			}

			uc := NewChangeStatusUseCase(taskRepo, &mockLogger{})
			result, err := uc.Execute(context.Background(), ChangeStatusCommand{
				TaskID:        42,
				RequestedBy:   tt.requestedBy,
				RequestorRole: tt.requestorRole,
				NewStatus:     tt.newStatus,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.False(t, updated)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.True(t, updated)
		})
	}
}
