package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsportal/internal/domain/profile"
	"opsportal/internal/domain/task"
	taskvo "opsportal/internal/domain/task/value_objects"
	"opsportal/internal/shared/biztime"
)

const testGrace = 2 * time.Hour

func unansweredTask(t *testing.T, id uint, assigneeID uint, lastAdminCommentAt time.Time, lastEmployeeReplyAt, lastWarnedAt *time.Time) *task.Task {
	t.Helper()

	now := biztime.NowUTC()
	tk, err := task.ReconstructTask(
		id,
		"Pending client escalation",
		"",
		assigneeID,
		1,
		now.Add(72*time.Hour),
		taskvo.StatusInProgress,
		false,
		&lastAdminCommentAt, lastEmployeeReplyAt, lastWarnedAt,
		nil,
		now.Add(-48*time.Hour), now.Add(-48*time.Hour),
	)
	require.NoError(t, err)
	return tk
}

func newResponsivenessUseCase(
	taskRepo *mockTaskRepository,
	profileRepo *mockProfileRepository,
	notifier *mockComplianceNotifier,
	locker *mockRunLocker,
) *CheckResponsivenessUseCase {
	return NewCheckResponsivenessUseCase(taskRepo, profileRepo, notifier, locker, testGrace, &mockLogger{})
}

func TestCheckResponsivenessUseCase_Execute_WarnsUnansweredTask(t *testing.T) {
	now := biztime.NowUTC()
	tk := unansweredTask(t, 10, 7, now.Add(-3*time.Hour), nil, nil)
	agent := activeAgent(t, 7)

	var warnedEmail string
	var taskUpdated bool

	taskRepo := &mockTaskRepository{
		GetUnansweredSinceFunc: func(ctx context.Context, cutoff time.Time) ([]*task.Task, error) {
			return []*task.Task{tk}, nil
		},
		UpdateFunc: func(ctx context.Context, updated *task.Task) error {
			taskUpdated = true
			return nil
		},
	}
	profileRepo := &mockProfileRepository{
		GetByIDFunc: func(ctx context.Context, profileID uint) (*profile.Profile, error) {
			return agent, nil
		},
	}
	notifier := &mockComplianceNotifier{
		SendResponsivenessWarningFunc: func(ctx context.Context, email, name, taskTitle string) error {
			warnedEmail = email
			return nil
		},
	}

	uc := newResponsivenessUseCase(taskRepo, profileRepo, notifier, &mockRunLocker{})
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.False(t, result.Skipped)
	require.Len(t, result.Flagged, 1)
	assert.Equal(t, uint(10), result.Flagged[0].TaskID)
	assert.Equal(t, agent.FullName(), result.Flagged[0].AgentName)
	assert.Empty(t, result.Flagged[0].Error)

	assert.Equal(t, agent.Email(), warnedEmail)
	assert.True(t, taskUpdated)
	require.NotNil(t, tk.LastWarnedAt())
	assert.False(t, tk.LastWarnedAt().Before(*tk.LastAdminCommentAt()))
}

func TestCheckResponsivenessUseCase_Execute_SkipsWithinGrace(t *testing.T) {
	now := biztime.NowUTC()
	// Exactly at the grace boundary; the window must be strictly exceeded.
	tk := unansweredTask(t, 20, 7, now.Add(-testGrace), nil, nil)

	var warned bool

	taskRepo := &mockTaskRepository{
		GetUnansweredSinceFunc: func(ctx context.Context, cutoff time.Time) ([]*task.Task, error) {
			return []*task.Task{tk}, nil
		},
	}
	notifier := &mockComplianceNotifier{
		SendResponsivenessWarningFunc: func(ctx context.Context, email, name, taskTitle string) error {
			warned = true
			return nil
		},
	}

	uc := newResponsivenessUseCase(taskRepo, &mockProfileRepository{}, notifier, &mockRunLocker{})
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result.Flagged)
	assert.False(t, warned)
}

func TestCheckResponsivenessUseCase_Execute_WarnsOncePerComment(t *testing.T) {
	now := biztime.NowUTC()
	commentAt := now.Add(-5 * time.Hour)
	warnedAt := now.Add(-2 * time.Hour)
	tk := unansweredTask(t, 30, 7, commentAt, nil, &warnedAt)

	var warned bool

	taskRepo := &mockTaskRepository{
		GetUnansweredSinceFunc: func(ctx context.Context, cutoff time.Time) ([]*task.Task, error) {
			return []*task.Task{tk}, nil
		},
	}
	notifier := &mockComplianceNotifier{
		SendResponsivenessWarningFunc: func(ctx context.Context, email, name, taskTitle string) error {
			warned = true
			return nil
		},
	}

	uc := newResponsivenessUseCase(taskRepo, &mockProfileRepository{}, notifier, &mockRunLocker{})
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result.Flagged)
	assert.False(t, warned)
}

func TestCheckResponsivenessUseCase_Execute_NewerCommentRearmsWarning(t *testing.T) {
	now := biztime.NowUTC()
	commentAt := now.Add(-3 * time.Hour)
	warnedAt := now.Add(-6 * time.Hour)
	tk := unansweredTask(t, 40, 7, commentAt, nil, &warnedAt)
	agent := activeAgent(t, 7)

	var warned bool

	taskRepo := &mockTaskRepository{
		GetUnansweredSinceFunc: func(ctx context.Context, cutoff time.Time) ([]*task.Task, error) {
			return []*task.Task{tk}, nil
		},
	}
	profileRepo := &mockProfileRepository{
		GetByIDFunc: func(ctx context.Context, profileID uint) (*profile.Profile, error) {
			return agent, nil
		},
	}
	notifier := &mockComplianceNotifier{
		SendResponsivenessWarningFunc: func(ctx context.Context, email, name, taskTitle string) error {
			warned = true
			return nil
		},
	}

	uc := newResponsivenessUseCase(taskRepo, profileRepo, notifier, &mockRunLocker{})
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Flagged, 1)
	assert.True(t, warned)
}

func TestCheckResponsivenessUseCase_Execute_SkipsAnsweredTask(t *testing.T) {
	now := biztime.NowUTC()
	commentAt := now.Add(-4 * time.Hour)
	repliedAt := now.Add(-1 * time.Hour)
	tk := unansweredTask(t, 50, 7, commentAt, &repliedAt, nil)

	var warned bool

	taskRepo := &mockTaskRepository{
		GetUnansweredSinceFunc: func(ctx context.Context, cutoff time.Time) ([]*task.Task, error) {
			return []*task.Task{tk}, nil
		},
	}
	notifier := &mockComplianceNotifier{
		SendResponsivenessWarningFunc: func(ctx context.Context, email, name, taskTitle string) error {
			warned = true
			return nil
		},
	}

	uc := newResponsivenessUseCase(taskRepo, &mockProfileRepository{}, notifier, &mockRunLocker{})
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result.Flagged)
	assert.False(t, warned)
}

func TestCheckResponsivenessUseCase_Execute_SkipsWhenLockHeld(t *testing.T) {
	queried := false

	taskRepo := &mockTaskRepository{
		GetUnansweredSinceFunc: func(ctx context.Context, cutoff time.Time) ([]*task.Task, error) {
			queried = true
			return nil, nil
		},
	}
	locker := &mockRunLocker{
		AcquireFunc: func(ctx context.Context, key string, ttl time.Duration) (bool, error) {
			assert.Equal(t, ResponsivenessRunLockKey, key)
			return false, nil
		},
	}

	uc := newResponsivenessUseCase(taskRepo, &mockProfileRepository{}, &mockComplianceNotifier{}, locker)
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Empty(t, result.Flagged)
	assert.False(t, queried)
}

func TestCheckResponsivenessUseCase_Execute_NotifierFailureLeavesWarningArmed(t *testing.T) {
	now := biztime.NowUTC()
	tk := unansweredTask(t, 60, 7, now.Add(-3*time.Hour), nil, nil)
	agent := activeAgent(t, 7)

	taskRepo := &mockTaskRepository{
		GetUnansweredSinceFunc: func(ctx context.Context, cutoff time.Time) ([]*task.Task, error) {
			return []*task.Task{tk}, nil
		},
	}
	profileRepo := &mockProfileRepository{
		GetByIDFunc: func(ctx context.Context, profileID uint) (*profile.Profile, error) {
			return agent, nil
		},
	}
	notifier := &mockComplianceNotifier{
		SendResponsivenessWarningFunc: func(ctx context.Context, email, name, taskTitle string) error {
			return errors.New("smtp unreachable")
		},
	}

	uc := newResponsivenessUseCase(taskRepo, profileRepo, notifier, &mockRunLocker{})
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Flagged, 1)
	assert.Contains(t, result.Flagged[0].Error, "smtp unreachable")

	// The next run must retry the warning.
	assert.Nil(t, tk.LastWarnedAt())
	assert.True(t, tk.WarningArmed())
}
