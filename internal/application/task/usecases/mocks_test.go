package usecases

import (
	"context"
	"time"

	"opsportal/internal/domain/profile"
	"opsportal/internal/domain/task"
	"opsportal/internal/shared/logger"
)

type mockTaskRepository struct {
	SaveFunc                func(ctx context.Context, t *task.Task) error
	UpdateFunc              func(ctx context.Context, t *task.Task) error
	DeleteFunc              func(ctx context.Context, taskID uint) error
	GetByIDFunc             func(ctx context.Context, taskID uint) (*task.Task, error)
	ListFunc                func(ctx context.Context, filters task.TaskFilter) ([]*task.Task, int64, error)
	GetOverdueUnflaggedFunc func(ctx context.Context, now time.Time) ([]*task.Task, error)
	GetUnansweredSinceFunc  func(ctx context.Context, cutoff time.Time) ([]*task.Task, error)
}

func (m *mockTaskRepository) Save(ctx context.Context, t *task.Task) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, taskID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, taskID)
	}
	return nil
}

func (m *mockTaskRepository) GetByID(ctx context.Context, taskID uint) (*task.Task, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *mockTaskRepository) List(ctx context.Context, filters task.TaskFilter) ([]*task.Task, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *mockTaskRepository) GetOverdueUnflagged(ctx context.Context, now time.Time) ([]*task.Task, error) {
	if m.GetOverdueUnflaggedFunc != nil {
		return m.GetOverdueUnflaggedFunc(ctx, now)
	}
	return nil, nil
}

func (m *mockTaskRepository) GetUnansweredSince(ctx context.Context, cutoff time.Time) ([]*task.Task, error) {
	if m.GetUnansweredSinceFunc != nil {
		return m.GetUnansweredSinceFunc(ctx, cutoff)
	}
	return nil, nil
}

type mockProfileRepository struct {
	SaveFunc          func(ctx context.Context, p *profile.Profile) error
	UpdateFunc        func(ctx context.Context, p *profile.Profile) error
	DeleteFunc        func(ctx context.Context, profileID uint) error
	GetByIDFunc       func(ctx context.Context, profileID uint) (*profile.Profile, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*profile.Profile, error)
	ListFunc          func(ctx context.Context, filters profile.ProfileFilter) ([]*profile.Profile, int64, error)
	AccruePenaltyFunc func(ctx context.Context, profileID uint, amount int64) error
}

func (m *mockProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileRepository) Delete(ctx context.Context, profileID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, profileID)
	}
	return nil
}

func (m *mockProfileRepository) GetByID(ctx context.Context, profileID uint) (*profile.Profile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, profileID)
	}
	return nil, nil
}

func (m *mockProfileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockProfileRepository) List(ctx context.Context, filters profile.ProfileFilter) ([]*profile.Profile, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *mockProfileRepository) AccruePenalty(ctx context.Context, profileID uint, amount int64) error {
	if m.AccruePenaltyFunc != nil {
		return m.AccruePenaltyFunc(ctx, profileID, amount)
	}
	return nil
}

type mockAssignmentNotifier struct {
	SendTaskAssignedFunc func(ctx context.Context, email, name, title string, deadline time.Time) error
}

func (m *mockAssignmentNotifier) SendTaskAssigned(ctx context.Context, email, name, title string, deadline time.Time) error {
	if m.SendTaskAssignedFunc != nil {
		return m.SendTaskAssignedFunc(ctx, email, name, title, deadline)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any) {}
func (m *mockLogger) Warn(msg string, args ...any) {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) Fatal(msg string, args ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
