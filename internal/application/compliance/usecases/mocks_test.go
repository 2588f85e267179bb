package usecases

import (
	"context"
	"time"

	"opsportal/internal/domain/profile"
	"opsportal/internal/domain/task"
	"opsportal/internal/domain/violation"
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

type mockViolationRepository struct {
	SaveFunc               func(ctx context.Context, v *violation.Violation) error
	GetByIDFunc            func(ctx context.Context, violationID uint) (*violation.Violation, error)
	ListFunc               func(ctx context.Context, filters violation.ViolationFilter) ([]*violation.Violation, int64, error)
	SumPenaltiesFunc       func(ctx context.Context) (int64, error)
	SumPenaltiesByUserFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockViolationRepository) Save(ctx context.Context, v *violation.Violation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, v)
	}
	return nil
}

func (m *mockViolationRepository) GetByID(ctx context.Context, violationID uint) (*violation.Violation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, violationID)
	}
	return nil, nil
}

func (m *mockViolationRepository) List(ctx context.Context, filters violation.ViolationFilter) ([]*violation.Violation, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *mockViolationRepository) SumPenalties(ctx context.Context) (int64, error) {
	if m.SumPenaltiesFunc != nil {
		return m.SumPenaltiesFunc(ctx)
	}
	return 0, nil
}

func (m *mockViolationRepository) SumPenaltiesByUser(ctx context.Context, userID uint) (int64, error) {
	if m.SumPenaltiesByUserFunc != nil {
		return m.SumPenaltiesByUserFunc(ctx, userID)
	}
	return 0, nil
}

type mockBluePageGenerator struct {
	GenerateFunc func(ctx context.Context, data BluePageData) (string, error)
}

func (m *mockBluePageGenerator) Generate(ctx context.Context, data BluePageData) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, data)
	}
	return "https://example.com/records/violation.pdf", nil
}

type mockComplianceNotifier struct {
	SendBluePageFunc              func(ctx context.Context, email, name, taskTitle, pdfURL string, penalty int64) error
	SendResponsivenessWarningFunc func(ctx context.Context, email, name, taskTitle string) error
}

func (m *mockComplianceNotifier) SendBluePage(ctx context.Context, email, name, taskTitle, pdfURL string, penalty int64) error {
	if m.SendBluePageFunc != nil {
		return m.SendBluePageFunc(ctx, email, name, taskTitle, pdfURL, penalty)
	}
	return nil
}

func (m *mockComplianceNotifier) SendResponsivenessWarning(ctx context.Context, email, name, taskTitle string) error {
	if m.SendResponsivenessWarningFunc != nil {
		return m.SendResponsivenessWarningFunc(ctx, email, name, taskTitle)
	}
	return nil
}

type mockRunLocker struct {
	AcquireFunc func(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseFunc func(ctx context.Context, key string) error
}

func (m *mockRunLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if m.AcquireFunc != nil {
		return m.AcquireFunc(ctx, key, ttl)
	}
	return true, nil
}

func (m *mockRunLocker) Release(ctx context.Context, key string) error {
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc(ctx, key)
	}
	return nil
}

type mockTransactionRunner struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
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
