package usecases

import (
	"context"

	"opsportal/internal/domain/profile"
	"opsportal/internal/domain/violation"
	"opsportal/internal/shared/logger"
)

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

type mockAgentNotifier struct {
	SendAccessApprovedFunc       func(ctx context.Context, email, name string) error
	SendAccountStatusChangedFunc func(ctx context.Context, email, name, status, reason string) error
}

func (m *mockAgentNotifier) SendAccessApproved(ctx context.Context, email, name string) error {
	if m.SendAccessApprovedFunc != nil {
		return m.SendAccessApprovedFunc(ctx, email, name)
	}
	return nil
}

func (m *mockAgentNotifier) SendAccountStatusChanged(ctx context.Context, email, name, status, reason string) error {
	if m.SendAccountStatusChangedFunc != nil {
		return m.SendAccountStatusChangedFunc(ctx, email, name, status, reason)
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
