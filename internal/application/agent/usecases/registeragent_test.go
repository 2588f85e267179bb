package usecases

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsportal/internal/domain/profile"
	vo "opsportal/internal/domain/profile/value_objects"
	"opsportal/internal/shared/authorization"
	"opsportal/internal/shared/biztime"
	apperrors "opsportal/internal/shared/errors"
)

func testAgent(t *testing.T, id uint, status vo.ProfileStatus) *profile.Profile {
	t.Helper()

	now := biztime.NowUTC()
	p, err := profile.ReconstructProfile(
		id,
		fmt.Sprintf("agent%d@ibbe.in", id),
		fmt.Sprintf("Agent %d", id),
		fmt.Sprintf("EMP-%03d", id),
		"",
		authorization.RoleEmployee,
		status,
		"",
		0,
		now, now,
	)
	require.NoError(t, err)
	return p
}

func TestRegisterAgentUseCase_Execute_Success(t *testing.T) {
	var saved *profile.Profile

	profileRepo := &mockProfileRepository{
		SaveFunc: func(ctx context.Context, p *profile.Profile) error {
			saved = p
			return p.SetID(7)
		},
	}

	uc := NewRegisterAgentUseCase(profileRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), RegisterAgentCommand{
		Email:      "New.Agent@IBBE.in",
		FullName:   "New Agent",
		EmployeeID: "EMP-100",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.ProfileID)
	assert.Equal(t, "pending", result.Status)

	require.NotNil(t, saved)
	assert.Equal(t, "new.agent@ibbe.in", saved.Email())
	assert.Equal(t, vo.StatusPending, saved.Status())
}

func TestRegisterAgentUseCase_Execute_DuplicateEmail(t *testing.T) {
	profileRepo := &mockProfileRepository{
		SaveFunc: func(ctx context.Context, p *profile.Profile) error {
			return errors.New("Error 1062 (23000): Duplicate entry 'agent@ibbe.in' for key 'idx_profiles_email'")
		},
	}

	uc := NewRegisterAgentUseCase(profileRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), RegisterAgentCommand{
		Email:      "agent@ibbe.in",
		FullName:   "Agent",
		EmployeeID: "EMP-001",
	})

	require.Error(t, err)
	assert.Nil(t, result)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}

func TestRegisterAgentUseCase_Execute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		cmd  RegisterAgentCommand
	}{
		{"missing email", RegisterAgentCommand{FullName: "Agent", EmployeeID: "EMP-001"}},
		{"missing full name", RegisterAgentCommand{Email: "agent@ibbe.in", EmployeeID: "EMP-001"}},
		{"missing employee ID", RegisterAgentCommand{Email: "agent@ibbe.in", FullName: "Agent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := false
			profileRepo := &mockProfileRepository{
				SaveFunc: func(ctx context.Context, p *profile.Profile) error {
					saved = true
					return nil
				},
			}

			uc := NewRegisterAgentUseCase(profileRepo, &mockLogger{})
			_, err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.False(t, saved)
		})
	}
}
