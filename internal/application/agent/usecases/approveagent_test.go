package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsportal/internal/domain/profile"
	vo "opsportal/internal/domain/profile/value_objects"
)

func TestApproveAgentUseCase_Execute_Success(t *testing.T) {
	p := testAgent(t, 7, vo.StatusPending)

	var updated bool
	var approvedEmail string

	profileRepo := &mockProfileRepository{
		GetByIDFunc: func(ctx context.Context, profileID uint) (*profile.Profile, error) {
			return p, nil
		},
		UpdateFunc: func(ctx context.Context, p *profile.Profile) error {
			updated = true
			return nil
		},
	}
	notifier := &mockAgentNotifier{
		SendAccessApprovedFunc: func(ctx context.Context, email, name string) error {
			approvedEmail = email
			return nil
		},
	}

	uc := NewApproveAgentUseCase(profileRepo, notifier, &mockLogger{})
	result, err := uc.Execute(context.Background(), ApproveAgentCommand{ProfileID: 7, ApprovedBy: 1})

	require.NoError(t, err)
	assert.Equal(t, "active", result.Status)
	assert.True(t, updated)
	assert.Equal(t, p.Email(), approvedEmail)
	assert.Equal(t, vo.StatusActive, p.Status())
}

func TestApproveAgentUseCase_Execute_AlreadyActive(t *testing.T) {
	p := testAgent(t, 7, vo.StatusActive)

	updated := false
	profileRepo := &mockProfileRepository{
		GetByIDFunc: func(ctx context.Context, profileID uint) (*profile.Profile, error) {
			return p, nil
		},
		UpdateFunc: func(ctx context.Context, p *profile.Profile) error {
			updated = true
			return nil
		},
	}

	uc := NewApproveAgentUseCase(profileRepo, &mockAgentNotifier{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ApproveAgentCommand{ProfileID: 7, ApprovedBy: 1})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.False(t, updated)
}

func TestApproveAgentUseCase_Execute_NotifierFailureStillApproves(t *testing.T) {
	p := testAgent(t, 7, vo.StatusPending)

	profileRepo := &mockProfileRepository{
		GetByIDFunc: func(ctx context.Context, profileID uint) (*profile.Profile, error) {
			return p, nil
		},
	}
	notifier := &mockAgentNotifier{
		SendAccessApprovedFunc: func(ctx context.Context, email, name string) error {
			return errors.New("smtp unreachable")
		},
	}

	uc := NewApproveAgentUseCase(profileRepo, notifier, &mockLogger{})
	result, err := uc.Execute(context.Background(), ApproveAgentCommand{ProfileID: 7, ApprovedBy: 1})

	require.NoError(t, err)
	assert.Equal(t, "active", result.Status)
}
