package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsportal/internal/domain/profile"
	vo "opsportal/internal/domain/profile/value_objects"
)

func TestChangeAgentStatusUseCase_Execute(t *testing.T) {
	tests := []struct {
		name       string
		fromStatus vo.ProfileStatus
		action     StatusAction
		reason     string
		wantErr    bool
		wantStatus string
	}{
		{"hold active agent", vo.StatusActive, ActionHold, "pending verification", false, "on_hold"},
		{"suspend active agent", vo.StatusActive, ActionSuspend, "policy violation", false, "suspended"},
		{"resume held agent", vo.StatusOnHold, ActionResume, "", false, "active"},
		{"resume suspended agent", vo.StatusSuspended, ActionResume, "", false, "active"},
		{"hold without reason", vo.StatusActive, ActionHold, "", true, ""},
		{"suspend without reason", vo.StatusActive, ActionSuspend, "", true, ""},
		{"resume active agent", vo.StatusActive, ActionResume, "", true, ""},
		{"hold pending agent", vo.StatusPending, ActionHold, "some reason", true, ""},
		{"unknown action", vo.StatusActive, StatusAction("terminate"), "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testAgent(t, 7, tt.fromStatus)

			var updated bool
			var notifiedStatus string
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
				SendAccountStatusChangedFunc: func(ctx context.Context, email, name, status, reason string) error {
					notifiedStatus = status
					assert.Equal(t, tt.reason, reason)
					return nil
				},
			}

			uc := NewChangeAgentStatusUseCase(profileRepo, notifier, &mockLogger{})
			result, err := uc.Execute(context.Background(), ChangeAgentStatusCommand{
				ProfileID: 7,
				ChangedBy: 1,
				Action:    tt.action,
				Reason:    tt.reason,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.False(t, updated)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantStatus, notifiedStatus)
			assert.True(t, updated)
		})
	}
}
