package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsportal/internal/domain/profile"
	vo "opsportal/internal/domain/profile/value_objects"
)

func TestPenaltyOverviewUseCase_Execute(t *testing.T) {
	agents := []*profile.Profile{
		testAgent(t, 7, vo.StatusActive),
		testAgent(t, 8, vo.StatusActive),
	}
	perAgent := map[uint]int64{7: 4000, 8: 2000}

	profileRepo := &mockProfileRepository{
		ListFunc: func(ctx context.Context, filters profile.ProfileFilter) ([]*profile.Profile, int64, error) {
			require.NotNil(t, filters.Role)
			assert.Equal(t, "employee", *filters.Role)
			return agents, int64(len(agents)), nil
		},
	}
	violationRepo := &mockViolationRepository{
		SumPenaltiesByUserFunc: func(ctx context.Context, userID uint) (int64, error) {
			return perAgent[userID], nil
		},
		SumPenaltiesFunc: func(ctx context.Context) (int64, error) {
			return 6000, nil
		},
	}

	uc := NewPenaltyOverviewUseCase(profileRepo, violationRepo, &mockLogger{})
	overview, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, overview.Agents, 2)
	assert.Equal(t, int64(4000), overview.Agents[0].TotalPenalty)
	assert.Equal(t, int64(2000), overview.Agents[1].TotalPenalty)
	assert.Equal(t, int64(6000), overview.GrandTotal)
}

func TestPenaltyOverviewUseCase_Execute_NoAgents(t *testing.T) {
	profileRepo := &mockProfileRepository{
		ListFunc: func(ctx context.Context, filters profile.ProfileFilter) ([]*profile.Profile, int64, error) {
			return nil, 0, nil
		},
	}

	uc := NewPenaltyOverviewUseCase(profileRepo, &mockViolationRepository{}, &mockLogger{})
	overview, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Empty(t, overview.Agents)
	assert.Equal(t, int64(0), overview.GrandTotal)
}
