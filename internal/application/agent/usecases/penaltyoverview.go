package usecases

import (
	"context"
	"fmt"

	"opsportal/internal/application/agent/dto"
	"opsportal/internal/domain/profile"
	"opsportal/internal/domain/violation"
	"opsportal/internal/shared/logger"
)

// PenaltyOverviewUseCase builds the admin penalty dashboard. Totals are
// folded from the violation ledger at read time rather than read from the
// cached counter on the profile, so the ledger stays the source of truth.
type PenaltyOverviewUseCase struct {
	profileRepo   profile.ProfileRepository
	violationRepo violation.ViolationRepository
	logger        logger.Interface
}

func NewPenaltyOverviewUseCase(
	profileRepo profile.ProfileRepository,
	violationRepo violation.ViolationRepository,
	logger logger.Interface,
) *PenaltyOverviewUseCase {
	return &PenaltyOverviewUseCase{
		profileRepo:   profileRepo,
		violationRepo: violationRepo,
		logger:        logger,
	}
}

func (uc *PenaltyOverviewUseCase) Execute(ctx context.Context) (*dto.PenaltyOverviewDTO, error) {
	employeeRole := "employee"
	profiles, _, err := uc.profileRepo.List(ctx, profile.ProfileFilter{Role: &employeeRole})
	if err != nil {
		uc.logger.Errorw("failed to list agents", "error", err)
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	overview := &dto.PenaltyOverviewDTO{
		Agents: make([]dto.AgentPenaltyDTO, 0, len(profiles)),
	}

	for _, p := range profiles {
		total, err := uc.violationRepo.SumPenaltiesByUser(ctx, p.ID())
		if err != nil {
			uc.logger.Errorw("failed to sum penalties for agent", "profile_id", p.ID(), "error", err)
			return nil, fmt.Errorf("failed to sum penalties for agent %d: %w", p.ID(), err)
		}
		overview.Agents = append(overview.Agents, dto.AgentPenaltyDTO{
			UserID:       p.ID(),
			FullName:     p.FullName(),
			EmployeeID:   p.EmployeeID(),
			Email:        p.Email(),
			TotalPenalty: total,
		})
	}

	grandTotal, err := uc.violationRepo.SumPenalties(ctx)
	if err != nil {
		uc.logger.Errorw("failed to sum total penalties", "error", err)
		return nil, fmt.Errorf("failed to sum total penalties: %w", err)
	}
	overview.GrandTotal = grandTotal

	return overview, nil
}
