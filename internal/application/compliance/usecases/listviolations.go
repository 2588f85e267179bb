package usecases

import (
	"context"
	"fmt"

	"opsportal/internal/application/compliance/dto"
	"opsportal/internal/domain/profile"
	"opsportal/internal/domain/violation"
	"opsportal/internal/shared/logger"
)

type ListViolationsQuery struct {
	UserID   *uint
	TaskID   *uint
	Page     int
	PageSize int
}

type ListViolationsResult struct {
	Violations []dto.ViolationDTO
	Total      int64
}

// ListViolationsUseCase backs the admin compliance log: violations joined
// with the agent identity they were issued against.
type ListViolationsUseCase struct {
	violationRepo violation.ViolationRepository
	profileRepo   profile.ProfileRepository
	logger        logger.Interface
}

func NewListViolationsUseCase(
	violationRepo violation.ViolationRepository,
	profileRepo profile.ProfileRepository,
	logger logger.Interface,
) *ListViolationsUseCase {
	return &ListViolationsUseCase{
		violationRepo: violationRepo,
		profileRepo:   profileRepo,
		logger:        logger,
	}
}

func (uc *ListViolationsUseCase) Execute(ctx context.Context, query ListViolationsQuery) (*ListViolationsResult, error) {
	violations, total, err := uc.violationRepo.List(ctx, violation.ViolationFilter{
		UserID:   query.UserID,
		TaskID:   query.TaskID,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list violations", "error", err)
		return nil, fmt.Errorf("failed to list violations: %w", err)
	}

	// Agents repeat across violations; resolve each profile once.
	profiles := make(map[uint]*profile.Profile)
	violationDTOs := make([]dto.ViolationDTO, 0, len(violations))
	for _, v := range violations {
		d := dto.ViolationDTO{
			ID:            v.ID(),
			UserID:        v.UserID(),
			TaskID:        v.TaskID(),
			ViolationType: v.Type().String(),
			PenaltyAmount: v.PenaltyAmount(),
			PDFURL:        v.PDFURL(),
			CreatedAt:     v.CreatedAt(),
		}

		agent, ok := profiles[v.UserID()]
		if !ok {
			agent, err = uc.profileRepo.GetByID(ctx, v.UserID())
			if err != nil {
				uc.logger.Warnw("failed to resolve agent for violation", "violation_id", v.ID(), "user_id", v.UserID(), "error", err)
			} else {
				profiles[v.UserID()] = agent
			}
		}
		if agent != nil {
			d.AgentName = agent.FullName()
			d.AgentEmail = agent.Email()
		}

		violationDTOs = append(violationDTOs, d)
	}

	return &ListViolationsResult{
		Violations: violationDTOs,
		Total:      total,
	}, nil
}
