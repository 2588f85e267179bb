package usecases

import (
	"context"
	"fmt"

	"opsportal/internal/application/agent/dto"
	"opsportal/internal/domain/profile"
	vo "opsportal/internal/domain/profile/value_objects"
	"opsportal/internal/shared/logger"
)

type ListAgentsQuery struct {
	Status   string
	Page     int
	PageSize int
}

type ListAgentsResult struct {
	Agents []dto.ProfileDTO
	Total  int64
}

type ListAgentsUseCase struct {
	profileRepo profile.ProfileRepository
	logger      logger.Interface
}

func NewListAgentsUseCase(
	profileRepo profile.ProfileRepository,
	logger logger.Interface,
) *ListAgentsUseCase {
	return &ListAgentsUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *ListAgentsUseCase) Execute(ctx context.Context, query ListAgentsQuery) (*ListAgentsResult, error) {
	filters := profile.ProfileFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewProfileStatus(query.Status)
		if err != nil {
			return nil, err
		}
		filters.Status = &status
	}

	profiles, total, err := uc.profileRepo.List(ctx, filters)
	if err != nil {
		uc.logger.Errorw("failed to list profiles", "error", err)
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	agentDTOs := make([]dto.ProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		agentDTOs = append(agentDTOs, dto.ToProfileDTO(p))
	}

	return &ListAgentsResult{
		Agents: agentDTOs,
		Total:  total,
	}, nil
}
