package usecases

import (
	"context"
	"fmt"

	"opsportal/internal/domain/profile"
	"opsportal/internal/shared/errors"
	"opsportal/internal/shared/logger"
)

type ApproveAgentCommand struct {
	ProfileID  uint
	ApprovedBy uint
}

type ApproveAgentResult struct {
	ProfileID uint
	Status    string
}

type ApproveAgentUseCase struct {
	profileRepo profile.ProfileRepository
	notifier    AgentNotifier
	logger      logger.Interface
}

func NewApproveAgentUseCase(
	profileRepo profile.ProfileRepository,
	notifier AgentNotifier,
	logger logger.Interface,
) *ApproveAgentUseCase {
	return &ApproveAgentUseCase{
		profileRepo: profileRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *ApproveAgentUseCase) Execute(ctx context.Context, cmd ApproveAgentCommand) (*ApproveAgentResult, error) {
	uc.logger.Infow("executing approve agent use case", "profile_id", cmd.ProfileID, "approved_by", cmd.ApprovedBy)

	p, err := uc.profileRepo.GetByID(ctx, cmd.ProfileID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "profile_id", cmd.ProfileID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if err := p.Approve(); err != nil {
		uc.logger.Warnw("cannot approve profile", "profile_id", cmd.ProfileID, "error", err)
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update profile", "profile_id", cmd.ProfileID, "error", err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if err := uc.notifier.SendAccessApproved(ctx, p.Email(), p.FullName()); err != nil {
		uc.logger.Warnw("failed to send approval email", "profile_id", cmd.ProfileID, "error", err)
	}

	uc.logger.Infow("agent approved", "profile_id", p.ID())
	return &ApproveAgentResult{
		ProfileID: p.ID(),
		Status:    p.Status().String(),
	}, nil
}
