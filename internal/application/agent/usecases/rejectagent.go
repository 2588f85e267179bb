package usecases

import (
	"context"
	"fmt"

	"opsportal/internal/domain/profile"
	"opsportal/internal/shared/errors"
	"opsportal/internal/shared/logger"
)

type RejectAgentCommand struct {
	ProfileID  uint
	RejectedBy uint
}

// RejectAgentUseCase removes a pending registration. Rejection deletes the
// profile outright; there is no rejected state to resurrect from.
type RejectAgentUseCase struct {
	profileRepo profile.ProfileRepository
	logger      logger.Interface
}

func NewRejectAgentUseCase(
	profileRepo profile.ProfileRepository,
	logger logger.Interface,
) *RejectAgentUseCase {
	return &RejectAgentUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *RejectAgentUseCase) Execute(ctx context.Context, cmd RejectAgentCommand) error {
	uc.logger.Infow("executing reject agent use case", "profile_id", cmd.ProfileID, "rejected_by", cmd.RejectedBy)

	p, err := uc.profileRepo.GetByID(ctx, cmd.ProfileID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "profile_id", cmd.ProfileID, "error", err)
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if !p.Status().IsPending() {
		uc.logger.Warnw("cannot reject non-pending profile", "profile_id", cmd.ProfileID, "status", p.Status())
		return errors.NewConflictError(fmt.Sprintf("only pending registrations can be rejected, current status: %s", p.Status()))
	}

	if err := uc.profileRepo.Delete(ctx, cmd.ProfileID); err != nil {
		uc.logger.Errorw("failed to delete profile", "profile_id", cmd.ProfileID, "error", err)
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	uc.logger.Infow("agent registration rejected", "profile_id", cmd.ProfileID)
	return nil
}
