package usecases

import (
	"context"
	"fmt"

	"opsportal/internal/domain/profile"
	"opsportal/internal/shared/errors"
	"opsportal/internal/shared/logger"
)

type StatusAction string

const (
	ActionHold    StatusAction = "hold"
	ActionSuspend StatusAction = "suspend"
	ActionResume  StatusAction = "resume"
)

type ChangeAgentStatusCommand struct {
	ProfileID uint
	ChangedBy uint
	Action    StatusAction
	Reason    string
}

type ChangeAgentStatusResult struct {
	ProfileID uint
	Status    string
}

type ChangeAgentStatusUseCase struct {
	profileRepo profile.ProfileRepository
	notifier    AgentNotifier
	logger      logger.Interface
}

func NewChangeAgentStatusUseCase(
	profileRepo profile.ProfileRepository,
	notifier AgentNotifier,
	logger logger.Interface,
) *ChangeAgentStatusUseCase {
	return &ChangeAgentStatusUseCase{
		profileRepo: profileRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *ChangeAgentStatusUseCase) Execute(ctx context.Context, cmd ChangeAgentStatusCommand) (*ChangeAgentStatusResult, error) {
	uc.logger.Infow("executing change agent status use case", "profile_id", cmd.ProfileID, "action", cmd.Action)

	p, err := uc.profileRepo.GetByID(ctx, cmd.ProfileID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "profile_id", cmd.ProfileID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	switch cmd.Action {
	case ActionHold:
		err = p.Hold(cmd.Reason)
	case ActionSuspend:
		err = p.Suspend(cmd.Reason)
	case ActionResume:
		err = p.Resume()
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unknown status action: %s", cmd.Action))
	}
	if err != nil {
		uc.logger.Warnw("status action rejected", "profile_id", cmd.ProfileID, "action", cmd.Action, "error", err)
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update profile", "profile_id", cmd.ProfileID, "error", err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if err := uc.notifier.SendAccountStatusChanged(ctx, p.Email(), p.FullName(), p.Status().String(), cmd.Reason); err != nil {
		uc.logger.Warnw("failed to send status change email", "profile_id", cmd.ProfileID, "error", err)
	}

	uc.logger.Infow("agent status changed", "profile_id", p.ID(), "status", p.Status())
	return &ChangeAgentStatusResult{
		ProfileID: p.ID(),
		Status:    p.Status().String(),
	}, nil
}
