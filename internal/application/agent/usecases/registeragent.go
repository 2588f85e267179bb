package usecases

import (
	"context"
	"fmt"
	"time"

	"opsportal/internal/domain/profile"
	"opsportal/internal/shared/authorization"
	"opsportal/internal/shared/errors"
	"opsportal/internal/shared/logger"
)

type RegisterAgentCommand struct {
	Email      string
	FullName   string
	EmployeeID string
	PhotoURL   string
}

type RegisterAgentResult struct {
	ProfileID uint
	Status    string
	CreatedAt time.Time
}

// RegisterAgentUseCase creates a pending profile for a new field agent.
// The profile stays pending until an admin approves it.
type RegisterAgentUseCase struct {
	profileRepo profile.ProfileRepository
	logger      logger.Interface
}

func NewRegisterAgentUseCase(
	profileRepo profile.ProfileRepository,
	logger logger.Interface,
) *RegisterAgentUseCase {
	return &RegisterAgentUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *RegisterAgentUseCase) Execute(ctx context.Context, cmd RegisterAgentCommand) (*RegisterAgentResult, error) {
	uc.logger.Infow("executing register agent use case", "email", cmd.Email)

	p, err := profile.NewProfile(cmd.Email, cmd.FullName, cmd.EmployeeID, cmd.PhotoURL, authorization.RoleEmployee)
	if err != nil {
		uc.logger.Errorw("failed to create profile", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		if errors.IsDuplicateError(err) {
			uc.logger.Warnw("profile already exists", "email", cmd.Email)
			return nil, errors.NewConflictError("an account with this email already exists")
		}
		uc.logger.Errorw("failed to save profile", "error", err)
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	uc.logger.Infow("agent registered", "profile_id", p.ID(), "email", p.Email())
	return &RegisterAgentResult{
		ProfileID: p.ID(),
		Status:    p.Status().String(),
		CreatedAt: p.CreatedAt(),
	}, nil
}
