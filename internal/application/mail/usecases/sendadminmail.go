package usecases

import (
	"context"
	"fmt"

	"opsportal/internal/domain/profile"
	"opsportal/internal/shared/errors"
	"opsportal/internal/shared/logger"
	"opsportal/internal/shared/services/markdown"
)

type SendAdminMailCommand struct {
	ProfileID uint
	SentBy    uint
	Subject   string
	Body      string
}

type SendAdminMailResult struct {
	ProfileID uint
	Subject   string
}

// MailSender delivers a composed HTML email to one recipient.
type MailSender interface {
	SendHTML(ctx context.Context, email, name, subject, htmlBody string) error
}

type SendAdminMailExecutor interface {
	Execute(ctx context.Context, cmd SendAdminMailCommand) (*SendAdminMailResult, error)
}

// SendAdminMailUseCase lets an admin send ad-hoc mail to an agent. The body
// is written in markdown and sanitized before delivery so composed mail can
// never smuggle active HTML.
type SendAdminMailUseCase struct {
	profileRepo profile.ProfileRepository
	renderer    markdown.MarkdownService
	sender      MailSender
	logger      logger.Interface
}

func NewSendAdminMailUseCase(
	profileRepo profile.ProfileRepository,
	renderer markdown.MarkdownService,
	sender MailSender,
	logger logger.Interface,
) *SendAdminMailUseCase {
	return &SendAdminMailUseCase{
		profileRepo: profileRepo,
		renderer:    renderer,
		sender:      sender,
		logger:      logger,
	}
}

func (uc *SendAdminMailUseCase) Execute(ctx context.Context, cmd SendAdminMailCommand) (*SendAdminMailResult, error) {
	uc.logger.Infow("executing send admin mail use case", "profile_id", cmd.ProfileID, "sent_by", cmd.SentBy)

	if len(cmd.Subject) == 0 {
		return nil, errors.NewValidationError("subject is required")
	}
	if len(cmd.Body) == 0 {
		return nil, errors.NewValidationError("body is required")
	}

	p, err := uc.profileRepo.GetByID(ctx, cmd.ProfileID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "profile_id", cmd.ProfileID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	htmlBody, err := uc.renderer.ToHTMLSanitized(cmd.Body)
	if err != nil {
		uc.logger.Errorw("failed to render mail body", "error", err)
		return nil, fmt.Errorf("failed to render mail body: %w", err)
	}

	if err := uc.sender.SendHTML(ctx, p.Email(), p.FullName(), cmd.Subject, htmlBody); err != nil {
		uc.logger.Errorw("failed to send admin mail", "profile_id", cmd.ProfileID, "error", err)
		return nil, fmt.Errorf("failed to send mail: %w", err)
	}

	uc.logger.Infow("admin mail sent", "profile_id", cmd.ProfileID, "subject", cmd.Subject)
	return &SendAdminMailResult{
		ProfileID: p.ID(),
		Subject:   cmd.Subject,
	}, nil
}
