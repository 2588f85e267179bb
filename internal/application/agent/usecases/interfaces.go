package usecases

import (
	"context"

	"opsportal/internal/application/agent/dto"
)

type RegisterAgentExecutor interface {
	Execute(ctx context.Context, cmd RegisterAgentCommand) (*RegisterAgentResult, error)
}

type ApproveAgentExecutor interface {
	Execute(ctx context.Context, cmd ApproveAgentCommand) (*ApproveAgentResult, error)
}

type RejectAgentExecutor interface {
	Execute(ctx context.Context, cmd RejectAgentCommand) error
}

type ChangeAgentStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeAgentStatusCommand) (*ChangeAgentStatusResult, error)
}

type ListAgentsExecutor interface {
	Execute(ctx context.Context, query ListAgentsQuery) (*ListAgentsResult, error)
}

type PenaltyOverviewExecutor interface {
	Execute(ctx context.Context) (*dto.PenaltyOverviewDTO, error)
}

// AgentNotifier delivers account lifecycle emails.
type AgentNotifier interface {
	SendAccessApproved(ctx context.Context, email, name string) error
	SendAccountStatusChanged(ctx context.Context, email, name, status, reason string) error
}
