package usecases

import (
	"context"
	"time"

	"opsportal/internal/application/compliance/dto"
)

const (
	// DeadlineRunLockKey guards the blue-page run against overlapping
	// executions across schedule ticks and instances.
	DeadlineRunLockKey = "compliance:blue-page:run"

	// ResponsivenessRunLockKey guards the responsiveness check run.
	ResponsivenessRunLockKey = "compliance:responsiveness:run"
)

type ProcessDeadlinesExecutor interface {
	Execute(ctx context.Context) (*dto.ProcessDeadlinesResult, error)
}

type CheckResponsivenessExecutor interface {
	Execute(ctx context.Context) (*dto.CheckResponsivenessResult, error)
}

type ListViolationsExecutor interface {
	Execute(ctx context.Context, query ListViolationsQuery) (*ListViolationsResult, error)
}

// BluePageData carries everything the violation record document shows.
type BluePageData struct {
	TaskID          uint
	TaskTitle       string
	AgentName       string
	AgentEmployeeID string
	Deadline        time.Time
	IssuedAt        time.Time
	PenaltyAmount   int64
}

// BluePageGenerator renders the official violation record document and
// returns the public URL it is served under.
type BluePageGenerator interface {
	Generate(ctx context.Context, data BluePageData) (string, error)
}

// ComplianceNotifier delivers compliance emails to agents.
type ComplianceNotifier interface {
	SendBluePage(ctx context.Context, email, name, taskTitle, pdfURL string, penalty int64) error
	SendResponsivenessWarning(ctx context.Context, email, name, taskTitle string) error
}

// RunLocker serializes job runs. Acquire returns false when another run
// holds the lock.
type RunLocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// TransactionRunner runs a function inside a database transaction.
// Satisfied by the shared db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
