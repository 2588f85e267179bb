package violation

import "context"

type ViolationRepository interface {
	Save(ctx context.Context, violation *Violation) error
	GetByID(ctx context.Context, violationID uint) (*Violation, error)
	List(ctx context.Context, filters ViolationFilter) ([]*Violation, int64, error)

	// SumPenalties returns the total penalty amount across all violations.
	SumPenalties(ctx context.Context) (int64, error)

	// SumPenaltiesByUser returns the total penalty amount for one agent.
	SumPenaltiesByUser(ctx context.Context, userID uint) (int64, error)
}

type ViolationFilter struct {
	UserID   *uint
	TaskID   *uint
	Page     int
	PageSize int
}
