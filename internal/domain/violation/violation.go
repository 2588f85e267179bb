package violation

import (
	"fmt"
	"time"

	"opsportal/internal/shared/biztime"
)

type ViolationType string

const (
	// TypeDeadlineMissed is issued when a task's deadline passes without
	// completion. It is the only violation type the engine currently issues.
	TypeDeadlineMissed ViolationType = "deadline_missed"
)

func (vt ViolationType) String() string {
	return string(vt)
}

func (vt ViolationType) IsValid() bool {
	return vt == TypeDeadlineMissed
}

// Violation is an append-only penalty record. Violations are never updated
// or deleted once issued; the penalty ledger is derived from them.
type Violation struct {
	id            uint
	userID        uint
	taskID        uint
	violationType ViolationType
	penaltyAmount int64
	pdfURL        string
	createdAt     time.Time
}

func NewViolation(
	userID uint,
	taskID uint,
	violationType ViolationType,
	penaltyAmount int64,
	pdfURL string,
) (*Violation, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if taskID == 0 {
		return nil, fmt.Errorf("task ID is required")
	}
	if !violationType.IsValid() {
		return nil, fmt.Errorf("invalid violation type: %s", violationType)
	}
	if penaltyAmount <= 0 {
		return nil, fmt.Errorf("penalty amount must be positive")
	}

	return &Violation{
		userID:        userID,
		taskID:        taskID,
		violationType: violationType,
		penaltyAmount: penaltyAmount,
		pdfURL:        pdfURL,
		createdAt:     biztime.NowUTC(),
	}, nil
}

func ReconstructViolation(
	id uint,
	userID uint,
	taskID uint,
	violationType ViolationType,
	penaltyAmount int64,
	pdfURL string,
	createdAt time.Time,
) (*Violation, error) {
	if id == 0 {
		return nil, fmt.Errorf("violation ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if taskID == 0 {
		return nil, fmt.Errorf("task ID is required")
	}

	return &Violation{
		id:            id,
		userID:        userID,
		taskID:        taskID,
		violationType: violationType,
		penaltyAmount: penaltyAmount,
		pdfURL:        pdfURL,
		createdAt:     createdAt,
	}, nil
}

func (v *Violation) ID() uint {
	return v.id
}

func (v *Violation) UserID() uint {
	return v.userID
}

func (v *Violation) TaskID() uint {
	return v.taskID
}

func (v *Violation) Type() ViolationType {
	return v.violationType
}

func (v *Violation) PenaltyAmount() int64 {
	return v.penaltyAmount
}

func (v *Violation) PDFURL() string {
	return v.pdfURL
}

func (v *Violation) CreatedAt() time.Time {
	return v.createdAt
}

func (v *Violation) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("violation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("violation ID cannot be zero")
	}
	v.id = id
	return nil
}
