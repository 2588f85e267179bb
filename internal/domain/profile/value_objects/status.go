package valueobjects

import "fmt"

type ProfileStatus string

const (
	StatusPending   ProfileStatus = "pending"
	StatusActive    ProfileStatus = "active"
	StatusOnHold    ProfileStatus = "on_hold"
	StatusSuspended ProfileStatus = "suspended"
)

var validProfileStatuses = map[ProfileStatus]bool{
	StatusPending:   true,
	StatusActive:    true,
	StatusOnHold:    true,
	StatusSuspended: true,
}

var profileStatusTransitions = map[ProfileStatus][]ProfileStatus{
	StatusPending: {
		StatusActive,
	},
	StatusActive: {
		StatusOnHold,
		StatusSuspended,
	},
	StatusOnHold: {
		StatusActive,
		StatusSuspended,
	},
	StatusSuspended: {
		StatusActive,
	},
}

func (ps ProfileStatus) String() string {
	return string(ps)
}

func (ps ProfileStatus) IsValid() bool {
	return validProfileStatuses[ps]
}

func (ps ProfileStatus) CanTransitionTo(newStatus ProfileStatus) bool {
	allowedTransitions, ok := profileStatusTransitions[ps]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ps ProfileStatus) IsPending() bool {
	return ps == StatusPending
}

func (ps ProfileStatus) IsActive() bool {
	return ps == StatusActive
}

func (ps ProfileStatus) IsOnHold() bool {
	return ps == StatusOnHold
}

func (ps ProfileStatus) IsSuspended() bool {
	return ps == StatusSuspended
}

func NewProfileStatus(s string) (ProfileStatus, error) {
	ps := ProfileStatus(s)
	if !ps.IsValid() {
		return "", fmt.Errorf("invalid profile status: %s", s)
	}
	return ps, nil
}
