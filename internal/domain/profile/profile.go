package profile

import (
	"fmt"
	"strings"
	"time"

	vo "opsportal/internal/domain/profile/value_objects"
	"opsportal/internal/shared/authorization"
	"opsportal/internal/shared/biztime"
)

// Profile is an agent's account record. New registrations start in the
// pending state and must be approved by an admin before the agent can
// receive tasks.
type Profile struct {
	id           uint
	email        string
	fullName     string
	employeeID   string
	photoURL     string
	role         authorization.UserRole
	status       vo.ProfileStatus
	statusReason string
	totalPenalty int64
	createdAt    time.Time
	updatedAt    time.Time
}

func NewProfile(
	email string,
	fullName string,
	employeeID string,
	photoURL string,
	role authorization.UserRole,
) (*Profile, error) {
	if len(email) == 0 || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if len(fullName) == 0 {
		return nil, fmt.Errorf("full name is required")
	}
	if len(fullName) > 100 {
		return nil, fmt.Errorf("full name exceeds maximum length of 100 characters")
	}
	if len(employeeID) == 0 {
		return nil, fmt.Errorf("employee ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &Profile{
		email:      strings.ToLower(email),
		fullName:   fullName,
		employeeID: employeeID,
		photoURL:   photoURL,
		role:       role,
		status:     vo.StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructProfile(
	id uint,
	email string,
	fullName string,
	employeeID string,
	photoURL string,
	role authorization.UserRole,
	status vo.ProfileStatus,
	statusReason string,
	totalPenalty int64,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Profile{
		id:           id,
		email:        email,
		fullName:     fullName,
		employeeID:   employeeID,
		photoURL:     photoURL,
		role:         role,
		status:       status,
		statusReason: statusReason,
		totalPenalty: totalPenalty,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Profile) ID() uint {
	return p.id
}

func (p *Profile) Email() string {
	return p.email
}

func (p *Profile) FullName() string {
	return p.fullName
}

func (p *Profile) EmployeeID() string {
	return p.employeeID
}

func (p *Profile) PhotoURL() string {
	return p.photoURL
}

func (p *Profile) Role() authorization.UserRole {
	return p.role
}

func (p *Profile) Status() vo.ProfileStatus {
	return p.status
}

func (p *Profile) StatusReason() string {
	return p.statusReason
}

func (p *Profile) TotalPenalty() int64 {
	return p.totalPenalty
}

func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Profile) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Profile) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Profile) IsAdmin() bool {
	return p.role.IsAdmin()
}

func (p *Profile) IsActive() bool {
	return p.status.IsActive()
}

// Approve activates a pending profile.
func (p *Profile) Approve() error {
	if !p.status.IsPending() {
		return fmt.Errorf("only pending profiles can be approved, current status: %s", p.status)
	}

	p.status = vo.StatusActive
	p.statusReason = ""
	p.updatedAt = biztime.NowUTC()

	return nil
}

// Hold puts an active profile on hold. A reason is required because it is
// shown to the agent in the notification email.
func (p *Profile) Hold(reason string) error {
	if len(reason) == 0 {
		return fmt.Errorf("hold reason is required")
	}
	if !p.status.CanTransitionTo(vo.StatusOnHold) {
		return fmt.Errorf("cannot put profile on hold from status %s", p.status)
	}

	p.status = vo.StatusOnHold
	p.statusReason = reason
	p.updatedAt = biztime.NowUTC()

	return nil
}

// Suspend suspends a profile. A reason is required.
func (p *Profile) Suspend(reason string) error {
	if len(reason) == 0 {
		return fmt.Errorf("suspension reason is required")
	}
	if !p.status.CanTransitionTo(vo.StatusSuspended) {
		return fmt.Errorf("cannot suspend profile from status %s", p.status)
	}

	p.status = vo.StatusSuspended
	p.statusReason = reason
	p.updatedAt = biztime.NowUTC()

	return nil
}

// Resume reactivates a profile that is on hold or suspended.
func (p *Profile) Resume() error {
	if !p.status.IsOnHold() && !p.status.IsSuspended() {
		return fmt.Errorf("only on-hold or suspended profiles can be resumed, current status: %s", p.status)
	}

	p.status = vo.StatusActive
	p.statusReason = ""
	p.updatedAt = biztime.NowUTC()

	return nil
}

// AddPenalty increases the profile's accumulated penalty. Persistence uses
// an atomic SQL increment; this keeps the in-memory aggregate consistent
// with what was written.
func (p *Profile) AddPenalty(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("penalty amount must be positive")
	}

	p.totalPenalty += amount
	p.updatedAt = biztime.NowUTC()

	return nil
}
