package profile

import (
	"context"

	vo "opsportal/internal/domain/profile/value_objects"
)

type ProfileRepository interface {
	Save(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, profileID uint) error
	GetByID(ctx context.Context, profileID uint) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	List(ctx context.Context, filters ProfileFilter) ([]*Profile, int64, error)

	// AccruePenalty adds amount to the profile's total penalty using an
	// atomic SQL increment, so concurrent accruals cannot lose updates.
	AccruePenalty(ctx context.Context, profileID uint, amount int64) error
}

type ProfileFilter struct {
	Status    *vo.ProfileStatus
	Role      *string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
