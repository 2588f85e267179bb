package mappers

import (
	"fmt"
	"time"

	"opsportal/internal/domain/profile"
	vo "opsportal/internal/domain/profile/value_objects"
	"opsportal/internal/infrastructure/persistence/models"
	"opsportal/internal/shared/authorization"
)

// ProfileMapper handles the conversion between Profile domain entities and persistence models.
type ProfileMapper interface {
	ToModel(p *profile.Profile) *models.ProfileModel
	ToDomain(model *models.ProfileModel) (*profile.Profile, error)
}

type ProfileMapperImpl struct{}

func NewProfileMapper() ProfileMapper {
	return &ProfileMapperImpl{}
}

func (m *ProfileMapperImpl) ToModel(p *profile.Profile) *models.ProfileModel {
	return &models.ProfileModel{
		ID:           p.ID(),
		Email:        p.Email(),
		FullName:     p.FullName(),
		EmployeeID:   p.EmployeeID(),
		PhotoURL:     p.PhotoURL(),
		Role:         p.Role().String(),
		Status:       p.Status().String(),
		StatusReason: p.StatusReason(),
		TotalPenalty: p.TotalPenalty(),
		CreatedAt:    p.CreatedAt().UnixMilli(),
		UpdatedAt:    p.UpdatedAt().UnixMilli(),
	}
}

func (m *ProfileMapperImpl) ToDomain(model *models.ProfileModel) (*profile.Profile, error) {
	status, err := vo.NewProfileStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid profile status (id=%d): %w", model.ID, err)
	}

	return profile.ReconstructProfile(
		model.ID,
		model.Email,
		model.FullName,
		model.EmployeeID,
		model.PhotoURL,
		authorization.ParseUserRole(model.Role),
		status,
		model.StatusReason,
		model.TotalPenalty,
		profileConvertMillisToTime(model.CreatedAt),
		profileConvertMillisToTime(model.UpdatedAt),
	)
}

func profileConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
