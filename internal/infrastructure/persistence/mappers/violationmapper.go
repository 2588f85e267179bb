package mappers

import (
	"time"

	"opsportal/internal/domain/violation"
	"opsportal/internal/infrastructure/persistence/models"
)

// ViolationMapper handles the conversion between Violation domain entities and persistence models.
type ViolationMapper interface {
	ToModel(v *violation.Violation) *models.ViolationModel
	ToDomain(model *models.ViolationModel) (*violation.Violation, error)
}

type ViolationMapperImpl struct{}

func NewViolationMapper() ViolationMapper {
	return &ViolationMapperImpl{}
}

func (m *ViolationMapperImpl) ToModel(v *violation.Violation) *models.ViolationModel {
	return &models.ViolationModel{
		ID:            v.ID(),
		UserID:        v.UserID(),
		TaskID:        v.TaskID(),
		ViolationType: v.Type().String(),
		PenaltyAmount: v.PenaltyAmount(),
		PDFURL:        v.PDFURL(),
		CreatedAt:     v.CreatedAt().UnixMilli(),
	}
}

func (m *ViolationMapperImpl) ToDomain(model *models.ViolationModel) (*violation.Violation, error) {
	return violation.ReconstructViolation(
		model.ID,
		model.UserID,
		model.TaskID,
		violation.ViolationType(model.ViolationType),
		model.PenaltyAmount,
		model.PDFURL,
		violationConvertMillisToTime(model.CreatedAt),
	)
}

func violationConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
