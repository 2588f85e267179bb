package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"opsportal/internal/domain/violation"
	"opsportal/internal/infrastructure/persistence/mappers"
	"opsportal/internal/infrastructure/persistence/models"
	db "opsportal/internal/shared/db"
	apperrors "opsportal/internal/shared/errors"
)

type ViolationRepository struct {
	db     *gorm.DB
	mapper mappers.ViolationMapper
}

func NewViolationRepository(db *gorm.DB) *ViolationRepository {
	return &ViolationRepository{
		db:     db,
		mapper: mappers.NewViolationMapper(),
	}
}

func (r *ViolationRepository) Save(ctx context.Context, v *violation.Violation) error {
	model := r.mapper.ToModel(v)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save violation: %w", err)
	}

	if err := v.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ViolationRepository) GetByID(ctx context.Context, id uint) (*violation.Violation, error) {
	var model models.ViolationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("violation not found")
		}
		return nil, fmt.Errorf("failed to find violation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ViolationRepository) List(
	ctx context.Context,
	filter violation.ViolationFilter,
) ([]*violation.Violation, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ViolationModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.TaskID != nil {
		query = query.Where("task_id = ?", *filter.TaskID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count violations: %w", err)
	}

	query = query.Order("created_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var violationModels []models.ViolationModel
	if err := query.Find(&violationModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list violations: %w", err)
	}

	violations := make([]*violation.Violation, len(violationModels))
	for i, model := range violationModels {
		v, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		violations[i] = v
	}

	return violations, total, nil
}

func (r *ViolationRepository) SumPenalties(ctx context.Context) (int64, error) {
	var total int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ViolationModel{}).
		Select("COALESCE(SUM(penalty_amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum penalties: %w", err)
	}

	return total, nil
}

func (r *ViolationRepository) SumPenaltiesByUser(ctx context.Context, userID uint) (int64, error) {
	var total int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ViolationModel{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(penalty_amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum penalties for user: %w", err)
	}

	return total, nil
}
