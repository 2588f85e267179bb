package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"opsportal/internal/domain/profile"
	"opsportal/internal/infrastructure/persistence/mappers"
	"opsportal/internal/infrastructure/persistence/models"
	db "opsportal/internal/shared/db"
	apperrors "opsportal/internal/shared/errors"
)

var allowedProfileOrderByFields = map[string]bool{
	"id":         true,
	"email":      true,
	"full_name":  true,
	"status":     true,
	"role":       true,
	"created_at": true,
	"updated_at": true,
}

type ProfileRepository struct {
	db     *gorm.DB
	mapper mappers.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		mapper: mappers.NewProfileMapper(),
	}
}

func (r *ProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	// Save writes every column, so a cleared status reason is persisted.
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ProfileModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("profile not found")
	}
	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uint) (*profile.Profile, error) {
	var model models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	var model models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("email = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProfileRepository) List(
	ctx context.Context,
	filter profile.ProfileFilter,
) ([]*profile.Profile, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ProfileModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedProfileOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var profileModels []models.ProfileModel
	if err := query.Find(&profileModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*profile.Profile, len(profileModels))
	for i, model := range profileModels {
		p, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		profiles[i] = p
	}

	return profiles, total, nil
}

// AccruePenalty adds amount to the stored total with a single SQL
// increment. Read-modify-write from Go would lose concurrent accruals.
func (r *ProfileRepository) AccruePenalty(ctx context.Context, id uint, amount int64) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ProfileModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_penalty": gorm.Expr("total_penalty + ?", amount),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to accrue penalty: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("profile not found")
	}

	return nil
}
