package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"opsportal/internal/domain/task"
	vo "opsportal/internal/domain/task/value_objects"
	"opsportal/internal/infrastructure/persistence/mappers"
	"opsportal/internal/infrastructure/persistence/models"
	db "opsportal/internal/shared/db"
	apperrors "opsportal/internal/shared/errors"
)

// allowedTaskOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTaskOrderByFields = map[string]bool{
	"id":          true,
	"title":       true,
	"status":      true,
	"assignee_id": true,
	"deadline":    true,
	"created_at":  true,
	"updated_at":  true,
}

type TaskRepository struct {
	db     *gorm.DB
	mapper mappers.TaskMapper
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{
		db:     db,
		mapper: mappers.NewTaskMapper(),
	}
}

func (r *TaskRepository) Save(ctx context.Context, t *task.Task) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Save writes every column, so flags and timestamps survive even when
	// they hold zero values.
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TaskModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("task not found")
	}
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*task.Task, error) {
	var model models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("task not found")
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TaskRepository) List(
	ctx context.Context,
	filter task.TaskFilter,
) ([]*task.Task, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TaskModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.BluePaged != nil {
		query = query.Where("is_blue_paged = ?", *filter.BluePaged)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTaskOrderByFields[sortBy] {
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

	var taskModels []models.TaskModel
	if err := query.Find(&taskModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*task.Task, len(taskModels))
	for i, model := range taskModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tasks[i] = t
	}

	return tasks, total, nil
}

func (r *TaskRepository) GetOverdueUnflagged(ctx context.Context, now time.Time) ([]*task.Task, error) {
	var taskModels []models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("status <> ?", vo.StatusDone.String()).
		Where("deadline < ?", now.UnixMilli()).
		Where("is_blue_paged = ?", false).
		Order("deadline ASC").
		Find(&taskModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find overdue tasks: %w", err)
	}

	tasks := make([]*task.Task, len(taskModels))
	for i, model := range taskModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tasks[i] = t
	}

	return tasks, nil
}

func (r *TaskRepository) GetUnansweredSince(ctx context.Context, cutoff time.Time) ([]*task.Task, error) {
	var taskModels []models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	// Coarse candidate query; the grace boundary and warning dedup are
	// re-checked in the domain.
	if err := tx.
		Where("status <> ?", vo.StatusDone.String()).
		Where("last_admin_comment_at IS NOT NULL").
		Where("last_admin_comment_at < ?", cutoff.UnixMilli()).
		Where("last_employee_reply_at IS NULL OR last_employee_reply_at <= last_admin_comment_at").
		Order("last_admin_comment_at ASC").
		Find(&taskModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find unanswered tasks: %w", err)
	}

	tasks := make([]*task.Task, len(taskModels))
	for i, model := range taskModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tasks[i] = t
	}

	return tasks, nil
}
