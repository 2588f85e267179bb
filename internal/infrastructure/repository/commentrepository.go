package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"opsportal/internal/domain/task"
	"opsportal/internal/infrastructure/persistence/mappers"
	"opsportal/internal/infrastructure/persistence/models"
	db "opsportal/internal/shared/db"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TaskMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTaskMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *task.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *CommentRepository) GetByTaskID(ctx context.Context, taskID uint) ([]*task.Comment, error) {
	var commentModels []models.TaskCommentModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}

	comments := make([]*task.Comment, len(commentModels))
	for i, model := range commentModels {
		c, err := r.mapper.CommentToDomain(&model)
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}

	return comments, nil
}
