package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"opsportal/internal/domain/task"
	vo "opsportal/internal/domain/task/value_objects"
	"opsportal/internal/infrastructure/persistence/models"
	"opsportal/internal/shared/authorization"
)

// TaskMapper handles the conversion between Task domain entities and persistence models.
type TaskMapper interface {
	// ToModel converts a task domain entity to a persistence model.
	ToModel(t *task.Task) *models.TaskModel

	// ToDomain converts a task persistence model to a domain entity.
	ToDomain(model *models.TaskModel) (*task.Task, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *task.Comment) *models.TaskCommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.TaskCommentModel) (*task.Comment, error)
}

// TaskMapperImpl is the concrete implementation of TaskMapper.
type TaskMapperImpl struct{}

// NewTaskMapper creates a new TaskMapper.
func NewTaskMapper() TaskMapper {
	return &TaskMapperImpl{}
}

func (m *TaskMapperImpl) ToModel(t *task.Task) *models.TaskModel {
	model := &models.TaskModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		AssigneeID:  t.AssigneeID(),
		CreatedBy:   t.CreatedBy(),
		Deadline:    t.Deadline().UnixMilli(),
		Status:      t.Status().String(),
		IsBluePaged: t.IsBluePaged(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}

	if t.LastAdminCommentAt() != nil {
		ts := t.LastAdminCommentAt().UnixMilli()
		model.LastAdminCommentAt = &ts
	}
	if t.LastEmployeeReplyAt() != nil {
		ts := t.LastEmployeeReplyAt().UnixMilli()
		model.LastEmployeeReplyAt = &ts
	}
	if t.LastWarnedAt() != nil {
		ts := t.LastWarnedAt().UnixMilli()
		model.LastWarnedAt = &ts
	}

	attachmentsJSON, _ := json.Marshal(t.Attachments())
	model.Attachments = datatypes.JSON(attachmentsJSON)

	return model
}

func (m *TaskMapperImpl) ToDomain(model *models.TaskModel) (*task.Task, error) {
	status, err := vo.NewTaskStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid task status (id=%d): %w", model.ID, err)
	}

	var attachments []string
	if len(model.Attachments) > 0 {
		if err := json.Unmarshal(model.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task attachments (id=%d): %w", model.ID, err)
		}
	}

	var lastAdminCommentAt, lastEmployeeReplyAt, lastWarnedAt *time.Time
	if model.LastAdminCommentAt != nil {
		ts := taskConvertMillisToTime(*model.LastAdminCommentAt)
		lastAdminCommentAt = &ts
	}
	if model.LastEmployeeReplyAt != nil {
		ts := taskConvertMillisToTime(*model.LastEmployeeReplyAt)
		lastEmployeeReplyAt = &ts
	}
	if model.LastWarnedAt != nil {
		ts := taskConvertMillisToTime(*model.LastWarnedAt)
		lastWarnedAt = &ts
	}

	return task.ReconstructTask(
		model.ID,
		model.Title,
		model.Description,
		model.AssigneeID,
		model.CreatedBy,
		taskConvertMillisToTime(model.Deadline),
		status,
		model.IsBluePaged,
		lastAdminCommentAt,
		lastEmployeeReplyAt,
		lastWarnedAt,
		attachments,
		taskConvertMillisToTime(model.CreatedAt),
		taskConvertMillisToTime(model.UpdatedAt),
	)
}

func (m *TaskMapperImpl) CommentToModel(c *task.Comment) *models.TaskCommentModel {
	attachmentsJSON, _ := json.Marshal(c.Attachments())
	return &models.TaskCommentModel{
		ID:          c.ID(),
		TaskID:      c.TaskID(),
		AuthorID:    c.AuthorID(),
		AuthorRole:  c.AuthorRole().String(),
		Content:     c.Content(),
		Attachments: datatypes.JSON(attachmentsJSON),
		CreatedAt:   c.CreatedAt().UnixMilli(),
	}
}

func (m *TaskMapperImpl) CommentToDomain(model *models.TaskCommentModel) (*task.Comment, error) {
	var attachments []string
	if len(model.Attachments) > 0 {
		if err := json.Unmarshal(model.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal comment attachments (id=%d): %w", model.ID, err)
		}
	}

	return task.ReconstructComment(
		model.ID,
		model.TaskID,
		model.AuthorID,
		authorization.ParseUserRole(model.AuthorRole),
		model.Content,
		attachments,
		taskConvertMillisToTime(model.CreatedAt),
	)
}

func taskConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
