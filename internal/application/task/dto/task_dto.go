package dto

import (
	"time"

	"opsportal/internal/domain/task"
	"opsportal/internal/shared/biztime"
)

type TaskDTO struct {
	ID                  uint         `json:"id"`
	Title               string       `json:"title"`
	Description         string       `json:"description"`
	AssigneeID          uint         `json:"assignee_id"`
	CreatedBy           uint         `json:"created_by"`
	Deadline            time.Time    `json:"deadline"`
	Status              string       `json:"status"`
	IsBluePaged         bool         `json:"is_blue_paged"`
	IsOverdue           bool         `json:"is_overdue"`
	ResponseOverdue     bool         `json:"response_overdue"`
	LastAdminCommentAt  *time.Time   `json:"last_admin_comment_at,omitempty"`
	LastEmployeeReplyAt *time.Time   `json:"last_employee_reply_at,omitempty"`
	Attachments         []string     `json:"attachments"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
	Comments            []CommentDTO `json:"comments,omitempty"`
}

type CommentDTO struct {
	ID          uint      `json:"id"`
	TaskID      uint      `json:"task_id"`
	AuthorID    uint      `json:"author_id"`
	AuthorRole  string    `json:"author_role"`
	Content     string    `json:"content"`
	Attachments []string  `json:"attachments"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToTaskDTO converts a task entity to its transport representation.
// The overdue flags are computed live against the current time, not stored:
// IsOverdue is the deadline indicator, ResponseOverdue reports an admin
// comment left unanswered past the reply grace window.
func ToTaskDTO(t *task.Task, replyGrace time.Duration) TaskDTO {
	now := biztime.NowUTC()
	return TaskDTO{
		ID:                  t.ID(),
		Title:               t.Title(),
		Description:         t.Description(),
		AssigneeID:          t.AssigneeID(),
		CreatedBy:           t.CreatedBy(),
		Deadline:            t.Deadline(),
		Status:              t.Status().String(),
		IsBluePaged:         t.IsBluePaged(),
		IsOverdue:           t.IsOverdue(now),
		ResponseOverdue:     t.HasUnansweredAdminComment(now, replyGrace),
		LastAdminCommentAt:  t.LastAdminCommentAt(),
		LastEmployeeReplyAt: t.LastEmployeeReplyAt(),
		Attachments:         t.Attachments(),
		CreatedAt:           t.CreatedAt(),
		UpdatedAt:           t.UpdatedAt(),
	}
}

func ToCommentDTO(c *task.Comment) CommentDTO {
	return CommentDTO{
		ID:          c.ID(),
		TaskID:      c.TaskID(),
		AuthorID:    c.AuthorID(),
		AuthorRole:  c.AuthorRole().String(),
		Content:     c.Content(),
		Attachments: c.Attachments(),
		CreatedAt:   c.CreatedAt(),
	}
}

func ToCommentDTOs(comments []*task.Comment) []CommentDTO {
	dtos := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, ToCommentDTO(c))
	}
	return dtos
}
