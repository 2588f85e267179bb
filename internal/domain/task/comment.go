package task

import (
	"fmt"
	"time"

	"opsportal/internal/shared/authorization"
	"opsportal/internal/shared/biztime"
)

// Comment is an immutable entry in a task's discussion thread. The author
// role is snapshotted at posting time so later role changes do not rewrite
// the thread's responsiveness history.
type Comment struct {
	id          uint
	taskID      uint
	authorID    uint
	authorRole  authorization.UserRole
	content     string
	attachments []string
	createdAt   time.Time
}

func NewComment(
	taskID uint,
	authorID uint,
	authorRole authorization.UserRole,
	content string,
	attachments []string,
) (*Comment, error) {
	if taskID == 0 {
		return nil, fmt.Errorf("task ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if !authorRole.IsValid() {
		return nil, fmt.Errorf("invalid author role: %s", authorRole)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}

	if attachments == nil {
		attachments = []string{}
	}

	return &Comment{
		taskID:      taskID,
		authorID:    authorID,
		authorRole:  authorRole,
		content:     content,
		attachments: attachments,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	taskID uint,
	authorID uint,
	authorRole authorization.UserRole,
	content string,
	attachments []string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if taskID == 0 {
		return nil, fmt.Errorf("task ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	if attachments == nil {
		attachments = []string{}
	}

	return &Comment{
		id:          id,
		taskID:      taskID,
		authorID:    authorID,
		authorRole:  authorRole,
		content:     content,
		attachments: attachments,
		createdAt:   createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TaskID() uint {
	return c.taskID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) AuthorRole() authorization.UserRole {
	return c.authorRole
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) Attachments() []string {
	attachmentsCopy := make([]string, len(c.attachments))
	copy(attachmentsCopy, c.attachments)
	return attachmentsCopy
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Comment) IsFromAdmin() bool {
	return c.authorRole.IsAdmin()
}
