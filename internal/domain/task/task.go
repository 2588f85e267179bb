package task

import (
	"fmt"
	"time"

	vo "opsportal/internal/domain/task/value_objects"
	"opsportal/internal/shared/biztime"
)

type Task struct {
	id                  uint
	title               string
	description         string
	assigneeID          uint
	createdBy           uint
	deadline            time.Time
	status              vo.TaskStatus
	isBluePaged         bool
	lastAdminCommentAt  *time.Time
	lastEmployeeReplyAt *time.Time
	lastWarnedAt        *time.Time
	attachments         []string
	createdAt           time.Time
	updatedAt           time.Time
	comments            []*Comment
}

func NewTask(
	title string,
	description string,
	assigneeID uint,
	createdBy uint,
	deadline time.Time,
	attachments []string,
) (*Task, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if assigneeID == 0 {
		return nil, fmt.Errorf("assignee ID is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if deadline.IsZero() {
		return nil, fmt.Errorf("deadline is required")
	}

	if attachments == nil {
		attachments = []string{}
	}

	now := biztime.NowUTC()
	return &Task{
		title:       title,
		description: description,
		assigneeID:  assigneeID,
		createdBy:   createdBy,
		deadline:    deadline.UTC(),
		status:      vo.StatusTodo,
		attachments: attachments,
		createdAt:   now,
		updatedAt:   now,
		comments:    []*Comment{},
	}, nil
}

func ReconstructTask(
	id uint,
	title string,
	description string,
	assigneeID uint,
	createdBy uint,
	deadline time.Time,
	status vo.TaskStatus,
	isBluePaged bool,
	lastAdminCommentAt *time.Time,
	lastEmployeeReplyAt *time.Time,
	lastWarnedAt *time.Time,
	attachments []string,
	createdAt, updatedAt time.Time,
) (*Task, error) {
	if id == 0 {
		return nil, fmt.Errorf("task ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if deadline.IsZero() {
		return nil, fmt.Errorf("deadline is required")
	}

	if attachments == nil {
		attachments = []string{}
	}

	return &Task{
		id:                  id,
		title:               title,
		description:         description,
		assigneeID:          assigneeID,
		createdBy:           createdBy,
		deadline:            deadline,
		status:              status,
		isBluePaged:         isBluePaged,
		lastAdminCommentAt:  lastAdminCommentAt,
		lastEmployeeReplyAt: lastEmployeeReplyAt,
		lastWarnedAt:        lastWarnedAt,
		attachments:         attachments,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
		comments:            []*Comment{},
	}, nil
}

func (t *Task) ID() uint {
	return t.id
}

func (t *Task) Title() string {
	return t.title
}

func (t *Task) Description() string {
	return t.description
}

func (t *Task) AssigneeID() uint {
	return t.assigneeID
}

func (t *Task) CreatedBy() uint {
	return t.createdBy
}

func (t *Task) Deadline() time.Time {
	return t.deadline
}

func (t *Task) Status() vo.TaskStatus {
	return t.status
}

func (t *Task) IsBluePaged() bool {
	return t.isBluePaged
}

func (t *Task) LastAdminCommentAt() *time.Time {
	return t.lastAdminCommentAt
}

func (t *Task) LastEmployeeReplyAt() *time.Time {
	return t.lastEmployeeReplyAt
}

func (t *Task) LastWarnedAt() *time.Time {
	return t.lastWarnedAt
}

func (t *Task) Attachments() []string {
	attachmentsCopy := make([]string, len(t.attachments))
	copy(attachmentsCopy, t.attachments)
	return attachmentsCopy
}

func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Task) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Task) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Task) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("task ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("task ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Task) ChangeStatus(newStatus vo.TaskStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = biztime.NowUTC()

	return nil
}

// MarkBluePaged flags the task as having been penalized for a missed
// deadline. A task can only be blue-paged once.
func (t *Task) MarkBluePaged() error {
	if t.status.IsDone() {
		return fmt.Errorf("completed task cannot be blue-paged")
	}
	if t.isBluePaged {
		return fmt.Errorf("task is already blue-paged")
	}

	t.isBluePaged = true
	t.updatedAt = biztime.NowUTC()

	return nil
}

func (t *Task) RecordAdminComment(at time.Time) {
	utc := at.UTC()
	t.lastAdminCommentAt = &utc
	t.updatedAt = biztime.NowUTC()
}

func (t *Task) RecordEmployeeReply(at time.Time) {
	utc := at.UTC()
	t.lastEmployeeReplyAt = &utc
	t.updatedAt = biztime.NowUTC()
}

func (t *Task) MarkWarned(at time.Time) {
	utc := at.UTC()
	t.lastWarnedAt = &utc
	t.updatedAt = biztime.NowUTC()
}

// IsOverdue reports whether the deadline has passed for an unfinished task.
// Completed tasks are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.status.IsDone() {
		return false
	}
	return t.deadline.Before(now)
}

// HasUnansweredAdminComment reports whether the last admin comment is older
// than the grace window and the assignee has not replied since it was posted.
// A reply at the exact same instant as the admin comment does not count as
// an answer.
func (t *Task) HasUnansweredAdminComment(now time.Time, grace time.Duration) bool {
	if t.status.IsDone() {
		return false
	}
	if t.lastAdminCommentAt == nil {
		return false
	}
	if now.Sub(*t.lastAdminCommentAt) <= grace {
		return false
	}
	if t.lastEmployeeReplyAt != nil && t.lastEmployeeReplyAt.After(*t.lastAdminCommentAt) {
		return false
	}
	return true
}

// WarningArmed reports whether a responsiveness warning may be sent.
// A warning already sent for the current admin comment suppresses repeats;
// a newer admin comment re-arms the warning.
func (t *Task) WarningArmed() bool {
	if t.lastAdminCommentAt == nil {
		return false
	}
	if t.lastWarnedAt == nil {
		return true
	}
	return t.lastWarnedAt.Before(*t.lastAdminCommentAt)
}

func (t *Task) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}

	if comment.TaskID() != t.id {
		return fmt.Errorf("comment task ID mismatch")
	}

	t.comments = append(t.comments, comment)

	return nil
}

func (t *Task) Validate() error {
	if len(t.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if t.assigneeID == 0 {
		return fmt.Errorf("assignee ID is required")
	}
	if t.deadline.IsZero() {
		return fmt.Errorf("deadline is required")
	}
	return nil
}
