package models

import "gorm.io/datatypes"

type TaskModel struct {
	ID                  uint   `gorm:"primaryKey"`
	Title               string `gorm:"size:200;not null"`
	Description         string `gorm:"type:text"`
	AssigneeID          uint   `gorm:"not null;index"`
	CreatedBy           uint   `gorm:"not null;index"`
	Deadline            int64  `gorm:"not null;index"`
	Status              string `gorm:"size:20;not null;index"`
	IsBluePaged         bool   `gorm:"not null;default:false;index"`
	LastAdminCommentAt  *int64 `gorm:"index"`
	LastEmployeeReplyAt *int64
	LastWarnedAt        *int64
	Attachments         datatypes.JSON `gorm:"type:json"`
	CreatedAt           int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt           int64          `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TaskModel) TableName() string {
	return "tasks"
}

type TaskCommentModel struct {
	ID          uint           `gorm:"primaryKey"`
	TaskID      uint           `gorm:"not null;index"`
	AuthorID    uint           `gorm:"not null;index"`
	AuthorRole  string         `gorm:"size:20;not null"`
	Content     string         `gorm:"type:text;not null"`
	Attachments datatypes.JSON `gorm:"type:json"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (TaskCommentModel) TableName() string {
	return "task_comments"
}
