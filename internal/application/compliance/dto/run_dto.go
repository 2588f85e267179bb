package dto

import "time"

// ProcessedTask is one entry in a deadline run summary. Status is
// "processed" when the full penalty pipeline ran, "already_processed" when
// a duplicate violation showed the task was handled by an earlier run, and
// "failed" when the task errored and was skipped.
type ProcessedTask struct {
	TaskID      uint   `json:"task_id"`
	Status      string `json:"status"`
	ViolationID uint   `json:"violation_id,omitempty"`
	PDFURL      string `json:"pdf_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

type ProcessDeadlinesResult struct {
	Skipped   bool            `json:"skipped"`
	StartedAt time.Time       `json:"started_at"`
	Processed []ProcessedTask `json:"processed"`
}

// FlaggedTask identifies a task whose assignee was warned for not
// answering an admin comment.
type FlaggedTask struct {
	TaskID    uint   `json:"task_id"`
	TaskTitle string `json:"task"`
	AgentName string `json:"user"`
	Error     string `json:"error,omitempty"`
}

type CheckResponsivenessResult struct {
	Skipped   bool          `json:"skipped"`
	StartedAt time.Time     `json:"started_at"`
	Flagged   []FlaggedTask `json:"flagged"`
}

type ViolationDTO struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	TaskID        uint      `json:"task_id"`
	ViolationType string    `json:"violation_type"`
	PenaltyAmount int64     `json:"penalty_amount"`
	PDFURL        string    `json:"pdf_url"`
	CreatedAt     time.Time `json:"created_at"`
	AgentName     string    `json:"agent_name,omitempty"`
	AgentEmail    string    `json:"agent_email,omitempty"`
}
