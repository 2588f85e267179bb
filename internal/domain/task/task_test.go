package task

import (
	"testing"
	"time"

	vo "opsportal/internal/domain/task/value_objects"
)

func validDeadline() time.Time {
	return time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)
}

func newTestTask(t *testing.T, status vo.TaskStatus, isBluePaged bool, lastAdminCommentAt, lastEmployeeReplyAt, lastWarnedAt *time.Time) *Task {
	t.Helper()

	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tk, err := ReconstructTask(
		1, "Quarterly report", "", 2, 3,
		validDeadline(), status, isBluePaged,
		lastAdminCommentAt, lastEmployeeReplyAt, lastWarnedAt,
		nil, created, created,
	)
	if err != nil {
		t.Fatalf("ReconstructTask() error = %v", err)
	}
	return tk
}

func TestNewTask_Validation(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		assigneeID uint
		createdBy  uint
		deadline   time.Time
		wantErr    bool
	}{
		{"valid task", "Quarterly report", 2, 3, validDeadline(), false},
		{"empty title", "", 2, 3, validDeadline(), true},
		{"title too long", string(make([]byte, 201)), 2, 3, validDeadline(), true},
		{"zero assignee", "Quarterly report", 0, 3, validDeadline(), true},
		{"zero creator", "Quarterly report", 2, 0, validDeadline(), true},
		{"zero deadline", "Quarterly report", 2, 3, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTask(tt.title, "", tt.assigneeID, tt.createdBy, tt.deadline, nil)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewTask() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Errorf("NewTask() error = %v, want nil", err)
				return
			}
			if tk.Status() != vo.StatusTodo {
				t.Errorf("Status() = %v, want %v", tk.Status(), vo.StatusTodo)
			}
			if tk.IsBluePaged() {
				t.Errorf("IsBluePaged() = true, want false")
			}
		})
	}
}

func TestTask_IsOverdue(t *testing.T) {
	deadline := validDeadline()

	tests := []struct {
		name     string
		status   vo.TaskStatus
		now      time.Time
		expected bool
	}{
		{"past deadline in progress", vo.StatusInProgress, deadline.Add(time.Minute), true},
		{"past deadline todo", vo.StatusTodo, deadline.Add(time.Minute), true},
		{"before deadline", vo.StatusInProgress, deadline.Add(-time.Minute), false},
		{"exactly at deadline", vo.StatusInProgress, deadline, false},
		{"done task never overdue", vo.StatusDone, deadline.Add(24 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTestTask(t, tt.status, false, nil, nil, nil)
			if got := tk.IsOverdue(tt.now); got != tt.expected {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTask_HasUnansweredAdminComment(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	grace := 2 * time.Hour

	ts := func(d time.Duration) *time.Time {
		v := now.Add(d)
		return &v
	}

	tests := []struct {
		name        string
		status      vo.TaskStatus
		lastAdmin   *time.Time
		lastReply   *time.Time
		expected    bool
	}{
		{"unanswered past grace", vo.StatusInProgress, ts(-3 * time.Hour), nil, true},
		{"no admin comment", vo.StatusInProgress, nil, nil, false},
		{"within grace", vo.StatusInProgress, ts(-time.Hour), nil, false},
		{"exactly at grace boundary", vo.StatusInProgress, ts(-grace), nil, false},
		{"replied after comment", vo.StatusInProgress, ts(-3 * time.Hour), ts(-time.Hour), false},
		{"replied before comment", vo.StatusInProgress, ts(-3 * time.Hour), ts(-4 * time.Hour), true},
		{"reply at same instant does not count", vo.StatusInProgress, ts(-3 * time.Hour), ts(-3 * time.Hour), true},
		{"done task exempt", vo.StatusDone, ts(-3 * time.Hour), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTestTask(t, tt.status, false, tt.lastAdmin, tt.lastReply, nil)
			if got := tk.HasUnansweredAdminComment(now, grace); got != tt.expected {
				t.Errorf("HasUnansweredAdminComment() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTask_WarningArmed(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	ts := func(d time.Duration) *time.Time {
		v := now.Add(d)
		return &v
	}

	tests := []struct {
		name       string
		lastAdmin  *time.Time
		lastWarned *time.Time
		expected   bool
	}{
		{"never warned", ts(-3 * time.Hour), nil, true},
		{"no admin comment", nil, nil, false},
		{"warned after comment", ts(-3 * time.Hour), ts(-time.Hour), false},
		{"newer comment re-arms", ts(-time.Hour), ts(-3 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTestTask(t, vo.StatusInProgress, false, tt.lastAdmin, nil, tt.lastWarned)
			if got := tk.WarningArmed(); got != tt.expected {
				t.Errorf("WarningArmed() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTask_MarkBluePaged(t *testing.T) {
	t.Run("flags unfinished task once", func(t *testing.T) {
		tk := newTestTask(t, vo.StatusInProgress, false, nil, nil, nil)
		if err := tk.MarkBluePaged(); err != nil {
			t.Fatalf("MarkBluePaged() error = %v, want nil", err)
		}
		if !tk.IsBluePaged() {
			t.Errorf("IsBluePaged() = false, want true")
		}
		if err := tk.MarkBluePaged(); err == nil {
			t.Errorf("second MarkBluePaged() error = nil, want error")
		}
	})

	t.Run("rejects completed task", func(t *testing.T) {
		tk := newTestTask(t, vo.StatusDone, false, nil, nil, nil)
		if err := tk.MarkBluePaged(); err == nil {
			t.Errorf("MarkBluePaged() error = nil, want error")
		}
	})
}

func TestTask_ChangeStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    vo.TaskStatus
		to      vo.TaskStatus
		wantErr bool
	}{
		{"todo to in progress", vo.StatusTodo, vo.StatusInProgress, false},
		{"todo to done", vo.StatusTodo, vo.StatusDone, false},
		{"in progress to done", vo.StatusInProgress, vo.StatusDone, false},
		{"in progress back to todo", vo.StatusInProgress, vo.StatusTodo, false},
		{"done reopened to in progress", vo.StatusDone, vo.StatusInProgress, false},
		{"done to todo rejected", vo.StatusDone, vo.StatusTodo, true},
		{"same status is a no-op", vo.StatusTodo, vo.StatusTodo, false},
		{"invalid status", vo.StatusTodo, vo.TaskStatus("archived"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTestTask(t, tt.from, false, nil, nil, nil)
			err := tk.ChangeStatus(tt.to)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ChangeStatus(%v) error = nil, want error", tt.to)
				}
				return
			}
			if err != nil {
				t.Errorf("ChangeStatus(%v) error = %v, want nil", tt.to, err)
				return
			}
			if tk.Status() != tt.to {
				t.Errorf("Status() = %v, want %v", tk.Status(), tt.to)
			}
		})
	}
}

func TestTask_RecordCommentActivity(t *testing.T) {
	tk := newTestTask(t, vo.StatusInProgress, false, nil, nil, nil)
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tk.RecordAdminComment(at)
	if tk.LastAdminCommentAt() == nil || !tk.LastAdminCommentAt().Equal(at) {
		t.Errorf("LastAdminCommentAt() = %v, want %v", tk.LastAdminCommentAt(), at)
	}

	reply := at.Add(30 * time.Minute)
	tk.RecordEmployeeReply(reply)
	if tk.LastEmployeeReplyAt() == nil || !tk.LastEmployeeReplyAt().Equal(reply) {
		t.Errorf("LastEmployeeReplyAt() = %v, want %v", tk.LastEmployeeReplyAt(), reply)
	}
}
