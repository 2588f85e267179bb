package valueobjects

import "fmt"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

var validTaskStatuses = map[TaskStatus]bool{
	StatusTodo:       true,
	StatusInProgress: true,
	StatusDone:       true,
}

var taskStatusTransitions = map[TaskStatus][]TaskStatus{
	StatusTodo: {
		StatusInProgress,
		StatusDone,
	},
	StatusInProgress: {
		StatusTodo,
		StatusDone,
	},
	StatusDone: {
		StatusInProgress,
	},
}

func (ts TaskStatus) String() string {
	return string(ts)
}

func (ts TaskStatus) IsValid() bool {
	return validTaskStatuses[ts]
}

func (ts TaskStatus) CanTransitionTo(newStatus TaskStatus) bool {
	allowedTransitions, ok := taskStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TaskStatus) IsTodo() bool {
	return ts == StatusTodo
}

func (ts TaskStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TaskStatus) IsDone() bool {
	return ts == StatusDone
}

func NewTaskStatus(s string) (TaskStatus, error) {
	ts := TaskStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid task status: %s", s)
	}
	return ts, nil
}
