package domain

import "time"

type TodoStatus string

const (
	TodoStatusDone    TodoStatus = "DONE"
	TodoStatusPending TodoStatus = "PENDING"
)

func ParseTodoStatus(s string) (TodoStatus, bool) {
	switch TodoStatus(s) {
	case TodoStatusDone, TodoStatusPending:
		return TodoStatus(s), true
	}
	return "", false
}

type Todo struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      TodoStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
