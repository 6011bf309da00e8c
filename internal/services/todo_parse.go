package services

import (
	"unicode/utf8"

	"todoapi/internal/domain"
	"todoapi/internal/pagination"
)

// Per-operation limits for todo lists.
const (
	todosMaxPageSize     = 50
	todosDefaultPageSize = 20
)

const (
	titleMaxLen       = 100
	descriptionMaxLen = 5000
)

// CreateTodoInput is the raw createTodo payload. Both fields are required.
type CreateTodoInput struct {
	Title       domain.Optional[string] `json:"title"`
	Description domain.Optional[string] `json:"description"`
}

// CreateTodoParams is the validated createTodo parameter bundle.
type CreateTodoParams struct {
	UserID      string
	Title       string
	Description string
}

// UpdateTodoInput is the raw updateTodo payload. Absent fields mean "no
// change"; explicit nulls are invalid input.
type UpdateTodoInput struct {
	Title       domain.Optional[string] `json:"title"`
	Description domain.Optional[string] `json:"description"`
	Status      domain.Optional[string] `json:"status"`
}

// UpdateTodoParams is the validated updateTodo parameter bundle.
type UpdateTodoParams struct {
	ID          string
	Title       *string
	Description *string
	Status      *domain.TodoStatus
}

// ParseListUserTodos validates todos connection arguments. Default ordering
// is by update time, descending.
func ParseListUserTodos(userID string, in ConnectionInput) (string, pagination.Args, error) {
	args, err := parseConnection(in, todosMaxPageSize, todosDefaultPageSize,
		pagination.DecodeTodoCursor, pagination.OrderFieldUpdatedAt)
	if err != nil {
		return "", pagination.Args{}, err
	}
	if !domain.IsUserID(userID) {
		return "", pagination.Args{}, domain.ValidationError{Msg: "invalid `userId`"}
	}
	return userID, args, nil
}

func ParseGetTodo(id string) (string, error) {
	if !domain.IsTodoID(id) {
		return "", domain.ValidationError{Msg: "invalid `id`"}
	}
	return id, nil
}

func ParseCreateTodo(userID string, in CreateTodoInput) (CreateTodoParams, error) {
	title, ok := in.Title.Get()
	if !ok {
		return CreateTodoParams{}, domain.ValidationError{Msg: "`title` must be not null"}
	}
	description, ok := in.Description.Get()
	if !ok {
		return CreateTodoParams{}, domain.ValidationError{Msg: "`description` must be not null"}
	}
	if title == "" {
		return CreateTodoParams{}, domain.ValidationError{Msg: "`title` must be not empty"}
	}
	if utf8.RuneCountInString(title) > titleMaxLen {
		return CreateTodoParams{}, domain.ValidationError{Msg: "`title` must be up to 100 characters"}
	}
	if utf8.RuneCountInString(description) > descriptionMaxLen {
		return CreateTodoParams{}, domain.ValidationError{Msg: "`description` must be up to 5000 characters"}
	}
	if !domain.IsUserID(userID) {
		return CreateTodoParams{}, domain.ValidationError{Msg: "invalid `userId`"}
	}
	return CreateTodoParams{UserID: userID, Title: title, Description: description}, nil
}

func ParseUpdateTodo(id string, in UpdateTodoInput) (UpdateTodoParams, error) {
	if in.Title.Null() {
		return UpdateTodoParams{}, domain.ValidationError{Msg: "`title` must be not null"}
	}
	if in.Description.Null() {
		return UpdateTodoParams{}, domain.ValidationError{Msg: "`description` must be not null"}
	}
	if in.Status.Null() {
		return UpdateTodoParams{}, domain.ValidationError{Msg: "`status` must be not null"}
	}

	params := UpdateTodoParams{}
	if title, ok := in.Title.Get(); ok {
		if title == "" {
			return UpdateTodoParams{}, domain.ValidationError{Msg: "`title` must be not empty"}
		}
		if utf8.RuneCountInString(title) > titleMaxLen {
			return UpdateTodoParams{}, domain.ValidationError{Msg: "`title` must be up to 100 characters"}
		}
		params.Title = &title
	}
	if description, ok := in.Description.Get(); ok {
		if utf8.RuneCountInString(description) > descriptionMaxLen {
			return UpdateTodoParams{}, domain.ValidationError{Msg: "`description` must be up to 5000 characters"}
		}
		params.Description = &description
	}
	if raw, ok := in.Status.Get(); ok {
		status, valid := domain.ParseTodoStatus(raw)
		if !valid {
			return UpdateTodoParams{}, domain.ValidationError{Msg: "invalid `status`"}
		}
		params.Status = &status
	}

	if !domain.IsTodoID(id) {
		return UpdateTodoParams{}, domain.ValidationError{Msg: "invalid `id`"}
	}
	params.ID = id
	return params, nil
}

func ParseDeleteTodo(id string) (string, error) {
	if !domain.IsTodoID(id) {
		return "", domain.ValidationError{Msg: "invalid `id`"}
	}
	return id, nil
}
