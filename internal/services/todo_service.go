package services

import (
	"time"

	"todoapi/internal/domain"
	"todoapi/internal/pagination"
	"todoapi/internal/permissions"
	"todoapi/internal/repositories"
	"todoapi/internal/utils"
)

// TodoService handles the todo operation surface. Operations addressing an
// existing todo resolve it first and authorize against its owner; operations
// keyed by a user id argument authorize before resolving anything.
type TodoService struct {
	Users     repositories.UserRepository
	Todos     repositories.TodoRepository
	RequestID string
}

func (s TodoService) ListForUser(chk *permissions.Checker, rawUserID string, in ConnectionInput) (*pagination.Connection[domain.Todo], error) {
	if err := chk.Check(permissions.UserTodos(rawUserID)); err != nil {
		return nil, err
	}
	userID, args, err := ParseListUserTodos(rawUserID, in)
	if err != nil {
		return nil, err
	}

	// The parent must exist: an empty window alone cannot distinguish a
	// user without todos from a user that is gone.
	if _, err := s.Users.GetByID(userID); err != nil {
		return nil, err
	}

	fetch := func(w pagination.Window) ([]domain.Todo, error) {
		return s.Todos.ListWindowByUser(userID, w)
	}
	count := func() (int, error) {
		return s.Todos.CountByUser(userID)
	}
	return pagination.Paginate(args, todoID, fetch, count)
}

// Get returns a todo together with its owning user.
func (s TodoService) Get(chk *permissions.Checker, rawID string) (domain.Todo, domain.User, error) {
	id, err := ParseGetTodo(rawID)
	if err != nil {
		return domain.Todo{}, domain.User{}, err
	}
	todo, err := s.Todos.GetByID(id)
	if err != nil {
		return domain.Todo{}, domain.User{}, err
	}
	if err := chk.Check(permissions.Todo(todo.UserID)); err != nil {
		return domain.Todo{}, domain.User{}, err
	}
	user, err := s.Users.GetByID(todo.UserID)
	if err != nil {
		return domain.Todo{}, domain.User{}, err
	}
	return todo, user, nil
}

func (s TodoService) Create(chk *permissions.Checker, rawUserID string, in CreateTodoInput) (domain.Todo, error) {
	if err := chk.Check(permissions.CreateTodo(rawUserID)); err != nil {
		return domain.Todo{}, err
	}
	params, err := ParseCreateTodo(rawUserID, in)
	if err != nil {
		return domain.Todo{}, err
	}

	if _, err := s.Users.GetByID(params.UserID); err != nil {
		return domain.Todo{}, err
	}

	now := time.Now()
	t := domain.Todo{
		ID:          domain.NewTodoID(),
		UserID:      params.UserID,
		Title:       params.Title,
		Description: params.Description,
		Status:      domain.TodoStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Todos.Create(t); err != nil {
		return domain.Todo{}, err
	}
	utils.LogEvent(s.RequestID, "todo", "create", "id="+t.ID)
	return t, nil
}

func (s TodoService) Update(chk *permissions.Checker, rawID string, in UpdateTodoInput) (domain.Todo, error) {
	params, err := ParseUpdateTodo(rawID, in)
	if err != nil {
		return domain.Todo{}, err
	}
	return s.applyPatch(chk, params.ID, repositories.TodoPatch{
		Title:       params.Title,
		Description: params.Description,
		Status:      params.Status,
	})
}

// Complete forces the status to DONE, leaving other fields untouched.
func (s TodoService) Complete(chk *permissions.Checker, rawID string) (domain.Todo, error) {
	return s.setStatus(chk, rawID, domain.TodoStatusDone)
}

// Uncomplete forces the status back to PENDING.
func (s TodoService) Uncomplete(chk *permissions.Checker, rawID string) (domain.Todo, error) {
	return s.setStatus(chk, rawID, domain.TodoStatusPending)
}

func (s TodoService) setStatus(chk *permissions.Checker, rawID string, status domain.TodoStatus) (domain.Todo, error) {
	id, err := ParseGetTodo(rawID)
	if err != nil {
		return domain.Todo{}, err
	}
	return s.applyPatch(chk, id, repositories.TodoPatch{Status: &status})
}

func (s TodoService) applyPatch(chk *permissions.Checker, id string, patch repositories.TodoPatch) (domain.Todo, error) {
	existing, err := s.Todos.GetByID(id)
	if err != nil {
		return domain.Todo{}, err
	}
	if err := chk.Check(permissions.Todo(existing.UserID)); err != nil {
		return domain.Todo{}, err
	}

	t, err := s.Todos.Update(id, patch)
	if err != nil {
		return domain.Todo{}, err
	}
	utils.LogEvent(s.RequestID, "todo", "update", "id="+t.ID)
	return t, nil
}

func (s TodoService) Delete(chk *permissions.Checker, rawID string) (string, error) {
	id, err := ParseDeleteTodo(rawID)
	if err != nil {
		return "", err
	}
	existing, err := s.Todos.GetByID(id)
	if err != nil {
		return "", err
	}
	if err := chk.Check(permissions.Todo(existing.UserID)); err != nil {
		return "", err
	}

	if err := s.Todos.Delete(id); err != nil {
		return "", err
	}
	utils.LogEvent(s.RequestID, "todo", "delete", "id="+id)
	return id, nil
}

func todoID(t domain.Todo) string { return t.ID }
