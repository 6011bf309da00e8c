package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"todoapi/internal/domain"
	"todoapi/internal/pagination"
)

const todoColumns = "id, user_id, title, description, status, created_at, updated_at"

// TodoRepository wraps DB access for the todos table.
type TodoRepository struct {
	DB *sql.DB
}

func scanTodo(s interface{ Scan(dest ...any) error }) (domain.Todo, error) {
	var t domain.Todo
	var status string
	err := s.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &status, &t.CreatedAt, &t.UpdatedAt)
	t.Status = domain.TodoStatus(status)
	return t, err
}

func (r TodoRepository) GetByID(id string) (domain.Todo, error) {
	row := r.DB.QueryRow(`SELECT `+todoColumns+` FROM todos WHERE id = ?`, id)
	t, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Todo{}, domain.NotFoundError{Resource: "todo", Err: err}
	}
	return t, err
}

func (r TodoRepository) CountByUser(userID string) (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM todos WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}

// ListWindowByUser fetches one keyset window of a user's todos.
func (r TodoRepository) ListWindowByUser(userID string, w pagination.Window) ([]domain.Todo, error) {
	conds, args, order := keysetClauses("todos", w)

	where := []string{"user_id = ?"}
	whereArgs := []any{userID}
	where = append(where, conds...)
	whereArgs = append(whereArgs, args...)

	query := `SELECT ` + todoColumns + ` FROM todos WHERE ` + strings.Join(where, " AND ") + order + " LIMIT ?"
	whereArgs = append(whereArgs, w.Limit)

	rows, err := r.DB.Query(query, whereArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []domain.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r TodoRepository) Create(t domain.Todo) error {
	_, err := r.DB.Exec(`
        INSERT INTO todos (id, user_id, title, description, status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `, t.ID, t.UserID, t.Title, t.Description, string(t.Status), t.CreatedAt, t.UpdatedAt)
	return err
}

// TodoPatch holds the fields an update may touch. Nil means "leave
// unchanged"; explicit nulls were already rejected upstream.
type TodoPatch struct {
	Title       *string
	Description *string
	Status      *domain.TodoStatus
}

func (r TodoRepository) Update(id string, p TodoPatch) (domain.Todo, error) {
	sets := []string{}
	args := []any{}
	if p.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *p.Title)
	}
	if p.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *p.Description)
	}
	if p.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*p.Status))
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now(), id)

	res, err := r.DB.Exec(`UPDATE todos SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return domain.Todo{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.Todo{}, domain.NotFoundError{Resource: "todo"}
	}
	return r.GetByID(id)
}

func (r TodoRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "todo"}
	}
	return nil
}
