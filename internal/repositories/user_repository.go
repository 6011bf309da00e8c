package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"todoapi/internal/domain"
	"todoapi/internal/pagination"
)

const userColumns = "id, name, role, token, created_at, updated_at"

// UserRepository wraps DB access for the users table. Store errors are
// mapped to the domain taxonomy here, at the data-access boundary.
type UserRepository struct {
	DB *sql.DB
}

func scanUser(s interface{ Scan(dest ...any) error }) (domain.User, error) {
	var u domain.User
	var role string
	err := s.Scan(&u.ID, &u.Name, &role, &u.Token, &u.CreatedAt, &u.UpdatedAt)
	u.Role = domain.Role(role)
	return u, err
}

func (r UserRepository) GetByID(id string) (domain.User, error) {
	row := r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, err
}

func (r UserRepository) GetByToken(token string) (domain.User, error) {
	row := r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE token = ?`, token)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, err
}

func (r UserRepository) Count() (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// ListWindow fetches one keyset window of users.
func (r UserRepository) ListWindow(w pagination.Window) ([]domain.User, error) {
	conds, args, order := keysetClauses("users", w)

	query := `SELECT ` + userColumns + ` FROM users`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += order + " LIMIT ?"
	args = append(args, w.Limit)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r UserRepository) Create(u domain.User) error {
	_, err := r.DB.Exec(`
        INSERT INTO users (id, name, role, token, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, u.ID, u.Name, string(u.Role), u.Token, u.CreatedAt, u.UpdatedAt)
	return err
}

// UserPatch holds the fields an update may touch. A nil field means
// "leave unchanged"; explicit nulls were already rejected upstream.
type UserPatch struct {
	Name *string
}

func (r UserRepository) Update(id string, p UserPatch) (domain.User, error) {
	sets := []string{}
	args := []any{}
	if p.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *p.Name)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now(), id)

	res, err := r.DB.Exec(`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return domain.User{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.User{}, domain.NotFoundError{Resource: "user"}
	}
	return r.GetByID(id)
}

func (r UserRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}
