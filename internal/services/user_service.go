package services

import (
	"time"

	"todoapi/internal/domain"
	"todoapi/internal/pagination"
	"todoapi/internal/permissions"
	"todoapi/internal/repositories"
	"todoapi/internal/utils"

	"github.com/golang-jwt/jwt/v5"
)

// UserService handles the user operation surface: authorization first (over
// the raw arguments, so a denied caller learns nothing about argument
// validity), then validation, then data access.
type UserService struct {
	Users       repositories.UserRepository
	TokenSecret []byte
	RequestID   string
}

func (s UserService) Viewer(chk *permissions.Checker) (domain.User, error) {
	if err := chk.Check(permissions.Viewer); err != nil {
		return domain.User{}, err
	}
	return s.Users.GetByID(chk.Caller().User.ID)
}

func (s UserService) List(chk *permissions.Checker, in ConnectionInput) (*pagination.Connection[domain.User], error) {
	if err := chk.Check(permissions.ListUsers); err != nil {
		return nil, err
	}
	args, err := ParseListUsers(in)
	if err != nil {
		return nil, err
	}
	return pagination.Paginate(args, userID, s.Users.ListWindow, s.Users.Count)
}

func (s UserService) Get(chk *permissions.Checker, rawID string) (domain.User, error) {
	if err := chk.Check(permissions.GetUser(rawID)); err != nil {
		return domain.User{}, err
	}
	id, err := ParseGetUser(rawID)
	if err != nil {
		return domain.User{}, err
	}
	return s.Users.GetByID(id)
}

func (s UserService) Create(chk *permissions.Checker, in CreateUserInput) (domain.User, error) {
	if err := chk.Check(permissions.CreateUser); err != nil {
		return domain.User{}, err
	}
	name, err := ParseCreateUser(in)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now()
	u := domain.User{
		ID:        domain.NewUserID(),
		Name:      name,
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	u.Token, err = s.mintToken(u.ID, now)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.Users.Create(u); err != nil {
		return domain.User{}, err
	}
	utils.LogEvent(s.RequestID, "user", "create", "id="+u.ID)
	return u, nil
}

func (s UserService) Update(chk *permissions.Checker, rawID string, in UpdateUserInput) (domain.User, error) {
	if err := chk.Check(permissions.UpdateUser(rawID)); err != nil {
		return domain.User{}, err
	}
	params, err := ParseUpdateUser(rawID, in)
	if err != nil {
		return domain.User{}, err
	}

	u, err := s.Users.Update(params.ID, repositories.UserPatch{Name: params.Name})
	if err != nil {
		return domain.User{}, err
	}
	utils.LogEvent(s.RequestID, "user", "update", "id="+u.ID)
	return u, nil
}

func (s UserService) Delete(chk *permissions.Checker, rawID string) (string, error) {
	if err := chk.Check(permissions.DeleteUser(rawID)); err != nil {
		return "", err
	}
	id, err := ParseDeleteUser(rawID)
	if err != nil {
		return "", err
	}

	if err := s.Users.Delete(id); err != nil {
		return "", err
	}
	utils.LogEvent(s.RequestID, "user", "delete", "id="+id)
	return id, nil
}

// mintToken issues the user's bearer credential: an HS256 JWT carrying the
// user id. The signed string is stored on the row, so deleting the user
// revokes it.
func (s UserService) mintToken(userID string, issuedAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"iat": issuedAt.Unix(),
	})
	return token.SignedString(s.TokenSecret)
}

func userID(u domain.User) string { return u.ID }
