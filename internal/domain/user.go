package domain

import "time"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
	RoleGuest Role = "GUEST"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleUser, RoleGuest:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID        string
	Name      string
	Role      Role
	Token     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
