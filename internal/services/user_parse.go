package services

import (
	"unicode/utf8"

	"todoapi/internal/domain"
	"todoapi/internal/pagination"
)

// Per-operation limits for user lists.
const (
	usersMaxPageSize     = 30
	usersDefaultPageSize = 10
)

const nameMaxLen = 100

// CreateUserInput is the raw createUser payload.
type CreateUserInput struct {
	Name domain.Optional[string] `json:"name"`
}

// UpdateUserInput is the raw updateUser payload. Name absent means "no
// change"; an explicit null is invalid input.
type UpdateUserInput struct {
	Name domain.Optional[string] `json:"name"`
}

// UpdateUserParams is the validated updateUser parameter bundle.
type UpdateUserParams struct {
	ID   string
	Name *string
}

// ParseListUsers validates users connection arguments. Default ordering is
// by creation time, descending.
func ParseListUsers(in ConnectionInput) (pagination.Args, error) {
	return parseConnection(in, usersMaxPageSize, usersDefaultPageSize,
		pagination.DecodeUserCursor, pagination.OrderFieldCreatedAt)
}

func ParseGetUser(id string) (string, error) {
	if !domain.IsUserID(id) {
		return "", domain.ValidationError{Msg: "invalid `id`"}
	}
	return id, nil
}

func ParseCreateUser(in CreateUserInput) (string, error) {
	name, ok := in.Name.Get()
	if !ok {
		return "", domain.ValidationError{Msg: "`name` must be not null"}
	}
	if name == "" {
		return "", domain.ValidationError{Msg: "`name` must be not empty"}
	}
	if utf8.RuneCountInString(name) > nameMaxLen {
		return "", domain.ValidationError{Msg: "`name` must be up to 100 characteres"}
	}
	return name, nil
}

func ParseUpdateUser(id string, in UpdateUserInput) (UpdateUserParams, error) {
	if in.Name.Null() {
		return UpdateUserParams{}, domain.ValidationError{Msg: "`name` must be not null"}
	}

	params := UpdateUserParams{}
	if name, ok := in.Name.Get(); ok {
		if name == "" {
			return UpdateUserParams{}, domain.ValidationError{Msg: "`name` must be not empty"}
		}
		if utf8.RuneCountInString(name) > nameMaxLen {
			return UpdateUserParams{}, domain.ValidationError{Msg: "`name` must be up to 100 characteres"}
		}
		params.Name = &name
	}

	if !domain.IsUserID(id) {
		return UpdateUserParams{}, domain.ValidationError{Msg: "invalid `id`"}
	}
	params.ID = id
	return params, nil
}

func ParseDeleteUser(id string) (string, error) {
	if !domain.IsUserID(id) {
		return "", domain.ValidationError{Msg: "invalid `id`"}
	}
	return id, nil
}
