package services

import (
	"fmt"

	"todoapi/internal/domain"
	"todoapi/internal/pagination"
)

// ConnectionInput is connection arguments exactly as they arrived from the
// transport, before any validation.
type ConnectionInput struct {
	First          *int
	Last           *int
	Before         *string
	After          *string
	OrderField     *string
	OrderDirection *string
}

// parseConnection validates connection arguments against an operation's cap,
// decodes the cursors for the operation's entity kind, and applies the
// operation's default page size when neither bound was given. It runs before
// any fetch so invalid input never reaches the store.
func parseConnection(in ConnectionInput, limit, defaultFirst int, decode func(string) (string, error), defaultField pagination.OrderField) (pagination.Args, error) {
	if in.First != nil && (*in.First < 0 || *in.First > limit) {
		return pagination.Args{}, domain.ValidationError{Msg: fmt.Sprintf("`first` must be up to %d", limit)}
	}
	if in.Last != nil && (*in.Last < 0 || *in.Last > limit) {
		return pagination.Args{}, domain.ValidationError{Msg: fmt.Sprintf("`last` must be up to %d", limit)}
	}

	var before, after *string
	if in.Before != nil {
		id, err := decode(*in.Before)
		if err != nil {
			return pagination.Args{}, domain.ValidationError{Msg: "invalid `before`", Err: err}
		}
		before = &id
	}
	if in.After != nil {
		id, err := decode(*in.After)
		if err != nil {
			return pagination.Args{}, domain.ValidationError{Msg: "invalid `after`", Err: err}
		}
		after = &id
	}

	first, last := in.First, in.Last
	if first == nil && last == nil {
		first = &defaultFirst
	}

	order, err := parseOrder(in.OrderField, in.OrderDirection, defaultField)
	if err != nil {
		return pagination.Args{}, err
	}

	return pagination.Args{
		First:  first,
		Last:   last,
		Before: before,
		After:  after,
		Order:  order,
	}, nil
}

func parseOrder(field, direction *string, defaultField pagination.OrderField) (pagination.Order, error) {
	order := pagination.Order{Field: defaultField, Direction: pagination.OrderDesc}

	if field != nil {
		switch pagination.OrderField(*field) {
		case pagination.OrderFieldCreatedAt, pagination.OrderFieldUpdatedAt:
			order.Field = pagination.OrderField(*field)
		default:
			return pagination.Order{}, domain.ValidationError{Msg: "invalid `orderField`"}
		}
	}
	if direction != nil {
		switch pagination.OrderDirection(*direction) {
		case pagination.OrderAsc, pagination.OrderDesc:
			order.Direction = pagination.OrderDirection(*direction)
		default:
			return pagination.Order{}, domain.ValidationError{Msg: "invalid `orderDirection`"}
		}
	}
	return order, nil
}
