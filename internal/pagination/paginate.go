package pagination

import (
	"fmt"
)

type OrderField string

const (
	OrderFieldCreatedAt OrderField = "CREATED_AT"
	OrderFieldUpdatedAt OrderField = "UPDATED_AT"
)

type OrderDirection string

const (
	OrderAsc  OrderDirection = "ASC"
	OrderDesc OrderDirection = "DESC"
)

// Order is the primary sort key. The entity id is always appended as a
// secondary key in the same direction so the resulting order is total even
// when primary values collide.
type Order struct {
	Field     OrderField
	Direction OrderDirection
}

func (o Order) reversed() Order {
	dir := OrderAsc
	if o.Direction == OrderAsc {
		dir = OrderDesc
	}
	return Order{Field: o.Field, Direction: dir}
}

// Args are connection arguments after validation: cursors already decoded to
// entity ids, bounds already checked against the operation's cap, defaults
// already applied.
type Args struct {
	First  *int
	Last   *int
	After  *string
	Before *string
	Order  Order
}

type PageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor"`
	EndCursor       *string `json:"endCursor"`
}

type Connection[T any] struct {
	Nodes      []T      `json:"nodes"`
	PageInfo   PageInfo `json:"pageInfo"`
	TotalCount int      `json:"totalCount"`
}

// Window is the contract handed to the fetch capability: return up to Limit
// rows ordered by Order (id appended as tie-break in the same direction),
// strictly after the After row's position and strictly before the Before
// row's position in that order. Limit includes one probe row beyond the
// requested page size; the probe only decides page-info flags and is never
// returned to the caller.
type Window struct {
	Limit  int
	After  *string
	Before *string
	Order  Order
}

type FetchFunc[T any] func(w Window) ([]T, error)

type CountFunc func() (int, error)

// Paginate runs keyset pagination over a total order defined by
// (Order.Field, id). The count and the window are two independent reads:
// TotalCount may reflect a slightly different snapshot than the page.
//
// When both First and Last are given, the First-bounded window is fetched
// and then trimmed to its trailing Last rows; the trim sets
// HasPreviousPage. This mirrors the relay connection algorithm.
func Paginate[T any](args Args, cursorOf func(T) string, fetch FetchFunc[T], count CountFunc) (*Connection[T], error) {
	if args.First == nil && args.Last == nil {
		return nil, fmt.Errorf("pagination: either first or last must be set")
	}

	total, err := count()
	if err != nil {
		return nil, err
	}

	var (
		nodes   []T
		hasNext bool
		hasPrev bool
	)

	if args.First != nil {
		first := *args.First
		nodes, err = fetch(Window{
			Limit:  first + 1,
			After:  args.After,
			Before: args.Before,
			Order:  args.Order,
		})
		if err != nil {
			return nil, err
		}
		if len(nodes) > first {
			hasNext = true
			nodes = nodes[:first]
		}
		hasPrev = args.After != nil
		if args.Last != nil && *args.Last < len(nodes) {
			nodes = nodes[len(nodes)-*args.Last:]
			hasPrev = true
		}
	} else {
		last := *args.Last
		// Walk backwards from the before boundary: reverse the order,
		// swap the boundaries, then restore order afterwards.
		nodes, err = fetch(Window{
			Limit:  last + 1,
			After:  args.Before,
			Before: args.After,
			Order:  args.Order.reversed(),
		})
		if err != nil {
			return nil, err
		}
		if len(nodes) > last {
			hasPrev = true
			nodes = nodes[:last]
		}
		hasNext = args.Before != nil
		reverse(nodes)
	}

	if nodes == nil {
		nodes = make([]T, 0)
	}

	info := PageInfo{HasNextPage: hasNext, HasPreviousPage: hasPrev}
	if len(nodes) > 0 {
		start := EncodeCursor(cursorOf(nodes[0]))
		end := EncodeCursor(cursorOf(nodes[len(nodes)-1]))
		info.StartCursor = &start
		info.EndCursor = &end
	}

	return &Connection[T]{Nodes: nodes, PageInfo: info, TotalCount: total}, nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
