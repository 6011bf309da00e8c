package permissions

import (
	"todoapi/internal/domain"
)

// Caller is the identity attached to one request. A nil User is a guest.
type Caller struct {
	User *domain.User
}

func (c Caller) Authenticated() bool { return c.User != nil }

func (c Caller) Admin() bool {
	return c.User != nil && c.User.Role == domain.RoleAdmin
}

// Rule is a predicate tree node evaluated depth-first with short-circuit.
// Evaluation returns nil on allow and a uniform ForbiddenError on deny, so
// a caller never learns which branch rejected it.
type Rule interface {
	eval(chk *Checker) error
}

type predicate struct {
	name string
	fn   func(Caller) error
}

func (p predicate) eval(chk *Checker) error {
	if err, ok := chk.memo[p.name]; ok {
		return err
	}
	err := p.fn(chk.caller)
	chk.memo[p.name] = err
	return err
}

type raceRule struct{ rules []Rule }

// Race allows when any rule allows, in order, stopping at the first allow.
func Race(rules ...Rule) Rule { return raceRule{rules: rules} }

func (r raceRule) eval(chk *Checker) error {
	err := error(domain.ForbiddenError{})
	for _, rule := range r.rules {
		if err = rule.eval(chk); err == nil {
			return nil
		}
	}
	return err
}

type chainRule struct{ rules []Rule }

// Chain allows only when every rule allows, stopping at the first deny.
func Chain(rules ...Rule) Rule { return chainRule{rules: rules} }

func (r chainRule) eval(chk *Checker) error {
	for _, rule := range r.rules {
		if err := rule.eval(chk); err != nil {
			return err
		}
	}
	return nil
}

// Checker evaluates rules for a single request. Predicates are memoized by
// identity, so a rule referenced from several composed expressions runs at
// most once per request.
type Checker struct {
	caller Caller
	memo   map[string]error
}

func NewChecker(caller Caller) *Checker {
	return &Checker{caller: caller, memo: map[string]error{}}
}

func (c *Checker) Caller() Caller { return c.caller }

func (c *Checker) Check(r Rule) error { return r.eval(c) }

func allow(ok bool) error {
	if ok {
		return nil
	}
	return domain.ForbiddenError{}
}

var IsAuthenticated Rule = predicate{
	name: "isAuthenticated",
	fn:   func(c Caller) error { return allow(c.Authenticated()) },
}

var IsGuest Rule = predicate{
	name: "isGuest",
	fn:   func(c Caller) error { return allow(!c.Authenticated()) },
}

var IsAdmin Rule = predicate{
	name: "isAdmin",
	fn:   func(c Caller) error { return allow(c.Admin()) },
}

// IsSelf matches the caller against a user id taken from the request
// arguments, before anything is resolved.
func IsSelf(userID string) Rule {
	return predicate{
		name: "isSelf:" + userID,
		fn: func(c Caller) error {
			return allow(c.User != nil && c.User.ID == userID)
		},
	}
}

// IsOwner matches the caller against the owner of an already resolved
// entity.
func IsOwner(ownerID string) Rule {
	return predicate{
		name: "isOwner:" + ownerID,
		fn: func(c Caller) error {
			return allow(c.User != nil && c.User.ID == ownerID)
		},
	}
}
