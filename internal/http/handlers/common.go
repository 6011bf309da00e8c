package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"todoapi/internal/domain"
	"todoapi/internal/services"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "BAD_USER_INPUT", "missing request body")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "BAD_USER_INPUT", "invalid request payload")
		return false
	}
	return true
}

// connectionInput collects raw connection arguments from the query string.
// Only integer syntax is checked here; bounds and cursors are validated by
// the per-operation parsers.
func connectionInput(c *gin.Context) (services.ConnectionInput, error) {
	in := services.ConnectionInput{}

	var err error
	if in.First, err = intQuery(c, "first"); err != nil {
		return in, err
	}
	if in.Last, err = intQuery(c, "last"); err != nil {
		return in, err
	}
	in.Before = strQuery(c, "before")
	in.After = strQuery(c, "after")
	in.OrderField = strQuery(c, "orderField")
	in.OrderDirection = strQuery(c, "orderDirection")
	return in, nil
}

func intQuery(c *gin.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.ValidationError{Msg: "invalid `" + name + "`", Err: err}
	}
	return &n, nil
}

func strQuery(c *gin.Context, name string) *string {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	return &raw
}
