package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todoapi/internal/domain"

	"github.com/gin-gonic/gin"
)

func TestRespondDomainErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", domain.ValidationError{Msg: "invalid `id`"}, http.StatusBadRequest, "invalid `id`"},
		{"authentication", domain.AuthenticationError{}, http.StatusUnauthorized, "authentication required"},
		{"forbidden", domain.ForbiddenError{}, http.StatusForbidden, "forbidden"},
		{"not found", domain.NotFoundError{Resource: "todo"}, http.StatusNotFound, "todo not found"},
		{"internal masked", errors.New("dsn=root:hunter2@tcp"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondDomainError(c, tc.err)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			body := w.Body.String()
			if !strings.Contains(body, tc.body) {
				t.Fatalf("body %s does not carry %q", body, tc.body)
			}
			if tc.status == http.StatusInternalServerError && strings.Contains(body, "hunter2") {
				t.Fatalf("internal detail leaked: %s", body)
			}
		})
	}
}
