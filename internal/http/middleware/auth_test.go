package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	intconfig "todoapi/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var authSecret = []byte("auth-test-secret")

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Auth(authSecret))
	r.GET("/whoami", func(c *gin.Context) {
		caller := GetChecker(c).Caller()
		if caller.User == nil {
			c.JSON(http.StatusOK, gin.H{"caller": "guest"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"caller": caller.User.ID})
	})
	return r
}

func mintAuthToken(t *testing.T, userID string, secret []byte) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
	})
	raw, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("mint token error: %v", err)
	}
	return raw
}

func TestAuthNoHeaderIsGuest(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)

	authTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != `{"caller":"guest"}` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestAuthMalformedHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")

	authTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthForgedToken(t *testing.T) {
	forged := mintAuthToken(t, "user_x000000000000000000x", []byte("wrong-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+forged)

	authTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthValidTokenResolvesCaller(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	const id = "user_caller00000000000000"
	raw := mintAuthToken(t, id, authSecret)

	now := time.Now()
	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role", "token", "created_at", "updated_at"}).
			AddRow(id, "caller", "USER", raw, now, now))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+raw)

	authTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"caller":"`+id+`"}` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestAuthTokenRevokedByRotation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	const id = "user_rotated0000000000000"
	raw := mintAuthToken(t, id, authSecret)

	// The stored token differs from the presented one, so the credential is
	// no longer honored even though the signature checks out.
	now := time.Now()
	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role", "token", "created_at", "updated_at"}).
			AddRow(id, "rotated", "USER", "different-stored-token", now, now))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+raw)

	authTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
