package middleware

import (
	"fmt"
	"net/http"
	"strings"

	intconfig "todoapi/internal/config"
	"todoapi/internal/permissions"
	"todoapi/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const checkerKey = "permission_checker"

// Auth resolves the caller identity from a bearer token. Requests without an
// Authorization header proceed as guest. A presented token must be a valid
// HS256 JWT and must equal the token stored on the user row, so deleting a
// user revokes its credential immediately.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := permissions.Caller{}

		if header := strings.TrimSpace(c.GetHeader("Authorization")); header != "" {
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				abortUnauthenticated(c, "malformed authorization header")
				return
			}
			raw = strings.TrimSpace(raw)

			token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				abortUnauthenticated(c, "invalid token")
				return
			}

			sub, err := token.Claims.GetSubject()
			if err != nil || sub == "" {
				abortUnauthenticated(c, "invalid token")
				return
			}

			users := repositories.UserRepository{DB: intconfig.DB}
			u, err := users.GetByID(sub)
			if err != nil || u.Token != raw {
				abortUnauthenticated(c, "invalid token")
				return
			}
			caller.User = &u
		}

		c.Set(checkerKey, permissions.NewChecker(caller))
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"code":       "AUTHENTICATION_ERROR",
		"request_id": GetRequestID(c),
	})
}

// GetChecker returns the request's permission checker; a missing one means
// guest.
func GetChecker(c *gin.Context) *permissions.Checker {
	if v, ok := c.Get(checkerKey); ok {
		if chk, ok := v.(*permissions.Checker); ok {
			return chk
		}
	}
	return permissions.NewChecker(permissions.Caller{})
}
