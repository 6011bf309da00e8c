package domain

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// IDs are kind-prefixed so a user id can never be accepted where a todo id
// is expected. The payload is a fixed-length nanoid over an alphanumeric
// alphabet (no '-' or '_', keeping the prefix separator unambiguous).
const (
	userIDPrefix = "user_"
	todoIDPrefix = "todo_"

	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	idLength   = 21
)

func NewUserID() string {
	return userIDPrefix + gonanoid.MustGenerate(idAlphabet, idLength)
}

func NewTodoID() string {
	return todoIDPrefix + gonanoid.MustGenerate(idAlphabet, idLength)
}

func IsUserID(s string) bool { return isKindID(s, userIDPrefix) }

func IsTodoID(s string) bool { return isKindID(s, todoIDPrefix) }

func isKindID(s, prefix string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	payload := s[len(prefix):]
	if len(payload) != idLength {
		return false
	}
	for i := 0; i < len(payload); i++ {
		if !strings.ContainsRune(idAlphabet, rune(payload[i])) {
			return false
		}
	}
	return true
}
