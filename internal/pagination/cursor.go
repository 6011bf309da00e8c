package pagination

import (
	"encoding/base64"
	"errors"

	"todoapi/internal/domain"
)

// A cursor is the base64 form of the entity id it points at. Cursors are
// scoped to one entity kind: a users cursor never decodes as a todos cursor
// because the embedded id carries the kind prefix.

var ErrInvalidCursor = errors.New("invalid cursor")

func EncodeCursor(id string) string {
	return base64.StdEncoding.EncodeToString([]byte(id))
}

// DecodeUserCursor returns the user id a cursor points at.
func DecodeUserCursor(cursor string) (string, error) {
	return decodeCursor(cursor, domain.IsUserID)
}

// DecodeTodoCursor returns the todo id a cursor points at.
func DecodeTodoCursor(cursor string) (string, error) {
	return decodeCursor(cursor, domain.IsTodoID)
}

func decodeCursor(cursor string, isKind func(string) bool) (string, error) {
	b, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return "", ErrInvalidCursor
	}
	id := string(b)
	if !isKind(id) {
		return "", ErrInvalidCursor
	}
	return id, nil
}
