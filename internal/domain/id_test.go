package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserIDShape(t *testing.T) {
	id := NewUserID()
	assert.True(t, strings.HasPrefix(id, "user_"))
	assert.Len(t, id, len("user_")+21)
	assert.True(t, IsUserID(id))
	assert.False(t, IsTodoID(id))
}

func TestNewTodoIDShape(t *testing.T) {
	id := NewTodoID()
	assert.True(t, strings.HasPrefix(id, "todo_"))
	assert.True(t, IsTodoID(id))
	assert.False(t, IsUserID(id))
}

func TestIsUserIDRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"user_",
		"user_short",
		"user_" + strings.Repeat("a", 22),
		"user_" + strings.Repeat("a", 20) + "-",
		"user_" + strings.Repeat("a", 20) + "_",
		"usr_" + strings.Repeat("a", 21),
		strings.Repeat("a", 26),
	}
	for _, c := range cases {
		assert.False(t, IsUserID(c), "accepted %q", c)
	}
}

func TestIDUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewUserID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
