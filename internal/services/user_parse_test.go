package services

import (
	"encoding/json"
	"strings"
	"testing"

	"todoapi/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUserInput(t *testing.T, body string) CreateUserInput {
	t.Helper()
	var in CreateUserInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func updateUserInput(t *testing.T, body string) UpdateUserInput {
	t.Helper()
	var in UpdateUserInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func TestParseCreateUser(t *testing.T) {
	name, err := ParseCreateUser(createUserInput(t, `{"name":"alice"}`))
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
}

func TestParseCreateUserRejections(t *testing.T) {
	cases := []struct {
		body string
		msg  string
	}{
		{`{}`, "`name` must be not null"},
		{`{"name":null}`, "`name` must be not null"},
		{`{"name":""}`, "`name` must be not empty"},
		{`{"name":"` + strings.Repeat("a", 101) + `"}`, "`name` must be up to 100 characteres"},
	}
	for _, tc := range cases {
		_, err := ParseCreateUser(createUserInput(t, tc.body))
		require.Error(t, err, tc.body)
		assert.Equal(t, tc.msg, err.Error())
		assert.True(t, domain.IsValidation(err))
	}
}

func TestParseCreateUserCountsCodePoints(t *testing.T) {
	// 100 multibyte runes are fine even though they exceed 100 bytes.
	name100 := strings.Repeat("ä", 100)
	got, err := ParseCreateUser(createUserInput(t, `{"name":"`+name100+`"}`))
	require.NoError(t, err)
	assert.Equal(t, name100, got)

	_, err = ParseCreateUser(createUserInput(t, `{"name":"`+strings.Repeat("ä", 101)+`"}`))
	require.Error(t, err)
	assert.Equal(t, "`name` must be up to 100 characteres", err.Error())
}

func TestParseUpdateUser(t *testing.T) {
	id := domain.NewUserID()

	params, err := ParseUpdateUser(id, updateUserInput(t, `{"name":"bob"}`))
	require.NoError(t, err)
	assert.Equal(t, id, params.ID)
	require.NotNil(t, params.Name)
	assert.Equal(t, "bob", *params.Name)
}

func TestParseUpdateUserAbsentNameMeansNoChange(t *testing.T) {
	params, err := ParseUpdateUser(domain.NewUserID(), updateUserInput(t, `{}`))
	require.NoError(t, err)
	assert.Nil(t, params.Name)
}

func TestParseUpdateUserNullName(t *testing.T) {
	_, err := ParseUpdateUser(domain.NewUserID(), updateUserInput(t, `{"name":null}`))
	require.Error(t, err)
	assert.Equal(t, "`name` must be not null", err.Error())
}

func TestParseUpdateUserChecksNameBeforeID(t *testing.T) {
	// Payload problems surface before the id is looked at.
	_, err := ParseUpdateUser("bogus", updateUserInput(t, `{"name":null}`))
	require.Error(t, err)
	assert.Equal(t, "`name` must be not null", err.Error())

	_, err = ParseUpdateUser("bogus", updateUserInput(t, `{"name":"ok"}`))
	require.Error(t, err)
	assert.Equal(t, "invalid `id`", err.Error())
}

func TestParseUserIDs(t *testing.T) {
	id := domain.NewUserID()

	got, err := ParseGetUser(id)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseGetUser("nope")
	require.Error(t, err)
	assert.Equal(t, "invalid `id`", err.Error())

	_, err = ParseDeleteUser(domain.NewTodoID())
	require.Error(t, err)
	assert.Equal(t, "invalid `id`", err.Error())
}
