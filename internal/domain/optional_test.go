package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type optionalPayload struct {
	Name Optional[string] `json:"name"`
}

func TestOptionalAbsent(t *testing.T) {
	var p optionalPayload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

	assert.False(t, p.Name.Present())
	assert.False(t, p.Name.Null())
	_, ok := p.Name.Get()
	assert.False(t, ok)
}

func TestOptionalNull(t *testing.T) {
	var p optionalPayload
	require.NoError(t, json.Unmarshal([]byte(`{"name":null}`), &p))

	assert.True(t, p.Name.Present())
	assert.True(t, p.Name.Null())
	_, ok := p.Name.Get()
	assert.False(t, ok)
}

func TestOptionalValue(t *testing.T) {
	var p optionalPayload
	require.NoError(t, json.Unmarshal([]byte(`{"name":"alice"}`), &p))

	assert.True(t, p.Name.Present())
	assert.False(t, p.Name.Null())
	v, ok := p.Name.Get()
	assert.True(t, ok)
	assert.Equal(t, "alice", v)
}

func TestOptionalEmptyStringIsAValue(t *testing.T) {
	var p optionalPayload
	require.NoError(t, json.Unmarshal([]byte(`{"name":""}`), &p))

	v, ok := p.Name.Get()
	assert.True(t, ok)
	assert.Equal(t, "", v)
}
