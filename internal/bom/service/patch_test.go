package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchTriState(t *testing.T) {
	type payload struct {
		Note Patch[string] `json:"note"`
	}

	// 缺省：Set=false
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	assert.False(t, p.Note.Set)
	assert.Nil(t, p.Note.Ptr())

	// 显式null：Set=true Valid=false
	p = payload{}
	require.NoError(t, json.Unmarshal([]byte(`{"note":null}`), &p))
	assert.True(t, p.Note.Set)
	assert.False(t, p.Note.Valid)
	assert.Nil(t, p.Note.Ptr())

	// 携带值
	p = payload{}
	require.NoError(t, json.Unmarshal([]byte(`{"note":"hello"}`), &p))
	assert.True(t, p.Note.Set)
	assert.True(t, p.Note.Valid)
	require.NotNil(t, p.Note.Ptr())
	assert.Equal(t, "hello", *p.Note.Ptr())
}
