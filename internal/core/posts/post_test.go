package posts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeSet_Membership(t *testing.T) {
	likes := NewLikeSet()
	assert.Equal(t, 0, likes.Count())
	assert.False(t, likes.Has("user-1"))

	likes.Add("user-1")
	assert.True(t, likes.Has("user-1"))
	assert.Equal(t, 1, likes.Count())

	// Adding an existing member is a no-op
	likes.Add("user-1")
	assert.Equal(t, 1, likes.Count())

	likes.Remove("user-1")
	assert.False(t, likes.Has("user-1"))
	assert.Equal(t, 0, likes.Count())

	// Removing an absent member is a no-op
	likes.Remove("user-1")
	assert.Equal(t, 0, likes.Count())
}

func TestLikeSet_SerializesAsUserIDMapping(t *testing.T) {
	likes := NewLikeSet()
	likes.Add("user-1")

	data, err := json.Marshal(likes)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user-1": true}`, string(data))

	var decoded LikeSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Has("user-1"))
	assert.Equal(t, 1, decoded.Count())
}
