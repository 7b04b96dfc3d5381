package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_JSONRoundTrip(t *testing.T) {
	src := []byte(`{"category-id":"greetings-1","multiline_text":"Hello\nவணக்கம்","languages":["en","ta"],"author":"upstream","rating":4.5}`)

	var it Item
	require.NoError(t, json.Unmarshal(src, &it))
	assert.Equal(t, "greetings-1", it.CategoryID)
	assert.Equal(t, "Hello\nவணக்கம்", it.Text)
	assert.Equal(t, []string{"en", "ta"}, it.Languages)
	assert.Equal(t, "upstream", it.Extra["author"])
	assert.Equal(t, 4.5, it.Extra["rating"])

	out, err := json.Marshal(it)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	// Unknown attributes survive the round trip.
	assert.Equal(t, "upstream", decoded["author"])
	assert.Equal(t, 4.5, decoded["rating"])
	assert.Equal(t, "greetings-1", decoded["category-id"])
}

func TestItem_Merge(t *testing.T) {
	it := ItemFromMap(map[string]any{
		"category-id":    "greetings-1",
		"multiline_text": "Hello",
		"languages":      []any{"en"},
		"author":         "upstream",
	})

	it.Merge(map[string]any{
		"multiline_text": "Hi",
		"foo":            "bar",
	})

	assert.Equal(t, "Hi", it.Text)
	assert.Equal(t, "bar", it.Extra["foo"])
	assert.Equal(t, "upstream", it.Extra["author"])
	assert.Equal(t, []string{"en"}, it.Languages)
	assert.Equal(t, "greetings-1", it.CategoryID)
}

func TestItem_CloneIsIndependent(t *testing.T) {
	it := ItemFromMap(map[string]any{"category-id": "a", "extra": "x"})
	cl := it.Clone()
	cl.Extra["extra"] = "y"
	assert.Equal(t, "x", it.Extra["extra"])
}
