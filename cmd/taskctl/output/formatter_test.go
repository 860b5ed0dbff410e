package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

func assertValidJSON(t *testing.T, s string) {
	t.Helper()

	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
}

func TestFormat_FormatsStruct(t *testing.T) {
	result, err := NewJSONFormatter().Format(testStruct{ID: 1, Status: "Pending"})

	require.NoError(t, err)
	assertValidJSON(t, result)
	assert.Equal(t, `{"id":1,"status":"Pending"}`, result)
}

func TestFormat_FormatsEmptySlice(t *testing.T) {
	result, err := NewJSONFormatter().Format([]testStruct{})

	require.NoError(t, err)
	assert.Equal(t, "[]", result)
}

func TestFormat_Indented(t *testing.T) {
	result, err := NewIndentedJSONFormatter().Format(testStruct{ID: 1, Status: "Done"})

	require.NoError(t, err)
	assertValidJSON(t, result)
	assert.Contains(t, result, "\n  \"id\": 1")
}

func TestFormat_UnsupportedValue(t *testing.T) {
	_, err := NewJSONFormatter().Format(make(chan int))

	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	f, err := New("json")
	require.NoError(t, err)
	assert.IsType(t, &JSONFormatter{}, f)

	_, err = New("yaml")
	assert.Error(t, err)
}
