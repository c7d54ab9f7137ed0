package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable_UnmarshalJSON(t *testing.T) {
	type body struct {
		ParentID Nullable[int64] `json:"parent_id"`
	}

	tests := []struct {
		name        string
		input       string
		wantPresent bool
		wantValue   *int64
	}{
		{name: "absent", input: `{}`, wantPresent: false},
		{name: "null", input: `{"parent_id": null}`, wantPresent: true},
		{name: "value", input: `{"parent_id": 7}`, wantPresent: true, wantValue: ptr(int64(7))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b body
			require.NoError(t, json.Unmarshal([]byte(tt.input), &b))
			assert.Equal(t, tt.wantPresent, b.ParentID.Present)
			assert.Equal(t, tt.wantValue, b.ParentID.Value)
		})
	}

	t.Run("wrong type", func(t *testing.T) {
		var b body
		assert.Error(t, json.Unmarshal([]byte(`{"parent_id": "x"}`), &b))
	})
}

func TestParseItemType(t *testing.T) {
	got, err := ParseItemType("file")
	assert.NoError(t, err)
	assert.Equal(t, ItemTypeFile, got)

	got, err = ParseItemType("folder")
	assert.NoError(t, err)
	assert.Equal(t, ItemTypeFolder, got)

	_, err = ParseItemType("link")
	assert.Error(t, err)
}

func ptr[T any](v T) *T { return &v }
