package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceJSONKeepsNullableFields(t *testing.T) {
	raw, err := json.Marshal(Place{ID: 9, Name: "Bare", Category: PlaceCategoryMountain, Price: 10})
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{"region", "image", "description"} {
		value, ok := fields[key]
		if assert.True(t, ok, "missing key %s", key) {
			assert.Equal(t, "null", string(value))
		}
	}
	assert.NotContains(t, fields, "features")
}
