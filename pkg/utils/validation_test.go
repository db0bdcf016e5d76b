package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleItem struct {
	Label *string `validate:"required"`
}

type sample struct {
	Name  *string      `validate:"required"`
	Kind  string       `validate:"omitempty,oneof=a b"`
	Items []sampleItem `validate:"required,dive"`
}

func TestValidateStruct(t *testing.T) {
	name := "ok"
	label := "x"

	t.Run("valid", func(t *testing.T) {
		err := ValidateStruct(sample{Name: &name, Items: []sampleItem{{Label: &label}}})
		assert.NoError(t, err)
	})

	t.Run("empty slice is present", func(t *testing.T) {
		err := ValidateStruct(sample{Name: &name, Items: []sampleItem{}})
		assert.NoError(t, err)
	})

	t.Run("missing fields", func(t *testing.T) {
		err := ValidateStruct(sample{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
		assert.Contains(t, err.Error(), "items is required")
	})

	t.Run("nested field", func(t *testing.T) {
		err := ValidateStruct(sample{Name: &name, Items: []sampleItem{{Label: &label}, {}}})
		require.Error(t, err)
		assert.Equal(t, "items[1].label is required", err.Error())
	})

	t.Run("oneof", func(t *testing.T) {
		err := ValidateStruct(sample{Name: &name, Kind: "c", Items: []sampleItem{}})
		require.Error(t, err)
		assert.Equal(t, "kind must be one of: a b", err.Error())
	})
}
