package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeIDFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NodeID
		wantErr bool
	}{
		{name: "zero", input: "0", want: 0},
		{name: "plain number", input: "42", want: 42},
		{name: "surrounding whitespace", input: " 7 ", wantErr: true},
		{name: "plus sign", input: "+7", wantErr: true},
		{name: "max uint64", input: "18446744073709551615", want: NodeID(^uint64(0))},
		{name: "empty", input: "", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "decimal", input: "1.5", wantErr: true},
		{name: "overflow", input: "18446744073709551616", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewNodeIDFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidNodeID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNodeID_String(t *testing.T) {
	assert.Equal(t, "0", NodeID(0).String())
	assert.Equal(t, "1234", NodeID(1234).String())
	assert.Equal(t, uint64(99), NodeID(99).Uint64())
}
