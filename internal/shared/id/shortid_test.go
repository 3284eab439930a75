package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientID(t *testing.T) {
	sid, err := NewClientID()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sid, "cl_"))
	assert.Len(t, sid, len("cl_")+DefaultLength)
	assert.NoError(t, ValidatePrefix(sid, PrefixClient))
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		s, err := Generate(0)
		require.NoError(t, err)
		assert.False(t, seen[s], "duplicate id %s", s)
		seen[s] = true
	}
}

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"cl_abc123", false},
		{"pay_abc123", true},
		{"cl_", true},
		{"clabc", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := ValidatePrefix(tt.in, PrefixClient)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
