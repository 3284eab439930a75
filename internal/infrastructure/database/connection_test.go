package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/shared/config"
)

func TestInit_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "gym.db"),
	}

	require.NoError(t, Init(cfg))
	t.Cleanup(func() { _ = Close() })

	require.NotNil(t, Get())
	var one int
	require.NoError(t, Get().Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}
