package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.env")
	err := os.WriteFile(path, []byte("PAPER2NOTE_TEST_KEY=from-file\nPAPER2NOTE_TEST_KEEP=from-file\n"), 0o600)
	require.NoError(t, err)

	t.Setenv(envFileVar, path)
	t.Setenv("PAPER2NOTE_TEST_KEEP", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("PAPER2NOTE_TEST_KEY") })

	require.NoError(t, loadEnvFile())
	assert.Equal(t, "from-file", os.Getenv("PAPER2NOTE_TEST_KEY"))
	assert.Equal(t, "from-env", os.Getenv("PAPER2NOTE_TEST_KEEP"))
}

func TestLoadEnvFile_Missing(t *testing.T) {
	t.Setenv(envFileVar, filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, loadEnvFile())
}
