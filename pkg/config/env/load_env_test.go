package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CONTENT_DIR=/srv/content\nPORT=9090\n"), 0o644))

	t.Setenv("ENV_PATH", "")
	t.Setenv("CONTENT_DIR", "")
	t.Setenv("PORT", "8080")
	require.NoError(t, os.Unsetenv("CONTENT_DIR"))

	require.NoError(t, LoadDotEnv("local", filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "/srv/content", os.Getenv("CONTENT_DIR"))
	assert.Equal(t, "8080", os.Getenv("PORT"), "existing variables win")
}

func TestLoadDotEnv_Missing(t *testing.T) {
	t.Setenv("ENV_PATH", "")

	assert.Error(t, LoadDotEnv("local", filepath.Join(t.TempDir(), "none.env")))
	assert.NoError(t, LoadDotEnv("production", filepath.Join(t.TempDir(), "none.env")))

	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "gone.env"))
	assert.NoError(t, LoadDotEnv("production"))
	assert.Error(t, LoadDotEnv("local"))
}
