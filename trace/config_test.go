package trace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segalloc/segalloc/trace"
)

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: mmap\ncheckEveryStep: true\n"), 0o644))

	cfg, err := trace.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "mmap", cfg.Provider)
	require.True(t, cfg.CheckEveryStep)
	require.Equal(t, -1, cfg.FailAfterSbrk)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := trace.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
