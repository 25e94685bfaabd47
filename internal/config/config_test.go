package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
		assert.Equal(t, DefaultTimeout, time.Duration(cfg.Timeout))
	})

	t.Run("full file is parsed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"base_url: https://fraud.globobank.example/api\n"+
				"timeout: 10s\n"+
				"state_dir: /tmp/frauddesk-state\n"+
				"cache_dir: /tmp/frauddesk-cache\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://fraud.globobank.example/api", cfg.BaseURL)
		assert.Equal(t, 10*time.Second, time.Duration(cfg.Timeout))
		assert.Equal(t, "/tmp/frauddesk-state", cfg.StateDir)
		assert.Equal(t, "/tmp/frauddesk-cache", cfg.CacheDir)
	})

	t.Run("partial file keeps defaults for the rest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("state_dir: /tmp/elsewhere\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
		assert.Equal(t, DefaultTimeout, time.Duration(cfg.Timeout))
		assert.Equal(t, "/tmp/elsewhere", cfg.StateDir)
	})

	t.Run("bad duration is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("timeout: soon\n"), 0o600))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("base_url: [\n"), 0o600))

		_, err := Load(path)
		assert.Error(t, err)
	})
}
