package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"carscrape"
	"carscrape/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := yaml.Load("")
		require.NoError(t, err)

		assert.Equal(t, carscrape.TieBreakFields, cfg.TieBreak)
		assert.Equal(t, carscrape.DefaultMaxCheckSegments, cfg.MaxCheckSegments)
		assert.Equal(t, carscrape.DefaultMinSlugLength, cfg.MinSlugLength)
	})

	t.Run("file values layer over defaults", func(t *testing.T) {
		path := writeConfig(t, `
allowed_domains:
  - stock.example.net
tie_break: order
concurrency: 4
min_slug_length: 3
`)
		cfg, err := yaml.Load(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"stock.example.net"}, cfg.AllowedDomains)
		assert.Equal(t, carscrape.TieBreakOrder, cfg.TieBreak)
		assert.Equal(t, 4, cfg.Concurrency)
		assert.Equal(t, 3, cfg.MinSlugLength)
		// Untouched keys keep their defaults.
		assert.Equal(t, carscrape.DefaultMaxCheckSegments, cfg.MaxCheckSegments)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		t.Setenv("CARSCRAPE_DB_PATH", "/tmp/override.db")
		t.Setenv("CARSCRAPE_CONCURRENCY", "8")

		path := writeConfig(t, "db_path: from-file.db\nconcurrency: 2\n")
		cfg, err := yaml.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "/tmp/override.db", cfg.DBPath)
		assert.Equal(t, 8, cfg.Concurrency)
	})

	t.Run("rejects unknown tie break", func(t *testing.T) {
		path := writeConfig(t, "tie_break: coin-flip\n")
		_, err := yaml.Load(path)
		require.Error(t, err)
		assert.Equal(t, carscrape.EINVALID, carscrape.ErrorCode(err))
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := yaml.Load("/nonexistent/config.yaml")
		require.Error(t, err)
		assert.Equal(t, carscrape.EINVALID, carscrape.ErrorCode(err))
	})
}
