package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/fling/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("Missing file yields defaults", func(t *testing.T) {
		cfg, err := cli.LoadConfig(filepath.Join(t.TempDir(), "fling.yaml"))
		require.NoError(t, err)
		assert.Equal(t, cli.DefaultConfig(), cfg)
	})

	t.Run("YAML overrides defaults", func(t *testing.T) {
		path := writeFile(t, "fling.yaml", `
viewport_width: 390
log_level: debug
store:
  backend: redis
  redis:
    addr: cache:6379
    ttl: 24h
cards:
  - id: c1
    title: First
`)
		cfg, err := cli.LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 390.0, cfg.ViewportWidth)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "redis", cfg.Store.Backend)
		assert.Equal(t, "cache:6379", cfg.Store.Redis.Addr)
		assert.Equal(t, "24h", cfg.Store.Redis.TTL)
		assert.Equal(t, 8080, cfg.HTTP.Port, "untouched fields keep defaults")
		assert.True(t, cfg.Metrics)
		require.Len(t, cfg.DeckCards(), 1)
		assert.Equal(t, "c1", cfg.DeckCards()[0].ID)
	})

	t.Run("JSON by extension", func(t *testing.T) {
		path := writeFile(t, "fling.json", `{"http": {"port": 9090}, "metrics": false}`)
		cfg, err := cli.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.HTTP.Port)
		assert.False(t, cfg.Metrics)
	})

	t.Run("Invalid documents fail", func(t *testing.T) {
		_, err := cli.LoadConfig(writeFile(t, "fling.yaml", "store: [unclosed"))
		assert.Error(t, err)

		_, err = cli.LoadConfig(writeFile(t, "fling.yaml", "viewport_width: -1"))
		assert.Error(t, err)
	})
}

func TestDeckCards_Sample(t *testing.T) {
	cards := cli.DefaultConfig().DeckCards()
	assert.NotEmpty(t, cards)
	for _, c := range cards {
		assert.NotEmpty(t, c.ID)
	}
}
