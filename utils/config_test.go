package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()
	require.Equal(t, 60, config.Width)
	require.Equal(t, 30, config.Height)
	require.Equal(t, "conway", config.RuleName)
	require.Positive(t, config.MaxGenerations)
	require.InDelta(t, 0.15, config.RandomDensity, 0.0001)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns defaults and an error", func(t *testing.T) {
		t.Parallel()

		config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		require.Equal(t, DefaultConfig(), config)
	})

	t.Run("file values override defaults, others survive", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.json")
		content := `{"width": 128, "rule_name": "highlife", "frame_rate": 50000000}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, 128, config.Width)
		require.Equal(t, "highlife", config.RuleName)
		require.Equal(t, 50*time.Millisecond, config.FrameRate)
		require.Equal(t, DefaultConfig().Height, config.Height)
	})

	t.Run("malformed JSON returns an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})
}

func TestStats_Update(t *testing.T) {
	t.Parallel()

	stats := NewStats()
	stats.Update(1, 100, 100*time.Millisecond)
	require.Equal(t, 1, stats.TotalGenerations)
	require.InDelta(t, 10.0, stats.GenerationsPerSecond, 0.01)
	require.InDelta(t, 100.0, stats.AveragePopulation, 0.0001)

	// Moving average pulls slowly toward the new population.
	stats.Update(2, 0, 100*time.Millisecond)
	require.InDelta(t, 90.0, stats.AveragePopulation, 0.0001)
}
