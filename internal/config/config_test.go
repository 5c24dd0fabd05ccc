package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknot/internal/config"
)

func write(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &config.Config{}, cfg)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "lvknot.yaml", "parallelDepth: 3\nlogLevel: debug\nformat: mermaid\n")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, &config.Config{ParallelDepth: 3, LogLevel: "debug", Format: "mermaid"}, cfg)
}

func TestLoad_YmlFallback(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "lvknot.yml", "format: yaml\n")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, config.FormatYAML, cfg.Format)
}

func TestLoad_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"negative depth": "parallelDepth: -1\n",
		"bad level":      "logLevel: loud\n",
		"bad format":     "format: svg\n",
	} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			write(t, dir, "lvknot.yaml", body)
			_, err := config.Load(dir)
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	dir := t.TempDir()
	write(t, dir, "lvknot.yaml", "parallelDepth: [\n")
	_, err := config.Load(dir)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"DEBUG": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := config.ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
