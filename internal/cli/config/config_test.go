package config_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/internal/cli/config"
)

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "info", "")
	fs.String("out-suffix", "", "")
	fs.Bool("color", false, "")
	fs.String("vocab", "", "")
	return fs
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.DefaultOutSuffix, cfg.OutSuffix)
	assert.False(t, cfg.Color)
	assert.Empty(t, cfg.File)
}

func TestPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tilegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nout_suffix: _file.go\nheader: from file\n"), 0o600))
	t.Setenv("TILEGEN_OUT_SUFFIX", "_env.go")

	fs := flagSet()
	require.NoError(t, fs.Parse([]string{"--color", "--vocab", "x.yaml"}))

	cfg, err := config.Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "_env.go", cfg.OutSuffix)
	assert.Equal(t, "from file", cfg.Header)
	assert.True(t, cfg.Color)

	require.NoError(t, fs.Parse([]string{"--out-suffix", "_flag.go"}))
	cfg, err = config.Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "_flag.go", cfg.OutSuffix)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestBadLevel(t *testing.T) {
	fs := flagSet()
	require.NoError(t, fs.Parse([]string{"--log-level", "loud"}))
	_, err := config.Load("", fs)
	assert.ErrorContains(t, err, "log_level")
}

func TestMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestContext(t *testing.T) {
	assert.Equal(t, config.DefaultOutSuffix, config.FromContext(context.Background()).OutSuffix)

	cfg := &config.Config{OutSuffix: "_x.go"}
	assert.Same(t, cfg, config.FromContext(config.WithConfig(context.Background(), cfg)))
}
