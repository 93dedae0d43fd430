package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cancanxinxin/grl"
	"github.com/cancanxinxin/grl/pkg/framelog"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, grl.DefaultInitialSize, cfg.Encoder.InitialSize)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, framelog.CompZstd, cfg.FrameLogOptions().Compression)
	assert.Equal(t, grl.IDNames{}, cfg.EncoderOptions(nil).Names)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
encoder:
  initial_size: 65536
  legacy_zero_timestamp: true
  workers: 2
names:
  geometries:
    4400: probe
    8700: pointer
log:
  level: debug
framelog:
  compression: lz4
  device: ft-500-left
`))
	require.NoError(t, err)
	assert.Equal(t, 65536, cfg.Encoder.InitialSize)
	assert.True(t, cfg.Encoder.LegacyZeroTimestamp)
	assert.Equal(t, 2, cfg.Encoder.Workers)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, framelog.Options{Compression: framelog.CompLZ4, Device: "ft-500-left"}, cfg.FrameLogOptions())

	opts := cfg.EncoderOptions(slog.Default())
	assert.Equal(t, 65536, opts.InitialSize)
	assert.True(t, opts.LegacyZeroTimestamp)
	name, ok := opts.Names.MarkerName(1, 4400)
	require.True(t, ok)
	assert.Equal(t, "probe", name)
	name, _ = opts.Names.MarkerName(1, 9)
	assert.Equal(t, "1_9", name)
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("log:\n  level: warn\n"))
	require.NoError(t, err)
	assert.Equal(t, Default().Encoder, cfg.Encoder)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())

	cfg, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "encoder:\n  buffer: 1\n",
		"bad level":    "log:\n  level: loud\n",
		"bad codec":    "framelog:\n  compression: gzip\n",
		"neg workers":  "encoder:\n  workers: -1\n",
		"neg size":     "encoder:\n  initial_size: -5\n",
		"not yaml map": "- a\n- b\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("encoder:\n  workers: 7\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Encoder.Workers)

	t.Setenv(EnvConfig, path)
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Encoder.Workers)

	t.Setenv(EnvConfig, "")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
