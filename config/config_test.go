//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/markkurossi/wide/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "widecalc.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
int = "u1024"
float = "float512"
workers = 4
max_iterations = 200

[log]
debug = true
path = "/tmp/widecalc.log"
`)
	conf, meta, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, meta.IsDefined("log", "path"))
	assert.Equal(t, "u1024", conf.Int)
	assert.Equal(t, "float512", conf.Float)
	assert.Equal(t, 4, conf.Workers)
	assert.Equal(t, 200, conf.MaxIterations)
	assert.True(t, conf.Log.Debug)
	assert.Equal(t, "/tmp/widecalc.log", conf.Log.Path)

	cfg, err := conf.Env(zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, types.Uint(1024), cfg.GetIntType())
	assert.Equal(t, types.Float(512), cfg.GetFloatType())
	assert.Equal(t, 4, cfg.GetWorkers())
	assert.Equal(t, 200, cfg.GetMaxIterations())
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "workers = 2\n")
	conf, _, err := LoadConfig(path)
	require.NoError(t, err)
	defaults := GetDefaultConfig()
	assert.Equal(t, defaults.Int, conf.Int)
	assert.Equal(t, defaults.Float, conf.Float)
	assert.Equal(t, defaults.MaxIterations, conf.MaxIterations)
	assert.Equal(t, 2, conf.Workers)
	assert.False(t, conf.Log.Debug)

	cfg, err := conf.Env(nil)
	require.NoError(t, err)
	assert.Equal(t, types.Uint8192, cfg.GetIntType())
	assert.Equal(t, types.Float128, cfg.GetFloatType())
}

var invalidConfigs = []string{
	`int = "f64"`,
	`int = "u100"`,
	`float = "i64"`,
	`float = "double"`,
	`workers = -1`,
	`max_iterations = 0`,
	`workers = "many"`,
}

func TestLoadConfigInvalid(t *testing.T) {
	for idx, content := range invalidConfigs {
		_, _, err := LoadConfig(writeConfig(t, content))
		assert.Error(t, err, "config%d: %s", idx, content)
	}
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDefaultConfigValid(t *testing.T) {
	assert.NoError(t, GetDefaultConfig().Validate())
}
