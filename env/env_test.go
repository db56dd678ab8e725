//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"crypto/rand"
	"runtime"
	"testing"

	"github.com/markkurossi/wide/prg"
	"github.com/markkurossi/wide/types"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	cfg := new(Config)
	assert.Equal(t, rand.Reader, cfg.GetRandom())
	assert.NotNil(t, cfg.GetLogger())
	assert.Equal(t, runtime.NumCPU(), cfg.GetWorkers())
	assert.Equal(t, types.Uint8192, cfg.GetIntType())
	assert.Equal(t, types.Float128, cfg.GetFloatType())
	assert.Equal(t, DefaultMaxIterations, cfg.GetMaxIterations())
}

func TestOverrides(t *testing.T) {
	r := prg.FromSeed(1)
	logger := zap.NewExample()
	cfg := &Config{
		Rand:          r,
		Logger:        logger,
		Workers:       3,
		IntType:       types.Int(512),
		FloatType:     types.Float(1024),
		MaxIterations: 10,
	}
	assert.Equal(t, r, cfg.GetRandom())
	assert.Equal(t, logger, cfg.GetLogger())
	assert.Equal(t, 3, cfg.GetWorkers())
	assert.Equal(t, types.Int(512), cfg.GetIntType())
	assert.Equal(t, types.Float(1024), cfg.GetFloatType())
	assert.Equal(t, 10, cfg.GetMaxIterations())
}

func TestInvalidTypes(t *testing.T) {
	cfg := &Config{
		IntType:   types.Float(64),
		FloatType: types.Uint(100),
	}
	assert.Equal(t, DefaultIntType, cfg.GetIntType())
	assert.Equal(t, DefaultFloatType, cfg.GetFloatType())
}
