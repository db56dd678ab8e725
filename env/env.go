//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the wide number
// modules.
package env

import (
	"crypto/rand"
	"io"
	"runtime"

	"github.com/markkurossi/wide/types"
	"go.uber.org/zap"
)

// Default values for unset configuration fields.
const (
	DefaultMaxIterations = 1024
)

// Default numeric types.
var (
	DefaultIntType   = types.Uint8192
	DefaultFloatType = types.Float128
)

// Config defines the global system configuration. It configures
// system operation for all modules. Config must not be modified
// after being passed to any module. It is safe for concurrent use by
// multiple modules as they do not modify it.
type Config struct {
	Rand          io.Reader
	Logger        *zap.Logger
	Workers       int
	IntType       types.Info
	FloatType     types.Info
	MaxIterations int
}

// GetRandom returns the source of entropy for random operands.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetLogger returns the logger. The default logger discards all
// output.
func (config *Config) GetLogger() *zap.Logger {
	if config.Logger != nil {
		return config.Logger
	}
	return zap.NewNop()
}

// GetWorkers returns the number of concurrent workers.
func (config *Config) GetWorkers() int {
	if config.Workers > 0 {
		return config.Workers
	}
	return runtime.NumCPU()
}

// GetIntType returns the integer type for intermediate values.
func (config *Config) GetIntType() types.Info {
	if config.IntType.Valid() && config.IntType.Integer() {
		return config.IntType
	}
	return DefaultIntType
}

// GetFloatType returns the floating point type for probabilities.
func (config *Config) GetFloatType() types.Info {
	if config.FloatType.Valid() && config.FloatType.Type == types.TFloat {
		return config.FloatType
	}
	return DefaultFloatType
}

// GetMaxIterations returns the iteration bound for iterative
// refinements.
func (config *Config) GetMaxIterations() int {
	if config.MaxIterations > 0 {
		return config.MaxIterations
	}
	return DefaultMaxIterations
}
