//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package config implements the TOML configuration file of the
// widecalc tool.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/markkurossi/wide/env"
	"github.com/markkurossi/wide/types"
	"go.uber.org/zap"
)

// Config is the configuration for the widecalc tool.
type Config struct {
	Int           string    `toml:"int" validate:"inttype"`
	Float         string    `toml:"float" validate:"floattype"`
	Workers       int       `toml:"workers" validate:"gte=0"`
	MaxIterations int       `toml:"max_iterations" validate:"gt=0"`
	Log           LogConfig `toml:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Path  string `toml:"path"`
}

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() *Config {
	return &Config{
		Int:           env.DefaultIntType.ShortString(),
		Float:         env.DefaultFloatType.ShortString(),
		MaxIterations: env.DefaultMaxIterations,
	}
}

// FillDefault fill default values for missing values.
func (config *Config) FillDefault(meta toml.MetaData) {
	defaultConfig := GetDefaultConfig()
	if !meta.IsDefined("int") {
		config.Int = defaultConfig.Int
	}
	if !meta.IsDefined("float") {
		config.Float = defaultConfig.Float
	}
	if !meta.IsDefined("workers") {
		config.Workers = defaultConfig.Workers
	}
	if !meta.IsDefined("max_iterations") {
		config.MaxIterations = defaultConfig.MaxIterations
	}
	if !meta.IsDefined("log", "debug") {
		config.Log.Debug = defaultConfig.Log.Debug
	}
	if !meta.IsDefined("log", "path") {
		config.Log.Path = defaultConfig.Log.Path
	}
}

// Validate checks the configuration values.
func (config *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("inttype",
		typeValidator(func(info types.Info) bool {
			return info.Integer()
		})); err != nil {
		return errors.Trace(err)
	}
	if err := validate.RegisterValidation("floattype",
		typeValidator(func(info types.Info) bool {
			return info.Type == types.TFloat
		})); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(validate.Struct(config))
}

func typeValidator(accept func(info types.Info) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		info, err := types.Parse(fl.Field().String())
		if err != nil {
			return false
		}
		return accept(info)
	}
}

// Env returns the environment configuration for the configuration
// values. The configuration must be valid.
func (config *Config) Env(logger *zap.Logger) (*env.Config, error) {
	intType, err := types.Parse(config.Int)
	if err != nil {
		return nil, errors.Trace(err)
	}
	floatType, err := types.Parse(config.Float)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &env.Config{
		Logger:        logger,
		Workers:       config.Workers,
		IntType:       intType,
		FloatType:     floatType,
		MaxIterations: config.MaxIterations,
	}, nil
}

// LoadConfig loads configuration from toml file.
func LoadConfig(path string) (*Config, *toml.MetaData, error) {
	var conf Config
	metaData, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	conf.FillDefault(metaData)
	if err = conf.Validate(); err != nil {
		return nil, nil, errors.Annotatef(err, "config %s", path)
	}
	return &conf, &metaData, nil
}
