//
// log.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"os"

	"github.com/juju/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger creates a logger writing to standard error and optionally
// to the file path. Debug mode uses the console encoder at debug
// level, otherwise JSON records at info level.
func newLogger(debug bool, path string) (*zap.Logger, error) {
	var (
		encoder zapcore.Encoder
		level   zapcore.LevelEnabler
	)
	timeEncoder := zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.999999")

	if debug {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = timeEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
		level = zap.DebugLevel
	} else {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = timeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
		level = zap.InfoLevel
	}
	writers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stderr)}
	if path != "" {
		sink, _, err := zap.Open(path)
		if err != nil {
			return nil, errors.Annotatef(err, "log file %s", path)
		}
		writers = append(writers, sink)
	}
	core := zapcore.NewCore(encoder, zap.CombineWriteSyncers(writers...),
		level)
	return zap.New(core), nil
}
