// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logutil

import (
	"io"
	"os"

	"github.com/matrixorigin/mosort/pkg/common/moerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig is the configuration for the global zap logger.
type LogConfig struct {
	// Level is the log level, one of debug, info, warn, error, dpanic, panic, fatal.
	Level string `toml:"level"`
	// Format is the log output encoding, json or console.
	Format string `toml:"format"`
	// Filename is the log output path. Leave it empty to log to stderr.
	Filename string `toml:"filename"`
	// MaxSize is the maximum size in MB of a log file before it gets rotated.
	MaxSize int `toml:"max-size"`
	// MaxDays is the maximum number of days to retain old log files.
	MaxDays int `toml:"max-days"`
	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int `toml:"max-backups"`

	// DisableStore stops the in-memory report sink.
	DisableStore bool `toml:"disable-store"`
	// DisableLog discards the normal output sink, keeping only the report sink.
	DisableLog bool `toml:"disable-log"`
	// StacktraceLevel is the level at and above which stacktraces are captured.
	StacktraceLevel string `toml:"stacktrace-level"`
}

// SetupMOLogger replaces the global zap logger with one built from conf.
// It panics on invalid format or on a filename pointing at a directory.
func SetupMOLogger(conf *LogConfig) {
	logger := newMOLogger(conf)
	replaceGlobalLogger(logger)
	setGlobalLogConfig(conf)
}

func newMOLogger(cfg *LogConfig) *zap.Logger {
	var cores []zapcore.Core
	level := cfg.getLevel()
	for _, sink := range cfg.getSinks() {
		cores = append(cores, zapcore.NewCore(sink.enc, sink.out, level))
	}
	return zap.New(zapcore.NewTee(cores...), cfg.getOptions()...)
}

func (cfg *LogConfig) getLevel() zap.AtomicLevel {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		panic(moerr.NewBadConfig("log level %s", cfg.Level))
	}
	return level
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(cfg.getStacktraceLevel()), zap.AddCaller()}
}

func (cfg *LogConfig) getStacktraceLevel() zapcore.Level {
	level := zapcore.FatalLevel
	if cfg.StacktraceLevel != "" {
		if l, err := zapcore.ParseLevel(cfg.StacktraceLevel); err == nil {
			level = l
		}
	}
	return level
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename != "" {
		if stat, err := os.Stat(cfg.Filename); err == nil && stat.IsDir() {
			panic("log file can't be a directory")
		}
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxDays,
			MaxBackups: cfg.MaxBackups,
			LocalTime:  true,
		})
	}
	return getConsoleSyncer()
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.AddSync(os.Stderr)
}

func (cfg *LogConfig) getEncoder() zapcore.Encoder {
	return getLoggerEncoder(cfg.Format)
}

func getLoggerEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "time",
		NameKey:        "name",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05.000000 -0700"),
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,

		ConsoleSeparator: " ",
	}
	switch format {
	case "json", "":
		return zapcore.NewJSONEncoder(encoderConfig)
	case "console":
		return zapcore.NewConsoleEncoder(encoderConfig)
	default:
		panic(moerr.NewInternalError("unsupported log format: %s", format))
	}
}

// ZapSink is one output of the logger, an encoder paired with where its
// encoded bytes go.
type ZapSink struct {
	enc zapcore.Encoder
	out zapcore.WriteSyncer
}

func (cfg *LogConfig) getSinks() (sinks []ZapSink) {
	if cfg.DisableLog {
		sinks = append(sinks, ZapSink{cfg.getEncoder(), zapcore.AddSync(io.Discard)})
	} else {
		sinks = append(sinks, ZapSink{cfg.getEncoder(), cfg.getSyncer()})
	}
	if !cfg.DisableStore {
		sinks = append(sinks, ZapSink{newTraceLogEncoder(cfg.getEncoder()), getStoreSyncer()})
	}
	return sinks
}
