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
	"sync/atomic"

	"go.uber.org/zap"
)

var _globalLogger atomic.Value
var _skip1Logger atomic.Value
var _errorLogger atomic.Value
var _globalLogConfig atomic.Value

func init() {
	conf := &LogConfig{Level: "info", Format: "console", DisableStore: true}
	setGlobalLogConfig(conf)
	replaceGlobalLogger(newMOLogger(conf))
}

// GetGlobalLogger returns the current global zap logger.
func GetGlobalLogger() *zap.Logger {
	return _globalLogger.Load().(*zap.Logger)
}

// GetSkip1Logger returns the global logger with caller skip 1, for use
// inside logging helper functions.
func GetSkip1Logger() *zap.Logger {
	return _skip1Logger.Load().(*zap.Logger)
}

// GetErrorLogger returns the skip-1 logger with stacktraces captured at
// error level and above.
func GetErrorLogger() *zap.Logger {
	return _errorLogger.Load().(*zap.Logger)
}

func replaceGlobalLogger(logger *zap.Logger) {
	_globalLogger.Store(logger)
	_skip1Logger.Store(logger.WithOptions(zap.AddCallerSkip(1)))
	_errorLogger.Store(logger.WithOptions(zap.AddCallerSkip(1), zap.AddStacktrace(zap.ErrorLevel)))
	zap.ReplaceGlobals(logger)
}

func setGlobalLogConfig(cfg *LogConfig) {
	_globalLogConfig.Store(cfg)
}

func getGlobalLogConfig() *LogConfig {
	return _globalLogConfig.Load().(*LogConfig)
}
