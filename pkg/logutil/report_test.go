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
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

func TestNoopReporter(t *testing.T) {
	// the zero reporter gets both halves filled with noops
	SetLogReporter(&TraceReporter{})
	defer SetLogReporter(&TraceReporter{})

	require.Equal(t, zap.String("span", "{}"), GetContextFieldFunc()(context.Background()))

	buf, err := GetReportZapFunc()(nil, zapcore.Entry{Message: "dropped"}, nil)
	require.NoError(t, err)
	require.Equal(t, 0, buf.Len())

	require.Equal(t, zap.Bool(MOInternalFiledKeyNoopReport, true), NoReportFiled())
}

func TestSetLogReporterPartial(t *testing.T) {
	SetLogReporter(&TraceReporter{
		ContextField: func(context.Context) zap.Field {
			return zap.String("trace", "local")
		},
	})
	defer SetLogReporter(&TraceReporter{})

	require.Equal(t, zap.String("trace", "local"), GetContextFieldFunc()(context.Background()))

	// the missing half falls back to the noop
	buf, err := GetReportZapFunc()(nil, zapcore.Entry{}, nil)
	require.NoError(t, err)
	require.Equal(t, 0, buf.Len())
}

func TestTraceLogEncoder(t *testing.T) {
	enc := newTraceLogEncoder(getLoggerEncoder("json"))

	var reported int32
	SetLogReporter(&TraceReporter{
		ReportZap: func(e zapcore.Encoder, entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
			atomic.AddInt32(&reported, 1)
			return e.EncodeEntry(entry, fields)
		},
	})
	defer SetLogReporter(&TraceReporter{})

	entry := zapcore.Entry{Level: zapcore.InfoLevel, Message: "merge round"}

	buf, err := enc.EncodeEntry(entry, []zap.Field{zap.Int("ways", 3)})
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"msg":"merge round"`)
	require.Contains(t, buf.String(), `"ways":3`)
	require.Equal(t, int32(1), atomic.LoadInt32(&reported))

	// the marker short-circuits before the reporter sees the entry
	buf, err = enc.EncodeEntry(entry, []zap.Field{NoReportFiled()})
	require.NoError(t, err)
	require.Equal(t, 0, buf.Len())
	require.Equal(t, int32(1), atomic.LoadInt32(&reported))
}

func TestTraceLogEncoderClone(t *testing.T) {
	enc := newTraceLogEncoder(getLoggerEncoder("json"))
	clone, ok := enc.Clone().(*traceLogEncoder)
	require.True(t, ok)
	require.NotSame(t, enc, clone)
}
