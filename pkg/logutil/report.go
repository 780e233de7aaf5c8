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
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// MOInternalFiledKeyNoopReport marks an entry that must not reach the
// report sink.
const MOInternalFiledKeyNoopReport = "MOInternalFiledKeyNoopReport"

// NoReportFiled returns the marker field attached to log calls that
// should skip reporting.
func NoReportFiled() zap.Field {
	return zap.Bool(MOInternalFiledKeyNoopReport, true)
}

type reportZapFunc func(zapcore.Encoder, zapcore.Entry, []zapcore.Field) (*buffer.Buffer, error)

type contextFieldFunc func(context.Context) zap.Field

// TraceReporter hooks the report sink into an external collector. The
// zero reporter is a noop that encodes nothing.
type TraceReporter struct {
	ReportZap    reportZapFunc
	ContextField contextFieldFunc
}

var gReportZapPool = buffer.NewPool()

func noopReportZap(zapcore.Encoder, zapcore.Entry, []zapcore.Field) (*buffer.Buffer, error) {
	return gReportZapPool.Get(), nil
}

func noopContextField(context.Context) zap.Field {
	return zap.String("span", "{}")
}

var gReporter atomic.Value

func init() {
	SetLogReporter(&TraceReporter{noopReportZap, noopContextField})
}

// SetLogReporter replaces the active reporter.
func SetLogReporter(r *TraceReporter) {
	if r.ReportZap == nil {
		r.ReportZap = noopReportZap
	}
	if r.ContextField == nil {
		r.ContextField = noopContextField
	}
	gReporter.Store(r)
}

func GetReportZapFunc() reportZapFunc {
	return gReporter.Load().(*TraceReporter).ReportZap
}

func GetContextFieldFunc() contextFieldFunc {
	return gReporter.Load().(*TraceReporter).ContextField
}

var _ zapcore.Encoder = (*traceLogEncoder)(nil)

// traceLogEncoder encodes entries through the active reporter, dropping
// entries carrying the noop-report marker.
type traceLogEncoder struct {
	zapcore.Encoder
}

func newTraceLogEncoder(enc zapcore.Encoder) *traceLogEncoder {
	return &traceLogEncoder{Encoder: enc}
}

func (e *traceLogEncoder) Clone() zapcore.Encoder {
	return &traceLogEncoder{Encoder: e.Encoder.Clone()}
}

func (e *traceLogEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	for _, f := range fields {
		if f.Key == MOInternalFiledKeyNoopReport {
			return gReportZapPool.Get(), nil
		}
	}
	return GetReportZapFunc()(e.Encoder, entry, fields)
}

const defaultStoreLimit = 1024

// entryStore keeps the most recent encoded report entries in memory
// until a reporter ships them.
type entryStore struct {
	sync.Mutex
	limit   int
	entries []string
}

var gStore = &entryStore{limit: defaultStoreLimit}

func getStoreSyncer() zapcore.WriteSyncer {
	return gStore
}

func (s *entryStore) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	s.Lock()
	defer s.Unlock()
	if len(s.entries) >= s.limit {
		s.entries = s.entries[1:]
	}
	s.entries = append(s.entries, string(p))
	return len(p), nil
}

func (s *entryStore) Sync() error {
	return nil
}

// StoreEntries snapshots the buffered report entries, most recent last.
func StoreEntries() []string {
	gStore.Lock()
	defer gStore.Unlock()
	entries := make([]string, len(gStore.entries))
	copy(entries, gStore.entries)
	return entries
}

// ResetStore drops all buffered report entries.
func ResetStore() {
	gStore.Lock()
	defer gStore.Unlock()
	gStore.entries = gStore.entries[:0]
}
