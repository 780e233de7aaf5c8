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

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/mosort/pkg/common/moerr"
	"github.com/matrixorigin/mosort/pkg/testutil"
)

func TestSortVector(t *testing.T) {
	cfg := newTestConfig("int64")
	vec := testutil.MakeInt64Vector([]int64{7, 3, 9, 1, 5}, nil)
	sels, err := sortVector(cfg, vec)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 1, 4, 0, 2}, sels)

	cfg.Limit = 3
	sels, err = sortVector(cfg, vec)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 1, 4}, sels)
}

func TestSortFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.csv")
	data := "3,c\n1,a\n\\N,d\n2,b\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg := newTestConfig("int64")
	require.NoError(t, sortFile(context.Background(), cfg, path))

	out, err := os.ReadFile(filepath.Join(dir, "in.sorted.csv"))
	require.NoError(t, err)
	require.Equal(t, "\\N,d\n1,a\n2,b\n3,c\n", string(out))
}

func TestSortFileTop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("7,a\n3,b\n9,c\n1,d\n5,e\n"), 0644))

	cfg := newTestConfig("int64")
	cfg.Limit = 2
	cfg.Desc = true
	require.NoError(t, sortFile(context.Background(), cfg, path))

	out, err := os.ReadFile(filepath.Join(dir, "in.sorted.csv"))
	require.NoError(t, err)
	require.Equal(t, "9,c\n7,a\n", string(out))
}

func TestSortFileBadCell(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("3,a\nx,b\n"), 0644))

	cfg := newTestConfig("int64")
	err := sortFile(context.Background(), cfg, path)
	require.Error(t, err)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))

	_, err = os.Stat(filepath.Join(dir, "in.sorted.csv"))
	require.True(t, os.IsNotExist(err))
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	require.NoError(t, os.WriteFile(a, []byte("2\n1\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("4\n3\n"), 0644))

	cfg := newTestConfig("int64")
	cfg.InputFiles = []string{a, b}
	cfg.ParallelFiles = 2
	require.NoError(t, runFiles(context.Background(), cfg))

	out, err := os.ReadFile(filepath.Join(dir, "a.sorted.csv"))
	require.NoError(t, err)
	require.Equal(t, "1\n2\n", string(out))
	out, err = os.ReadFile(filepath.Join(dir, "b.sorted.csv"))
	require.NoError(t, err)
	require.Equal(t, "3\n4\n", string(out))

	cfg.InputFiles = append(cfg.InputFiles, filepath.Join(dir, "missing.csv"))
	err = runFiles(context.Background(), cfg)
	require.Error(t, err)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrFileNotFound))
}

func TestRunBench(t *testing.T) {
	cfg := newTestConfig("int64")
	cfg.BenchRows = 100
	cfg.BenchRounds = 2
	require.NoError(t, runBench(context.Background(), cfg))

	cfg = newTestConfig("varchar")
	cfg.BenchRows = 50
	cfg.Limit = 10
	require.NoError(t, runBench(context.Background(), cfg))
}

func TestRunBenchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := runBench(ctx, newTestConfig("int64"))
	require.Error(t, err)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrQueryInterrupted))
}
