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
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fagongzi/util/format"
	"github.com/panjf2000/ants/v2"

	"github.com/matrixorigin/mosort/pkg/common/moerr"
	"github.com/matrixorigin/mosort/pkg/config"
	"github.com/matrixorigin/mosort/pkg/container/vector"
	"github.com/matrixorigin/mosort/pkg/logutil"
	"github.com/matrixorigin/mosort/pkg/sort"
	"github.com/matrixorigin/mosort/pkg/testutil"
)

var (
	configFile   = flag.String("cfg", "./sort.toml", "toml configuration used to start mo-sort")
	version      = flag.Bool("version", false, "print version information")
	limitFlag    = flag.String("limit", "", "keep only the first N rows, overrides the configuration")
	rowsFlag     = flag.String("rows", "", "rows of the generated dataset, overrides the configuration")
	parallelFlag = flag.String("parallel", "", "count of go routine processing input files, overrides the configuration")
)

// set by the linker
var (
	Version   = "unknown"
	GoVersion = "unknown"
)

func main() {
	flag.Parse()
	maybePrintVersion()

	rand.Seed(time.Now().UnixNano())
	cfg, err := config.LoadSortToolConfig(*configFile)
	if err != nil {
		panic(fmt.Sprintf("failed to parse config from %s, error: %s", *configFile, err.Error()))
	}
	cfg.Version = Version
	overrideConfig(cfg)

	logutil.SetupMOLogger(&cfg.Log)
	logutil.Infof("mo-sort version %s starting", cfg.Version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, syscall.SIGTERM, syscall.SIGINT)
		<-sigchan
		cancel()
	}()

	if err := run(ctx, cfg); err != nil {
		logutil.Errorf("mo-sort failed: %v", err)
		os.Exit(1)
	}
}

func maybePrintVersion() {
	if !*version {
		return
	}
	fmt.Println("MO-Sort Version:", Version)
	fmt.Println("Go Version:", GoVersion)
	os.Exit(0)
}

func overrideConfig(cfg *config.SortToolParameters) {
	if *limitFlag != "" {
		v, err := format.ParseStringUint64(*limitFlag)
		if err != nil {
			panic(fmt.Sprintf("invalid -limit %s: %v", *limitFlag, err))
		}
		cfg.Limit = int64(v)
	}
	if *rowsFlag != "" {
		v, err := format.ParseStringUint64(*rowsFlag)
		if err != nil {
			panic(fmt.Sprintf("invalid -rows %s: %v", *rowsFlag, err))
		}
		cfg.BenchRows = int64(v)
	}
	if *parallelFlag != "" {
		cfg.ParallelFiles = int64(format.MustParseStringInt(*parallelFlag))
	}
}

func run(ctx context.Context, cfg *config.SortToolParameters) error {
	if len(cfg.InputFiles) == 0 {
		return runBench(ctx, cfg)
	}
	return runFiles(ctx, cfg)
}

func runFiles(ctx context.Context, cfg *config.SortToolParameters) error {
	pool, err := ants.NewPool(int(cfg.ParallelFiles))
	if err != nil {
		return moerr.ConvertGoError(err)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	doFile := func(path string) func() {
		return func() {
			defer wg.Done()
			if err := sortFile(ctx, cfg, path); err != nil {
				logutil.Errorf("sort %s failed: %v", path, err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}
	}
	for _, path := range cfg.InputFiles {
		wg.Add(1)
		_ = pool.Submit(doFile(path))
	}
	wg.Wait()
	return firstErr
}

func sortFile(ctx context.Context, cfg *config.SortToolParameters, path string) error {
	if ctx.Err() != nil {
		return moerr.NewQueryInterrupted()
	}
	rows, err := readCSVFile(ctx, path)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		logutil.Warnf("%s is empty", path)
		return nil
	}
	cells, err := extractColumn(rows, cfg.SortColumn)
	if err != nil {
		return err
	}
	vec, err := buildColumn(cfg, cells)
	if err != nil {
		return err
	}
	sels, err := sortVector(cfg, vec)
	if err != nil {
		return err
	}
	verify, err := newVerifier(cfg, vec)
	if err != nil {
		return err
	}
	if err := verify(sels); err != nil {
		return err
	}
	out := outputPath(path)
	if err := writeCSVFile(out, rows, sels); err != nil {
		return err
	}
	logutil.Infof("%s: %d rows, output %d rows to %s, ndv %v",
		path, len(rows), len(sels), out, approxNDV(rows))
	return nil
}

func sortVector(cfg *config.SortToolParameters, vec *vector.Vector) ([]int64, error) {
	if cfg.Limit > 0 {
		return sort.TopSels(cfg.Limit, cfg.Desc, cfg.NullsLast, vec)
	}
	sels := make([]int64, vec.Length())
	for i := range sels {
		sels[i] = int64(i)
	}
	if err := sort.Sort(cfg.Desc, cfg.NullsLast, sels, vec); err != nil {
		return nil, err
	}
	return sels, nil
}

func runBench(ctx context.Context, cfg *config.SortToolParameters) error {
	typ, err := columnType(cfg.ColumnType)
	if err != nil {
		return err
	}
	logutil.Infof("bench %s over %d rows, %d rounds", cfg.ColumnType, cfg.BenchRows, cfg.BenchRounds)
	for round := int64(0); round < cfg.BenchRounds; round++ {
		if ctx.Err() != nil {
			return moerr.NewQueryInterrupted()
		}
		vec := testutil.NewVector(int(cfg.BenchRows), typ, true)
		start := time.Now()
		sels, err := sortVector(cfg, vec)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		verify, err := newVerifier(cfg, vec)
		if err != nil {
			return err
		}
		if err := verify(sels); err != nil {
			return err
		}
		logutil.Infof("round %d: %d rows in %s", round, len(sels), elapsed)
	}
	return nil
}
