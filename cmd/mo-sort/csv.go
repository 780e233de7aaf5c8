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
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	hll "github.com/axiomhq/hyperloglog"
	"github.com/matrixorigin/simdcsv"
	"github.com/pierrec/lz4"

	"github.com/matrixorigin/mosort/pkg/common/moerr"
)

// batchReadRows is the count of rows handed over per csv parser call.
const batchReadRows = 4000

type contentReader struct {
	ctx     context.Context
	idx     int
	length  int
	content [][]string

	reader *simdcsv.Reader
}

func newContentReader(ctx context.Context, reader *simdcsv.Reader) *contentReader {
	return &contentReader{
		ctx:     ctx,
		content: make([][]string, batchReadRows),
		reader:  reader,
	}
}

// ReadLine returns the next record, or nil at the end of the input.
func (s *contentReader) ReadLine() ([]string, error) {
	if s.idx == s.length && s.reader != nil {
		var cnt int
		var err error
		s.content, cnt, err = s.reader.Read(batchReadRows, s.ctx, s.content)
		if err != nil {
			return nil, err
		}
		if cnt < batchReadRows {
			s.reader = nil
		}
		s.idx = 0
		s.length = cnt
	}
	if s.idx < s.length {
		idx := s.idx
		s.idx++
		return s.content[idx], nil
	}
	return nil, nil
}

func (s *contentReader) Close() {
	s.content = s.content[:cap(s.content)]
	for idx := range s.content {
		s.content[idx] = nil
	}
}

// readCSVFile reads every record of the file. A .lz4 suffix is
// decompressed while reading.
func readCSVFile(ctx context.Context, path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, moerr.NewFileNotFound(path)
		}
		return nil, moerr.ConvertGoError(err)
	}
	defer f.Close()

	var in io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".lz4") {
		in = lz4.NewReader(f)
	}
	reader := newContentReader(ctx, simdcsv.NewReaderWithOptions(in, ',', '#', true, true))
	defer reader.Close()

	var rows [][]string
	for {
		line, err := reader.ReadLine()
		if err != nil {
			return nil, moerr.ConvertGoError(err)
		}
		if line == nil {
			break
		}
		// the parser owns the record buffer
		row := make([]string, len(line))
		copy(row, line)
		rows = append(rows, row)
	}
	return rows, nil
}

func extractColumn(rows [][]string, col int64) ([]string, error) {
	cells := make([]string, len(rows))
	for i, row := range rows {
		if col >= int64(len(row)) {
			return nil, moerr.NewInvalidInput("row %d has %d columns, sort column is %d", i, len(row), col)
		}
		cells[i] = row[col]
	}
	return cells, nil
}

// approxNDV estimates the count of distinct values of every column.
func approxNDV(rows [][]string) []uint64 {
	if len(rows) == 0 {
		return nil
	}
	sks := make([]*hll.Sketch, len(rows[0]))
	for i := range sks {
		sks[i] = hll.New()
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(sks) {
				sks[i].Insert([]byte(cell))
			}
		}
	}
	ndv := make([]uint64, len(sks))
	for i, sk := range sks {
		ndv[i] = sk.Estimate()
	}
	return ndv
}

// outputPath is the path of the sorted copy, next to the input file.
func outputPath(path string) string {
	path = strings.TrimSuffix(path, ".lz4")
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".sorted" + ext
}

func writeCSVFile(path string, rows [][]string, sels []int64) error {
	f, err := os.Create(path)
	if err != nil {
		return moerr.ConvertGoError(err)
	}
	w := csv.NewWriter(f)
	for _, sel := range sels {
		if err := w.Write(rows[sel]); err != nil {
			f.Close()
			return moerr.ConvertGoError(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return moerr.ConvertGoError(err)
	}
	return moerr.ConvertGoError(f.Close())
}
