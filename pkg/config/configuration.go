// Copyright 2021 - 2022 Matrix Origin
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

package config

import (
	"github.com/BurntSushi/toml"

	"github.com/matrixorigin/mosort/pkg/common/moerr"
	"github.com/matrixorigin/mosort/pkg/logutil"
)

var (
	defaultColumnType    = "int64"
	defaultNullKeyword   = `\N`
	defaultParallelFiles = int64(4)
	defaultBenchRows     = int64(100000)

	supportedColumnTypes = map[string]struct{}{
		"bool":     {},
		"int64":    {},
		"float64":  {},
		"varchar":  {},
		"date":     {},
		"datetime": {},
	}
)

// SortToolParameters of the sort tool
type SortToolParameters struct {
	Version string

	//input csv files. a file with the .lz4 suffix is decompressed while reading
	InputFiles []string `toml:"inputFiles"`

	//zero based index of the column the rows are ordered by. default: 0
	SortColumn int64 `toml:"sortColumn"`

	//type of the sort column. one of bool, int64, float64, varchar, date, datetime. default: int64
	ColumnType string `toml:"columnType"`

	//sort in descending order. default: false
	Desc bool `toml:"desc"`

	//place null values after all non-null values. default: false
	NullsLast bool `toml:"nullsLast"`

	//keep only the first N rows of the ordering. 0 keeps every row. default: 0
	Limit int64 `toml:"limit"`

	//the literal cell content treated as a null value. default: \N
	NullKeyword string `toml:"nullKeyword"`

	//default is 4. The count of go routine processing input files.
	ParallelFiles int64 `toml:"parallelFiles"`

	//rows of the generated dataset when no input file is given. default: 100000
	BenchRows int64 `toml:"benchRows"`

	//the count of rounds over the generated dataset. default: 1
	BenchRounds int64 `toml:"benchRounds"`

	//configuration of the log
	Log logutil.LogConfig `toml:"log"`
}

// SetDefaultValues fills the zero fields with their default values.
func (fp *SortToolParameters) SetDefaultValues() {
	if fp.ColumnType == "" {
		fp.ColumnType = defaultColumnType
	}

	if fp.NullKeyword == "" {
		fp.NullKeyword = defaultNullKeyword
	}

	if fp.ParallelFiles == 0 {
		fp.ParallelFiles = defaultParallelFiles
	}

	if fp.BenchRows == 0 {
		fp.BenchRows = defaultBenchRows
	}

	if fp.BenchRounds == 0 {
		fp.BenchRounds = 1
	}

	if fp.Log.Level == "" {
		fp.Log.Level = "info"
	}

	if fp.Log.Format == "" {
		fp.Log.Format = "console"
	}
}

// Validate reports the first invalid parameter.
func (fp *SortToolParameters) Validate() error {
	if _, ok := supportedColumnTypes[fp.ColumnType]; !ok {
		return moerr.NewBadConfig("column type %s", fp.ColumnType)
	}
	if fp.SortColumn < 0 {
		return moerr.NewBadConfig("sort column %d", fp.SortColumn)
	}
	if fp.Limit < 0 {
		return moerr.NewBadConfig("limit %d", fp.Limit)
	}
	if fp.ParallelFiles < 0 {
		return moerr.NewBadConfig("parallel files %d", fp.ParallelFiles)
	}
	if fp.BenchRows < 0 {
		return moerr.NewBadConfig("bench rows %d", fp.BenchRows)
	}
	return nil
}

var decodeFile = toml.DecodeFile

// LoadSortToolConfig loads the parameters of the sort tool from the toml
// file and fills the rest with their default values.
func LoadSortToolConfig(configFile string) (*SortToolParameters, error) {
	sv := &SortToolParameters{}
	if _, err := decodeFile(configFile, sv); err != nil {
		return nil, moerr.NewBadConfig("decode file %s: %v", configFile, err)
	}
	sv.SetDefaultValues()
	if err := sv.Validate(); err != nil {
		return nil, err
	}
	return sv, nil
}
