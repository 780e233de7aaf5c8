// Copyright 2021 Matrix Origin
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

package types

import (
	"fmt"
	"time"

	"github.com/matrixorigin/mosort/pkg/common/moerr"
	"golang.org/x/exp/constraints"
)

type T uint8

const (
	// any family
	T_any T = 0

	// numeric/integer family
	T_int8   T = 1
	T_int16  T = 2
	T_int32  T = 3
	T_int64  T = 4
	T_uint8  T = 5
	T_uint16 T = 6
	T_uint32 T = 7
	T_uint64 T = 8

	// numeric/float family
	T_float32 T = 10
	T_float64 T = 11

	// boolean family
	T_bool T = 12

	// date family
	T_date     T = 15
	T_datetime T = 18

	// string family
	T_char    T = 20
	T_varchar T = 21

	// json family
	T_json T = 32
)

type Type struct {
	Oid  T     `json:"oid,string"`
	Size int32 `json:"size,string"`

	Width     int32 `json:"width,string"`
	Precision int32 `json:"precision,string"`
}

// Date is the number of days since the unix epoch.
type Date int32

// Datetime is the number of microseconds since the unix epoch.
type Datetime int64

// OrderedT covers the element types that order with the native < operator.
// Date and Datetime order correctly through their integer representation.
type OrderedT interface {
	constraints.Ordered
}

func New(oid T, width, precision int32) Type {
	return Type{
		Oid:       oid,
		Size:      oid.TypeLen(),
		Width:     width,
		Precision: precision,
	}
}

func (t Type) String() string {
	return t.Oid.String()
}

func (t T) String() string {
	switch t {
	case T_any:
		return "ANY"
	case T_int8:
		return "TINYINT"
	case T_int16:
		return "SMALLINT"
	case T_int32:
		return "INT"
	case T_int64:
		return "BIGINT"
	case T_uint8:
		return "TINYINT UNSIGNED"
	case T_uint16:
		return "SMALLINT UNSIGNED"
	case T_uint32:
		return "INT UNSIGNED"
	case T_uint64:
		return "BIGINT UNSIGNED"
	case T_float32:
		return "FLOAT"
	case T_float64:
		return "DOUBLE"
	case T_bool:
		return "BOOL"
	case T_date:
		return "DATE"
	case T_datetime:
		return "DATETIME"
	case T_char:
		return "CHAR"
	case T_varchar:
		return "VARCHAR"
	case T_json:
		return "JSON"
	}
	return fmt.Sprintf("unexpected type: %d", t)
}

// OidString returns T string, e.g. T_int64, for test and log output.
func (t T) OidString() string {
	switch t {
	case T_any:
		return "T_any"
	case T_int8:
		return "T_int8"
	case T_int16:
		return "T_int16"
	case T_int32:
		return "T_int32"
	case T_int64:
		return "T_int64"
	case T_uint8:
		return "T_uint8"
	case T_uint16:
		return "T_uint16"
	case T_uint32:
		return "T_uint32"
	case T_uint64:
		return "T_uint64"
	case T_float32:
		return "T_float32"
	case T_float64:
		return "T_float64"
	case T_bool:
		return "T_bool"
	case T_date:
		return "T_date"
	case T_datetime:
		return "T_datetime"
	case T_char:
		return "T_char"
	case T_varchar:
		return "T_varchar"
	case T_json:
		return "T_json"
	}
	return "unknown_type"
}

// TypeLen returns the fixed size of the type in bytes, or 24 for the
// variable length families which are backed by a Bytes header.
func (t T) TypeLen() int32 {
	switch t {
	case T_int8, T_uint8, T_bool:
		return 1
	case T_int16, T_uint16:
		return 2
	case T_int32, T_uint32, T_float32, T_date:
		return 4
	case T_int64, T_uint64, T_float64, T_datetime:
		return 8
	case T_char, T_varchar, T_json:
		return 24
	}
	return 0
}

func (d Date) String() string {
	return time.Unix(int64(d)*24*3600, 0).UTC().Format("2006-01-02")
}

func (d Datetime) String() string {
	return time.Unix(int64(d)/1e6, int64(d)%1e6*1e3).UTC().Format("2006-01-02 15:04:05")
}

// ParseDate parses a date in the YYYY-MM-DD format.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return 0, moerr.NewInvalidInput("invalid date %s", s)
	}
	return Date(t.Unix() / (24 * 3600)), nil
}

// ParseDatetime parses a datetime in the YYYY-MM-DD hh:mm:ss format.
func ParseDatetime(s string) (Datetime, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.UTC)
	if err != nil {
		return 0, moerr.NewInvalidInput("invalid datetime %s", s)
	}
	return Datetime(t.UnixMicro()), nil
}
