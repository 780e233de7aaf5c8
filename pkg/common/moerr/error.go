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

package moerr

import (
	"fmt"
	"io"
	"runtime/debug"
)

const MySQLDefaultSqlState = "HY000"

// mysql error codes of the codes below that have a mysql equivalent
const (
	ER_UNKNOWN_ERROR         uint16 = 1105
	ER_DIVISION_BY_ZERO      uint16 = 1365
	ER_DATA_OUT_OF_RANGE     uint16 = 1690
	ER_ENGINE_OUT_OF_MEMORY  uint16 = 3126
	ER_QUERY_INTERRUPTED     uint16 = 1317
	ER_WARN_DATA_OUT_OF_RANGE uint16 = 1264
)

const (
	// 0 - 99 is OK.  They do not contain info, and are special handled
	// using a static instance, no alloc.
	Ok              uint16 = 0
	OkStopCurrRecur uint16 = 1
	OkExpectedEOF   uint16 = 2 // Expected End Of File
	OkMax           uint16 = 99

	// 100 - 200 is Info
	ErrInfo uint16 = 100

	// 200 - 299 is WARNING
	ErrWarn uint16 = 200

	// Group 1: Internal errors
	ErrStart            uint16 = 20100
	ErrInternal         uint16 = 20101
	ErrNYI              uint16 = 20102
	ErrOOM              uint16 = 20103
	ErrQueryInterrupted uint16 = 20104
	ErrNotSupported     uint16 = 20105

	// Group 2: numeric and functions
	ErrDivByZero  uint16 = 20200
	ErrOutOfRange uint16 = 20201
	ErrInvalidArg uint16 = 20203

	// Group 3: invalid input
	ErrBadConfig    uint16 = 20300
	ErrInvalidInput uint16 = 20301

	// Group 4: unexpected state and io errors
	ErrInvalidState  uint16 = 20400
	ErrEmptyVector   uint16 = 20404
	ErrFileNotFound  uint16 = 20405
	ErrUnexpectedEOF uint16 = 20407

	// ErrEnd, the max value of MOErrorCode
	ErrEnd uint16 = 65535
)

type moErrorMsgItem struct {
	mysqlCode        uint16
	sqlStates        []string
	errorMsgOrFormat string
}

var errorMsgRefer = map[uint16]moErrorMsgItem{
	// OK code not in this table.  They do not have a mysql code, as
	// they are OK -- should not leak back to client.

	ErrInfo: {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "info: %s"},
	ErrWarn: {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "warning: %s"},

	// Group 1: Internal errors
	ErrStart:            {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "internal error: error code start"},
	ErrInternal:         {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "internal error: %s"},
	ErrNYI:              {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "%s is not yet implemented"},
	ErrOOM:              {ER_ENGINE_OUT_OF_MEMORY, []string{MySQLDefaultSqlState}, "error: out of memory"},
	ErrQueryInterrupted: {ER_QUERY_INTERRUPTED, []string{MySQLDefaultSqlState}, "query interrupted"},
	ErrNotSupported:     {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "not supported: %s"},

	// Group 2: numeric
	ErrDivByZero:  {ER_DIVISION_BY_ZERO, []string{MySQLDefaultSqlState}, "division by zero"},
	ErrOutOfRange: {ER_DATA_OUT_OF_RANGE, []string{MySQLDefaultSqlState}, "data out of range: data type %s, %s"},
	ErrInvalidArg: {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "invalid argument %s, bad value %s"},

	// Group 3: invalid input
	ErrBadConfig:    {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "invalid configuration: %s"},
	ErrInvalidInput: {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "invalid input: %s"},

	// Group 4: unexpected state or file io error
	ErrInvalidState:  {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "invalid state %s"},
	ErrEmptyVector:   {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "empty vector"},
	ErrFileNotFound:  {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "file %s is not found"},
	ErrUnexpectedEOF: {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "unexpected end of file %s"},

	// Group End: max value of MOErrorCode
	ErrEnd: {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "internal error: end of errcode code"},
}

func newError(code uint16, args ...any) *Error {
	var err *Error
	item, has := errorMsgRefer[code]
	if !has {
		panic(NewInternalError("not exist MOErrorCode: %d", code))
	}
	if len(args) == 0 {
		err = &Error{
			code:      code,
			mysqlCode: item.mysqlCode,
			message:   item.errorMsgOrFormat,
			sqlState:  item.sqlStates[0],
		}
	} else {
		err = &Error{
			code:      code,
			mysqlCode: item.mysqlCode,
			message:   fmt.Sprintf(item.errorMsgOrFormat, args...),
			sqlState:  item.sqlStates[0],
		}
	}
	return err
}

type Error struct {
	code      uint16
	mysqlCode uint16
	message   string
	sqlState  string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

func (e *Error) MySQLCode() uint16 {
	return e.mysqlCode
}

func (e *Error) SqlState() string {
	return e.sqlState
}

func (e *Error) Succeeded() bool {
	return e.code < OkMax
}

func IsMoErrCode(e error, rc uint16) bool {
	if e == nil {
		return rc == Ok
	}

	me, ok := e.(*Error)
	if !ok {
		// This is not a moerr
		return false
	}
	return me.code == rc
}

func DowncastError(e error) *Error {
	if err, ok := e.(*Error); ok {
		return err
	}
	return newError(ErrInternal, fmt.Sprintf("downcast error failed: %v", e))
}

// ConvertPanicError converts a runtime panic to internal error.
func ConvertPanicError(v interface{}) *Error {
	if e, ok := v.(*Error); ok {
		return e
	}
	return newError(ErrInternal, fmt.Sprintf("panic %v: %s", v, debug.Stack()))
}

// ConvertGoError converts a go error into mo error.
// Note here we must return error, because nil error
// is the same as nil *Error -- Go strangeness.
func ConvertGoError(err error) error {
	// nil is nil
	if err == nil {
		return err
	}

	// already a moerr, return it as is
	if _, ok := err.(*Error); ok {
		return err
	}

	// Convert a few well known os/go error.
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		// if io.EOF reaches here, we believe it is not expected.
		return NewUnexpectedEOF(err.Error())
	}

	return NewInternalError("convert go error to mo error %v", err)
}

// Special handling of OK code.  These are not errors, but used to
// signal different success conditions.  They are tight, performance
// critical paths, so we cannot afford to new an Error; callers test
// with err == GetOkXXX() or moerr.IsMoErrCode(err, moerr.OkXXX).
var errOkStopCurrRecur = Error{OkStopCurrRecur, 0, "StopCurrRecur", "00000"}
var errOkExpectedEOF = Error{OkExpectedEOF, 0, "ExpectedEOF", "00000"}

func GetOkStopCurrRecur() *Error {
	return &errOkStopCurrRecur
}

func GetOkExpectedEOF() *Error {
	return &errOkExpectedEOF
}

func NewInfo(msg string) *Error {
	return newError(ErrInfo, msg)
}

func NewWarn(msg string) *Error {
	return newError(ErrWarn, msg)
}

func NewInternalError(msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrInternal, xmsg)
}

func NewNYI(msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrNYI, xmsg)
}

func NewNotSupported(msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrNotSupported, xmsg)
}

func NewOOM() *Error {
	return newError(ErrOOM)
}

func NewQueryInterrupted() *Error {
	return newError(ErrQueryInterrupted)
}

func NewDivByZero() *Error {
	return newError(ErrDivByZero)
}

func NewOutOfRange(typ string, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrOutOfRange, typ, xmsg)
}

func NewInvalidArg(arg string, val any) *Error {
	return newError(ErrInvalidArg, arg, fmt.Sprintf("%v", val))
}

func NewBadConfig(msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrBadConfig, xmsg)
}

func NewInvalidInput(msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrInvalidInput, xmsg)
}

func NewInvalidState(msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrInvalidState, xmsg)
}

func NewEmptyVector() *Error {
	return newError(ErrEmptyVector)
}

func NewFileNotFound(f string) *Error {
	return newError(ErrFileNotFound, f)
}

func NewUnexpectedEOF(f string) *Error {
	return newError(ErrUnexpectedEOF, f)
}
