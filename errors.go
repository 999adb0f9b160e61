package linklist

import (
	"errors"
	"fmt"
)

// Code is the closed set of outcomes reported by List operations.
//
// Every non-Normal code is itself an error, so callers can branch with
// errors.Is(err, linklist.NotFound) regardless of whether the operation
// returned the bare code or an *Error carrying extra context.
type Code int

const (
	Normal       Code = iota // operation succeeded
	MemError                 // no room for another record
	ZeroInfo                 // record size is zero
	NullList                 // list is empty or the cursor is unset
	NotFound                 // search or navigation ran off the list
	OpenError                // cannot open file
	WriteError               // file write error
	ReadError                // file read error or corrupt file
	NotModified              // invalid argument rejected, or nothing to save
	NullFunction             // comparator is nil
)

var codeNames = [...]string{
	Normal:       "normal",
	MemError:     "memory error",
	ZeroInfo:     "zero record size",
	NullList:     "null list",
	NotFound:     "not found",
	OpenError:    "open error",
	WriteError:   "write error",
	ReadError:    "read error",
	NotModified:  "not modified",
	NullFunction: "null function",
}

func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return fmt.Sprintf("code(%d)", int(c))
	}
	return codeNames[c]
}

func (c Code) Error() string { return "linklist: " + c.String() }

// Error adds the failing operation and an optional cause to a Code.
type Error struct {
	Op   string
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Code.String())
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Code.String(), e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Code}
	}
	return []error{e.Code, e.Err}
}

func opError(op string, code Code, err error) error {
	return &Error{Op: op, Code: code, Err: err}
}

// CodeOf maps an error returned by this package back to its Code.
// nil maps to Normal, errors not produced by this package map to -1.
func CodeOf(err error) Code {
	if err == nil {
		return Normal
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return -1
}
