/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package vterrors provides simple error handling primitives for retrocharset.
//
// Every error created by this package carries a canonical error code. The
// codes are the gRPC codes from google.golang.org/grpc/codes, so callers can
// tell an argument problem (codes.InvalidArgument) from a bounds problem
// (codes.OutOfRange) or a failed lookup (codes.NotFound) without parsing
// messages.
//
// The traditional error handling idiom in Go is roughly akin to
//
//	if err != nil {
//	        return err
//	}
//
// which applied recursively up the call stack results in error reports
// without context. Wrap and Wrapf add that context while keeping the
// original code reachable through Code.
package vterrors

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
)

// New returns an error with the supplied message and code.
func New(code codes.Code, message string) error {
	return &fundamental{
		msg:  message,
		code: code,
	}
}

// Errorf formats according to a format specifier and returns the string
// as a value that satisfies error, with the supplied code.
func Errorf(code codes.Code, format string, args ...any) error {
	return &fundamental{
		msg:  fmt.Sprintf(format, args...),
		code: code,
	}
}

// fundamental is an error that has a message and a code.
type fundamental struct {
	msg  string
	code codes.Code
}

func (f *fundamental) Error() string { return f.msg }

// ErrorCode returns the code of the error.
func (f *fundamental) ErrorCode() codes.Code { return f.code }

// ErrorWithCode is implemented by errors that carry a canonical code.
type ErrorWithCode interface {
	ErrorCode() codes.Code
}

// Code returns the error code if it's a vtError.
// If err is nil, it returns codes.OK.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if err, ok := err.(ErrorWithCode); ok {
		return err.ErrorCode()
	}

	cause := Cause(err)
	if cause != err && cause != nil {
		// If we did not find an error code at the outer level, let's find the cause and check it's code
		return Code(cause)
	}

	// Handle some special cases.
	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	}
	return codes.Unknown
}

// Wrap returns an error annotating err with the supplied message.
// If err is nil, Wrap returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrapping{
		cause: err,
		msg:   message,
	}
}

// Wrapf returns an error annotating err with the format specifier.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &wrapping{
		cause: err,
		msg:   fmt.Sprintf(format, args...),
	}
}

type wrapping struct {
	cause error
	msg   string
}

func (w *wrapping) Error() string { return w.msg + ": " + w.cause.Error() }

func (w *wrapping) Cause() error { return w.cause }

func (w *wrapping) Unwrap() error { return w.cause }

// Cause will return the immediate cause, if possible.
// An error value has a cause if it implements the following
// interface:
//
//	type causer interface {
//	       Cause() error
//	}
//
// If the error does not implement Cause, nil will be returned
func Cause(err error) error {
	type causer interface {
		Cause() error
	}

	causerObj, ok := err.(causer)
	if !ok {
		return nil
	}

	return causerObj.Cause()
}
