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
package vterrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestNewAndErrorf(t *testing.T) {
	err := New(codes.NotFound, `unknown charset "zx82"`)
	assert.EqualError(t, err, `unknown charset "zx82"`)
	assert.Equal(t, codes.NotFound, Code(err))

	err = Errorf(codes.OutOfRange, "destination buffer too small: need %d, have %d", 3, 1)
	assert.EqualError(t, err, "destination buffer too small: need 3, have 1")
	assert.Equal(t, codes.OutOfRange, Code(err))

	var withCode ErrorWithCode
	require.ErrorAs(t, err, &withCode)
	assert.Equal(t, codes.OutOfRange, withCode.ErrorCode())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "decode"))
	assert.NoError(t, Wrapf(nil, "decode %s", "listing.prg"))
}

func TestWrapKeepsCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantMsg  string
		wantCode codes.Code
	}{
		{
			name:     "foreign error",
			err:      Wrap(io.ErrUnexpectedEOF, "cannot read stdin"),
			wantMsg:  "cannot read stdin: unexpected EOF",
			wantCode: codes.Unknown,
		},
		{
			name:     "coded error",
			err:      Wrapf(New(codes.InvalidArgument, "source buffer is nil"), "encode %s", "title.txt"),
			wantMsg:  "encode title.txt: source buffer is nil",
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "twice wrapped",
			err:      Wrap(Wrapf(Errorf(codes.OutOfRange, "offset %d out of range", 9), "range"), "decode"),
			wantMsg:  "decode: range: offset 9 out of range",
			wantCode: codes.OutOfRange,
		},
		{
			name:     "missing file",
			err:      Wrapf(&fs.PathError{Op: "open", Path: "/in/a.bin", Err: fs.ErrNotExist}, "cannot read %s", "/in/a.bin"),
			wantMsg:  "cannot read /in/a.bin: open /in/a.bin: file does not exist",
			wantCode: codes.Unknown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualError(t, tc.err, tc.wantMsg)
			assert.Equal(t, tc.wantCode, Code(tc.err))
		})
	}
}

func TestCauseChain(t *testing.T) {
	root := New(codes.NotFound, "unknown charset")
	mid := Wrap(root, "lookup")
	top := Wrap(mid, "decode")

	assert.Equal(t, mid, Cause(top))
	assert.Equal(t, root, Cause(mid))
	assert.Nil(t, Cause(root))
	assert.Nil(t, Cause(io.EOF))
	assert.Nil(t, Cause(nil))

	assert.ErrorIs(t, top, root)
	wrappedEOF := Wrap(io.EOF, "read")
	assert.ErrorIs(t, wrappedEOF, io.EOF)
}

func TestCode(t *testing.T) {
	testCases := []struct {
		in   error
		want codes.Code
	}{
		{nil, codes.OK},
		{errors.New("generic"), codes.Unknown},
		{New(codes.Canceled, "stopped"), codes.Canceled},
		{context.Canceled, codes.Canceled},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{fmt.Errorf("convert: %w", context.DeadlineExceeded), codes.DeadlineExceeded},
		{Wrap(context.Canceled, "out.bin not converted"), codes.Canceled},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Code(tc.in), "Code(%v)", tc.in)
	}
}
