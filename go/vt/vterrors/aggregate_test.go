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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
)

var errGeneric = "generic error"

func errFromCode(c codes.Code) error {
	return New(c, errGeneric)
}

func TestAggregateCodes(t *testing.T) {
	var testcases = []struct {
		input    []error
		expected codes.Code
	}{
		{
			// aggregation of no errors is a success code
			input:    nil,
			expected: codes.OK,
		},
		{
			// single error code gets returned directly
			input:    []error{errFromCode(codes.OutOfRange)},
			expected: codes.OutOfRange,
		},
		{
			// aggregate two codes to the highest priority
			input: []error{
				errFromCode(codes.OK),
				errFromCode(codes.NotFound),
			},
			expected: codes.NotFound,
		},
		{
			input: []error{
				errFromCode(codes.OutOfRange),
				errFromCode(codes.NotFound),
				errFromCode(codes.InvalidArgument),
			},
			expected: codes.InvalidArgument,
		},
		{
			// unknown errors map to the unknown code
			input: []error{
				errFromCode(codes.OK),
				errors.New("unknown error"),
			},
			expected: codes.Unknown,
		},
	}
	for _, tc := range testcases {
		out := AggregateCodes(tc.input)
		assert.Equal(t, tc.expected, out, "AggregateCodes(%v)", tc.input)
	}
}

func TestAggregate(t *testing.T) {
	var testcases = []struct {
		input    []error
		expected error
	}{
		{
			input:    nil,
			expected: nil,
		},
		{
			input:    []error{nil, nil},
			expected: nil,
		},
		{
			input: []error{
				New(codes.OutOfRange, "b.bin: short buffer"),
				nil,
				New(codes.NotFound, "a.bin: unknown charset"),
			},
			expected: New(
				codes.NotFound,
				"a.bin: unknown charset\nb.bin: short buffer",
			),
		},
	}
	for _, tc := range testcases {
		out := Aggregate(tc.input)
		if tc.expected == nil {
			assert.NoError(t, out, "Aggregate(%+v)", tc.input)
			continue
		}
		assert.EqualError(t, out, tc.expected.Error(), "Aggregate(%+v)", tc.input)
		assert.Equal(t, Code(tc.expected), Code(out), "Aggregate(%+v)", tc.input)
	}
}
