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
	"sort"
	"strings"

	"google.golang.org/grpc/codes"
)

// A list of all the codes, ordered from lowest to highest priority.
// When several errors are aggregated, the one with the highest
// priority decides the code of the result.
const (
	PrioritySuccess = iota
	PriorityCanceled
	PriorityUnknown
	PriorityDeadlineExceeded
	PriorityInternal
	PriorityUnavailable
	PriorityResourceExhausted
	PriorityOutOfRange
	PriorityNotFound
	PriorityFailedPrecondition
	PriorityPermissionDenied
	PriorityInvalidArgument
)

var errorPriorities = map[codes.Code]int{
	codes.OK:                 PrioritySuccess,
	codes.Canceled:           PriorityCanceled,
	codes.Unknown:            PriorityUnknown,
	codes.DeadlineExceeded:   PriorityDeadlineExceeded,
	codes.Internal:           PriorityInternal,
	codes.Unavailable:        PriorityUnavailable,
	codes.ResourceExhausted:  PriorityResourceExhausted,
	codes.OutOfRange:         PriorityOutOfRange,
	codes.NotFound:           PriorityNotFound,
	codes.FailedPrecondition: PriorityFailedPrecondition,
	codes.PermissionDenied:   PriorityPermissionDenied,
	codes.InvalidArgument:    PriorityInvalidArgument,
}

// AggregateCodes returns the highest priority error code for a list of errors.
func AggregateCodes(errs []error) codes.Code {
	highCode := codes.OK
	for _, e := range errs {
		code := Code(e)
		if errorPriorities[code] > errorPriorities[highCode] {
			highCode = code
		}
	}
	return highCode
}

// Aggregate aggregates several errors into a single one.
// The resulting error code will be the one with the highest
// priority as defined by the priority constants in this package.
func Aggregate(errs []error) error {
	var nonNil []error
	for _, e := range errs {
		if e != nil {
			nonNil = append(nonNil, e)
		}
	}
	if len(nonNil) == 0 {
		return nil
	}
	return New(AggregateCodes(nonNil), aggregateErrors(nonNil))
}

func aggregateErrors(errs []error) string {
	errStrs := make([]string, 0, len(errs))
	for _, e := range errs {
		errStrs = append(errStrs, e.Error())
	}
	// sort the error strings so we always have deterministic ordering
	sort.Strings(errStrs)
	return strings.Join(errStrs, "\n")
}
