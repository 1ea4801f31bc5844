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

// Package charset maps legacy 8-bit and packed 6-bit character sets to and
// from Unicode code points.
//
// Every Charset is total in both directions: each byte decodes to exactly one
// code point (possibly 0 for unassigned positions) and each code point encodes
// to a byte, falling back to the charset's Fallback byte when it has no
// mapping. Charsets are immutable and safe for concurrent use.
package charset

import (
	"strings"
)

// Charset is the conversion contract shared by every legacy character set.
type Charset interface {
	// Name is the canonical short name used by the registry.
	Name() string
	// Label is a human readable description.
	Label() string
	Flags() Flags

	// Fallback is the byte (or, for packed charsets, the symbol code)
	// substituted for code points the charset cannot represent.
	Fallback() byte
	// Contains reports whether r has a mapping in this charset.
	Contains(r rune) bool

	// ByteCount returns the number of bytes needed to encode numRunes code points.
	ByteCount(numRunes int) int
	// RuneCount returns the number of code points decoded from numBytes bytes.
	RuneCount(numBytes int) int

	// DecodeRunes decodes src into dst and returns the number of code points
	// written. dst must hold at least RuneCount(len(src)) entries.
	DecodeRunes(dst []rune, src []byte) (int, error)
	// EncodeRunes encodes src into dst and returns the number of bytes
	// written. dst must hold at least ByteCount(len(src)) bytes.
	EncodeRunes(dst []byte, src []rune) (int, error)
}

// Flags describe capabilities of a Charset. They are informational and do
// not change how conversion behaves.
type Flags uint8

const (
	// FlagReadOnly marks charsets whose tables cannot be modified.
	FlagReadOnly Flags = 1 << iota
	// FlagSingleByte marks charsets that store one code point per byte.
	FlagSingleByte
)

func (f Flags) String() string {
	var names []string
	if f&FlagReadOnly != 0 {
		names = append(names, "readonly")
	}
	if f&FlagSingleByte != 0 {
		names = append(names, "singlebyte")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// Info describes a registered charset without building it.
type Info struct {
	Name    string
	Label   string
	Aliases []string
	Flags   Flags
}
