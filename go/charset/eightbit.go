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

package charset

import (
	"fmt"
)

// byteRange is an inclusive range of byte values.
type byteRange struct {
	lo, hi byte
}

// Charset_8bit is a single-byte charset: one code point per byte, driven
// entirely by its decode table.
type Charset_8bit struct {
	name  string
	label string

	fallback    byte
	toUnicode   *[256]rune
	fromUnicode map[rune]byte
}

var _ Charset = (*Charset_8bit)(nil)

// newCharset8bit builds the encode map by inverting toUnicode. Bytes inside
// the preferred ranges are visited first, then every byte in ascending
// order; the first byte seen for a code point is the one used for encoding.
// It panics if fallback is not a byte that encodes back to itself.
func newCharset8bit(name, label string, toUnicode *[256]rune, fallback byte, preferred ...byteRange) *Charset_8bit {
	cs := &Charset_8bit{
		name:        name,
		label:       label,
		fallback:    fallback,
		toUnicode:   toUnicode,
		fromUnicode: invertTable(toUnicode[:], preferred),
	}
	if got := cs.fromUnicode[toUnicode[fallback]]; got != fallback {
		panic(fmt.Sprintf("charset %s: fallback byte 0x%02X decodes to U+%04X which encodes to 0x%02X",
			name, fallback, toUnicode[fallback], got))
	}
	return cs
}

// invertTable builds the encode map. A zero entry marks an unassigned byte,
// so U+0000 is only encodable when byte 0x00 itself decodes to it.
func invertTable(table []rune, preferred []byteRange) map[rune]byte {
	fromUnicode := make(map[rune]byte, len(table))
	add := func(b int) {
		if table[b] == 0 && b != 0 {
			return
		}
		if _, seen := fromUnicode[table[b]]; !seen {
			fromUnicode[table[b]] = byte(b)
		}
	}
	for _, r := range preferred {
		for b := int(r.lo); b <= int(r.hi); b++ {
			add(b)
		}
	}
	for b := range table {
		add(b)
	}
	return fromUnicode
}

func (e *Charset_8bit) Name() string {
	return e.name
}

func (e *Charset_8bit) Label() string {
	return e.label
}

func (e *Charset_8bit) Flags() Flags {
	return FlagReadOnly | FlagSingleByte
}

func (e *Charset_8bit) Fallback() byte {
	return e.fallback
}

func (e *Charset_8bit) Contains(r rune) bool {
	_, ok := e.fromUnicode[r]
	return ok
}

// DecodeByte returns the code point stored at b in the decode table.
func (e *Charset_8bit) DecodeByte(b byte) rune {
	return e.toUnicode[b]
}

// EncodeRune returns the byte for r, or the fallback byte and false when
// r has no mapping.
func (e *Charset_8bit) EncodeRune(r rune) (byte, bool) {
	if b, ok := e.fromUnicode[r]; ok {
		return b, true
	}
	return e.fallback, false
}

func (e *Charset_8bit) ByteCount(numRunes int) int {
	return numRunes
}

func (e *Charset_8bit) RuneCount(numBytes int) int {
	return numBytes
}

func (e *Charset_8bit) DecodeRunes(dst []rune, src []byte) (int, error) {
	if err := checkDst(dst == nil, len(dst), len(src)); err != nil {
		return 0, err
	}
	for i, b := range src {
		dst[i] = e.toUnicode[b]
	}
	return len(src), nil
}

func (e *Charset_8bit) EncodeRunes(dst []byte, src []rune) (int, error) {
	if err := checkDst(dst == nil, len(dst), len(src)); err != nil {
		return 0, err
	}
	for i, r := range src {
		dst[i], _ = e.EncodeRune(r)
	}
	return len(src), nil
}
