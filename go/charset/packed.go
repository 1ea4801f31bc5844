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

// Charset_packed6 stores 6-bit symbol codes densely: four symbols occupy
// three bytes, most significant bits first.
//
//	byte 0   byte 1   byte 2
//	aaaaaabb bbbbcccc ccdddddd
//
// Encoding n symbols produces ceil(6n/8) bytes with unused low bits set to
// zero; decoding m bytes produces floor(8m/6) symbols. A zeroed trailing
// field decodes to symbol 0, so inputs whose length is 3 mod 4 come back
// with one extra symbol-0 entry.
type Charset_packed6 struct {
	name  string
	label string

	pad         byte
	toUnicode   *[256]rune
	fromUnicode map[rune]byte
}

var _ Charset = (*Charset_packed6)(nil)

func newCharsetPacked6(name, label string, toUnicode *[256]rune, pad byte) *Charset_packed6 {
	if pad > 0x3F {
		panic(fmt.Sprintf("charset %s: pad symbol 0x%02X does not fit in 6 bits", name, pad))
	}
	cs := &Charset_packed6{
		name:        name,
		label:       label,
		pad:         pad,
		toUnicode:   toUnicode,
		fromUnicode: invertTable(toUnicode[:0x40], nil),
	}
	if got := cs.fromUnicode[toUnicode[pad]]; got != pad {
		panic(fmt.Sprintf("charset %s: pad symbol 0x%02X is not canonical", name, pad))
	}
	return cs
}

func (e *Charset_packed6) Name() string {
	return e.name
}

func (e *Charset_packed6) Label() string {
	return e.label
}

func (e *Charset_packed6) Flags() Flags {
	return FlagReadOnly
}

// Fallback returns the symbol code used for unmappable code points.
func (e *Charset_packed6) Fallback() byte {
	return e.pad
}

func (e *Charset_packed6) Contains(r rune) bool {
	_, ok := e.fromUnicode[r]
	return ok
}

// Symbol returns the 6-bit code for r, or the pad symbol and false.
func (e *Charset_packed6) Symbol(r rune) (byte, bool) {
	if s, ok := e.fromUnicode[r]; ok {
		return s, true
	}
	return e.pad, false
}

// DecodeSymbol returns the code point for the 6-bit symbol s. Only the low
// six bits of s are used.
func (e *Charset_packed6) DecodeSymbol(s byte) rune {
	return e.toUnicode[s&0x3F]
}

func (e *Charset_packed6) ByteCount(numRunes int) int {
	return (numRunes*6 + 7) / 8
}

func (e *Charset_packed6) RuneCount(numBytes int) int {
	return numBytes * 8 / 6
}

func (e *Charset_packed6) EncodeRunes(dst []byte, src []rune) (int, error) {
	need := e.ByteCount(len(src))
	if err := checkDst(dst == nil, len(dst), need); err != nil {
		return 0, err
	}
	clear(dst[:need])

	var out int
	for i, r := range src {
		s, _ := e.Symbol(r)
		switch i % 4 {
		case 0:
			dst[out] = s << 2
		case 1:
			dst[out] |= s >> 4
			dst[out+1] = s << 4
		case 2:
			dst[out+1] |= s >> 2
			dst[out+2] = s << 6
		case 3:
			dst[out+2] |= s
			out += 3
		}
	}
	return need, nil
}

func (e *Charset_packed6) DecodeRunes(dst []rune, src []byte) (int, error) {
	need := e.RuneCount(len(src))
	if err := checkDst(dst == nil, len(dst), need); err != nil {
		return 0, err
	}

	var n int
	var prev byte
	for i, b := range src {
		switch i % 3 {
		case 0:
			dst[n] = e.toUnicode[b>>2]
			n++
		case 1:
			dst[n] = e.toUnicode[(prev&0x03)<<4|b>>4]
			n++
		case 2:
			dst[n] = e.toUnicode[(prev&0x0F)<<2|b>>6]
			dst[n+1] = e.toUnicode[b&0x3F]
			n += 2
		}
		prev = b
	}
	return n, nil
}
