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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackedKnownVectors(t *testing.T) {
	testCases := []struct {
		text    string
		want    []byte
		decoded string
	}{
		{
			text:    "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
			want:    []byte{0x04, 0x20, 0xC4, 0x14, 0x61, 0xC8, 0x24, 0xA2, 0xCC, 0x34, 0xE3, 0xD0, 0x45, 0x24, 0xD4, 0x55, 0x65, 0xD8, 0x65, 0xA0},
			decoded: "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		},
		{
			text:    "0123456789",
			want:    []byte{0x79, 0xF8, 0x21, 0x8A, 0x39, 0x25, 0x9A, 0x70},
			decoded: "0123456789",
		},
		{
			text:    "THIS IS A TEST$",
			want:    []byte{0x50, 0x82, 0x53, 0x00, 0x94, 0xC0, 0x04, 0x05, 0x05, 0x4D, 0x46, 0xC0},
			decoded: "THIS IS A TEST$ ",
		},
		{text: "A", want: []byte{0x04}, decoded: "A"},
		{text: "AB", want: []byte{0x04, 0x20}, decoded: "AB"},
		{text: "ABC", want: []byte{0x04, 0x20, 0xC0}, decoded: "ABC "},
		{text: "ABCD", want: []byte{0x04, 0x20, 0xC4}, decoded: "ABCD"},
		{text: "hi", want: []byte{0x75, 0xD0}, decoded: "%%"},
		{text: "a.b%", want: []byte{0x75, 0xC7, 0x5D}, decoded: "%.%%"},
		{text: "", want: []byte{}, decoded: ""},
	}

	cs := mustLookup(t, "radix50")
	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			got := EncodeString(cs, tc.text)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("EncodeString(%q) mismatch (-want +got):\n%s", tc.text, diff)
			}
			assert.Equal(t, tc.decoded, DecodeString(cs, got))
		})
	}
}

func TestPackedCounts(t *testing.T) {
	cs := mustLookup(t, "radix50")
	for n := 0; n <= 64; n++ {
		bytes := cs.ByteCount(n)
		assert.Equal(t, (6*n+7)/8, bytes, "ByteCount(%d)", n)
		assert.Len(t, EncodeString(cs, stringOf('A', n)), bytes)

		// Decoding never loses symbols; it may add one for n%4 == 3.
		decoded := cs.RuneCount(bytes)
		switch n % 4 {
		case 3:
			assert.Equal(t, n+1, decoded, "RuneCount(ByteCount(%d))", n)
		default:
			assert.Equal(t, n, decoded, "RuneCount(ByteCount(%d))", n)
		}
	}
	assert.Equal(t, 26, cs.RuneCount(20))
	assert.Equal(t, 8, cs.ByteCount(10))
}

func TestPackedGroupsAreIndependent(t *testing.T) {
	cs := mustLookup(t, "radix50")
	whole := EncodeString(cs, "ABCDWXYZ")
	require.Len(t, whole, 6)
	assert.Equal(t, EncodeString(cs, "ABCD"), whole[:3])
	assert.Equal(t, EncodeString(cs, "WXYZ"), whole[3:])
}

func TestPackedWholeGroupsRoundTrip(t *testing.T) {
	p := mustLookup(t, "radix50").(*Charset_packed6)
	alphabet := make([]rune, 40)
	for s := range alphabet {
		alphabet[s] = p.DecodeSymbol(byte(s))
	}

	var all []rune
	for _, stride := range []int{1, 3, 7, 13} {
		for start := range alphabet {
			group := make([]rune, 4)
			for i := range group {
				group[i] = alphabet[(start+i*stride)%len(alphabet)]
			}
			encoded := Encode(p, group)
			require.Len(t, encoded, 3, "%q", string(group))
			assert.Equal(t, group, Decode(p, encoded), "stride %d start %d", stride, start)
			all = append(all, group...)
		}
	}

	encoded := Encode(p, all)
	require.Len(t, encoded, len(all)/4*3)
	assert.Equal(t, all, Decode(p, encoded))
}

func TestPackedSymbols(t *testing.T) {
	p := mustLookup(t, "radix50").(*Charset_packed6)
	assert.Equal(t, byte(0x1D), p.Fallback())
	assert.Equal(t, FlagReadOnly, p.Flags())

	s, ok := p.Symbol(' ')
	assert.True(t, ok)
	assert.Equal(t, byte(0), s)

	s, ok = p.Symbol('9')
	assert.True(t, ok)
	assert.Equal(t, byte(39), s)

	s, ok = p.Symbol('a')
	assert.False(t, ok)
	assert.Equal(t, byte(0x1D), s)
	assert.False(t, p.Contains('a'))
	assert.True(t, p.Contains('$'))

	assert.Equal(t, 'A', p.DecodeSymbol(1))
	assert.Equal(t, '9', p.DecodeSymbol(39))
	assert.Equal(t, 'A', p.DecodeSymbol(0x41), "only the low six bits select a symbol")
}

func TestPackedEncodeClearsDestination(t *testing.T) {
	cs := mustLookup(t, "radix50")
	dst := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	n, err := cs.EncodeRunes(dst, []rune("ABC"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{0x04, 0x20, 0xC0, 0xFF}, dst)
}

func TestPackedInvalidPadPanics(t *testing.T) {
	var table [256]rune
	for i := range table {
		table[i] = rune('0' + i%64)
	}
	assert.Panics(t, func() { newCharsetPacked6("wide", "wide", &table, 0x40) })
	assert.NotPanics(t, func() { newCharsetPacked6("narrow", "narrow", &table, 0x3F) })
}

func stringOf(r rune, n int) string {
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = r
	}
	return string(runes)
}
