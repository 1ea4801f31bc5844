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
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"vitess.io/retrocharset/go/vt/vterrors"
)

func TestLookupByName(t *testing.T) {
	testCases := []struct {
		name string
		want string
	}{
		{"atascii", "atascii"},
		{"ATASCII", "atascii"},
		{"  Atari ", "atascii"},
		{"C64", "petscii"},
		{"cbm", "petscii"},
		{"cp437", "ibmpc"},
		{"Macintosh", "macroman"},
		{"mac", "macroman"},
		{"RAD50", "radix50"},
		{"ibm037", "ebcdic037"},
		{"cp037", "ebcdic037"},
		{"spectrum", "zxspectrum"},
		{"apple2gs", "apple2c"},
		{"mode7", "bbcmicro"},
		{"IBM866", "cp866"},
		{"cp1140", "ebcdic1140"},
		{"petscii-shifted", "petscii-shifted"},
	}

	for _, tc := range testCases {
		cs, err := LookupByName(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, cs.Name(), tc.name)
	}
}

func TestAppleIIgsKeepsMouseText(t *testing.T) {
	gs, err := LookupByName("apple2gs")
	require.NoError(t, err)
	assert.True(t, gs.Contains('\u2713'))
	assert.Equal(t, []byte{0x44}, Encode(gs, []rune{'\u2713'}))

	iie, err := LookupByName("apple2e")
	require.NoError(t, err)
	assert.False(t, iie.Contains('\u2713'))
}

func TestLookupByNameSharesInstances(t *testing.T) {
	a := mustLookup(t, "zx81")
	b := mustLookup(t, "ZX81")
	c := mustLookup(t, "ts1000")
	assert.Same(t, a, b)
	assert.Same(t, a, c)
}

func TestLookupByNameUnknown(t *testing.T) {
	for _, name := range []string{"", "utf-8", "petscii2", "zx 81"} {
		cs, err := LookupByName(name)
		assert.Nil(t, cs)
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, vterrors.Code(err), name)
		assert.Contains(t, err.Error(), "unknown charset")
	}
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, len(builtins))

	names := make([]string, 0, len(all))
	for _, info := range all {
		names = append(names, info.Name)
	}
	assert.True(t, slices.IsSorted(names), "All() must be sorted by name: %v", names)
	assert.Equal(t, []string{
		"apple2", "apple2c", "apple2e", "atascii", "bbcmicro", "cp850", "cp866",
		"ebcdic037", "ebcdic1047", "ebcdic1140", "ibmpc", "maccyrillic", "macroman",
		"petscii", "petscii-shifted", "radix50", "sixbit", "zx80", "zx81", "zxspectrum",
	}, names)

	for _, info := range all {
		cs := mustLookup(t, info.Name)
		assert.Equal(t, info.Label, cs.Label())
		assert.Equal(t, info.Flags, cs.Flags(), info.Name)
		for _, alias := range info.Aliases {
			aliased := mustLookup(t, strings.ToUpper(alias))
			assert.Same(t, cs, aliased, alias)
		}
	}

	// Callers cannot modify the registry through the returned slices.
	all[0].Aliases = append(all[0].Aliases[:0], "mutated")
	_, err := LookupByName("mutated")
	assert.Error(t, err)
	assert.NotContains(t, All()[0].Aliases, "mutated")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	reg := registration{
		info:  Info{Name: "mac", Label: "duplicate", Flags: singleByte},
		build: func(Info) Charset { return nil },
	}
	assert.PanicsWithValue(t,
		`duplicated charset name "mac": mac (existing charset is macroman)`,
		func() { register(reg) })
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "readonly,singlebyte", (FlagReadOnly | FlagSingleByte).String())
	assert.Equal(t, "readonly", FlagReadOnly.String())
	assert.Equal(t, "none", Flags(0).String())
}
