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

	"golang.org/x/text/encoding/charmap"

	"vitess.io/retrocharset/go/charset/internal/tables"
)

// normalVideo is the high-bit-set range the Apple II family uses for
// ordinary text; encoding prefers it over the inverse and flashing copies.
var normalVideo = byteRange{0x80, 0xFF}

const (
	singleByte = FlagReadOnly | FlagSingleByte
	packed     = FlagReadOnly
)

var builtins = []registration{
	{
		info:  Info{Name: "apple2", Label: "Apple II", Aliases: []string{"appleii"}, Flags: singleByte},
		build: func(i Info) Charset { return newCharset8bit(i.Name, i.Label, &tables.Apple2, 0xBF, normalVideo) },
	},
	{
		info:  Info{Name: "apple2c", Label: "Apple IIc (MouseText)", Aliases: []string{"appleiic", "apple2gs"}, Flags: singleByte},
		build: func(i Info) Charset { return newCharset8bit(i.Name, i.Label, &tables.Apple2c, 0xBF, normalVideo) },
	},
	{
		info:  Info{Name: "apple2e", Label: "Apple IIe", Aliases: []string{"appleiie"}, Flags: singleByte},
		build: func(i Info) Charset { return newCharset8bit(i.Name, i.Label, &tables.Apple2e, 0xBF, normalVideo) },
	},
	{
		info:  Info{Name: "atascii", Label: "Atari ATASCII", Aliases: []string{"atari"}, Flags: singleByte},
		build: func(i Info) Charset { return newCharset8bit(i.Name, i.Label, &tables.ATASCII, '?') },
	},
	{
		info:  Info{Name: "bbcmicro", Label: "BBC Micro Mode 7", Aliases: []string{"mode7", "saa5050"}, Flags: singleByte},
		build: func(i Info) Charset { return newCharset8bit(i.Name, i.Label, &tables.BBCMicro, '?') },
	},
	{
		info: Info{Name: "cp850", Label: "IBM PC Multilingual (CP850)", Aliases: []string{"ibm850"}, Flags: singleByte},
		build: func(i Info) Charset {
			return newCharset8bit(i.Name, i.Label, fromCharmap(charmap.CodePage850, nil), '?')
		},
	},
	{
		info: Info{Name: "cp866", Label: "DOS Cyrillic (CP866)", Aliases: []string{"ibm866"}, Flags: singleByte},
		build: func(i Info) Charset {
			return newCharset8bit(i.Name, i.Label, fromCharmap(charmap.CodePage866, nil), '?')
		},
	},
	{
		info: Info{Name: "ebcdic037", Label: "IBM EBCDIC 037", Aliases: []string{"cp037", "ibm037"}, Flags: singleByte},
		build: func(i Info) Charset {
			return newCharset8bit(i.Name, i.Label, fromCharmap(charmap.CodePage037, nil), mustEncode(charmap.CodePage037, '?'))
		},
	},
	{
		info: Info{Name: "ebcdic1047", Label: "IBM EBCDIC 1047 (Open Systems Latin-1)", Aliases: []string{"cp1047", "ibm1047"}, Flags: singleByte},
		build: func(i Info) Charset {
			return newCharset8bit(i.Name, i.Label, fromCharmap(charmap.CodePage1047, nil), mustEncode(charmap.CodePage1047, '?'))
		},
	},
	{
		info: Info{Name: "ebcdic1140", Label: "IBM EBCDIC 1140 (037 with euro)", Aliases: []string{"cp1140", "ibm1140"}, Flags: singleByte},
		build: func(i Info) Charset {
			return newCharset8bit(i.Name, i.Label, fromCharmap(charmap.CodePage1140, nil), mustEncode(charmap.CodePage1140, '?'))
		},
	},
	{
		info: Info{Name: "ibmpc", Label: "IBM PC (CP437 glyphs)", Aliases: []string{"cp437", "ibm437"}, Flags: singleByte},
		build: func(i Info) Charset {
			return newCharset8bit(i.Name, i.Label, fromCharmap(charmap.CodePage437, &tables.IBMPCGlyphs), '?')
		},
	},
	{
		info: Info{Name: "maccyrillic", Label: "Mac OS Cyrillic", Aliases: []string{"x-mac-cyrillic"}, Flags: singleByte},
		build: func(i Info) Charset {
			return newCharset8bit(i.Name, i.Label, fromCharmap(charmap.MacintoshCyrillic, nil), '?')
		},
	},
	{
		info:  Info{Name: "macroman", Label: "Mac OS Roman", Aliases: []string{"mac", "macintosh"}, Flags: singleByte},
		build: func(i Info) Charset { return newCharset8bit(i.Name, i.Label, &tables.MacRoman, '?') },
	},
	{
		info:  Info{Name: "petscii", Label: "Commodore PETSCII (unshifted)", Aliases: []string{"cbm", "c64"}, Flags: singleByte},
		build: func(i Info) Charset { return newCharset8bit(i.Name, i.Label, &tables.PETSCII, '?') },
	},
	{
		info:  Info{Name: "petscii-shifted", Label: "Commodore PETSCII (shifted)", Aliases: []string{"cbm-shifted"}, Flags: singleByte},
		build: func(i Info) Charset { return newCharset8bit(i.Name, i.Label, &tables.PETSCIIShifted, '?') },
	},
	{
		info:  Info{Name: "radix50", Label: "DEC RADIX-50 (packed)", Aliases: []string{"rad50"}, Flags: packed},
		build: func(i Info) Charset { return newCharsetPacked6(i.Name, i.Label, &tables.RADIX50, 0x1D) },
	},
	{
		info:  Info{Name: "sixbit", Label: "DEC SIXBIT", Aliases: []string{"decsixbit"}, Flags: singleByte},
		build: func(i Info) Charset { return newCharset8bit(i.Name, i.Label, &tables.SIXBIT, 0x1F) },
	},
	{
		info:  Info{Name: "zx80", Label: "Sinclair ZX80", Flags: singleByte},
		build: func(i Info) Charset { return newCharset8bit(i.Name, i.Label, &tables.ZX80, 0x0F) },
	},
	{
		info:  Info{Name: "zx81", Label: "Sinclair ZX81", Aliases: []string{"ts1000"}, Flags: singleByte},
		build: func(i Info) Charset { return newCharset8bit(i.Name, i.Label, &tables.ZX81, 0x0F) },
	},
	{
		info:  Info{Name: "zxspectrum", Label: "Sinclair ZX Spectrum", Aliases: []string{"spectrum"}, Flags: singleByte},
		build: func(i Info) Charset { return newCharset8bit(i.Name, i.Label, &tables.ZXSpectrum, '?') },
	},
}

// fromCharmap builds a decode table from an x/text charmap. When base is
// given, its lower half is kept and only 0x80-0xFF come from cm.
func fromCharmap(cm *charmap.Charmap, base *[256]rune) *[256]rune {
	var table [256]rune
	start := 0
	if base != nil {
		copy(table[:0x80], base[:0x80])
		start = 0x80
	}
	for b := start; b < len(table); b++ {
		table[b] = cm.DecodeByte(byte(b))
	}
	return &table
}

func mustEncode(cm *charmap.Charmap, r rune) byte {
	b, ok := cm.EncodeRune(r)
	if !ok {
		panic(fmt.Sprintf("%v cannot encode %q", cm, r))
	}
	return b
}
