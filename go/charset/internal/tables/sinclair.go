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

package tables

// ZX80 is the Sinclair ZX80 character set. 0x80-0xBF are inverse video; BASIC
// keyword tokens decode to 0.
var ZX80 = [256]rune{
	// 0x00
	' ', '"', '\u2598', '\u259D', '\u2580', '\u2596', '\u258C', '\u259E',
	'\u259B', '\u2592', '\U0001FB8F', '\U0001FB8E', '\u00A3', '$', ':', '?',
	// 0x10
	'(', ')', '-', '+', '*', '/', '=', '>',
	'<', ';', ',', '.', '0', '1', '2', '3',
	// 0x20
	'4', '5', '6', '7', '8', '9', 'A', 'B',
	'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J',
	// 0x30
	'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R',
	'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	// 0x40
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0x50
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0x60
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0x70
	0, 0, 0, 0, 0, 0, '\u000A', 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0x80
	'\u2588', '"', '\u259F', '\u2599', '\u2584', '\u259C', '\u2590', '\u259A',
	'\u2597', '\U0001FB90', '\U0001FB91', '\U0001FB92', '\u00A3', '$', ':', '?',
	// 0x90
	'(', ')', '-', '+', '*', '/', '=', '>',
	'<', ';', ',', '.', '0', '1', '2', '3',
	// 0xA0
	'4', '5', '6', '7', '8', '9', 'A', 'B',
	'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J',
	// 0xB0
	'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R',
	'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	// 0xC0
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0xD0
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0xE0
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0xF0
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// ZX81 is the Sinclair ZX81 character set. 0x80-0xBF are inverse video, 0x76
// is NEWLINE and the keyword tokens at 0xC0-0xFF decode to 0.
var ZX81 = [256]rune{
	// 0x00
	' ', '\u2598', '\u259D', '\u2580', '\u2596', '\u258C', '\u259E', '\u259B',
	'\u2592', '\U0001FB8F', '\U0001FB8E', '"', '\u00A3', '$', ':', '?',
	// 0x10
	'(', ')', '>', '<', '=', '+', '-', '*',
	'/', ';', ',', '.', '0', '1', '2', '3',
	// 0x20
	'4', '5', '6', '7', '8', '9', 'A', 'B',
	'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J',
	// 0x30
	'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R',
	'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	// 0x40
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0x50
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0x60
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0x70
	0, 0, 0, 0, 0, 0, '\u000A', 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0x80
	'\u2588', '\u259F', '\u2599', '\u2584', '\u259C', '\u2590', '\u259A', '\u2597',
	'\U0001FB90', '\U0001FB91', '\U0001FB92', '"', '\u00A3', '$', ':', '?',
	// 0x90
	'(', ')', '>', '<', '=', '+', '-', '*',
	'/', ';', ',', '.', '0', '1', '2', '3',
	// 0xA0
	'4', '5', '6', '7', '8', '9', 'A', 'B',
	'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J',
	// 0xB0
	'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R',
	'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	// 0xC0
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0xD0
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0xE0
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0xF0
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// ZXSpectrum is the Sinclair ZX Spectrum character set: ASCII with three
// substitutions, block graphics at 0x80-0x8F, user defined graphics and BASIC
// tokens decoding to 0.
var ZXSpectrum = [256]rune{
	// 0x00
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, '\u000D', 0, 0,
	// 0x10
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0x20
	' ', '!', '"', '#', '$', '%', '&', '\'',
	'(', ')', '*', '+', ',', '-', '.', '/',
	// 0x30
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', ':', ';', '<', '=', '>', '?',
	// 0x40
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G',
	'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	// 0x50
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W',
	'X', 'Y', 'Z', '[', '\\', ']', '\u2191', '_',
	// 0x60
	'\u00A3', 'a', 'b', 'c', 'd', 'e', 'f', 'g',
	'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	// 0x70
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w',
	'x', 'y', 'z', '{', '|', '}', '~', '\u00A9',
	// 0x80
	'\u00A0', '\u259D', '\u2598', '\u2580', '\u2597', '\u2590', '\u259A', '\u259C',
	'\u2596', '\u259E', '\u258C', '\u259B', '\u2584', '\u259F', '\u2599', '\u2588',
	// 0x90
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0xA0
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0xB0
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0xC0
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0xD0
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0xE0
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0xF0
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}
