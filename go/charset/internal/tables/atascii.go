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

// ATASCII is the Atari 8-bit computer character set. Bytes 0x80-0xFF are the
// inverse video forms of 0x00-0x7F and decode to the same code points, except
// 0x9B which is the end-of-line character.
var ATASCII = [256]rune{
	// 0x00
	'\u2665', '\u2523', '\u2503', '\u251B', '\u252B', '\u2513', '\u2571', '\u2572',
	'\u25E2', '\u2597', '\u25E3', '\u259D', '\u2598', '\U0001FB82', '\u2582', '\u2596',
	// 0x10
	'\u2663', '\u250F', '\u2501', '\u254B', '\u25CF', '\u2584', '\u258E', '\u2533',
	'\u253B', '\u258C', '\u2517', '\u241B', '\u2191', '\u2193', '\u2190', '\u2192',
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
	'X', 'Y', 'Z', '[', '\\', ']', '^', '_',
	// 0x60
	'\u25C6', 'a', 'b', 'c', 'd', 'e', 'f', 'g',
	'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	// 0x70
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w',
	'x', 'y', 'z', '\u2660', '|', '\u21B0', '\u25C0', '\u25B6',
	// 0x80
	'\u2665', '\u2523', '\u2503', '\u251B', '\u252B', '\u2513', '\u2571', '\u2572',
	'\u25E2', '\u2597', '\u25E3', '\u259D', '\u2598', '\U0001FB82', '\u2582', '\u2596',
	// 0x90
	'\u2663', '\u250F', '\u2501', '\u254B', '\u25CF', '\u2584', '\u258E', '\u2533',
	'\u253B', '\u258C', '\u2517', '\u000A', '\u2191', '\u2193', '\u2190', '\u2192',
	// 0xA0
	' ', '!', '"', '#', '$', '%', '&', '\'',
	'(', ')', '*', '+', ',', '-', '.', '/',
	// 0xB0
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', ':', ';', '<', '=', '>', '?',
	// 0xC0
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G',
	'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	// 0xD0
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W',
	'X', 'Y', 'Z', '[', '\\', ']', '^', '_',
	// 0xE0
	'\u25C6', 'a', 'b', 'c', 'd', 'e', 'f', 'g',
	'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	// 0xF0
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w',
	'x', 'y', 'z', '\u2660', '|', '\u21B0', '\u25C0', '\u25B6',
}
