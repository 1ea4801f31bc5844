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

// PETSCII is the Commodore 8-bit character set in its unshifted (uppercase and
// graphics) mode. Control codes decode to 0 except RETURN (0x0D) and
// shifted RETURN (0x8D). 0x60-0x7F repeat 0xC0-0xDF, 0xE0-0xFE repeat 0xA0-0xBE.
var PETSCII = [256]rune{
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
	'X', 'Y', 'Z', '[', '\u00A3', ']', '\u2191', '\u2190',
	// 0x60
	'\u2500', '\u2660', '\U0001FB72', '\U0001FB78', '\U0001FB77', '\U0001FB76', '\U0001FB7A', '\U0001FB71',
	'\U0001FB74', '\u256E', '\u2570', '\u256F', '\U0001FB7C', '\u2572', '\u2571', '\U0001FB7D',
	// 0x70
	'\U0001FB7E', '\u25CF', '\U0001FB7B', '\u2665', '\U0001FB70', '\u256D', '\u2573', '\u25CB',
	'\u2663', '\U0001FB75', '\u2666', '\u253C', '\U0001FB8C', '\u2502', '\u03C0', '\u25E5',
	// 0x80
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, '\u000A', 0, 0,
	// 0x90
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0xA0
	'\u00A0', '\u258C', '\u2584', '\u2594', '\u2581', '\u258F', '\u2592', '\u2595',
	'\U0001FB8F', '\u25E4', '\U0001FB87', '\u251C', '\u2597', '\u2514', '\u2510', '\u2582',
	// 0xB0
	'\u250C', '\u2534', '\u252C', '\u2524', '\u258E', '\u258D', '\U0001FB88', '\U0001FB82',
	'\U0001FB83', '\u2583', '\U0001FB7F', '\u2596', '\u259D', '\u2518', '\u2598', '\u259A',
	// 0xC0
	'\u2500', '\u2660', '\U0001FB72', '\U0001FB78', '\U0001FB77', '\U0001FB76', '\U0001FB7A', '\U0001FB71',
	'\U0001FB74', '\u256E', '\u2570', '\u256F', '\U0001FB7C', '\u2572', '\u2571', '\U0001FB7D',
	// 0xD0
	'\U0001FB7E', '\u25CF', '\U0001FB7B', '\u2665', '\U0001FB70', '\u256D', '\u2573', '\u25CB',
	'\u2663', '\U0001FB75', '\u2666', '\u253C', '\U0001FB8C', '\u2502', '\u03C0', '\u25E5',
	// 0xE0
	'\u00A0', '\u258C', '\u2584', '\u2594', '\u2581', '\u258F', '\u2592', '\u2595',
	'\U0001FB8F', '\u25E4', '\U0001FB87', '\u251C', '\u2597', '\u2514', '\u2510', '\u2582',
	// 0xF0
	'\u250C', '\u2534', '\u252C', '\u2524', '\u258E', '\u258D', '\U0001FB88', '\U0001FB82',
	'\U0001FB83', '\u2583', '\U0001FB7F', '\u2596', '\u259D', '\u2518', '\u2598', '\u03C0',
}

// PETSCIIShifted is the Commodore character set in its shifted (lowercase and
// uppercase) mode.
var PETSCIIShifted = [256]rune{
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
	'@', 'a', 'b', 'c', 'd', 'e', 'f', 'g',
	'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	// 0x50
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w',
	'x', 'y', 'z', '[', '\u00A3', ']', '\u2191', '\u2190',
	// 0x60
	'\u2500', 'A', 'B', 'C', 'D', 'E', 'F', 'G',
	'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	// 0x70
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W',
	'X', 'Y', 'Z', '\u253C', '\U0001FB8C', '\u2502', '\U0001FB95', '\U0001FB98',
	// 0x80
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, '\u000A', 0, 0,
	// 0x90
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	// 0xA0
	'\u00A0', '\u258C', '\u2584', '\u2594', '\u2581', '\u258F', '\u2592', '\u2595',
	'\U0001FB8F', '\U0001FB99', '\U0001FB87', '\u251C', '\u2597', '\u2514', '\u2510', '\u2582',
	// 0xB0
	'\u250C', '\u2534', '\u252C', '\u2524', '\u258E', '\u258D', '\U0001FB88', '\U0001FB82',
	'\U0001FB83', '\u2583', '\u2713', '\u2596', '\u259D', '\u2518', '\u2598', '\u259A',
	// 0xC0
	'\u2500', 'A', 'B', 'C', 'D', 'E', 'F', 'G',
	'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	// 0xD0
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W',
	'X', 'Y', 'Z', '\u253C', '\U0001FB8C', '\u2502', '\U0001FB95', '\U0001FB98',
	// 0xE0
	'\u00A0', '\u258C', '\u2584', '\u2594', '\u2581', '\u258F', '\u2592', '\u2595',
	'\U0001FB8F', '\U0001FB99', '\U0001FB87', '\u251C', '\u2597', '\u2514', '\u2510', '\u2582',
	// 0xF0
	'\u250C', '\u2534', '\u252C', '\u2524', '\u258E', '\u258D', '\U0001FB88', '\U0001FB82',
	'\U0001FB83', '\u2583', '\u2713', '\u2596', '\u259D', '\u2518', '\u2598', '\U0001FB95',
}
