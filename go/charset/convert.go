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
	"google.golang.org/grpc/codes"

	"vitess.io/retrocharset/go/vt/vterrors"
)

func checkDst(isNil bool, have, need int) error {
	switch {
	case need == 0:
		return nil
	case isNil:
		return vterrors.New(codes.InvalidArgument, "destination buffer is nil")
	case have < need:
		return vterrors.Errorf(codes.OutOfRange, "destination buffer too small: need %d, have %d", need, have)
	}
	return nil
}

func checkRange(isNil bool, length, offset, count int) error {
	switch {
	case isNil:
		return vterrors.New(codes.InvalidArgument, "source buffer is nil")
	case offset < 0 || offset > length:
		return vterrors.Errorf(codes.OutOfRange, "offset %d out of range [0, %d]", offset, length)
	case count < 0 || count > length-offset:
		return vterrors.Errorf(codes.OutOfRange, "count %d out of range [0, %d]", count, length-offset)
	}
	return nil
}

func checkCount(n int) error {
	if n < 0 {
		return vterrors.Errorf(codes.OutOfRange, "count %d is negative", n)
	}
	return nil
}

// Decode returns the code points for src.
func Decode(cs Charset, src []byte) []rune {
	dst := make([]rune, cs.RuneCount(len(src)))
	n, _ := cs.DecodeRunes(dst, src)
	return dst[:n]
}

// DecodeString returns src decoded as a UTF-8 string.
func DecodeString(cs Charset, src []byte) string {
	return string(Decode(cs, src))
}

// DecodeRange decodes count bytes of src starting at offset.
func DecodeRange(cs Charset, src []byte, offset, count int) ([]rune, error) {
	if err := checkRange(src == nil, len(src), offset, count); err != nil {
		return nil, err
	}
	return Decode(cs, src[offset:offset+count]), nil
}

// DecodeInto decodes src into the caller supplied dst and returns the
// number of code points written.
func DecodeInto(cs Charset, dst []rune, src []byte) (int, error) {
	return cs.DecodeRunes(dst, src)
}

// Encode returns the legacy bytes for src. Code points without a mapping
// are replaced by the charset's fallback.
func Encode(cs Charset, src []rune) []byte {
	dst := make([]byte, cs.ByteCount(len(src)))
	n, _ := cs.EncodeRunes(dst, src)
	return dst[:n]
}

// EncodeString encodes the code points of s. Invalid UTF-8 sequences are
// seen as U+FFFD and take the fallback like any other unmapped code point.
func EncodeString(cs Charset, s string) []byte {
	return Encode(cs, []rune(s))
}

// EncodeRange encodes count code points of src starting at offset.
func EncodeRange(cs Charset, src []rune, offset, count int) ([]byte, error) {
	if err := checkRange(src == nil, len(src), offset, count); err != nil {
		return nil, err
	}
	return Encode(cs, src[offset:offset+count]), nil
}

// EncodeInto encodes src into the caller supplied dst and returns the
// number of bytes written.
func EncodeInto(cs Charset, dst []byte, src []rune) (int, error) {
	return cs.EncodeRunes(dst, src)
}

// ByteCount returns the number of bytes Encode produces for src.
func ByteCount(cs Charset, src []rune) int {
	return cs.ByteCount(len(src))
}

// ByteCountRange is ByteCount over count code points of src starting at offset.
func ByteCountRange(cs Charset, src []rune, offset, count int) (int, error) {
	if err := checkRange(src == nil, len(src), offset, count); err != nil {
		return 0, err
	}
	return cs.ByteCount(count), nil
}

// RuneCount returns the number of code points Decode produces for src.
func RuneCount(cs Charset, src []byte) int {
	return cs.RuneCount(len(src))
}

// RuneCountRange is RuneCount over count bytes of src starting at offset.
func RuneCountRange(cs Charset, src []byte, offset, count int) (int, error) {
	if err := checkRange(src == nil, len(src), offset, count); err != nil {
		return 0, err
	}
	return cs.RuneCount(count), nil
}

// MaxByteCount returns the largest number of bytes numRunes code points
// can encode to.
func MaxByteCount(cs Charset, numRunes int) (int, error) {
	if err := checkCount(numRunes); err != nil {
		return 0, err
	}
	return cs.ByteCount(numRunes), nil
}

// MaxRuneCount returns the largest number of code points numBytes bytes
// can decode to.
func MaxRuneCount(cs Charset, numBytes int) (int, error) {
	if err := checkCount(numBytes); err != nil {
		return 0, err
	}
	return cs.RuneCount(numBytes), nil
}

// Unmappable returns how many code points of src would be replaced by the
// fallback when encoding to cs.
func Unmappable(cs Charset, src []rune) int {
	var failed int
	for _, r := range src {
		if !cs.Contains(r) {
			failed++
		}
	}
	return failed
}

// Transcode converts src, encoded with srcCharset, so that it becomes
// encoded with dstCharset. Code points missing from dstCharset take its
// fallback.
func Transcode(dstCharset, srcCharset Charset, src []byte) []byte {
	if dstCharset == srcCharset {
		return append([]byte(nil), src...)
	}
	return Encode(dstCharset, Decode(srcCharset, src))
}
