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
package command

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"google.golang.org/grpc/codes"

	"vitess.io/retrocharset/go/charset"
	"vitess.io/retrocharset/go/vt/log"
	"vitess.io/retrocharset/go/vt/vterrors"
)

// codec is either a registered legacy charset or, for names the registry
// does not know, an IANA encoding from x/text.
type codec struct {
	name string
	cs   charset.Charset
	enc  encoding.Encoding
}

func lookupCodec(name string) (*codec, error) {
	if name == "" {
		return nil, vterrors.New(codes.InvalidArgument, "no charset given")
	}
	cs, err := charset.LookupByName(name)
	if err == nil {
		return &codec{name: cs.Name(), cs: cs}, nil
	}

	enc, ianaErr := ianaindex.IANA.Encoding(name)
	if ianaErr != nil || enc == nil {
		return nil, err
	}
	canonical, ianaErr := ianaindex.IANA.Name(enc)
	if ianaErr != nil {
		canonical = name
	}
	log.WarnS("charset is not a legacy charset, using IANA encoding", "charset", name, "encoding", canonical)
	return &codec{name: canonical, enc: enc}, nil
}

// decode turns src into UTF-8 text.
func (c *codec) decode(src []byte) ([]byte, error) {
	if c.cs != nil {
		return []byte(charset.DecodeString(c.cs, src)), nil
	}
	out, err := c.enc.NewDecoder().Bytes(src)
	if err != nil {
		return nil, vterrors.Wrapf(err, "cannot decode %s", c.name)
	}
	return out, nil
}

// encode turns UTF-8 text into bytes of this codec. It also returns how
// many code points were replaced because the codec cannot represent them,
// which is only known for registered charsets.
func (c *codec) encode(text []byte) ([]byte, int, error) {
	if c.cs != nil {
		runes := bytes.Runes(text)
		return charset.Encode(c.cs, runes), charset.Unmappable(c.cs, runes), nil
	}
	out, err := encoding.ReplaceUnsupported(c.enc.NewEncoder()).Bytes(text)
	if err != nil {
		return nil, 0, vterrors.Wrapf(err, "cannot encode %s", c.name)
	}
	return out, 0, nil
}

// transcode converts src from c to dst.
func (c *codec) transcode(dst *codec, src []byte) ([]byte, int, error) {
	if c.cs != nil && dst.cs != nil {
		unmappable := charset.Unmappable(dst.cs, charset.Decode(c.cs, src))
		return charset.Transcode(dst.cs, c.cs, src), unmappable, nil
	}
	text, err := c.decode(src)
	if err != nil {
		return nil, 0, err
	}
	return dst.encode(text)
}

// fallback describes what dst substitutes for unmappable code points.
func (c *codec) fallback() string {
	if c.cs == nil {
		return "?"
	}
	return hexByte(c.cs.Fallback())
}
