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
	"slices"
	"strings"
	"sync"

	"google.golang.org/grpc/codes"

	"vitess.io/retrocharset/go/vt/vterrors"
)

type registration struct {
	info  Info
	build func(Info) Charset
}

type entry struct {
	info Info
	load func() Charset
}

var (
	charsetsByName = make(map[string]*entry)
	charsetsAll    []*entry
)

func init() {
	for _, reg := range builtins {
		register(reg)
	}
	slices.SortFunc(charsetsAll, func(a, b *entry) int {
		return strings.Compare(a.info.Name, b.info.Name)
	})
}

func register(reg registration) {
	info := reg.info
	e := &entry{info: info}
	e.load = sync.OnceValue(func() Charset {
		cs := reg.build(info)
		if cs.Flags() != info.Flags {
			panic(fmt.Sprintf("charset %s built with flags %v, registered as %v", info.Name, cs.Flags(), info.Flags))
		}
		return cs
	})

	for _, name := range append([]string{info.Name}, info.Aliases...) {
		key := normalizeName(name)
		if old, found := charsetsByName[key]; found {
			panic(fmt.Sprintf("duplicated charset name %q: %s (existing charset is %s)", name, info.Name, old.info.Name))
		}
		charsetsByName[key] = e
	}
	charsetsAll = append(charsetsAll, e)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// LookupByName returns the charset registered under name or one of its
// aliases. Matching is case-insensitive. Every call for the same charset
// returns the same instance.
func LookupByName(name string) (Charset, error) {
	e, ok := charsetsByName[normalizeName(name)]
	if !ok {
		return nil, vterrors.Errorf(codes.NotFound, "unknown charset %q", name)
	}
	return e.load(), nil
}

// All returns the descriptors of every registered charset, sorted by name.
func All() []Info {
	all := make([]Info, 0, len(charsetsAll))
	for _, e := range charsetsAll {
		info := e.info
		info.Aliases = slices.Clone(info.Aliases)
		all = append(all, info)
	}
	return all
}
