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
package utils

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string
	aliases []string
	id      int
}

func TestMustMatchIgnoresFields(t *testing.T) {
	mustMatch := MustMatchFn(".id")
	mustMatch(t, sample{Name: "zx81", aliases: []string{"ts1000"}, id: 1}, sample{Name: "zx81", aliases: []string{"ts1000"}, id: 2})
}

func TestMustMatchFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out/hello.bin", []byte{0x2D, 0x2A}, 0o644))
	MustMatchFile(t, fs, "/out/hello.bin", []byte{0x2D, 0x2A})
}

func TestLeakCheckContext(t *testing.T) {
	ctx := LeakCheckContext(t)
	require.NoError(t, ctx.Err())

	done := make(chan struct{})
	go func() { close(done) }()
	<-done
	require.NoError(t, GetLeaks())
}
