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
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"vitess.io/retrocharset/go/test/utils"
	"vitess.io/retrocharset/go/vt/vterrors"
)

func TestMain(m *testing.M) {
	_ = flag.Set("logtostderr", "true")

	code := m.Run()
	if code == 0 {
		if err := utils.GetLeaks(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			code = 1
		}
	}
	os.Exit(code)
}

func runCommand(t *testing.T, fs afero.Fs, stdin []byte, args ...string) ([]byte, error) {
	t.Helper()

	root := New(fs)
	var out bytes.Buffer
	root.SetIn(bytes.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(utils.LeakCheckContext(t))
	return out.Bytes(), err
}

func TestList(t *testing.T) {
	out, err := runCommand(t, afero.NewMemMapFs(), nil, "list")
	require.NoError(t, err)
	for _, want := range []string{"macroman", "Mac OS Roman", "rad50", "radix50", "singlebyte"} {
		assert.Contains(t, string(out), want)
	}
}

func TestTable(t *testing.T) {
	out, err := runCommand(t, afero.NewMemMapFs(), nil, "table", "ZX81")
	require.NoError(t, err)
	assert.Contains(t, string(out), "£")
	assert.Contains(t, string(out), "F_")

	out, err = runCommand(t, afero.NewMemMapFs(), nil, "table", "rad50")
	require.NoError(t, err)
	assert.Contains(t, string(out), "3_")
	assert.NotContains(t, string(out), "4_", "packed charsets only have 64 symbols")

	_, err = runCommand(t, afero.NewMemMapFs(), nil, "table", "nope")
	assert.Equal(t, codes.NotFound, vterrors.Code(err))
	assert.Equal(t, 2, ExitCode(err))

	_, err = runCommand(t, afero.NewMemMapFs(), nil, "table")
	assert.Equal(t, codes.InvalidArgument, vterrors.Code(err))
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, ".", glyph(0))
	assert.Equal(t, "SP", glyph(' '))
	assert.Equal(t, "£", glyph('£'))
	assert.Equal(t, "U+000D", glyph('\r'))
}

func TestDecode(t *testing.T) {
	out, err := runCommand(t, afero.NewMemMapFs(), []byte{0x2D, 0x2A, 0x31, 0x31, 0x34}, "decode", "-c", "zx81")
	require.NoError(t, err)
	assert.Equal(t, "HELLO", string(out))

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/hello.bin", []byte{0xC8, 0xC5, 0xD3, 0xD3, 0xD6}, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/in/world.bin", []byte{0x40, 0xE6, 0xD6, 0xD9, 0xD3, 0xC4}, 0o644))
	out, err = runCommand(t, fs, nil, "decode", "--charset", "cp037", "/in/hello.bin", "/in/world.bin")
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD", string(out))
}

func TestEncode(t *testing.T) {
	out, err := runCommand(t, afero.NewMemMapFs(), []byte("ABCD"), "encode", "-c", "radix50")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x20, 0xC4}, out)

	// Lowercase has no ZX81 encoding and takes the fallback byte.
	out, err = runCommand(t, afero.NewMemMapFs(), []byte("Hi"), "encode", "-c", "zx81", "--raw")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x2D, 0x0F}, out)
}

func TestTranscodeToDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	inputs := map[string]string{
		"/in/one.txt":   "ONE",
		"/in/two.txt":   "TWO",
		"/in/three.txt": "café",
	}
	var names []string
	for name, text := range inputs {
		require.NoError(t, afero.WriteFile(fs, name, []byte(text), 0o644))
		names = append(names, name)
	}

	args := append([]string{"transcode", "--from", "ISO-8859-1", "--to", "macroman", "--output-dir", "/out", "--concurrency", "2"}, names...)
	_, err := runCommand(t, fs, nil, args...)
	require.NoError(t, err)

	utils.MustMatchFile(t, fs, "/out/one.txt", []byte("ONE"))
	utils.MustMatchFile(t, fs, "/out/two.txt", []byte("TWO"))
	// "café" was written as UTF-8; read back as ISO-8859-1 the two bytes of é
	// become Ã and ©, both of which exist in Mac OS Roman.
	utils.MustMatchFile(t, fs, "/out/three.txt", []byte{'c', 'a', 'f', 0xCC, 0xA9})
}

func TestTranscodeLegacy(t *testing.T) {
	out, err := runCommand(t, afero.NewMemMapFs(), []byte("HELLO"), "transcode", "--from", "macroman", "--to", "ebcdic037")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC8, 0xC5, 0xD3, 0xD3, 0xD6}, out)
}

func TestConvertToDirReportsEveryFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/ok.txt", []byte("OK"), 0o644))

	_, err := runCommand(t, fs, nil, "encode", "-c", "sixbit", "--output-dir", "/out",
		"/in/missing-1.txt", "/in/ok.txt", "/in/missing-2.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing-1.txt")
	assert.Contains(t, err.Error(), "missing-2.txt")
	assert.Equal(t, 1, ExitCode(err))

	utils.MustMatchFile(t, fs, "/out/ok.txt", []byte{0x2F, 0x2B})
}

func TestOutputDirValidation(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/a.txt", []byte("A"), 0o644))

	_, err := runCommand(t, fs, nil, "encode", "-c", "sixbit", "--output-dir", "/out", "--concurrency", "0", "/in/a.txt")
	assert.Equal(t, codes.InvalidArgument, vterrors.Code(err))

	_, err = runCommand(t, fs, []byte("A"), "encode", "-c", "sixbit", "--output-dir", "/out")
	assert.Equal(t, codes.InvalidArgument, vterrors.Code(err))
}

func TestOutputDirNameCollision(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a/x.txt", []byte("A"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/b/x.txt", []byte("B"), 0o644))

	_, err := runCommand(t, fs, nil, "encode", "-c", "sixbit", "--output-dir", "/out", "/a/x.txt", "/b/x.txt")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, vterrors.Code(err))
	assert.Contains(t, err.Error(), "/a/x.txt")
	assert.Contains(t, err.Error(), "/b/x.txt")

	exists, err := afero.Exists(fs, "/out/x.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = runCommand(t, fs, nil, "encode", "-c", "sixbit", "--output-dir", "/out", "/a/x.txt", "/a/x.txt")
	assert.Equal(t, codes.InvalidArgument, vterrors.Code(err))
}

func TestCharsetResolution(t *testing.T) {
	// Names the registry does not know fall back to IANA encodings.
	out, err := runCommand(t, afero.NewMemMapFs(), []byte{0x80}, "decode", "-c", "windows-1252")
	require.NoError(t, err)
	assert.Equal(t, "€", string(out))

	_, err = runCommand(t, afero.NewMemMapFs(), []byte("A"), "decode", "-c", "no-such-charset")
	assert.Equal(t, codes.NotFound, vterrors.Code(err))
	assert.Equal(t, 2, ExitCode(err))

	_, err = runCommand(t, afero.NewMemMapFs(), []byte("A"), "decode")
	assert.Equal(t, codes.InvalidArgument, vterrors.Code(err))
}

func TestConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/charconv.yaml", []byte("charset: zx81\n"), 0o644))
	hello := []byte{0x2D, 0x2A, 0x31, 0x31, 0x34}

	out, err := runCommand(t, fs, hello, "decode", "--config", "/etc/charconv.yaml")
	require.NoError(t, err)
	assert.Equal(t, "HELLO", string(out))

	// Flags win over the config file.
	out, err = runCommand(t, fs, []byte{0xC8, 0xC9}, "decode", "--config", "/etc/charconv.yaml", "-c", "ebcdic037")
	require.NoError(t, err)
	assert.Equal(t, "HI", string(out))

	_, err = runCommand(t, fs, hello, "decode", "--config", "/etc/missing.yaml")
	assert.Equal(t, codes.InvalidArgument, vterrors.Code(err))
}

func TestEnvironment(t *testing.T) {
	t.Setenv("CHARCONV_CHARSET", "ebcdic037")
	out, err := runCommand(t, afero.NewMemMapFs(), []byte{0xC8, 0xC9}, "decode")
	require.NoError(t, err)
	assert.Equal(t, "HI", string(out))
}

func TestBadFlag(t *testing.T) {
	_, err := runCommand(t, afero.NewMemMapFs(), nil, "list", "--no-such-flag")
	assert.Equal(t, codes.InvalidArgument, vterrors.Code(err))
	assert.Equal(t, 2, ExitCode(err))

	_, err = runCommand(t, afero.NewMemMapFs(), nil, "list", "--log-level", "verbose")
	assert.ErrorContains(t, err, "invalid log-level")
	assert.Equal(t, 2, ExitCode(err))
}

func TestRootPrintsHelp(t *testing.T) {
	out, err := runCommand(t, afero.NewMemMapFs(), nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Available Commands:")
	assert.Contains(t, string(out), "transcode")
}

func TestExitCode(t *testing.T) {
	testCases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{vterrors.New(codes.NotFound, "unknown charset"), 2},
		{vterrors.New(codes.InvalidArgument, "bad flag"), 2},
		{vterrors.Wrap(vterrors.New(codes.NotFound, "unknown charset"), "decode"), 2},
		{vterrors.New(codes.OutOfRange, "short buffer"), 1},
		{errors.New("disk on fire"), 1},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, ExitCode(tc.err), "%v", tc.err)
	}
}
