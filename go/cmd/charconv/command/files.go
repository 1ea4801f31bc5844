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
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"

	"vitess.io/retrocharset/go/vt/log"
	"vitess.io/retrocharset/go/vt/vterrors"
)

// convertFunc converts one input. It returns the converted bytes and how
// many code points had to be replaced by a fallback.
type convertFunc func(src []byte) ([]byte, int, error)

// conversion describes a run of one converting command.
type conversion struct {
	action   string
	codec    *codec
	convert  convertFunc
	binary   bool
	rawBytes bool
}

// run converts every named file, or stdin when there are none. Output goes
// to stdout unless --output-dir is set, in which case files are converted
// concurrently and every failure is reported.
func (a *app) run(cmd *cobra.Command, args []string, conv conversion) error {
	outputDir := a.cfg.GetString("output-dir")
	if len(args) == 0 {
		if outputDir != "" {
			return vterrors.New(codes.InvalidArgument, "--output-dir needs at least one input file")
		}
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return vterrors.Wrap(err, "cannot read stdin")
		}
		return a.convertToStdout(cmd, "-", src, conv)
	}

	if outputDir == "" {
		for _, name := range args {
			src, err := afero.ReadFile(a.fs, name)
			if err != nil {
				return vterrors.Wrapf(err, "cannot read %s", name)
			}
			if err := a.convertToStdout(cmd, name, src, conv); err != nil {
				return err
			}
		}
		return nil
	}
	return a.convertToDir(cmd.Context(), outputDir, args, conv)
}

func (a *app) convertToStdout(cmd *cobra.Command, name string, src []byte, conv conversion) error {
	out, err := a.convertOne(name, src, conv)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if conv.binary && !conv.rawBytes && isTerminal(w) {
		dumper := hex.Dumper(w)
		if _, err := dumper.Write(out); err != nil {
			return err
		}
		return dumper.Close()
	}
	_, err = w.Write(out)
	return err
}

func (a *app) convertToDir(ctx context.Context, outputDir string, names []string, conv conversion) error {
	concurrency := a.cfg.GetInt("concurrency")
	if concurrency < 1 {
		return vterrors.Errorf(codes.InvalidArgument, "--concurrency must be at least 1, got %d", concurrency)
	}
	targets, err := outputTargets(outputDir, names)
	if err != nil {
		return err
	}
	if err := a.fs.MkdirAll(outputDir, 0o755); err != nil {
		return vterrors.Wrapf(err, "cannot create %s", outputDir)
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	recordError := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, err)
	}

	g := errgroup.Group{}
	g.SetLimit(concurrency)
	for _, name := range names {
		g.Go(func() error {
			if ctx != nil && ctx.Err() != nil {
				recordError(vterrors.Wrapf(ctx.Err(), "%s not converted", name))
				return nil
			}
			src, err := afero.ReadFile(a.fs, name)
			if err != nil {
				recordError(vterrors.Wrapf(err, "cannot read %s", name))
				return nil
			}
			out, err := a.convertOne(name, src, conv)
			if err != nil {
				recordError(err)
				return nil
			}
			target := targets[name]
			if err := afero.WriteFile(a.fs, target, out, 0o644); err != nil {
				recordError(vterrors.Wrapf(err, "cannot write %s", target))
			}
			return nil
		})
	}
	_ = g.Wait()
	return vterrors.Aggregate(errs)
}

// outputTargets maps every input to its file in outputDir. Two inputs that
// would be written to the same file are rejected.
func outputTargets(outputDir string, names []string) (map[string]string, error) {
	targets := make(map[string]string, len(names))
	writers := make(map[string]string, len(names))
	for _, name := range names {
		target := filepath.Join(outputDir, filepath.Base(name))
		if prev, ok := writers[target]; ok {
			return nil, vterrors.Errorf(codes.InvalidArgument, "%s and %s would both be written to %s", prev, name, target)
		}
		writers[target] = name
		targets[name] = target
	}
	return targets, nil
}

func (a *app) convertOne(name string, src []byte, conv conversion) ([]byte, error) {
	out, unmappable, err := conv.convert(src)
	if err != nil {
		return nil, vterrors.Wrapf(err, "%s %s", conv.action, name)
	}
	if unmappable > 0 {
		log.WarnS("characters replaced by fallback",
			"file", name, "charset", conv.codec.name, "count", unmappable, "fallback", conv.codec.fallback())
	}
	log.DebugS(conv.action,
		"file", name, "charset", conv.codec.name,
		"read", humanize.Bytes(uint64(len(src))), "wrote", humanize.Bytes(uint64(len(out))))
	return out, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func hexByte(b byte) string {
	return fmt.Sprintf("0x%02X", b)
}
