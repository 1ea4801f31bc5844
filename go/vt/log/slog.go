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

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

var (
	logFormat string
	logLevel  = levelValue{level: slog.LevelInfo}

	// output is where structured records are written. Converted data goes
	// to stdout, so logs must never share it.
	output io.Writer = os.Stderr

	// structuredLoggingEnabled controls whether structured logging is enabled. If it's disabled,
	// logging is performed through glog. If enabled, logging is instead through slog.
	structuredLoggingEnabled atomic.Bool
)

// Init configures logging based on the parsed flags.
func Init(fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	formatFlag := fs.Lookup("log-fmt")
	if formatFlag == nil || !formatFlag.Changed {
		return nil
	}

	handler, err := slogHandler(logFormat, output, &slog.HandlerOptions{AddSource: true, Level: logLevel.level})
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))
	structuredLoggingEnabled.Store(true)
	return nil
}

func slogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn, or error", level)
	}
}

// levelValue is a pflag.Value holding a slog level. Unknown level names
// are rejected while the command line is parsed.
type levelValue struct {
	level slog.Level
}

func (v *levelValue) String() string { return strings.ToLower(v.level.String()) }

func (v *levelValue) Set(s string) error {
	level, err := slogLevel(s)
	if err != nil {
		return err
	}
	v.level = level
	return nil
}

func (v *levelValue) Type() string { return "level" }

func slogHandler(format string, w io.Writer, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	case "logfmt":
		return slog.NewTextHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("invalid log-fmt %q: expected json or logfmt", format)
	}
}

// logS emits a structured record, or forwards to glog when structured
// logging has not been enabled.
func logS(level slog.Level, msg string, args ...any) {
	if !structuredLoggingEnabled.Load() {
		logGlog(level, msg, args...)
		return
	}

	logger := slog.Default()
	ctx := context.Background()
	if !logger.Enabled(ctx, level) {
		return
	}

	// Skip runtime.Callers, logS and the exported wrapper.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	record := slog.NewRecord(time.Now(), level, msg, pcs[0])
	record.Add(args...)
	_ = logger.Handler().Handle(ctx, record)
}

// logGlog renders msg followed by its key/value pairs on a single glog line.
func logGlog(level slog.Level, msg string, args ...any) {
	var sb strings.Builder
	sb.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", args[i], args[i+1])
	}
	if len(args)%2 == 1 {
		fmt.Fprintf(&sb, " !BADKEY=%v", args[len(args)-1])
	}

	const depth = 3
	switch level {
	case slog.LevelWarn:
		glog.WarningDepth(depth, sb.String())
	case slog.LevelError:
		glog.ErrorDepth(depth, sb.String())
	case slog.LevelDebug:
		if glog.V(1) {
			glog.InfoDepth(depth, sb.String())
		}
	default:
		glog.InfoDepth(depth, sb.String())
	}
}

// Enabled reports whether a log call at the provided level would be emitted.
func Enabled(level slog.Level) bool {
	if structuredLoggingEnabled.Load() {
		return slog.Default().Enabled(context.Background(), level)
	}
	if level < slog.LevelInfo {
		return bool(glog.V(1))
	}
	return true
}

// InfoS logs at the Info level.
func InfoS(msg string, args ...any) { logS(slog.LevelInfo, msg, args...) }

// WarnS logs at the Warn level.
func WarnS(msg string, args ...any) { logS(slog.LevelWarn, msg, args...) }

// DebugS logs at the Debug level.
func DebugS(msg string, args ...any) { logS(slog.LevelDebug, msg, args...) }

// ErrorS logs at the Error level.
func ErrorS(msg string, args ...any) { logS(slog.LevelError, msg, args...) }

// SetLogger replaces the structured logger used by the log package. The returned function restores
// the previous logger. Used for testing.
func SetLogger(logger *slog.Logger) func() {
	if logger == nil {
		return func() {}
	}

	previousEnabled := structuredLoggingEnabled.Load()
	previousDefault := slog.Default()

	slog.SetDefault(logger)
	structuredLoggingEnabled.Store(true)

	return func() {
		slog.SetDefault(previousDefault)
		structuredLoggingEnabled.Store(previousEnabled)
	}
}
