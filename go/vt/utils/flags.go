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

// Package utils contains helpers for registering command line flags.
//
// All flags use dashed names. Underscored spellings are still accepted on
// the command line through NormalizeUnderscoresToDashes, which prints a
// one-time deprecation notice.
package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// setFlagVar is a generic helper for registering flags.
// setFunc should be a function with signature func(fs *pflag.FlagSet, p *T, name string, def T, usage string)
func setFlagVar[T any](fs *pflag.FlagSet, p *T, name string, def T, usage string,
	setFunc func(fs *pflag.FlagSet, p *T, name string, def T, usage string)) {
	if strings.Contains(name, "_") {
		panic(fmt.Sprintf("flag %q: use dashes instead of underscores in flag names", name))
	}
	setFunc(fs, p, name, def, usage)
}

func SetFlagIntVar(fs *pflag.FlagSet, p *int, name string, def int, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).IntVar)
}

func SetFlagBoolVar(fs *pflag.FlagSet, p *bool, name string, def bool, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).BoolVar)
}

func SetFlagStringVar(fs *pflag.FlagSet, p *string, name string, def string, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).StringVar)
}

// SetFlagStringVarP is SetFlagStringVar with a one-letter shorthand.
func SetFlagStringVarP(fs *pflag.FlagSet, p *string, name, shorthand string, def string, usage string) {
	setFlagVar(fs, p, name, def, usage, func(fs *pflag.FlagSet, p *string, name string, def string, usage string) {
		fs.StringVarP(p, name, shorthand, def, usage)
	})
}

// SetFlagVar registers a flag that implements the pflag.Value interface.
func SetFlagVar(fs *pflag.FlagSet, value pflag.Value, name, usage string) {
	if strings.Contains(name, "_") {
		panic(fmt.Sprintf("flag %q: use dashes instead of underscores in flag names", name))
	}
	fs.Var(value, name, usage)
}

var (
	deprecationWarningsEmitted = make(map[string]bool)

	// deprecationOutput receives the underscore deprecation notices.
	deprecationOutput io.Writer = os.Stderr
)

// NormalizeUnderscoresToDashes translates flag names from underscores to
// dashes and prints a deprecation warning the first time each name is seen.
func NormalizeUnderscoresToDashes(f *pflag.FlagSet, name string) pflag.NormalizedName {
	// glog's own flags keep their historical names.
	if name == "log_dir" || name == "log_link" || name == "log_backtrace_at" {
		return pflag.NormalizedName(name)
	}

	// We only want to normalize flags that purely use underscores.
	if !strings.Contains(name, "_") || strings.Contains(name, "-") {
		return pflag.NormalizedName(name)
	}

	normalizedName := strings.ReplaceAll(name, "_", "-")
	if !deprecationWarningsEmitted[name] {
		deprecationWarningsEmitted[name] = true
		fmt.Fprintf(deprecationOutput, "Flag --%s has been deprecated, use --%s instead \n", name, normalizedName)
	}

	return pflag.NormalizedName(normalizedName)
}
