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
// Package command implements the charconv command line.
package command

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"google.golang.org/grpc/codes"

	"vitess.io/retrocharset/go/vt/log"
	"vitess.io/retrocharset/go/vt/utils"
	"vitess.io/retrocharset/go/vt/vterrors"
)

const envPrefix = "CHARCONV"

// app holds the state shared by the commands of one command tree.
type app struct {
	fs  afero.Fs
	cfg *viper.Viper

	configFile  string
	outputDir   string
	concurrency int
}

// New returns the charconv command tree. Files are read from and written
// to fs.
func New(fs afero.Fs) *cobra.Command {
	a := &app{
		fs:          fs,
		cfg:         viper.New(),
		concurrency: 4,
	}

	root := &cobra.Command{
		Use:   "charconv",
		Short: "charconv converts text between Unicode and legacy 8-bit character sets.",
		Long: "`charconv` decodes, encodes and transcodes text stored in the character sets of\n" +
			"classic home computers, terminals and mainframes.\n\n" +
			"Settings may also come from a config file (`--config`, or charconv.yaml in the\n" +
			"working directory or $HOME/.config/charconv) and from CHARCONV_* environment variables.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Init(cmd.Flags()); err != nil {
				return vterrors.Errorf(codes.InvalidArgument, "invalid logging flags: %v", err)
			}
			return a.loadConfig(cmd.Flags())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
		RunE: func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	flags := root.PersistentFlags()
	flags.SetNormalizeFunc(utils.NormalizeUnderscoresToDashes)
	flags.AddGoFlagSet(flag.CommandLine)
	log.RegisterFlags(flags)
	utils.SetFlagStringVar(flags, &a.configFile, "config", "", "path to a config file (yaml, json or toml)")
	utils.SetFlagStringVar(flags, &a.outputDir, "output-dir", "", "write one converted file per input into this directory instead of stdout")
	utils.SetFlagIntVar(flags, &a.concurrency, "concurrency", a.concurrency, "number of files converted at the same time with --output-dir")
	root.MarkPersistentFlagFilename("config", "yaml", "yml", "json", "toml")
	root.MarkPersistentFlagDirname("output-dir")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return vterrors.New(codes.InvalidArgument, err.Error())
	})

	root.AddCommand(a.listCommand())
	root.AddCommand(a.tableCommand())
	root.AddCommand(a.decodeCommand())
	root.AddCommand(a.encodeCommand())
	root.AddCommand(a.transcodeCommand())
	return root
}

// loadConfig layers flags, CHARCONV_* environment variables and the config
// file, in that order of precedence.
func (a *app) loadConfig(flags *pflag.FlagSet) error {
	a.cfg.SetFs(a.fs)
	a.cfg.SetEnvPrefix(envPrefix)
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()
	if err := a.cfg.BindPFlags(flags); err != nil {
		return err
	}

	if a.configFile != "" {
		a.cfg.SetConfigFile(a.configFile)
	} else {
		a.cfg.SetConfigName("charconv")
		a.cfg.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.cfg.AddConfigPath(filepath.Join(home, ".config", "charconv"))
		}
	}

	if err := a.cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return vterrors.Errorf(codes.InvalidArgument, "cannot read config: %v", err)
	}
	log.DebugS("loaded config", "file", a.cfg.ConfigFileUsed())
	return nil
}

// ExitCode maps an error returned by the command tree to a process exit
// status.
func ExitCode(err error) int {
	switch vterrors.Code(err) {
	case codes.OK:
		return 0
	case codes.NotFound, codes.InvalidArgument:
		return 2
	default:
		return 1
	}
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return vterrors.Errorf(codes.InvalidArgument, "%s requires exactly %d argument(s), got %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}
