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
	"github.com/spf13/cobra"

	"vitess.io/retrocharset/go/vt/utils"
)

func (a *app) decodeCommand() *cobra.Command {
	var charsetName string
	cmd := &cobra.Command{
		Use:     "decode -c <charset> [file...]",
		Short:   "Decodes legacy bytes into UTF-8 text.",
		Example: "charconv decode -c petscii listing.prg",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookupCodec(a.cfg.GetString("charset"))
			if err != nil {
				return err
			}
			return a.run(cmd, args, conversion{
				action: "decode",
				codec:  c,
				convert: func(src []byte) ([]byte, int, error) {
					out, err := c.decode(src)
					return out, 0, err
				},
			})
		},
	}
	utils.SetFlagStringVarP(cmd.Flags(), &charsetName, "charset", "c", "", "charset the input is encoded with")
	return cmd
}

func (a *app) encodeCommand() *cobra.Command {
	var (
		charsetName string
		raw         bool
	)
	cmd := &cobra.Command{
		Use:   "encode -c <charset> [file...]",
		Short: "Encodes UTF-8 text into legacy bytes.",
		Long: "Encodes UTF-8 text into legacy bytes. Characters the charset cannot represent\n" +
			"are replaced by its fallback byte. When stdout is a terminal the result is shown\n" +
			"as a hex dump unless --raw is given.",
		Example: "charconv encode -c zx81 --output-dir out/ title.txt credits.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookupCodec(a.cfg.GetString("charset"))
			if err != nil {
				return err
			}
			return a.run(cmd, args, conversion{
				action:   "encode",
				codec:    c,
				convert:  c.encode,
				binary:   true,
				rawBytes: a.cfg.GetBool("raw"),
			})
		},
	}
	utils.SetFlagStringVarP(cmd.Flags(), &charsetName, "charset", "c", "", "charset to encode to")
	utils.SetFlagBoolVar(cmd.Flags(), &raw, "raw", false, "write raw bytes even when stdout is a terminal")
	return cmd
}

func (a *app) transcodeCommand() *cobra.Command {
	var (
		from, to string
		raw      bool
	)
	cmd := &cobra.Command{
		Use:     "transcode --from <charset> --to <charset> [file...]",
		Short:   "Converts bytes from one legacy charset to another.",
		Example: "charconv transcode --from petscii --to atascii listing.prg",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := lookupCodec(a.cfg.GetString("from"))
			if err != nil {
				return err
			}
			dst, err := lookupCodec(a.cfg.GetString("to"))
			if err != nil {
				return err
			}
			return a.run(cmd, args, conversion{
				action: "transcode",
				codec:  dst,
				convert: func(in []byte) ([]byte, int, error) {
					return src.transcode(dst, in)
				},
				binary:   true,
				rawBytes: a.cfg.GetBool("raw"),
			})
		},
	}
	utils.SetFlagStringVar(cmd.Flags(), &from, "from", "", "charset the input is encoded with")
	utils.SetFlagStringVar(cmd.Flags(), &to, "to", "", "charset to convert to")
	utils.SetFlagBoolVar(cmd.Flags(), &raw, "raw", false, "write raw bytes even when stdout is a terminal")
	return cmd
}
