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
	"fmt"
	"unicode"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"vitess.io/retrocharset/go/charset"
)

func (a *app) tableCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "table <charset>",
		Short:   "Prints the code table of a character set as a 16x16 grid.",
		Example: "charconv table zx81",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := charset.LookupByName(args[0])
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header(codeTableHeader())
			if err := table.Bulk(codeTable(cs)); err != nil {
				return err
			}
			return table.Render()
		},
	}
}

func codeTableHeader() []string {
	header := []string{""}
	for col := 0; col < 16; col++ {
		header = append(header, fmt.Sprintf("_%X", col))
	}
	return header
}

// codeTable lays out every code of cs in rows of 16. Packed charsets
// only have 64 symbols.
func codeTable(cs charset.Charset) [][]string {
	codes := 256
	decode := func(b byte) rune { return charset.Decode(cs, []byte{b})[0] }
	if p, ok := cs.(*charset.Charset_packed6); ok {
		codes = 64
		decode = p.DecodeSymbol
	}

	rows := make([][]string, 0, codes/16)
	for hi := 0; hi < codes; hi += 16 {
		row := []string{fmt.Sprintf("%X_", hi>>4)}
		for lo := 0; lo < 16; lo++ {
			row = append(row, glyph(decode(byte(hi+lo))))
		}
		rows = append(rows, row)
	}
	return rows
}

// glyph renders r for display: printable code points as themselves, the
// rest by their code point number.
func glyph(r rune) string {
	switch {
	case r == 0:
		return "."
	case r == ' ':
		return "SP"
	case unicode.IsGraphic(r):
		return string(r)
	default:
		return fmt.Sprintf("U+%04X", r)
	}
}
