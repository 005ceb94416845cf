// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func DefineWhatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "what <file>...",
		Short: "Guess the image format of one or more files",
		Long: `The 'what' command inspects a small prefix of each file and prints a
best-effort guess of its image format. Files that cannot be read or whose
format cannot be determined are reported as "unknown"; this is never an error.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunWhat,
	}

	cmd.Flags().String("header-size", "", "number of leading bytes to inspect")
	return cmd
}

func RunWhat(cmd *cobra.Command, args []string) error {
	sniffer, err := newSniffer(cmd)
	if err != nil {
		return err
	}

	for _, path := range args {
		format, ok := sniffer.What(path, nil)
		if !ok {
			format = "unknown"
		}
		fmt.Printf("%s: %s\n", path, format)
	}
	return nil
}
