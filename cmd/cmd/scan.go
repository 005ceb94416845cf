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
	"math"

	"github.com/spf13/cobra"

	"github.com/gosniff/imghdr/internal/logger"
	"github.com/gosniff/imghdr/internal/scan"
	"github.com/gosniff/imghdr/pkg/util/format"
)

func DefineScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "scan <directory>",
		Short:        "Classify every file in a directory tree",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunScan,
	}

	cmd.Flags().String("header-size", "32", "number of leading bytes to inspect per file")
	cmd.Flags().StringSliceP("format", "f", nil, "only report the given formats")
	cmd.Flags().StringP("output", "o", "", "the path of the XML classification report")
	cmd.Flags().Bool("no-log", false, "disable the session log file")
	cmd.Flags().String("log-level", "INFO", "minimum level of the session log")

	return cmd
}

func RunScan(cmd *cobra.Command, args []string) error {
	opts, err := parseOptions(cmd)
	if err != nil {
		return err
	}

	_, err = scan.Scan(args[0], opts)
	return err
}

func parseOptions(cmd *cobra.Command) (scan.Options, error) {
	headerSize := getBytes(cmd, "header-size")
	if headerSize == math.MaxUint64 {
		return scan.Options{}, fmt.Errorf("invalid header size")
	}

	formats, _ := cmd.Flags().GetStringSlice("format")
	outputFile, _ := cmd.Flags().GetString("output")
	disableLog, _ := cmd.Flags().GetBool("no-log")
	logLevel, _ := cmd.Flags().GetString("log-level")

	return scan.Options{
		HeaderSize: int(headerSize),
		ReportFile: outputFile,
		Formats:    formats,
		DisableLog: disableLog,
		LogLevel:   logger.ParseLevel(logLevel),
	}, nil
}

func getBytes(cmd *cobra.Command, name string) uint64 {
	s, _ := cmd.Flags().GetString(name)

	v, err := format.ParseBytes(s)
	if err != nil {
		return math.MaxUint64
	}
	return v
}
