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
package scan

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gosniff/imghdr/internal/env"
	"github.com/gosniff/imghdr/internal/logger"
	"github.com/gosniff/imghdr/pkg/imghdr"
	"github.com/gosniff/imghdr/pkg/pbar"
	"github.com/gosniff/imghdr/pkg/report"
)

type Options struct {
	HeaderSize int
	ReportFile string
	Formats    []string
	DisableLog bool
	LogLevel   logger.Level
}

// Result is the classification outcome for a single regular file. Format
// is empty when no determination was possible.
type Result struct {
	Path   string
	Size   uint64
	Format string
}

type Summary struct {
	FilesScanned int
	Identified   int
	ByFormat     map[string]int
	Duration     time.Duration
	Results      []Result
}

// Scan walks the directory tree rooted at dir and sniffs the image format
// of every regular file. Unreadable or unidentifiable files are never an
// error; they simply stay unclassified, matching the best-effort contract
// of the sniffer itself.
func Scan(dir string, opts Options) (*Summary, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", dir)
	}

	sniffer := imghdr.NewSniffer()
	if opts.HeaderSize > 0 {
		sniffer.SetHeaderSize(opts.HeaderSize)
	}

	wanted := map[string]bool{}
	for _, f := range opts.Formats {
		wanted[strings.ToLower(f)] = true
	}

	files, err := listFiles(dir)
	if err != nil {
		return nil, err
	}

	session := GenSessionID()

	var logFilePath string
	if !opts.DisableLog {
		logFilePath = absPath(session + ".log")
	}

	log, logFile, err := setupLogger(logFilePath, opts.LogLevel)
	if err != nil {
		return nil, err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	var reportWriter *report.Writer
	if opts.ReportFile != "" {
		outFile, err := os.Create(opts.ReportFile)
		if err != nil {
			return nil, err
		}
		defer outFile.Close()

		reportWriter = report.NewWriter(outFile)
		err = reportWriter.WriteHeader(report.Header{
			Version: report.Version,
			Creator: report.Creator{
				Package:              env.AppName,
				Version:              env.Version,
				ExecutionEnvironment: report.GetExecEnv(),
			},
			Source: report.Source{
				Directory:  absPath(dir),
				HeaderSize: sniffHeaderSize(opts),
			},
		})
		if err != nil {
			return nil, err
		}
		defer reportWriter.Close()
	}

	fmt.Println("[INFO] Starting scanning operation...")
	fmt.Printf("[INFO] Source: \t%s\n", absPath(dir))
	fmt.Printf("[INFO] Files: \t%d\n", len(files))

	outLog := "disabled"
	if !opts.DisableLog {
		outLog = logFilePath
	}
	fmt.Printf("[INFO] Output Log: \t%s\n", outLog)

	start := time.Now()

	summary := &Summary{
		ByFormat: map[string]int{},
	}

	bar := pbar.NewProgressBarState(len(files))
	for _, path := range files {
		res := sniffFile(sniffer, path)

		bar.ScannedFiles++
		bar.ProcessedBytes += int64(min(res.Size, uint64(sniffHeaderSize(opts))))

		summary.FilesScanned++

		if res.Format == "" {
			log.Debugf("%s: no match", res.Path)
		} else if len(wanted) > 0 && !wanted[res.Format] {
			log.Debugf("%s: %s (filtered out)", res.Path, res.Format)
		} else {
			log.Infof("%s: %s", res.Path, res.Format)

			bar.Identified++
			summary.Identified++
			summary.ByFormat[res.Format]++
			summary.Results = append(summary.Results, res)

			if reportWriter != nil {
				err := reportWriter.WriteFile(report.FileEntry{
					Path:   res.Path,
					Size:   res.Size,
					Format: res.Format,
				})
				if err != nil {
					log.Errorf("unable to write report entry: %s", err)
				}
			}
		}
		bar.Render(false)
	}
	bar.Render(true)
	bar.Finish()

	summary.Duration = time.Since(start)

	fmt.Printf("[INFO] Scan completed!\n")
	fmt.Printf("[INFO] Files scanned: \t%d\n", summary.FilesScanned)
	fmt.Printf("[INFO] Identified: \t%d\n", summary.Identified)
	for _, format := range sortedFormats(summary.ByFormat) {
		fmt.Printf("[INFO]   %s: \t%d\n", format, summary.ByFormat[format])
	}
	fmt.Printf("[INFO] Duration: \t%s\n", FormatDurationHMS(summary.Duration))

	if opts.ReportFile != "" {
		fmt.Printf("[INFO] Report saved to: \t%s\n", absPath(opts.ReportFile))
	}
	if !opts.DisableLog {
		fmt.Printf("[INFO] Detailed scan log: \t%s\n", logFilePath)
	}
	return summary, nil
}

func sniffFile(sniffer *imghdr.Sniffer, path string) Result {
	res := Result{Path: path}

	if info, err := os.Stat(path); err == nil {
		res.Size = uint64(info.Size())
	}

	if format, ok := sniffer.What(path, nil); ok {
		res.Format = format
	}
	return res
}

func sniffHeaderSize(opts Options) int {
	if opts.HeaderSize > 0 {
		return opts.HeaderSize
	}
	return imghdr.DefaultHeaderSize
}

func listFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func sortedFormats(byFormat map[string]int) []string {
	formats := make([]string, 0, len(byFormat))
	for format := range byFormat {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func GenSessionID() string {
	return time.Now().Format("20060102_150405")
}

// FormatDurationHMS formats a time.Duration into an HH:MM:SS string, or
// fractional seconds for sub-second durations.
func FormatDurationHMS(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	totalSeconds := int64(d.Seconds())

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// setupLogger opens the session log file, or discards log output when no
// path is given. The returned file, if non-nil, must be closed by the
// caller.
func setupLogger(logFilePath string, minLevel logger.Level) (*logger.Logger, *os.File, error) {
	var writer io.Writer
	var file *os.File

	if logFilePath == "" {
		writer = io.Discard
	} else {
		f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %q: %w", logFilePath, err)
		}
		writer = f
		file = f
	}

	return logger.New(writer, minLevel), file, nil
}
