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
package pbar

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gosniff/imghdr/pkg/util/format"
)

const MinRefreshRate = time.Millisecond * 500

// ProgressBarState holds the counters needed to render the scan progress line.
type ProgressBarState struct {
	TotalFiles     int
	ScannedFiles   int
	Identified     int
	ProcessedBytes int64
	StartTime      time.Time
	LastUpdateTime time.Time
}

// NewProgressBarState initializes a progress bar over a known file count.
func NewProgressBarState(totalFiles int) *ProgressBarState {
	return &ProgressBarState{
		TotalFiles:     totalFiles,
		StartTime:      time.Now(),
		LastUpdateTime: time.Unix(0, 0),
	}
}

// Render updates and prints the progress bar line. Unless force is set,
// redraws are throttled to MinRefreshRate.
func (pbs *ProgressBarState) Render(force bool) {
	if !force && (pbs.LastUpdateTime.IsZero() || time.Since(pbs.LastUpdateTime) < MinRefreshRate) {
		return
	}

	percentage := float64(100)
	if pbs.TotalFiles > 0 {
		percentage = float64(pbs.ScannedFiles) / float64(pbs.TotalFiles) * 100
	}

	barLength := 20
	filledLen := int(float64(barLength) * percentage / 100)
	var bar string
	if filledLen >= barLength {
		bar = strings.Repeat("=", barLength)
	} else {
		bar = strings.Repeat("=", filledLen) + ">" + strings.Repeat(" ", barLength-filledLen-1)
	}

	pbs.LastUpdateTime = time.Now()

	// \r moves the cursor back to the beginning of the line; trailing
	// spaces clear leftovers from a previous longer line.
	fmt.Fprintf(os.Stdout, "\r[INFO] Progress: [%s] %3.0f%% (%d/%d files) | Identified: %d | %s read    ",
		bar,
		percentage,
		pbs.ScannedFiles,
		pbs.TotalFiles,
		pbs.Identified,
		format.FormatBytes(pbs.ProcessedBytes),
	)

	os.Stdout.Sync()
}

// Finish terminates the progress line with a newline.
func (pbs *ProgressBarState) Finish() {
	fmt.Println()
}
