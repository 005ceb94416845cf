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

// Package report writes and reads XML classification reports produced by
// directory scans.
package report

import (
	"encoding/xml"
	"os"
	"os/user"
	"runtime"
	"strconv"
	"time"

	"github.com/gosniff/imghdr/pkg/sysinfo"
)

const Version = "1.0"

// Header is the root element of a classification report.
type Header struct {
	XMLName xml.Name `xml:"sniffreport"`
	Version string   `xml:"version,attr,omitempty"`
	Creator Creator  `xml:"creator"`
	Source  Source   `xml:"source"`
}

// Creator describes the software and environment that produced the report.
type Creator struct {
	Package              string  `xml:"package"`
	Version              string  `xml:"version"`
	ExecutionEnvironment ExecEnv `xml:"execution_environment"`
}

// ExecEnv records the operating system and host the scan ran on.
type ExecEnv struct {
	OS      string `xml:"os_sysname"`
	Release string `xml:"os_release"`
	Version string `xml:"os_version"`
	Host    string `xml:"host"`
	Arch    string `xml:"arch"`
	UID     int    `xml:"uid"`
	Start   string `xml:"start_time"`
}

// Source describes the scanned directory tree.
type Source struct {
	Directory  string `xml:"directory"`
	HeaderSize int    `xml:"header_size"`
}

// FileEntry is the classification result for a single file.
type FileEntry struct {
	XMLName xml.Name `xml:"file"`
	Path    string   `xml:"path"`
	Size    uint64   `xml:"size"`
	Format  string   `xml:"format,omitempty"`
}

// GetExecEnv gathers runtime information for the report header.
func GetExecEnv() ExecEnv {
	sinfo, err := sysinfo.Stat()
	if err != nil {
		sinfo = &sysinfo.SysUnknown
	}

	host, err := os.Hostname()
	if err != nil {
		host = "unknown_host"
	}

	uid := 0
	currentUser, err := user.Current()
	if err == nil {
		if uidInt, parseErr := strconv.Atoi(currentUser.Uid); parseErr == nil {
			uid = uidInt
		}
	}

	return ExecEnv{
		OS:      sinfo.Name,
		Release: sinfo.Release,
		Version: sinfo.Version,
		Host:    host,
		Arch:    runtime.GOARCH,
		UID:     uid,
		Start:   time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	}
}
