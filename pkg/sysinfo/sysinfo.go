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
package sysinfo

import (
	"bufio"
	"bytes"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// SysUnknown is the fallback when no release information can be gathered.
var SysUnknown = SysInfo{
	Name:    runtime.GOOS,
	Release: "unknown",
	Version: "unknown",
}

// SysInfo holds basic operating system details.
type SysInfo struct {
	Name    string
	Release string
	Version string
}

// Stat returns the name, release and version of the running operating
// system, using platform-specific sources where available.
func Stat() (*SysInfo, error) {
	var release, version string

	switch runtime.GOOS {
	case "linux":
		release, version = linuxInfo()
	case "darwin":
		release, version = darwinInfo()
	case "windows":
		release, version = windowsInfo()
	default:
		release, version = "unknown", "unknown"
	}

	return &SysInfo{
		Name:    runtime.GOOS,
		Release: release,
		Version: version,
	}, nil
}

// linuxInfo parses /etc/os-release.
func linuxInfo() (string, string) {
	f, err := os.Open("/etc/os-release")
	if err != nil {
		return "unknown", "unknown"
	}
	defer f.Close()

	var name, version string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "NAME=") {
			name = strings.Trim(line[5:], `"`)
		}
		if strings.HasPrefix(line, "VERSION=") {
			version = strings.Trim(line[8:], `"`)
		}
	}
	return name, version
}

// darwinInfo parses the output of sw_vers.
func darwinInfo() (string, string) {
	output, err := exec.Command("sw_vers").Output()
	if err != nil {
		return "macOS", "unknown"
	}

	var productName, productVersion string
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "ProductName:") {
			productName = strings.TrimSpace(strings.TrimPrefix(line, "ProductName:"))
		}
		if strings.HasPrefix(line, "ProductVersion:") {
			productVersion = strings.TrimSpace(strings.TrimPrefix(line, "ProductVersion:"))
		}
	}
	return productName, productVersion
}

// windowsInfo returns the version string reported by 'cmd /c ver'.
func windowsInfo() (string, string) {
	output, err := exec.Command("cmd", "/c", "ver").Output()
	if err != nil {
		return "Windows", "unknown"
	}
	return "Windows", strings.TrimSpace(string(output))
}
