package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gosniff/imghdr/internal/scan"
	"github.com/gosniff/imghdr/pkg/report"
)

func writeFile(t *testing.T, path string, prefix []byte) {
	t.Helper()

	data := make([]byte, 64)
	copy(data, prefix)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "a.png"), []byte("\x89PNG\r\n\x1a\n"))
	writeFile(t, filepath.Join(dir, "b.jpg"), []byte{0xFF, 0xD8, 0xFF, 0xE0})
	writeFile(t, filepath.Join(dir, "sub", "c.gif"), []byte("GIF89a"))
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("just some text"))

	reportFile := filepath.Join(t.TempDir(), "report.xml")

	summary, err := scan.Scan(dir, scan.Options{
		ReportFile: reportFile,
		DisableLog: true,
	})
	require.NoError(t, err)

	require.Equal(t, 4, summary.FilesScanned)
	require.Equal(t, 3, summary.Identified)
	require.Equal(t, map[string]int{"png": 1, "jpeg": 1, "gif": 1}, summary.ByFormat)

	f, err := os.Open(reportFile)
	require.NoError(t, err)
	defer f.Close()

	files, err := report.ReadFileEntries(f)
	require.NoError(t, err)
	require.Len(t, files, 3)
}

func TestScanFormatFilter(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "a.png"), []byte("\x89PNG\r\n\x1a\n"))
	writeFile(t, filepath.Join(dir, "b.jpg"), []byte{0xFF, 0xD8, 0xFF, 0xE0})

	summary, err := scan.Scan(dir, scan.Options{
		Formats:    []string{"png"},
		DisableLog: true,
	})
	require.NoError(t, err)

	require.Equal(t, 2, summary.FilesScanned)
	require.Equal(t, 1, summary.Identified)
	require.Equal(t, map[string]int{"png": 1}, summary.ByFormat)
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := scan.Scan("/nonexistent/dir", scan.Options{DisableLog: true})
	require.Error(t, err)
}

func TestScanFileInsteadOfDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))

	_, err := scan.Scan(path, scan.Options{DisableLog: true})
	require.Error(t, err)
}
