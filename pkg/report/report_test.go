package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gosniff/imghdr/pkg/report"
)

func TestWriteAndReadReport(t *testing.T) {
	var buf bytes.Buffer

	w := report.NewWriter(&buf)
	err := w.WriteHeader(report.Header{
		Version: report.Version,
		Creator: report.Creator{
			Package:              "imghdr",
			Version:              "test",
			ExecutionEnvironment: report.GetExecEnv(),
		},
		Source: report.Source{
			Directory:  "/data/images",
			HeaderSize: 32,
		},
	})
	require.NoError(t, err)

	entries := []report.FileEntry{
		{Path: "/data/images/a.png", Size: 1024, Format: "png"},
		{Path: "/data/images/b.jpg", Size: 2048, Format: "jpeg"},
	}
	for _, e := range entries {
		require.NoError(t, w.WriteFile(e))
	}
	require.NoError(t, w.Close())

	hdr, err := report.ReadHeader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, report.Version, hdr.Version)
	require.Equal(t, "imghdr", hdr.Creator.Package)
	require.Equal(t, "/data/images", hdr.Source.Directory)
	require.Equal(t, 32, hdr.Source.HeaderSize)

	files, err := report.ReadFileEntries(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, "png", files[0].Format)
	require.Equal(t, "/data/images/b.jpg", files[1].Path)
	require.Equal(t, uint64(2048), files[1].Size)
}
