package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gosniff/imghdr/pkg/util/format"
)

func TestFormatBytes(t *testing.T) {
	require.Equal(t, "32B", format.FormatBytes(32))
	require.Equal(t, "4KB", format.FormatBytes(4096))
	require.Equal(t, "1.50MB", format.FormatBytes(1572864))
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"32", 32},
		{"32B", 32},
		{"4KB", 4096},
		{"4kb", 4096},
		{"1.5MB", 1572864},
		{"2GB", 2 << 30},
	}
	for _, tt := range tests {
		v, err := format.ParseBytes(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, v)
	}

	_, err := format.ParseBytes("")
	require.Error(t, err)

	_, err = format.ParseBytes("abc")
	require.Error(t, err)

	_, err = format.ParseBytes("-1KB")
	require.Error(t, err)
}
