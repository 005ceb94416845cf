package imghdr_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gosniff/imghdr/pkg/imghdr"
)

func pad(prefix []byte, n int) []byte {
	data := make([]byte, n)
	copy(data, prefix)
	return data
}

func TestSniffSignatures(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		format string
	}{
		{"jpeg", pad([]byte{0xFF, 0xD8, 0xFF, 0xE0}, 32), "jpeg"},
		{"png", pad([]byte("\x89PNG\r\n\x1a\n"), 32), "png"},
		{"gif89a", pad([]byte("GIF89a"), 32), "gif"},
		{"gif87a", pad([]byte("GIF87a"), 32), "gif"},
		{"bmp", pad([]byte("BM"), 32), "bmp"},
		{"tiff little endian", pad([]byte("II"), 32), "tiff"},
		{"tiff big endian", pad([]byte("MM"), 32), "tiff"},
		{"jpeg short header", []byte{0xFF, 0xD8}, "jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, ok := imghdr.Sniff(tt.data)
			require.True(t, ok)
			require.Equal(t, tt.format, format)
		})
	}
}

func TestSniffNoMatch(t *testing.T) {
	format, ok := imghdr.Sniff([]byte("not an image"))
	require.False(t, ok)
	require.Empty(t, format)
}

func TestSniffEmptyBuffer(t *testing.T) {
	_, ok := imghdr.Sniff(nil)
	require.False(t, ok)

	_, ok = imghdr.Sniff([]byte{})
	require.False(t, ok)
}

func TestSniffOnlyInspectsHeaderPrefix(t *testing.T) {
	// A valid signature beyond the inspected prefix must not match.
	data := append(make([]byte, 64), []byte("GIF89a")...)

	_, ok := imghdr.Sniff(data)
	require.False(t, ok)
}

func TestWhatReadsFileHeader(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "image.png")
	require.NoError(t, os.WriteFile(path, pad([]byte("\x89PNG\r\n\x1a\n"), 128), 0644))

	format, ok := imghdr.What(path, nil)
	require.True(t, ok)
	require.Equal(t, "png", format)
}

func TestWhatNonExistentFile(t *testing.T) {
	format, ok := imghdr.What("/nonexistent/path", nil)
	require.False(t, ok)
	require.Empty(t, format)
}

func TestWhatEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, ok := imghdr.What(path, nil)
	require.False(t, ok)
}

func TestWhatHeaderTakesPrecedence(t *testing.T) {
	// With header bytes supplied, the file must never be opened: an
	// unreadable path has no effect on the outcome.
	format, ok := imghdr.What("/nonexistent/path", []byte("\x89PNG\r\n\x1a\n1234"))
	require.True(t, ok)
	require.Equal(t, "png", format)
}

func TestWhatEmptyHeader(t *testing.T) {
	// An empty (but non-nil) header means "classify zero bytes", not
	// "read the file".
	_, ok := imghdr.What("/nonexistent/path", []byte{})
	require.False(t, ok)
}

type staticDecoder struct {
	format string
}

func (d *staticDecoder) DecodeFormat(data []byte) (string, error) {
	return d.format, nil
}

type failingDecoder struct{}

func (d *failingDecoder) DecodeFormat(data []byte) (string, error) {
	return "", errors.New("corrupt data")
}

func TestDecoderPreferredOverSignatures(t *testing.T) {
	s := imghdr.NewSniffer()
	s.SetDecoder(&staticDecoder{format: "WEBP"})

	// The decoder verdict wins even though the bytes carry a PNG
	// signature, and the reported name is lowercased.
	format, ok := s.Sniff(pad([]byte("\x89PNG\r\n\x1a\n"), 32))
	require.True(t, ok)
	require.Equal(t, "webp", format)
}

func TestDecoderFailureFallsThroughToSignatures(t *testing.T) {
	s := imghdr.NewSniffer()
	s.SetDecoder(&failingDecoder{})

	format, ok := s.Sniff(pad([]byte{0xFF, 0xD8, 0xFF}, 32))
	require.True(t, ok)
	require.Equal(t, "jpeg", format)
}

func TestDecoderUnavailableFallsThroughToSignatures(t *testing.T) {
	s := imghdr.NewSniffer()
	s.SetDecoder(unavailableDecoder{})

	format, ok := s.Sniff(pad([]byte("BM"), 32))
	require.True(t, ok)
	require.Equal(t, "bmp", format)
}

type unavailableDecoder struct{}

func (unavailableDecoder) DecodeFormat(data []byte) (string, error) {
	return "", imghdr.ErrDecoderUnavailable
}

func TestSniffRealEncoderOutput(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.Black, color.White})

	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, img, nil))

	format, ok := imghdr.Sniff(buf.Bytes())
	require.True(t, ok)
	require.Equal(t, "gif", format)
}

func TestSetHeaderSize(t *testing.T) {
	s := imghdr.NewSniffer()
	s.SetHeaderSize(4)

	// The 6-byte GIF signature no longer fits in the inspected prefix.
	_, ok := s.Sniff(pad([]byte("GIF89a"), 32))
	require.False(t, ok)

	// The 2-byte JPEG signature still does.
	format, ok := s.Sniff(pad([]byte{0xFF, 0xD8, 0xFF, 0xE0}, 32))
	require.True(t, ok)
	require.Equal(t, "jpeg", format)
}

func TestAddSignature(t *testing.T) {
	s := imghdr.NewSniffer()
	s.SetDecoder(&failingDecoder{})
	s.AddSignature(imghdr.Signature{
		Format:   "webp",
		Prefixes: [][]byte{[]byte("RIFF")},
	})

	format, ok := s.Sniff(pad([]byte("RIFF....WEBP"), 32))
	require.True(t, ok)
	require.Equal(t, "webp", format)
}
