package imghdr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gosniff/imghdr/pkg/imghdr"
)

func TestRegistryMatch(t *testing.T) {
	r := imghdr.NewRegistry()
	for _, sig := range imghdr.DefaultSignatures {
		r.Add(sig)
	}

	format, ok := r.Match([]byte("GIF87a junk"))
	require.True(t, ok)
	require.Equal(t, "gif", format)

	_, ok = r.Match([]byte("garbage"))
	require.False(t, ok)

	_, ok = r.Match(nil)
	require.False(t, ok)
}

func TestRegistryRegistrationOrderWins(t *testing.T) {
	r := imghdr.NewRegistry()
	r.Add(imghdr.Signature{Format: "long", Prefixes: [][]byte{[]byte("ABCD")}})
	r.Add(imghdr.Signature{Format: "short", Prefixes: [][]byte{[]byte("AB")}})

	// Both prefixes match; the signature registered first wins even
	// though its prefix is longer.
	format, ok := r.Match([]byte("ABCDEF"))
	require.True(t, ok)
	require.Equal(t, "long", format)

	// Only the short prefix matches here.
	format, ok = r.Match([]byte("ABZZ"))
	require.True(t, ok)
	require.Equal(t, "short", format)
}

func TestRegistrySharedPrefix(t *testing.T) {
	r := imghdr.NewRegistry()
	r.Add(imghdr.Signature{Format: "a", Prefixes: [][]byte{[]byte("XY")}})
	r.Add(imghdr.Signature{Format: "b", Prefixes: [][]byte{[]byte("XY")}})

	// Same prefix registered twice: the earlier signature wins.
	format, ok := r.Match([]byte("XY.."))
	require.True(t, ok)
	require.Equal(t, "a", format)
}
