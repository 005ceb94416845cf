package imghdr

// Signature associates an image format name with the magic-byte prefixes
// that identify it.
type Signature struct {
	Format      string
	Description string
	Prefixes    [][]byte
}

// DefaultSignatures lists the formats the fallback matcher recognizes, in
// match order. The TIFF prefixes are deliberately loose (bare endianness
// markers, without the 42 magic), mirroring the permissive contract of the
// interface this package shims.
var DefaultSignatures = []Signature{
	{
		Format:      "jpeg",
		Description: "JPEG Interchange Format",
		Prefixes: [][]byte{
			{0xFF, 0xD8},
		},
	},
	{
		Format:      "png",
		Description: "Portable Network Graphics",
		Prefixes: [][]byte{
			[]byte("\x89PNG\r\n\x1a\n"),
		},
	},
	{
		Format:      "gif",
		Description: "Graphics Interchange Format",
		Prefixes: [][]byte{
			[]byte("GIF87a"),
			[]byte("GIF89a"),
		},
	},
	{
		Format:      "bmp",
		Description: "Bitmap Image File Format",
		Prefixes: [][]byte{
			[]byte("BM"),
		},
	},
	{
		Format:      "tiff",
		Description: "Tagged Image File Format",
		Prefixes: [][]byte{
			[]byte("II"),
			[]byte("MM"),
		},
	},
}
