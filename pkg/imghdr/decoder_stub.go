//go:build noimagedec

package imghdr

// NewDecoder returns a decoder that always reports that no decoding
// capability is compiled in, leaving detection to signature matching.
func NewDecoder() Decoder {
	return &stubDecoder{}
}

type stubDecoder struct{}

func (d *stubDecoder) DecodeFormat(data []byte) (string, error) {
	return "", ErrDecoderUnavailable
}
