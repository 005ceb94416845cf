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

// Package imghdr guesses the format of an image from a small prefix of its
// bytes. Detection is best effort: a decoding library is consulted first
// when one is compiled in, and magic-byte signature matching is used as a
// fallback. No failure mode is ever surfaced to the caller; every outcome
// is expressed through the (format, ok) pair.
package imghdr

import (
	"errors"
	"io"
	"os"
	"strings"
)

// DefaultHeaderSize is the number of leading bytes inspected when sniffing
// a file or in-memory buffer. Every signature in DefaultSignatures fits
// well within this prefix.
const DefaultHeaderSize = 32

// ErrDecoderUnavailable is reported by the stub decoder selected with the
// "noimagedec" build tag.
var ErrDecoderUnavailable = errors.New("image decoding capability unavailable")

// Decoder identifies an image format by decoding its header bytes. A
// Decoder is allowed to recognize formats outside the signature fallback
// list. Any returned error means "no determination", never a failure of
// the sniff operation itself.
type Decoder interface {
	DecodeFormat(data []byte) (string, error)
}

// Sniffer classifies image headers. The zero value is not usable; call
// NewSniffer. Configuration methods must not be called concurrently with
// sniffing, but once configured a Sniffer holds no mutable state and is
// safe for concurrent use.
type Sniffer struct {
	headerSize int
	sigs       []Signature
	registry   *Registry
	dec        Decoder
}

// NewSniffer returns a Sniffer recognizing DefaultSignatures, reading at
// most DefaultHeaderSize bytes, with the compiled-in decoder.
func NewSniffer() *Sniffer {
	s := &Sniffer{
		headerSize: DefaultHeaderSize,
		registry:   NewRegistry(),
		dec:        NewDecoder(),
	}
	for _, sig := range DefaultSignatures {
		s.AddSignature(sig)
	}
	return s
}

// AddSignature registers an additional signature. Signatures added earlier
// take precedence when more than one matches.
func (s *Sniffer) AddSignature(sig Signature) {
	s.sigs = append(s.sigs, sig)
	s.registry.Add(sig)
}

// SetHeaderSize changes how many leading bytes are inspected. Values below
// the longest registered signature prefix will make that signature
// unmatchable; no attempt is made to detect this.
func (s *Sniffer) SetHeaderSize(n int) {
	if n > 0 {
		s.headerSize = n
	}
}

// SetDecoder replaces the decoding capability.
func (s *Sniffer) SetDecoder(dec Decoder) {
	s.dec = dec
}

// HeaderSize returns how many leading bytes are inspected.
func (s *Sniffer) HeaderSize() int {
	return s.headerSize
}

// Signatures returns the registered signatures in match order.
func (s *Sniffer) Signatures() []Signature {
	return s.sigs
}

// What reports the format of the image stored at file, or carried in
// header. When header is non-nil it is used directly and file is never
// touched; otherwise at most headerSize bytes are read from file. A file
// that cannot be opened or read yields ("", false), never an error.
func (s *Sniffer) What(file string, header []byte) (string, bool) {
	if header == nil {
		data, ok := s.readHeader(file)
		if !ok {
			return "", false
		}
		header = data
	}
	return s.Sniff(header)
}

// Sniff classifies an in-memory buffer. Only the first headerSize bytes
// are considered. The decoder is always preferred; on any decode error the
// buffer falls through to signature matching, where the first matching
// signature wins.
func (s *Sniffer) Sniff(data []byte) (string, bool) {
	if len(data) > s.headerSize {
		data = data[:s.headerSize]
	}

	if format, err := s.dec.DecodeFormat(data); err == nil && format != "" {
		return strings.ToLower(format), true
	}

	if len(data) == 0 {
		return "", false
	}
	return s.registry.Match(data)
}

func (s *Sniffer) readHeader(file string) ([]byte, bool) {
	f, err := os.Open(file)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	buf := make([]byte, s.headerSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, false
	}
	return buf[:n], true
}

var defaultSniffer = NewSniffer()

// What classifies a file (or pre-read header bytes) using the default
// Sniffer. See Sniffer.What.
func What(file string, header []byte) (string, bool) {
	return defaultSniffer.What(file, header)
}

// Sniff classifies an in-memory buffer using the default Sniffer.
func Sniff(data []byte) (string, bool) {
	return defaultSniffer.Sniff(data)
}
