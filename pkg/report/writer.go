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
package report

import (
	"encoding/xml"
	"io"
)

// Writer streams a classification report to an io.Writer: one header,
// any number of file entries, then Close.
type Writer struct {
	w   io.Writer
	enc *xml.Encoder
}

func NewWriter(w io.Writer) *Writer {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	return &Writer{
		w:   w,
		enc: enc,
	}
}

// WriteHeader writes the XML declaration and the opening <sniffreport>
// element with its creator and source children.
func (w *Writer) WriteHeader(hdr Header) error {
	_, _ = w.w.Write([]byte(xml.Header))

	// The version attribute lives on the root element, so the start tag is
	// built by hand; the creator and source children are then encoded
	// individually to keep the root open for the file entries that follow.
	start := xml.StartElement{
		Name: xml.Name{Local: "sniffreport"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "version"}, Value: hdr.Version},
		},
	}

	if err := w.enc.EncodeToken(start); err != nil {
		return err
	}

	if err := w.enc.EncodeElement(hdr.Creator, xml.StartElement{Name: xml.Name{Local: "creator"}}); err != nil {
		return err
	}
	return w.enc.EncodeElement(hdr.Source, xml.StartElement{Name: xml.Name{Local: "source"}})
}

// WriteFile appends one classified file to the report.
func (w *Writer) WriteFile(entry FileEntry) error {
	return w.enc.Encode(entry)
}

// Close terminates the report by writing the closing </sniffreport> tag
// and flushing the encoder.
func (w *Writer) Close() error {
	if err := w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: "sniffreport"}}); err != nil {
		return err
	}
	return w.enc.Flush()
}
