package report

import (
	"encoding/xml"
	"io"
)

// ReadHeader parses the creator and source sections of a report.
func ReadHeader(r io.Reader) (*Header, error) {
	dec := xml.NewDecoder(r)

	var hdr Header
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		startElem, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch startElem.Name.Local {
		case "sniffreport":
			for _, attr := range startElem.Attr {
				if attr.Name.Local == "version" {
					hdr.Version = attr.Value
				}
			}
		case "creator":
			if err := dec.DecodeElement(&hdr.Creator, &startElem); err != nil {
				return nil, err
			}
		case "source":
			if err := dec.DecodeElement(&hdr.Source, &startElem); err != nil {
				return nil, err
			}
			return &hdr, nil
		}
	}
	return &hdr, nil
}

// ReadFileEntries parses and returns all <file> elements from the reader.
func ReadFileEntries(r io.Reader) ([]FileEntry, error) {
	dec := xml.NewDecoder(r)
	var files []FileEntry

	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		if startElem, ok := tok.(xml.StartElement); ok && startElem.Name.Local == "file" {
			var fe FileEntry
			if err := dec.DecodeElement(&fe, &startElem); err != nil {
				return nil, err
			}
			files = append(files, fe)
		}
	}
	return files, nil
}
