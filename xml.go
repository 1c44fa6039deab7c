package properties

import (
	"encoding/xml"
	"io"
)

// The XML flavor of the properties format: a flat list of entries under a
// <properties> root, with an optional <comment>. Load and store delegate
// to encoding/xml; no formatting is preserved across an XML round trip.

type xmlProperties struct {
	XMLName xml.Name   `xml:"properties"`
	Comment string     `xml:"comment"`
	Entries []xmlEntry `xml:"entry"`
}

type xmlEntry struct {
	XMLName xml.Name `xml:"entry"`
	Key     string   `xml:"key,attr"`
	Value   string   `xml:",chardata"`
}

type xmlComment struct {
	XMLName xml.Name `xml:"comment"`
	Text    string   `xml:",chardata"`
}

const xmlPreamble = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n" +
	`<!DOCTYPE properties SYSTEM "http://java.sun.com/dtd/properties.dtd">` + "\n"

// LoadXML parses the XML flavor into a fresh document, preserving entry
// order.
func LoadXML(r io.Reader) (*Document, error) {
	var parsed xmlProperties
	if err := xml.NewDecoder(r).Decode(&parsed); err != nil {
		return nil, err
	}
	d := New()
	for _, entry := range parsed.Entries {
		d.Put(entry.Key, entry.Value)
	}
	return d, nil
}

// StoreXML writes the document in the XML flavor, one entry per line.
func (d *Document) StoreXML(w io.Writer, comment string) error {
	if _, err := io.WriteString(w, xmlPreamble+"<properties>\n"); err != nil {
		return err
	}
	if comment != "" {
		if err := writeXMLLine(w, xmlComment{Text: comment}); err != nil {
			return err
		}
	}
	for key, value := range d.All() {
		if err := writeXMLLine(w, xmlEntry{Key: key, Value: value}); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</properties>\n")
	return err
}

func writeXMLLine(w io.Writer, v any) error {
	line, err := xml.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(line); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
