package properties

import (
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding selects the character encoding used by the file convenience
// wrappers. The classic format is ISO-8859-1, with everything beyond that
// repertoire written as \uXXXX escapes; UTF8 suits documents handled
// through the Unescaped view.
type Encoding int

const (
	ISO8859_1 Encoding = iota
	UTF8
)

func (e Encoding) wrapReader(r io.Reader) io.Reader {
	if e == ISO8859_1 {
		return charmap.ISO8859_1.NewDecoder().Reader(r)
	}
	return r
}

// LoadFile reads a .properties file in the default ISO-8859-1 encoding.
func LoadFile(path string) (*Document, error) {
	return LoadFileEncoding(path, ISO8859_1)
}

func LoadFileEncoding(path string, encoding Encoding) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(encoding.wrapReader(f))
}

// StoreFile writes the document in the default ISO-8859-1 encoding.
func (d *Document) StoreFile(path string, header ...string) error {
	return d.StoreFileEncoding(path, ISO8859_1, header...)
}

func (d *Document) StoreFileEncoding(path string, encoding Encoding, header ...string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	var w io.Writer = f
	if encoding == ISO8859_1 {
		tw := transform.NewWriter(f, charmap.ISO8859_1.NewEncoder())
		defer func() {
			if cerr := tw.Close(); err == nil {
				err = cerr
			}
		}()
		w = tw
	}
	return d.Store(w, header...)
}
