package properties

import (
	"maps"
	"slices"

	"github.com/codejive/go-properties/propparser"
)

func (d *Document) clone() *Document {
	return &Document{
		tokens:   slices.Clone(d.tokens),
		keys:     slices.Clone(d.keys),
		values:   maps.Clone(d.values),
		defaults: d.defaults,
	}
}

// transformRaws derives an independent document with the raw text of every
// key and value token rewritten; the decoded entries stay the same. The
// defaults chain is transformed recursively.
func (d *Document) transformRaws(transform func(string) string) *Document {
	result := d.clone()
	for i, tok := range result.tokens {
		if tok.Type == propparser.KeyToken || tok.Type == propparser.ValueToken {
			result.tokens[i] = propparser.NewDecoded(tok.Type, transform(tok.Raw), tok.Text())
		}
	}
	if d.defaults != nil {
		result.defaults = d.defaults.transformRaws(transform)
	}
	return result
}

// Escaped returns a view with every character above U+00FF written as a
// \uxxxx escape, making the raw text safe for ISO-8859-1 output.
func (d *Document) Escaped() *Document {
	return d.transformRaws(toUnicodeEscapes)
}

// Unescaped returns a view with \uXXXX escapes replaced by the literal
// characters, for UTF-8 output.
func (d *Document) Unescaped() *Document {
	return d.transformRaws(fromUnicodeEscapes)
}

// Flattened returns a view with the defaults chain merged in: properties
// only present in defaults are appended, comments included, and the chain
// reference is dropped.
func (d *Document) Flattened() *Document {
	result := d.clone()
	result.defaults = nil
	if d.defaults == nil {
		return result
	}
	for _, key := range d.StringPropertyNames() {
		if result.Has(key) {
			continue
		}
		value, _ := d.GetProperty(key)
		_ = result.SetProperty(key, value, d.GetPropertyComment(key)...)
	}
	return result
}
