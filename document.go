package properties

import (
	"io"
	"iter"
	"slices"

	"github.com/codejive/go-properties/propparser"
)

// Document is the dual representation of a .properties file: the token
// sequence is the source of truth for formatting, and the entries index is
// a derived, insertion-ordered map of decoded keys to decoded values.
// Storing a freshly loaded document reproduces the input byte for byte;
// edits only touch the tokens of the properties they change.
//
// A Document is not safe for concurrent mutation.
type Document struct {
	tokens []propparser.Token

	keys   []string
	values map[string]string

	// fallback chain for GetProperty and friends; never mutated through
	// this document, and cycle-free by the caller's care
	defaults *Document
}

func New() *Document {
	return &Document{values: make(map[string]string)}
}

// Load reads a whole character stream and parses it. The caller owns
// closing the reader. On a scan error the returned document holds whatever
// was tokenized so far and should be discarded.
func Load(r io.Reader) (*Document, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return LoadString(string(buf))
}

func LoadString(input string) (*Document, error) {
	d := New()
	err := d.load(input, "")
	return d, err
}

func (d *Document) load(input string, file propparser.FileRef) error {
	s := propparser.NewScanner(input, file)
	for {
		switch s.NextToken() {
		case propparser.EOFToken:
			d.reindex()
			return nil
		case propparser.BadUnicodeEscapeToken:
			d.tokens = append(d.tokens, propparser.CreateToken(s))
			d.reindex()
			return s.Err()
		default:
			d.tokens = append(d.tokens, propparser.CreateToken(s))
		}
	}
}

// reindex rebuilds the entries index from the token sequence. The last
// value wins for duplicate keys; the key keeps its first position.
func (d *Document) reindex() {
	d.keys = d.keys[:0]
	d.values = make(map[string]string)
	for i, tok := range d.tokens {
		if tok.Type == propparser.KeyToken {
			d.putEntry(tok.Text(), d.tokens[i+2].Text())
		}
	}
}

func (d *Document) putEntry(key, value string) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// indexOf returns the position of the KEY token for `key`, or -1.
func (d *Document) indexOf(key string) int {
	for i, tok := range d.tokens {
		if tok.Type == propparser.KeyToken && tok.Text() == key {
			return i
		}
	}
	return -1
}

// cursor returns an edit cursor at `pos`, configured with the document's
// line-ending convention.
func (d *Document) cursor(pos int) *propparser.Cursor {
	return propparser.NewCursor(&d.tokens, pos, d.determineNewline())
}

// Get returns the decoded value for a decoded key, without consulting
// defaults.
func (d *Document) Get(key string) (string, bool) {
	value, ok := d.values[key]
	return value, ok
}

// GetRaw returns the value in its raw (escaped) form.
func (d *Document) GetRaw(key string) (string, bool) {
	i := d.indexOf(key)
	if i < 0 {
		return "", false
	}
	return d.tokens[i+2].Raw, true
}

// GetProperty returns the value for a key, falling back through the
// defaults chain.
func (d *Document) GetProperty(key string) (string, bool) {
	if value, ok := d.values[key]; ok {
		return value, true
	}
	if d.defaults != nil {
		return d.defaults.GetProperty(key)
	}
	return "", false
}

// GetPropertyDefault is GetProperty with a fallback value for missing keys.
func (d *Document) GetPropertyDefault(key, fallback string) string {
	if value, ok := d.GetProperty(key); ok {
		return value
	}
	return fallback
}

func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

func (d *Document) Len() int {
	return len(d.keys)
}

// Keys returns the keys of this document in the order their KEY tokens
// appear in the sequence.
func (d *Document) Keys() []string {
	return slices.Clone(d.keys)
}

// StringPropertyNames returns the keys of the whole defaults chain:
// defaults first, then this document's additions.
func (d *Document) StringPropertyNames() []string {
	var names []string
	if d.defaults != nil {
		names = d.defaults.StringPropertyNames()
	}
	for _, key := range d.keys {
		if !slices.Contains(names, key) {
			names = append(names, key)
		}
	}
	return names
}

// All iterates the entries in key order. The sequence walks a snapshot of
// the keys but reads live values; removing entries mid-iteration must go
// through Remove, which keeps tokens and the index consistent.
func (d *Document) All() iter.Seq2[string, string] {
	keys := d.Keys()
	return func(yield func(string, string) bool) {
		for _, key := range keys {
			if value, ok := d.values[key]; ok {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// SetDefaults installs the fallback document consulted by GetProperty.
// The chain is borrowed, never mutated, and must be cycle-free.
func (d *Document) SetDefaults(defaults *Document) {
	d.defaults = defaults
}

func (d *Document) Defaults() *Document {
	return d.defaults
}

// Put sets a property. An existing property keeps its position, separator
// and surroundings; only the VALUE token is replaced. A new property is
// appended after the last one.
func (d *Document) Put(key, value string) {
	d.put(key, escapeKey(key), value, escapeValue(value))
}

// PutRaw is Put for already-escaped forms; they are stored verbatim as the
// token raw text. Fails when a raw form has a malformed escape.
func (d *Document) PutRaw(rawKey, rawValue string) error {
	key, err := unescape(rawKey)
	if err != nil {
		return err
	}
	value, err := unescape(rawValue)
	if err != nil {
		return err
	}
	d.put(key, rawKey, value, rawValue)
	return nil
}

func (d *Document) put(key, rawKey, value, rawValue string) {
	if i := d.indexOf(key); i >= 0 {
		d.cursor(i + 2).Replace(propparser.NewDecoded(propparser.ValueToken, rawValue, value))
		d.values[key] = value
		return
	}

	c := d.appendCursor()
	c.Add(propparser.NewDecoded(propparser.KeyToken, rawKey, key))
	c.Add(propparser.New(propparser.SeparatorToken, "="))
	c.Add(propparser.NewDecoded(propparser.ValueToken, rawValue, value))
	if c.HasToken() {
		// trailing tokens follow; keep them on their own line
		c.AddEOL()
	}
	d.putEntry(key, value)
}

// appendCursor finds the position where a new property starts: right after
// the line of the last property, or detached below the header comment when
// the document has no properties yet.
func (d *Document) appendCursor() *propparser.Cursor {
	c := d.cursor(len(d.tokens))
	c.Prev()
	c.PrevWhile(func(t propparser.Token) bool {
		return t.Type == propparser.WhitespaceToken || t.Type == propparser.CommentToken
	})
	if c.HasToken() {
		// at the last VALUE; step past its line terminator, creating one
		// if the value ends the input
		c.Next()
		if c.IsEOL() {
			c.Next()
		} else {
			c.AddEOL()
		}
		return c
	}

	// no properties yet; keep a blank line between a header comment and
	// the first property
	c.SetPosition(len(d.tokens))
	if d.hasComment() {
		for n := d.trailingEOLCount(); n < 2; n++ {
			c.AddEOL()
		}
	}
	return c
}

func (d *Document) hasComment() bool {
	for _, tok := range d.tokens {
		if tok.Type == propparser.CommentToken {
			return true
		}
	}
	return false
}

func (d *Document) trailingEOLCount() int {
	count := 0
	for i := len(d.tokens) - 1; i >= 0; i-- {
		if d.tokens[i].Type != propparser.WhitespaceToken {
			break
		}
		if d.tokens[i].IsEOL() {
			count++
		}
	}
	return count
}

// SetProperty is Put followed by SetComment.
func (d *Document) SetProperty(key, value string, comments ...string) error {
	d.Put(key, value)
	return d.SetComment(key, comments)
}

// Remove deletes a property, its attached comment block and its line
// terminator, and returns the prior value.
func (d *Document) Remove(key string) (string, bool) {
	if d.indexOf(key) < 0 {
		return "", false
	}
	if err := d.SetComment(key, nil); err != nil {
		return "", false
	}
	c := d.cursor(d.indexOf(key))
	c.Remove() // key
	c.Remove() // separator
	c.Remove() // value
	if c.IsEOL() {
		c.Remove()
	}
	value := d.values[key]
	delete(d.values, key)
	if i := slices.Index(d.keys, key); i >= 0 {
		d.keys = slices.Delete(d.keys, i, i+1)
	}
	return value, true
}

// Clear empties the document.
func (d *Document) Clear() {
	d.tokens = nil
	d.keys = nil
	d.values = make(map[string]string)
}
