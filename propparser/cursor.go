package propparser

// Cursor is a positional handle over a token sequence, used for all edits
// to a document. Position ranges over [-1, len]; -1 and len are the
// before-start and after-end sentinel states. It is an index plus a handle
// to the slice, not an iterator: after a mutation the index still refers to
// some position in the sequence, and callers re-establish their own
// position assumptions after deletes.
type Cursor struct {
	tokens *[]Token
	pos    int
	eol    string
}

// NewCursor returns a cursor at position `pos`. `eol` is the line
// terminator AddEOL inserts, following the document's convention.
func NewCursor(tokens *[]Token, pos int, eol string) *Cursor {
	return &Cursor{tokens: tokens, pos: pos, eol: eol}
}

// Clone produces an independent cursor at the same position.
func (c *Cursor) Clone() *Cursor {
	result := new(Cursor)
	*result = *c
	return result
}

func (c *Cursor) Position() int {
	return c.pos
}

func (c *Cursor) SetPosition(pos int) {
	c.pos = pos
}

func (c *Cursor) AtStart() bool {
	return c.pos < 0
}

// HasToken returns whether the cursor is on an actual token rather than one
// of the sentinel states.
func (c *Cursor) HasToken() bool {
	return c.pos >= 0 && c.pos < len(*c.tokens)
}

// Token returns the token under the cursor; the zero Token in the sentinel
// states.
func (c *Cursor) Token() Token {
	if !c.HasToken() {
		return Token{}
	}
	return (*c.tokens)[c.pos]
}

func (c *Cursor) Raw() string {
	return c.Token().Raw
}

func (c *Cursor) Text() string {
	return c.Token().Text()
}

func (c *Cursor) Type() TokenType {
	return c.Token().Type
}

func (c *Cursor) IsType(types ...TokenType) bool {
	if !c.HasToken() {
		return false
	}
	for _, tt := range types {
		if c.Token().Type == tt {
			return true
		}
	}
	return false
}

func (c *Cursor) IsWS() bool {
	return c.HasToken() && c.Token().IsWS()
}

func (c *Cursor) IsEOL() bool {
	return c.HasToken() && c.Token().IsEOL()
}

// Next advances one position, saturating at the after-end sentinel.
func (c *Cursor) Next() {
	if c.pos < len(*c.tokens) {
		c.pos++
	}
}

// Prev retreats one position, saturating at the before-start sentinel.
func (c *Cursor) Prev() {
	if c.pos >= 0 {
		c.pos--
	}
}

func (c *Cursor) Skip(n int) {
	for ; n > 0; n-- {
		c.Next()
	}
	for ; n < 0; n++ {
		c.Prev()
	}
}

// NextIf advances one step iff the current token satisfies `pred`; returns
// whether an in-bounds token is now under the cursor.
func (c *Cursor) NextIf(pred func(Token) bool) bool {
	if !c.HasToken() || !pred(c.Token()) {
		return false
	}
	c.Next()
	return c.HasToken()
}

func (c *Cursor) PrevIf(pred func(Token) bool) bool {
	if !c.HasToken() || !pred(c.Token()) {
		return false
	}
	c.Prev()
	return c.HasToken()
}

func (c *Cursor) NextWhile(pred func(Token) bool) bool {
	for c.HasToken() && pred(c.Token()) {
		c.Next()
	}
	return c.HasToken()
}

func (c *Cursor) PrevWhile(pred func(Token) bool) bool {
	for c.HasToken() && pred(c.Token()) {
		c.Prev()
	}
	return c.HasToken()
}

// NextCount is NextWhile returning how many steps were consumed.
func (c *Cursor) NextCount(pred func(Token) bool) int {
	count := 0
	for c.HasToken() && pred(c.Token()) {
		c.Next()
		count++
	}
	return count
}

func (c *Cursor) PrevCount(pred func(Token) bool) int {
	count := 0
	for c.HasToken() && pred(c.Token()) {
		c.Prev()
		count++
	}
	return count
}

// Add inserts the token before the current position (or appends when past
// the end) and advances the cursor past it, so repeated Add calls append
// in order.
func (c *Cursor) Add(tok Token) {
	at := c.pos
	if at < 0 {
		at = 0
	}
	if at > len(*c.tokens) {
		at = len(*c.tokens)
	}
	*c.tokens = append(*c.tokens, Token{})
	copy((*c.tokens)[at+1:], (*c.tokens)[at:])
	(*c.tokens)[at] = tok
	c.pos = at + 1
}

// AddEOL inserts a line terminator following the document's convention.
func (c *Cursor) AddEOL() {
	c.Add(New(WhitespaceToken, c.eol))
}

// Replace overwrites the token under the cursor.
func (c *Cursor) Replace(tok Token) {
	if !c.HasToken() {
		panic("propparser: Replace on cursor without token")
	}
	(*c.tokens)[c.pos] = tok
}

// Remove deletes the token under the cursor; the cursor now references the
// token that followed.
func (c *Cursor) Remove() {
	if !c.HasToken() {
		panic("propparser: Remove on cursor without token")
	}
	*c.tokens = append((*c.tokens)[:c.pos], (*c.tokens)[c.pos+1:]...)
}
