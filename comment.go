package properties

import (
	"fmt"
	"slices"
	"strings"

	"github.com/codejive/go-properties/propparser"
)

// commentBlock returns the token positions of the comment block attached to
// the KEY at keyPos, in document order. Walking backward from the key, at
// most one inline whitespace and one line terminator may sit between the
// key and its block, and between the block's lines; a blank line detaches
// free-standing comments.
func (d *Document) commentBlock(keyPos int) []int {
	var block []int
	c := d.cursor(keyPos)
	for {
		c.Prev()
		if c.IsWS() {
			c.Prev()
		}
		if c.IsEOL() {
			c.Prev()
		}
		if !c.IsType(propparser.CommentToken) {
			break
		}
		block = append(block, c.Position())
	}
	slices.Reverse(block)
	return block
}

// GetComment returns the comment lines attached to a property, raw prefix
// included. Nil when the key is missing or has no comment.
func (d *Document) GetComment(key string) []string {
	i := d.indexOf(key)
	if i < 0 {
		return nil
	}
	var lines []string
	for _, pos := range d.commentBlock(i) {
		lines = append(lines, d.tokens[pos].Text())
	}
	return lines
}

// GetPropertyComment is GetComment with defaults fallback.
func (d *Document) GetPropertyComment(key string) []string {
	if d.Has(key) || d.defaults == nil {
		return d.GetComment(key)
	}
	return d.defaults.GetPropertyComment(key)
}

// SetComment replaces the comment block attached to a property. Lines
// without a comment prefix get the block's one: the prefix of the comment
// line closest to the key, or of the last prefixed input line, or "# ".
// Passing no lines removes the block.
func (d *Document) SetComment(key string, comments []string) error {
	i := d.indexOf(key)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	block := d.commentBlock(i)

	prefix := "# "
	if len(block) > 0 {
		prefix = commentPrefix(d.tokens[block[len(block)-1]].Raw)
	}
	lines := make([]string, 0, len(comments))
	for _, line := range comments {
		if p := commentPrefixOf(line); p != "" {
			prefix = p
			lines = append(lines, line)
		} else {
			lines = append(lines, prefix+line)
		}
	}

	keep := min(len(block), len(lines))
	for j := 0; j < keep; j++ {
		d.cursor(block[j]).Replace(propparser.New(propparser.CommentToken, lines[j]))
	}

	if len(block) > keep {
		// drop the excess comments and the whitespace between them, from
		// just past the last kept line (keeping its terminator) up to the key
		from := block[0]
		if keep > 0 {
			c := d.cursor(block[keep-1])
			c.Next()
			if c.IsEOL() {
				c.Next()
			}
			from = c.Position()
		}
		c := d.cursor(from)
		for n := i - from; n > 0; n-- {
			c.Remove()
		}
	}

	if len(lines) > keep {
		c := d.cursor(d.indexOf(key))
		for _, line := range lines[keep:] {
			c.Add(propparser.New(propparser.CommentToken, line))
			c.AddEOL()
		}
	}
	return nil
}

// commentPrefix picks the prefix family of an existing comment line.
func commentPrefix(raw string) string {
	switch {
	case strings.HasPrefix(raw, "# "):
		return "# "
	case strings.HasPrefix(raw, "#"):
		return "#"
	case strings.HasPrefix(raw, "! "):
		return "! "
	case strings.HasPrefix(raw, "!"):
		return "!"
	}
	return "# "
}

// commentPrefixOf returns the prefix of a line that already carries one,
// or "" for a bare line.
func commentPrefixOf(line string) string {
	if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
		return commentPrefix(line)
	}
	return ""
}
