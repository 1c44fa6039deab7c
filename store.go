package properties

import (
	"io"
	"runtime"
	"strings"

	"github.com/codejive/go-properties/propparser"
)

// determineNewline picks the line terminator for synthesized lines: CRLF
// when the document consistently uses CRLF, the platform default when the
// conventions are mixed, LF otherwise.
func (d *Document) determineNewline() string {
	sawCRLF, sawLF := false, false
	for _, tok := range d.tokens {
		if !tok.IsEOL() {
			continue
		}
		if strings.HasSuffix(tok.Raw, "\r\n") {
			sawCRLF = true
		} else {
			sawLF = true
		}
	}
	switch {
	case sawCRLF && sawLF:
		if runtime.GOOS == "windows" {
			return "\r\n"
		}
		return "\n"
	case sawCRLF:
		return "\r\n"
	default:
		return "\n"
	}
}

// skipHeaderCommentLines returns the position of the first content after
// the header comment block. A comment block that runs straight into the
// first property is attached to that property, not a header.
func (d *Document) skipHeaderCommentLines() int {
	c := d.cursor(0)
	c.NextIf(propparser.Token.IsWS)
	for c.IsType(propparser.CommentToken) {
		c.Next()
		c.NextIf(propparser.Token.IsEOL)
		c.NextIf(propparser.Token.IsWS)
	}
	if c.IsType(propparser.KeyToken) {
		return 0
	}
	c.NextWhile(propparser.Token.IsEOL)
	return c.Position()
}

// Store writes the document by emitting every token's raw text verbatim.
// When header comment lines are given they replace the existing header
// comment, normalized like SetComment input and detached from the first
// property by a blank line.
func (d *Document) Store(w io.Writer, header ...string) error {
	pos := 0
	if len(header) > 0 {
		pos = d.skipHeaderCommentLines()
		nl := d.determineNewline()
		prefix := "# "
		for _, line := range header {
			if p := commentPrefixOf(line); p != "" {
				prefix = p
			} else {
				line = prefix + line
			}
			if _, err := io.WriteString(w, line+nl); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, nl); err != nil {
			return err
		}
	}
	for _, tok := range d.tokens[pos:] {
		if _, err := io.WriteString(w, tok.Raw); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) String() string {
	var buf strings.Builder
	if err := d.Store(&buf); err != nil {
		panic(err)
	}
	return buf.String()
}
