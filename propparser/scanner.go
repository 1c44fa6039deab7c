package propparser

import (
	"strings"
	"unicode/utf8"
)

// dedicated type for reference to file, in case we need to refactor this later..
type FileRef string

type Pos struct {
	File      FileRef
	Line, Col int
}

type scanState int

const (
	stateNone scanState = iota
	stateSeparator
	stateValue
)

// Scanner tokenizes the .properties format. It is simply a cursor in the
// input buffer with associated utility methods; every character of the input
// ends up in the raw text of exactly one token, so concatenating the tokens
// reproduces the input.
//
// The grammar is the usual irregular one: '=' and ':' separate keys from
// values but so does a bare run of spaces or tabs, a separator run contains
// at most one '=' or ':', comments start with '#' or '!', values continue
// across lines when a backslash precedes the terminator, and keys/values
// may contain \t \n \r \f \uXXXX and \<any> escapes.
type Scanner struct {
	input string
	file  FileRef

	startIndex int // start of this token
	curIndex   int // current position of the Scanner
	tokenType  TokenType

	// After a key we always produce a separator and then a value, even when
	// their raw text is empty; `state` sequences those two follow-up tokens.
	state scanState

	// decoded form of the current token; only published when a backslash
	// was seen while scanning it
	text    string
	hasText bool

	err error

	startLine        int
	stopLine         int
	indexAtStartLine int // value of `curIndex` after newline char
	indexAtStopLine  int // value of `curIndex` after newline char
}

func NewScanner(input string, file FileRef) *Scanner {
	return &Scanner{input: input, file: file}
}

func (s *Scanner) TokenType() TokenType {
	return s.tokenType
}

// Returns a clone of the scanner; this is used to do look-ahead scanning
func (s Scanner) Clone() *Scanner {
	result := new(Scanner)
	*result = s
	return result
}

// Token returns the raw text of the current token, exactly as it appeared
// in the input.
func (s *Scanner) Token() string {
	return s.input[s.startIndex:s.curIndex]
}

// Text returns the decoded form of the current token; same as Token() when
// no escape sequences were present.
func (s *Scanner) Text() string {
	if s.hasText {
		return s.text
	}
	return s.Token()
}

// Err returns the first scan error encountered, if any.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) Start() Pos {
	return Pos{
		Line: s.startLine + 1,
		Col:  s.startIndex - s.indexAtStartLine + 1,
		File: s.file,
	}
}

func (s *Scanner) Stop() Pos {
	return Pos{
		Line: s.stopLine + 1,
		Col:  s.curIndex - s.indexAtStopLine + 1,
		File: s.file,
	}
}

func (s *Scanner) bumpLine() {
	s.stopLine++
	s.indexAtStopLine = s.curIndex
}

func isSeparatorChar(r rune) bool {
	return r == ' ' || r == '\t' || r == '=' || r == ':'
}

func isWhitespaceChar(r rune) bool {
	return r == ' ' || r == '\t' || r == '\f' || r == '\n' || r == '\r'
}

func isEOLChar(r rune) bool {
	return r == '\n' || r == '\r'
}

// NextToken scans the next token and advances the Scanner's position to
// after the token
func (s *Scanner) NextToken() TokenType {
	s.tokenType = s.nextToken()
	return s.tokenType
}

func (s *Scanner) nextToken() TokenType {
	s.startIndex = s.curIndex
	s.text = ""
	s.hasText = false
	s.startLine = s.stopLine
	s.indexAtStartLine = s.indexAtStopLine

	switch s.state {
	case stateSeparator:
		s.state = stateValue
		return s.scanSeparator()
	case stateValue:
		s.state = stateNone
		return s.scanValue()
	}

	r, w := utf8.DecodeRuneInString(s.input[s.curIndex:])
	switch {
	case w == 0:
		return EOFToken
	case r == '#' || r == '!':
		return s.scanComment()
	case isWhitespaceChar(r):
		return s.scanWhitespace()
	default:
		s.state = stateSeparator
		return s.scanKey()
	}
}

// scanWhitespace consumes a whitespace run, but stops right after the first
// line terminator so that a single token never holds more than one of them.
// A \r\n pair counts as one terminator.
func (s *Scanner) scanWhitespace() TokenType {
	for s.curIndex < len(s.input) {
		c := s.input[s.curIndex]
		switch c {
		case ' ', '\t', '\f':
			s.curIndex++
		case '\n':
			s.curIndex++
			s.bumpLine()
			return WhitespaceToken
		case '\r':
			s.curIndex++
			if s.curIndex < len(s.input) && s.input[s.curIndex] == '\n' {
				s.curIndex++
			}
			s.bumpLine()
			return WhitespaceToken
		default:
			return WhitespaceToken
		}
	}
	return WhitespaceToken
}

// scanComment consumes from '#' or '!' up to, but not including, the line
// terminator. No escapes are interpreted inside comments.
func (s *Scanner) scanComment() TokenType {
	for s.curIndex < len(s.input) && !isEOLChar(rune(s.input[s.curIndex])) {
		s.curIndex++
	}
	return CommentToken
}

// scanKey consumes until the first unescaped separator character or line
// terminator. Keys never span lines; a backslash in front of a terminator
// ends the key run and the terminator stays outside the token.
func (s *Scanner) scanKey() TokenType {
	var text strings.Builder
	sawBackslash := false
	for s.curIndex < len(s.input) {
		r, w := utf8.DecodeRuneInString(s.input[s.curIndex:])
		if isSeparatorChar(r) || isEOLChar(r) {
			break
		}
		if r == '\\' {
			sawBackslash = true
			if !s.scanEscape(&text, false) {
				return BadUnicodeEscapeToken
			}
			continue
		}
		s.curIndex += w
		text.WriteRune(r)
	}
	if sawBackslash {
		s.text = text.String()
		s.hasText = true
	}
	return KeyToken
}

// scanSeparator consumes spaces and tabs plus at most one '=' or ':'; a
// second one belongs to the value. The run may be empty (bare key line).
func (s *Scanner) scanSeparator() TokenType {
	seenAssign := false
	for s.curIndex < len(s.input) {
		switch c := s.input[s.curIndex]; {
		case c == ' ' || c == '\t':
			s.curIndex++
		case (c == '=' || c == ':') && !seenAssign:
			seenAssign = true
			s.curIndex++
		default:
			return SeparatorToken
		}
	}
	return SeparatorToken
}

// scanValue consumes until the line terminator or end of input. A backslash
// in front of the terminator merges the next line into the value: the
// terminator and the following inline whitespace stay in the raw text but
// are dropped from the decoded form.
func (s *Scanner) scanValue() TokenType {
	var text strings.Builder
	sawBackslash := false
	for s.curIndex < len(s.input) {
		r, w := utf8.DecodeRuneInString(s.input[s.curIndex:])
		if isEOLChar(r) {
			break
		}
		if r == '\\' {
			sawBackslash = true
			if !s.scanEscape(&text, true) {
				return BadUnicodeEscapeToken
			}
			continue
		}
		s.curIndex += w
		text.WriteRune(r)
	}
	if sawBackslash {
		s.text = text.String()
		s.hasText = true
	}
	return ValueToken
}

// scanEscape is positioned on a backslash; it consumes the whole escape
// sequence and appends its decoded form to `text`. Returns false on a
// malformed \uXXXX escape, with the error recorded on the scanner.
func (s *Scanner) scanEscape(text *strings.Builder, inValue bool) bool {
	s.curIndex++ // the backslash
	if s.curIndex >= len(s.input) {
		// trailing backslash at end of input; dropped from the decoded form
		return true
	}
	r, w := utf8.DecodeRuneInString(s.input[s.curIndex:])
	if isEOLChar(r) {
		if inValue {
			s.scanContinuation()
		}
		// in a key the backslash is dropped and the terminator stays
		// outside the token
		return true
	}
	if r == 'u' {
		return s.scanUnicodeEscape(text)
	}
	s.curIndex += w
	switch r {
	case 't':
		text.WriteByte('\t')
	case 'n':
		text.WriteByte('\n')
	case 'r':
		text.WriteByte('\r')
	case 'f':
		text.WriteByte('\f')
	default:
		// the backslash is dropped, the character kept; this covers
		// '\ ' in keys and '\=' in values
		text.WriteRune(r)
	}
	return true
}

// scanContinuation is positioned on the terminator following a backslash
// inside a value; it consumes the terminator and the leading inline
// whitespace of the next line.
func (s *Scanner) scanContinuation() {
	if s.input[s.curIndex] == '\r' {
		s.curIndex++
		if s.curIndex < len(s.input) && s.input[s.curIndex] == '\n' {
			s.curIndex++
		}
	} else {
		s.curIndex++
	}
	s.bumpLine()
	for s.curIndex < len(s.input) {
		switch s.input[s.curIndex] {
		case ' ', '\t', '\f':
			s.curIndex++
		default:
			return
		}
	}
}

// scanUnicodeEscape is positioned on the 'u' of a \uXXXX escape; exactly
// four hex digits are required.
func (s *Scanner) scanUnicodeEscape(text *strings.Builder) bool {
	s.curIndex++ // 'u'
	var cp rune
	for i := 0; i < 4; i++ {
		if s.curIndex >= len(s.input) || hexDigit(s.input[s.curIndex]) < 0 {
			if s.err == nil {
				s.err = Error{s.Stop(), "malformed \\uXXXX escape: need four hex digits"}
			}
			return false
		}
		cp = cp<<4 | rune(hexDigit(s.input[s.curIndex]))
		s.curIndex++
	}
	text.WriteRune(cp)
	return true
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
