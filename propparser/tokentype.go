package propparser

// TokenType represents the type of a lexical token in a .properties document.
type TokenType int

const (
	WhitespaceToken TokenType = iota + 1

	// CommentToken starts with '#' or '!' and runs to (but not including)
	// the line terminator.
	CommentToken

	// A property line always scans to the triple KeyToken, SeparatorToken,
	// ValueToken; the separator and value may have empty raw text.
	KeyToken
	SeparatorToken
	ValueToken

	BadUnicodeEscapeToken
	EOFToken
)

func (tt TokenType) GoString() string {
	return tokenToDescription[tt]
}

func (tt TokenType) String() string {
	return tokenToDescription[tt]
}

func init() {
	// make sure we panic if a description isn't declared
	for tt := TokenType(1); tt != EOFToken; tt++ {
		if tokenToDescription[tt] == "" {
			panic("you have not updated tokenToDescription")
		}
	}
}

var tokenToDescription = map[TokenType]string{
	WhitespaceToken: "WhitespaceToken",
	CommentToken:    "CommentToken",

	KeyToken:       "KeyToken",
	SeparatorToken: "SeparatorToken",
	ValueToken:     "ValueToken",

	BadUnicodeEscapeToken: "BadUnicodeEscapeToken",
	EOFToken:              "EOFToken",
}
