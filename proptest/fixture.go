package proptest

import (
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"

	properties "github.com/codejive/go-properties"
	"github.com/codejive/go-properties/propparser"
)

// ReferenceInput is the document most tests start from; it deliberately
// mixes comment prefixes, separators, escapes and continuation lines, and
// has no trailing newline.
const ReferenceInput = "#comment1\n" +
	"#  comment2   \n" +
	"\n" +
	"! comment3\n" +
	"one=simple\n" +
	"two=value containing spaces\n" +
	"# another comment\n" +
	"! and a comment\n" +
	"! block\n" +
	"three=and escapes\\n\\t\\r\\f\n" +
	"  \\ with\\ spaces   =    everywhere  \n" +
	"altsep:value\n" +
	"multiline = one \\\n" +
	"    two  \\\n" +
	"\tthree\n" +
	"key.4 = \\u1234"

// MustLoad parses input and fails the test on scan errors.
func MustLoad(t testing.TB, input string) *properties.Document {
	t.Helper()
	d, err := properties.LoadString(input)
	require.NoError(t, err)
	return d
}

// RequireRoundTrip asserts the central property: loading and storing an
// input reproduces it byte for byte.
func RequireRoundTrip(t testing.TB, input string) {
	t.Helper()
	d := MustLoad(t, input)
	var buf strings.Builder
	require.NoError(t, d.Store(&buf))
	require.Equal(t, input, buf.String(), "token stream does not reproduce the input:\n%s", DumpTokens(input))
}

// DumpTokens renders a scanned input token by token, for failure output
// and for generating assertions.
func DumpTokens(input string) string {
	var out strings.Builder
	s := propparser.NewScanner(input, "")
	for s.NextToken() != propparser.EOFToken {
		out.WriteString(s.TokenType().String())
		out.WriteString("\t")
		out.WriteString(repr.String(s.Token()))
		out.WriteString("\n")
	}
	return out.String()
}
