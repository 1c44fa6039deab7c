package properties_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	properties "github.com/codejive/go-properties"
	"github.com/codejive/go-properties/proptest"
)

func store(t *testing.T, d *properties.Document, header ...string) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, d.Store(&buf, header...))
	return buf.String()
}

func TestLoadStoreIdentity(t *testing.T) {
	proptest.RequireRoundTrip(t, proptest.ReferenceInput)

	// assorted shapes that exercise the irregular corners
	for _, input := range []string{
		"",
		"\n",
		"key",
		"key\n",
		"=value\n",
		"a=1\r\nb=2\r\n",
		"mixed=1\r\nendings=2\nhere\r",
		"# only a comment",
		"   \t\n\t  \n",
		"spaces before = and after \n",
		"cont=a\\\n\\\n  b\n",
	} {
		proptest.RequireRoundTrip(t, input)
	}
}

func TestLookups(t *testing.T) {
	d := proptest.MustLoad(t, proptest.ReferenceInput)

	value, ok := d.Get("one")
	require.True(t, ok)
	assert.Equal(t, "simple", value)

	value, ok = d.Get("two")
	require.True(t, ok)
	assert.Equal(t, "value containing spaces", value)

	// escapes decode in both keys and values
	value, ok = d.Get("three")
	require.True(t, ok)
	assert.Equal(t, "and escapes\n\t\r\f", value)

	value, ok = d.Get(" with spaces")
	require.True(t, ok)
	assert.Equal(t, "everywhere  ", value)

	value, ok = d.Get("altsep")
	require.True(t, ok)
	assert.Equal(t, "value", value)

	value, ok = d.Get("multiline")
	require.True(t, ok)
	assert.Equal(t, "one two  three", value)

	value, ok = d.Get("key.4")
	require.True(t, ok)
	assert.Equal(t, "\u1234", value)

	_, ok = d.Get("missing")
	assert.False(t, ok)

	raw, ok := d.GetRaw("three")
	require.True(t, ok)
	assert.Equal(t, `and escapes\n\t\r\f`, raw)

	raw, ok = d.GetRaw("two")
	require.True(t, ok)
	assert.Equal(t, "value containing spaces", raw)

	assert.True(t, d.Has("one"))
	assert.False(t, d.Has("nine"))
	assert.Equal(t, 7, d.Len())

	assert.Equal(t, []string{
		"one", "two", "three", " with spaces", "altsep", "multiline", "key.4",
	}, d.Keys())
}

func TestRemoveMiddle(t *testing.T) {
	d := proptest.MustLoad(t, proptest.ReferenceInput)

	value, ok := d.Remove("three")
	require.True(t, ok)
	assert.Equal(t, "and escapes\n\t\r\f", value)

	expected := "#comment1\n" +
		"#  comment2   \n" +
		"\n" +
		"! comment3\n" +
		"one=simple\n" +
		"two=value containing spaces\n" +
		"  \\ with\\ spaces   =    everywhere  \n" +
		"altsep:value\n" +
		"multiline = one \\\n" +
		"    two  \\\n" +
		"\tthree\n" +
		"key.4 = \\u1234"
	assert.Equal(t, expected, store(t, d))

	assert.False(t, d.Has("three"))
	assert.Equal(t, []string{
		"one", "two", " with spaces", "altsep", "multiline", "key.4",
	}, d.Keys())

	_, ok = d.Remove("three")
	assert.False(t, ok)
}

func TestReplaceValue(t *testing.T) {
	d := proptest.MustLoad(t, proptest.ReferenceInput)
	d.Put("two", "replaced")

	expected := strings.Replace(proptest.ReferenceInput,
		"two=value containing spaces", "two=replaced", 1)
	assert.Equal(t, expected, store(t, d))

	value, _ := d.Get("two")
	assert.Equal(t, "replaced", value)
}

func TestAddNewAtEnd(t *testing.T) {
	d := proptest.MustLoad(t, proptest.ReferenceInput)
	d.Put("five", "5")
	assert.Equal(t, proptest.ReferenceInput+"\nfive=5", store(t, d))
	assert.Equal(t, "five", d.Keys()[len(d.Keys())-1])
}

func TestAddAfterTrailingNewline(t *testing.T) {
	d := proptest.MustLoad(t, "a=1\n")
	d.Put("b", "2")
	assert.Equal(t, "a=1\nb=2", store(t, d))
}

func TestAddKeepsCRLFConvention(t *testing.T) {
	d := proptest.MustLoad(t, "a=1\r\nx=9")
	d.Put("b", "2")
	assert.Equal(t, "a=1\r\nx=9\r\nb=2", store(t, d))
}

func TestAddBeforeTrailingComment(t *testing.T) {
	d := proptest.MustLoad(t, "a=1\n# trailing note")
	d.Put("b", "2")
	assert.Equal(t, "a=1\nb=2\n# trailing note", store(t, d))
}

func TestAddToEmptyDocument(t *testing.T) {
	d := properties.New()
	d.Put("first", "dummy")
	assert.Equal(t, "first=dummy", store(t, d))
	d.Put("second", "2")
	assert.Equal(t, "first=dummy\nsecond=2", store(t, d))
}

func TestHeaderPreservedOnFirstPut(t *testing.T) {
	d := proptest.MustLoad(t, "# A header comment")
	d.Put("first", "dummy")
	assert.Equal(t, "# A header comment\n\nfirst=dummy", store(t, d))
}

func TestPutEscapes(t *testing.T) {
	d := properties.New()
	d.Put("key with spaces", "value\twith\nescapes")
	d.Put("a=b:c", "plain = fine : here")
	assert.Equal(t,
		"key\\ with\\ spaces=value\\twith\\nescapes\n"+
			"a\\=b\\:c=plain = fine : here", store(t, d))

	// decode(escape(x)) == x
	value, ok := d.Get("key with spaces")
	require.True(t, ok)
	assert.Equal(t, "value\twith\nescapes", value)

	reloaded := proptest.MustLoad(t, store(t, d))
	value, ok = reloaded.Get("a=b:c")
	require.True(t, ok)
	assert.Equal(t, "plain = fine : here", value)
}

func TestPutRaw(t *testing.T) {
	d := properties.New()
	require.NoError(t, d.PutRaw(`a\ b`, `x\ty`))

	value, ok := d.Get("a b")
	require.True(t, ok)
	assert.Equal(t, "x\ty", value)

	raw, ok := d.GetRaw("a b")
	require.True(t, ok)
	assert.Equal(t, `x\ty`, raw)

	assert.Equal(t, "a\\ b=x\\ty", store(t, d))

	// replacing through PutRaw keeps the raw form verbatim
	require.NoError(t, d.PutRaw(`a\ b`, `z`))
	assert.Equal(t, "a\\ b=z", store(t, d))

	require.Error(t, d.PutRaw(`bad\uXYZ`, "v"))
	require.Error(t, d.PutRaw("k", `bad\u12`))
}

func TestDuplicateKeysLastValueWins(t *testing.T) {
	d := proptest.MustLoad(t, "a=1\nb=2\na=3\n")
	value, _ := d.Get("a")
	assert.Equal(t, "3", value)
	assert.Equal(t, []string{"a", "b"}, d.Keys())
}

func TestIterationOrder(t *testing.T) {
	d := proptest.MustLoad(t, "a=1\nb=2\nc=3\n")

	d.Put("b", "20")
	assert.Equal(t, []string{"a", "b", "c"}, d.Keys())

	// re-inserting a removed key places it at the end
	d.Remove("a")
	d.Put("a", "10")
	assert.Equal(t, []string{"b", "c", "a"}, d.Keys())
	assert.Equal(t, "b=20\nc=3\na=10", store(t, d))

	var got [][2]string
	for key, value := range d.All() {
		got = append(got, [2]string{key, value})
	}
	assert.Equal(t, [][2]string{{"b", "20"}, {"c", "3"}, {"a", "10"}}, got)
}

func TestClear(t *testing.T) {
	d := proptest.MustLoad(t, proptest.ReferenceInput)
	d.Clear()
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, "", store(t, d))
	d.Put("a", "1")
	assert.Equal(t, "a=1", store(t, d))
}

func TestDefaultsChain(t *testing.T) {
	base := proptest.MustLoad(t, "shared=base\nonly.base=yes\n")
	mid := proptest.MustLoad(t, "shared=mid\n")
	mid.SetDefaults(base)
	top := proptest.MustLoad(t, "own=top\n")
	top.SetDefaults(mid)

	_, ok := top.Get("shared")
	assert.False(t, ok)

	value, ok := top.GetProperty("shared")
	require.True(t, ok)
	assert.Equal(t, "mid", value)

	value, ok = top.GetProperty("only.base")
	require.True(t, ok)
	assert.Equal(t, "yes", value)

	_, ok = top.GetProperty("nowhere")
	assert.False(t, ok)
	assert.Equal(t, "fallback", top.GetPropertyDefault("nowhere", "fallback"))

	assert.Equal(t, []string{"shared", "only.base", "own"}, top.StringPropertyNames())

	// lookups never mutate the chain
	assert.Equal(t, "shared=base\nonly.base=yes\n", store(t, base))
}

func TestLoadErrorPropagates(t *testing.T) {
	_, err := properties.LoadString("ok=1\nbad=\\u00G1\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "\\uXXXX")
}
