package properties_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codejive/go-properties/proptest"
)

func TestEscapedView(t *testing.T) {
	d := proptest.MustLoad(t, "cjk=中文\nlatin=café\n中=key\n")

	escaped := d.Escaped()
	assert.Equal(t, "cjk=\\u4e2d\\u6587\nlatin=café\n\\u4e2d=key\n", store(t, escaped))

	// logical entries are shared, only the raw text changes
	value, ok := escaped.Get("cjk")
	require.True(t, ok)
	assert.Equal(t, "中文", value)
	value, ok = escaped.Get("中")
	require.True(t, ok)
	assert.Equal(t, "key", value)

	// idempotent on its own output
	assert.Equal(t, store(t, escaped), store(t, escaped.Escaped()))

	// the view is an independent snapshot
	escaped.Put("cjk", "changed")
	value, _ = d.Get("cjk")
	assert.Equal(t, "中文", value)
}

func TestUnescapedView(t *testing.T) {
	d := proptest.MustLoad(t, "cjk=\\u4e2d\\u6587\nplain=\\t tab stays\n")

	unescaped := d.Unescaped()
	assert.Equal(t, "cjk=中文\nplain=\\t tab stays\n", store(t, unescaped))

	value, ok := unescaped.Get("cjk")
	require.True(t, ok)
	assert.Equal(t, "中文", value)

	assert.Equal(t, store(t, unescaped), store(t, unescaped.Unescaped()))
}

func TestEscapedViewTransformsDefaults(t *testing.T) {
	base := proptest.MustLoad(t, "deep=漢\n")
	d := proptest.MustLoad(t, "top=1\n")
	d.SetDefaults(base)

	escaped := d.Escaped()
	assert.Equal(t, "deep=\\u6f22\n", store(t, escaped.Defaults()))

	value, ok := escaped.GetProperty("deep")
	require.True(t, ok)
	assert.Equal(t, "漢", value)
}

func TestFlattened(t *testing.T) {
	base := proptest.MustLoad(t, "# about shared\nshared=base\nonly.base=yes\n")
	d := proptest.MustLoad(t, "shared=top\nown=1\n")
	d.SetDefaults(base)

	flat := d.Flattened()
	assert.Nil(t, flat.Defaults())
	assert.Equal(t, []string{"shared", "own", "only.base"}, flat.Keys())

	value, ok := flat.Get("only.base")
	require.True(t, ok)
	assert.Equal(t, "yes", value)
	value, ok = flat.Get("shared")
	require.True(t, ok)
	assert.Equal(t, "top", value)

	// formatting of this document's own entries is untouched
	assert.Equal(t, "shared=top\nown=1\nonly.base=yes", store(t, flat))

	// flattening is semantically idempotent
	assert.Equal(t, store(t, flat), store(t, flat.Flattened()))
}

func TestFlattenedCarriesComments(t *testing.T) {
	base := proptest.MustLoad(t, "# docs\nextra=1\n")
	d := proptest.MustLoad(t, "own=2\n")
	d.SetDefaults(base)

	flat := d.Flattened()
	assert.Equal(t, []string{"# docs"}, flat.GetComment("extra"))
	assert.Equal(t, "own=2\n# docs\nextra=1", store(t, flat))
}
