package properties_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	properties "github.com/codejive/go-properties"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<!DOCTYPE properties SYSTEM "http://java.sun.com/dtd/properties.dtd">
<properties>
<comment>demo</comment>
<entry key="a">1</entry>
<entry key="b">two words</entry>
</properties>
`

func TestStoreXML(t *testing.T) {
	d := properties.New()
	d.Put("a", "1")
	d.Put("b", "two words")

	var buf strings.Builder
	require.NoError(t, d.StoreXML(&buf, "demo"))
	assert.Equal(t, sampleXML, buf.String())
}

func TestStoreXMLEscapesMarkup(t *testing.T) {
	d := properties.New()
	d.Put("html", "<b> & </b>")

	var buf strings.Builder
	require.NoError(t, d.StoreXML(&buf, ""))
	assert.Contains(t, buf.String(), `<entry key="html">&lt;b&gt; &amp; &lt;/b&gt;</entry>`)
	assert.NotContains(t, buf.String(), "<comment>")
}

func TestLoadXML(t *testing.T) {
	d, err := properties.LoadXML(strings.NewReader(sampleXML))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, d.Keys())
	value, ok := d.Get("b")
	require.True(t, ok)
	assert.Equal(t, "two words", value)
}

func TestXMLRoundTrip(t *testing.T) {
	d := properties.New()
	d.Put("plain", "value")
	d.Put("markup", "a < b && c")
	d.Put("unicode", "中文")

	var buf strings.Builder
	require.NoError(t, d.StoreXML(&buf, "x"))

	reloaded, err := properties.LoadXML(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, d.Keys(), reloaded.Keys())
	for key, value := range d.All() {
		got, ok := reloaded.Get(key)
		require.True(t, ok)
		assert.Equal(t, value, got)
	}
}

func TestLoadXMLBadInput(t *testing.T) {
	_, err := properties.LoadXML(strings.NewReader("<properties><entry"))
	require.Error(t, err)
}
