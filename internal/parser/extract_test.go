package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mdnPage = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>text-align</title></head>
<body>
<h2 id="Summary">Summary</h2>
<p>The <code>text-align</code> property describes how inline content is aligned.</p>
<ul class="cssprop">
  <li><dfn>Initial value</dfn> start</li>
  <li><dfn>Inherited</dfn>: yes</li>
  <li>no term here</li>
  <li><dfn>Media</dfn></li>
  <li><dfn>Inherited</dfn> no</li>
</ul>
<h2 id="Syntax">Syntax</h2>
<a href="/en-US/docs/CSS/Value_definition_syntax">Formal syntax</a><pre>start | end | left | right</pre>
</body></html>`

const wpPage = `<html><body>
<div class="css-property">
  <dl><dt>left, right</dt><dd>Horizontal alignment</dd></dl>
  <dl><table><tr><td>stray</td></tr></table></dl>
  <dl><dt> center </dt><dd> Centered  </dd><dd>ignored</dd></dl>
</div>
<dl><dt>outside</dt><dd>not a value</dd></dl>
</body></html>`

func mustParse(t *testing.T, s string) DocumentView {
	t.Helper()
	doc, err := ParseBytes([]byte(s))
	require.NoError(t, err)
	return doc
}

func TestSummary(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Summary(mustParse(t, mdnPage))
	require.NotNil(t, got)
	assert.Equal(t, "The text-align property describes how inline content is aligned.", *got)

	assert.Nil(t, e.Summary(mustParse(t, `<p>no anchor</p>`)))
	assert.Nil(t, e.Summary(mustParse(t, `<div><h2 id="Summary">Summary</h2></div>`)))
}

func TestSyntax(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Syntax(mustParse(t, mdnPage))
	require.NotNil(t, got)
	assert.Equal(t, "start | end | left | right", *got)

	assert.Nil(t, e.Syntax(mustParse(t, `<a href="/other">x</a><pre>y</pre>`)))
	assert.Nil(t, e.Syntax(mustParse(t, `<p><a href="/en-US/docs/CSS/Value_definition_syntax">x</a></p>`)))
}

func TestMetaProperties(t *testing.T) {
	e := NewExtractor(nil)
	doc := mustParse(t, mdnPage)

	rows := e.MetaPropertyRows(doc)
	assert.Equal(t, []MetaProperty{
		{Name: "Initial value", Value: "start"},
		{Name: "Inherited", Value: "yes"},
		{Name: "Inherited", Value: "no"},
	}, rows)

	assert.Equal(t, map[string]string{
		"Initial value": "start",
		"Inherited":     "no",
	}, e.MetaProperties(doc))
}

func TestMetaProperties_SingleRow(t *testing.T) {
	e := NewExtractor(nil)
	doc := mustParse(t, `<ul class="cssprop"><li><dfn>Inherited</dfn>: no</li></ul>`)
	assert.Equal(t, map[string]string{"Inherited": "no"}, e.MetaProperties(doc))

	doc = mustParse(t, `<ul class="cssprop"><li><dfn>Inherited</dfn>   </li></ul>`)
	assert.Empty(t, e.MetaProperties(doc))
	assert.NotNil(t, e.MetaProperties(doc))
}

func TestValueDescriptions(t *testing.T) {
	e := NewExtractor(nil)

	got := e.ValueDescriptions(mustParse(t, wpPage))
	assert.Equal(t, []ValueDescription{
		{Name: "left", Summary: "Horizontal alignment"},
		{Name: "right", Summary: "Horizontal alignment"},
		{Name: "center", Summary: "Centered"},
	}, got)

	none := e.ValueDescriptions(mustParse(t, `<p>nothing</p>`))
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMetaValue(t *testing.T) {
	tests := []struct {
		text, name, want string
	}{
		{"Inherited: no", "Inherited", "no"},
		{"  Inherited  no ", "Inherited", "no"},
		{"Inherited", "Inherited", ""},
		{"* Media visual", "Media", "visual"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, metaValue(tt.text, tt.name), tt.text)
	}
}

func TestParse_Latin1(t *testing.T) {
	page := []byte("<html><head><meta charset=\"iso-8859-1\"></head><body><h2 id=\"Summary\">S</h2><p>caf\xe9</p></body></html>")
	doc, err := ParseBytes(page)
	require.NoError(t, err)
	got := NewExtractor(nil).Summary(doc)
	require.NotNil(t, got)
	assert.Equal(t, "café", *got)
}

func TestNestedContainers(t *testing.T) {
	e := NewExtractor(nil)

	values := e.ValueDescriptions(mustParse(t,
		`<div class="css-property"><div class="css-property"><dl><dt>left, right</dt><dd>H</dd></dl></div></div>`))
	assert.Equal(t, []ValueDescription{
		{Name: "left", Summary: "H"},
		{Name: "right", Summary: "H"},
	}, values)

	rows := e.MetaPropertyRows(mustParse(t,
		`<div class="cssprop"><ul class="cssprop"><li><dfn>Inherited</dfn>: no</li></ul></div>`))
	assert.Equal(t, []MetaProperty{{Name: "Inherited", Value: "no"}}, rows)
}

func TestValueDescriptions_TermWithoutDefinition(t *testing.T) {
	e := NewExtractor(nil)
	got := e.ValueDescriptions(mustParse(t,
		`<div class="css-property"><dl><dt>auto, none</dt></dl><dl><dt>inherit</dt><dd>Parent value</dd></dl></div>`))
	assert.Equal(t, []ValueDescription{
		{Name: "auto", Summary: ""},
		{Name: "none", Summary: ""},
		{Name: "inherit", Summary: "Parent value"},
	}, got)
}

func TestFindByClass(t *testing.T) {
	doc := mustParse(t, `<div class="a b"></div><p class="b"></p><span class="bb"></span>`)
	assert.Len(t, doc.FindByClass("b"), 2)
	assert.Len(t, doc.FindInClass("a", "p"), 0)
}
