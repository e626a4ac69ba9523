package parser

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListing(t *testing.T) {
	page := `<html><body>
<div class="index"><ul>
  <li><a href="/en-US/docs/Web/CSS/::after"><code>::after (:after)</code></a></li>
  <li><a href="/en-US/docs/Web/CSS/color#top">color</a></li>
  <li><a href="mailto:someone@example.com">mail</a></li>
  <li><a href="/en-US/docs/Web/CSS/calc()">calc()</a></li>
</ul></div>
<ul><li><a href="/elsewhere">not indexed</a></li></ul>
</body></html>`

	got, err := Listing("https://developer.mozilla.org/en-US/docs/Web/CSS/Reference", []byte(page))
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "::after", URL: "https://developer.mozilla.org/en-US/docs/Web/CSS/::after"},
		{Name: "color", URL: "https://developer.mozilla.org/en-US/docs/Web/CSS/color"},
		{Name: "calc()", URL: "https://developer.mozilla.org/en-US/docs/Web/CSS/calc()"},
	}, got)
}

func TestItemName(t *testing.T) {
	assert.Equal(t, "::before", ItemName("  ::before (:before) "))
	assert.Equal(t, "calc()", ItemName("calc()"))
}

func TestResolveLink(t *testing.T) {
	base, err := url.Parse("https://developer.mozilla.org/en-US/docs/Web/CSS/Reference")
	require.NoError(t, err)

	tests := []struct {
		href   string
		want   string
		wantOK bool
	}{
		{"color", "https://developer.mozilla.org/en-US/docs/Web/CSS/color", true},
		{"/en-US/docs/Web/CSS/@media#Syntax", "https://developer.mozilla.org/en-US/docs/Web/CSS/@media", true},
		{"https://example.com", "https://example.com/", true},
		{"#frag", "", false},
		{"  ", "", false},
		{"javascript:void(0)", "", false},
		{"mailto:a@b.c", "", false},
	}
	for _, tt := range tests {
		got, ok := ResolveLink(base, tt.href)
		assert.Equal(t, tt.wantOK, ok, tt.href)
		assert.Equal(t, tt.want, got, tt.href)
	}
}
