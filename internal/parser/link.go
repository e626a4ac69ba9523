// internal/parser/link.go
package parser

import (
	"net/url"
	"strings"
)

// ResolveLink turns an href found on the page at base into an absolute
// http(s) URL without fragment. Same-page anchors, other schemes and
// unparsable hrefs report false.
func ResolveLink(base *url.URL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	abs := base.ResolveReference(ref)
	switch strings.ToLower(abs.Scheme) {
	case "http", "https":
	default:
		return "", false
	}
	abs.Fragment = ""
	abs.RawFragment = ""
	if abs.Path == "" {
		abs.Path = "/"
	}
	return abs.String(), true
}
