// internal/parser/listing.go
package parser

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ListingSelector matches the item links of the CSS reference index.
const ListingSelector = ".index li a"

// synonyms such as "::after (:after)"
var synonym = regexp.MustCompile(`\s+\([^)]*\)`)

// Entry is one item linked from the reference index.
type Entry struct {
	Name string
	URL  string
}

// Listing returns the items linked from the reference index page at base,
// in page order. Links that do not resolve to an http(s) page are dropped.
func Listing(base string, body []byte) ([]Entry, error) {
	bu, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var out []Entry
	doc.Find(ListingSelector).Each(func(_ int, a *goquery.Selection) {
		name := ItemName(a.Text())
		href, _ := a.Attr("href")
		u, ok := ResolveLink(bu, href)
		if name == "" || !ok {
			return
		}
		out = append(out, Entry{Name: name, URL: u})
	})
	return out, nil
}

// ItemName strips parenthesised synonyms and surrounding space from link text.
func ItemName(text string) string {
	return strings.TrimSpace(synonym.ReplaceAllString(text, ""))
}
