// internal/parser/html.go
package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Node is one element of a parsed document.
type Node interface {
	// Text returns the combined text of the element and its descendants.
	Text() string
	// NextSibling returns the element immediately following this one.
	NextSibling() (Node, bool)
	// Find returns descendant elements with the given tag name in document order.
	Find(tag string) []Node
}

// DocumentView is the query surface extractors work against. It keeps them
// independent of the HTML library underneath.
type DocumentView interface {
	FindByID(id string) (Node, bool)
	FindByClass(class string) []Node
	// FindInClass returns every <tag> below an element of the given class,
	// each element once and in document order, even when containers nest.
	FindInClass(class, tag string) []Node
	// FindLink returns the first <a> whose href equals href exactly.
	FindLink(href string) (Node, bool)
}

// Parse decodes r (honouring BOMs and <meta charset>) and builds a DocumentView.
func Parse(r io.Reader, contentType string) (DocumentView, error) {
	if contentType == "" {
		contentType = "text/html"
	}
	cr, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("detect charset: %w", err)
	}
	root, err := html.Parse(cr)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &document{doc: goquery.NewDocumentFromNode(root)}, nil
}

// ParseBytes is Parse for an in-memory page.
func ParseBytes(b []byte) (DocumentView, error) {
	return Parse(bytes.NewReader(b), "")
}

type document struct {
	doc *goquery.Document
}

func (d *document) FindByID(id string) (Node, bool) {
	return first(d.doc.Find(`[id="` + quote(id) + `"]`))
}

func (d *document) FindByClass(class string) []Node {
	return nodes(d.doc.Find(`[class~="` + quote(class) + `"]`))
}

func (d *document) FindInClass(class, tag string) []Node {
	return nodes(d.doc.Find(`[class~="` + quote(class) + `"] ` + tag))
}

func (d *document) FindLink(href string) (Node, bool) {
	return first(d.doc.Find(`a[href="` + quote(href) + `"]`))
}

type node struct {
	sel *goquery.Selection
}

func (n node) Text() string { return n.sel.Text() }

func (n node) NextSibling() (Node, bool) {
	return first(n.sel.Next())
}

func (n node) Find(tag string) []Node {
	return nodes(n.sel.Find(tag))
}

func first(s *goquery.Selection) (Node, bool) {
	if s.Length() == 0 {
		return nil, false
	}
	return node{sel: s.First()}, true
}

func nodes(s *goquery.Selection) []Node {
	out := make([]Node, 0, s.Length())
	s.Each(func(_ int, el *goquery.Selection) {
		out = append(out, node{sel: el})
	})
	return out
}

// quote escapes a value for use inside a double-quoted attribute selector.
func quote(v string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(v)
}
