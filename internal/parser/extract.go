// internal/parser/extract.go
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"css-catalog/internal/metrics"
)

// Structural markers of the two documentation sites.
const (
	SummaryAnchorID     = "Summary"
	SyntaxLinkHref      = "/en-US/docs/CSS/Value_definition_syntax"
	MetaContainerClass  = "cssprop"
	ValueContainerClass = "css-property"
)

// ErrMissingStructure marks an expected element that is not in the document.
// It never leaves an extractor; it is only logged.
var ErrMissingStructure = errors.New("missing structure")

// MetaProperty is one row of the property summary table, e.g. Inherited: no.
type MetaProperty struct {
	Name  string
	Value string
}

// ValueDescription describes one keyword a property accepts.
type ValueDescription struct {
	Name    string `json:"name" bson:"name"`
	Summary string `json:"summary" bson:"summary"`
}

var valueSep = regexp.MustCompile(`\s*,\s*`)

// Extractor pulls individual fields out of parsed pages. Every method is
// failure tolerant: missing markup yields nil or an empty value.
type Extractor struct {
	log *zap.Logger
}

func NewExtractor(log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{log: log}
}

func (e *Extractor) missing(field, format string, args ...any) {
	metrics.FieldsMissing.WithLabelValues(field).Inc()
	e.log.Debug("field unavailable",
		zap.String("field", field),
		zap.Error(fmt.Errorf("%w: "+format, append([]any{ErrMissingStructure}, args...)...)))
}

// Summary returns the text of the element following the Summary anchor.
func (e *Extractor) Summary(doc DocumentView) *string {
	anchor, ok := doc.FindByID(SummaryAnchorID)
	if !ok {
		e.missing("summary", "no #%s anchor", SummaryAnchorID)
		return nil
	}
	next, ok := anchor.NextSibling()
	if !ok {
		e.missing("summary", "nothing follows #%s", SummaryAnchorID)
		return nil
	}
	s := strings.TrimSpace(next.Text())
	return &s
}

// Syntax returns the formal syntax printed right after the link to the
// value definition syntax page.
func (e *Extractor) Syntax(doc DocumentView) *string {
	link, ok := doc.FindLink(SyntaxLinkHref)
	if !ok {
		e.missing("syntax", "no link to %s", SyntaxLinkHref)
		return nil
	}
	next, ok := link.NextSibling()
	if !ok {
		e.missing("syntax", "no element after syntax link")
		return nil
	}
	s := strings.TrimSpace(next.Text())
	return &s
}

// MetaPropertyRows lists the rows of the .cssprop table in document order.
// Rows without a <dfn> or with an empty value are left out.
func (e *Extractor) MetaPropertyRows(doc DocumentView) []MetaProperty {
	var rows []MetaProperty
	for _, li := range doc.FindInClass(MetaContainerClass, "li") {
		dfns := li.Find("dfn")
		if len(dfns) == 0 {
			e.missing("metaProperties", "list item without <dfn>")
			continue
		}
		name := strings.TrimSpace(dfns[0].Text())
		value := metaValue(li.Text(), name)
		if value == "" {
			e.missing("metaProperties", "no value for %q", name)
			continue
		}
		rows = append(rows, MetaProperty{Name: name, Value: value})
	}
	return rows
}

// MetaProperties folds the rows into a map. A later row with the same name
// replaces an earlier one.
func (e *Extractor) MetaProperties(doc DocumentView) map[string]string {
	rows := e.MetaPropertyRows(doc)
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Name] = r.Value
	}
	return out
}

// metaValue strips the term and the separating colon from a row's text.
func metaValue(text, name string) string {
	text = strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(text, name); ok {
		text = rest
	} else if _, after, found := strings.Cut(text, name); found {
		text = after
	}
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, ":")
	return strings.TrimSpace(text)
}

// ValueDescriptions reads each definition list of the secondary page. A term
// such as "left, right" produces one entry per name, all sharing the
// description. Lists without a <dt> are skipped.
func (e *Extractor) ValueDescriptions(doc DocumentView) []ValueDescription {
	out := []ValueDescription{}
	for _, dl := range doc.FindInClass(ValueContainerClass, "dl") {
		dts := dl.Find("dt")
		if len(dts) == 0 {
			e.missing("values", "definition list without <dt>")
			continue
		}
		var summary string
		if dds := dl.Find("dd"); len(dds) > 0 {
			summary = strings.TrimSpace(dds[0].Text())
		} else {
			e.missing("values", "definition list without <dd>")
		}
		for _, name := range valueSep.Split(strings.TrimSpace(dts[0].Text()), -1) {
			if name == "" {
				continue
			}
			out = append(out, ValueDescription{Name: name, Summary: summary})
		}
	}
	return out
}
