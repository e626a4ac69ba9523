package record

import (
	"go.uber.org/zap"

	"css-catalog/internal/item"
	"css-catalog/internal/metrics"
	"css-catalog/internal/parser"
)

// WebPlatformBase is the root that secondary paths hang off.
const WebPlatformBase = "http://docs.webplatform.org/wiki/css"

// Assembler turns parsed documents into records.
type Assembler struct {
	log             *zap.Logger
	webPlatformBase string
}

func NewAssembler(log *zap.Logger, webPlatformBase string) *Assembler {
	if log == nil {
		log = zap.NewNop()
	}
	if webPlatformBase == "" {
		webPlatformBase = WebPlatformBase
	}
	return &Assembler{log: log, webPlatformBase: webPlatformBase}
}

// Assemble builds the record for name. secondary may be nil; it is consulted
// only for properties. The property-only fields exist only on properties.
func (a *Assembler) Assemble(name string, primary, secondary parser.DocumentView, primaryURI string) Record {
	kind := item.Classify(name)
	log := a.log.With(zap.String("item", name), zap.Stringer("kind", kind))
	ex := parser.NewExtractor(log)

	base := PlainRecord{
		Name:            name,
		Summary:         ex.Summary(primary),
		RecognitionKeys: []string{item.RecognitionKey(kind)},
		kind:            kind,
	}
	if primaryURI != "" {
		base.MDNURI = &primaryURI
	}
	if u, ok := item.ReferenceURL(name, kind); ok {
		base.W3CURI = &u
	}
	if p, ok := item.SecondaryPath(name, kind); ok {
		u := a.webPlatformBase + "/" + p
		base.WebPlatformURI = &u
	}
	metrics.ItemsAssembled.WithLabelValues(kind.String()).Inc()

	if kind != item.Property {
		return &base
	}

	rec := &PropertyRecord{
		PlainRecord:    base,
		MetaProperties: ex.MetaProperties(primary),
		Syntax:         ex.Syntax(primary),
		Values:         []parser.ValueDescription{},
	}
	if secondary != nil {
		rec.Values = ex.ValueDescriptions(secondary)
	} else {
		metrics.FieldsMissing.WithLabelValues("values").Inc()
		log.Debug("no secondary document, values left empty")
	}
	return rec
}
