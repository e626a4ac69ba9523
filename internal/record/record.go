// Package record holds the normalized per-item output and its assembly.
package record

import (
	"bytes"
	"encoding/json"

	"css-catalog/internal/item"
	"css-catalog/internal/parser"
)

// Record is one catalog entry. It is either a *PlainRecord or a *PropertyRecord.
type Record interface {
	Base() *PlainRecord
	Kind() item.Kind
}

// PlainRecord carries the fields every item has. Nil pointers encode as null.
type PlainRecord struct {
	Name            string   `json:"name" bson:"name"`
	Summary         *string  `json:"summary" bson:"summary"`
	MDNURI          *string  `json:"mdnUri" bson:"mdnUri"`
	W3CURI          *string  `json:"w3cUri" bson:"w3cUri"`
	WebPlatformURI  *string  `json:"webPlatformUri" bson:"webPlatformUri"`
	RecognitionKeys []string `json:"recognitionKeys" bson:"recognitionKeys"`

	kind item.Kind
}

func (r *PlainRecord) Base() *PlainRecord { return r }
func (r *PlainRecord) Kind() item.Kind    { return r.kind }

// PropertyRecord adds the property-only fields.
type PropertyRecord struct {
	PlainRecord `bson:",inline"`

	MetaProperties map[string]string         `json:"metaProperties" bson:"metaProperties"`
	Syntax         *string                   `json:"syntax" bson:"syntax"`
	Values         []parser.ValueDescription `json:"values" bson:"values"`
}

// Marshal encodes v as a single line of JSON without HTML escaping, so names
// like <length> stay readable.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
