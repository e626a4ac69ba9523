// internal/item/resolve.go
package item

import "strings"

// RecognitionPrefix is shared by every recognition key.
const RecognitionPrefix = "com.solveforall.recognition.programming.web.css."

// W3CBase is the root of the reference site. Its pages are linked, never fetched.
const W3CBase = "http://www.w3.org/community/webed/wiki/CSS"

// SecondaryPath returns the webplatform path suffix for name, or false when
// the secondary site has no page for this kind.
func SecondaryPath(name string, kind Kind) (string, bool) {
	switch kind {
	case Property:
		return "properties/" + name, true
	case Function:
		return "functions/" + strings.ReplaceAll(name, "()", ""), true
	case AtRule:
		return "atrules/" + name, true
	case PseudoClass:
		return "selectors/pseudo-classes/" + name, true
	case PseudoElement:
		return "selectors/pseudo-elements/" + name, true
	default:
		return "", false
	}
}

// ReferenceURL returns the reference-site URL for name, defined only for
// properties and pseudo selectors.
func ReferenceURL(name string, kind Kind) (string, bool) {
	switch kind {
	case Property:
		return W3CBase + "/Properties/" + name, true
	case PseudoClass:
		return W3CBase + "/Selectors/pseudo-classes/" + name, true
	case PseudoElement:
		return W3CBase + "/Selectors/pseudo-elements/" + name, true
	default:
		return "", false
	}
}

// irregular kinds whose tag is not just the capitalized kind name
var recognitionSuffix = map[Kind]string{
	AtRule:        "AtRule",
	PseudoClass:   "PseudoClass",
	PseudoElement: "PseudoElement",
	DataType:      "DataType",
}

// RecognitionKey encodes kind for downstream consumers.
func RecognitionKey(kind Kind) string {
	if s, ok := recognitionSuffix[kind]; ok {
		return RecognitionPrefix + s
	}
	s := string(kind)
	if s == "" {
		return RecognitionPrefix
	}
	return RecognitionPrefix + strings.ToUpper(s[:1]) + s[1:]
}
