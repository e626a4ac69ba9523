// internal/item/kind.go
package item

import "strings"

// Kind is the classification of a CSS construct.
type Kind string

const (
	Property      Kind = "property"
	AtRule        Kind = "at-rule"
	Function      Kind = "function"
	PseudoClass   Kind = "pseudo-class"
	PseudoElement Kind = "pseudo-element"
	DataType      Kind = "data-type"
)

// Kinds lists every Kind in classification order.
var Kinds = []Kind{Function, DataType, AtRule, PseudoElement, PseudoClass, Property}

// Classify derives the Kind from the surface syntax of name.
// First match wins; "::" has to be tested before ":".
func Classify(name string) Kind {
	switch {
	case strings.Contains(name, "()"):
		return Function
	case strings.HasPrefix(name, "<"):
		return DataType
	case strings.HasPrefix(name, "@"):
		return AtRule
	case strings.HasPrefix(name, "::"):
		return PseudoElement
	case strings.HasPrefix(name, ":"):
		return PseudoClass
	default:
		return Property
	}
}

func (k Kind) String() string { return string(k) }
