package emitter

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ErrUnbalanced indicates sink misuse, e.g. end element without a matching start
var ErrUnbalanced = errors.New("unbalanced element structure")

// Sink represents a structured output writer with stack discipline
type Sink interface {
	// StartElement opens a child element of the current element
	StartElement(name string)

	// Attribute adds an attribute to the element just opened
	Attribute(name, value string)

	// Text adds character data to the current element
	Text(value string)

	// EndElement closes the current element
	EndElement()
}

// IsName returns true when name is a valid XML element or attribute name
func IsName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == utf8.RuneError {
			return false
		}
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}

func misuse(format string, args ...interface{}) {
	panic(fmt.Errorf("%w: "+format, append([]interface{}{ErrUnbalanced}, args...)...))
}
