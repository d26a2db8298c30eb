package form

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Catalog maps exact error messages produced by check functions to
// replacement display text. It backs MapMessage-style translation and
// decoration: a lookup miss returns the message untouched, so a partial
// catalog degrades to passthrough rather than blank labels.
type Catalog struct {
	messages map[string]string
}

// ParseCatalog parses YAML catalog content of the form
//
//	must be a number: "Podaj liczbę"
//	required: "To pole jest wymagane"
//
// into a Catalog. The caller supplies the bytes; the package does no I/O.
func ParseCatalog(content []byte) (*Catalog, error) {
	var messages map[string]string
	if err := yaml.Unmarshal(content, &messages); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return &Catalog{messages: messages}, nil
}

// Rewrite returns the replacement for message, or message itself when the
// catalog has no entry for it. A nil catalog is a passthrough. Rewrite has
// the signature MapMessage expects:
//
//	field.State().MapMessage(catalog.Rewrite)
func (c *Catalog) Rewrite(message string) string {
	if c == nil {
		return message
	}
	if replacement, ok := c.messages[message]; ok {
		return replacement
	}
	return message
}
