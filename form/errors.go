package form

import "errors"

var (
	// ErrInvalidCatalog indicates that catalog content could not be parsed.
	ErrInvalidCatalog = errors.New("form: invalid message catalog")
)
