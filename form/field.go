package form

import (
	"github.com/samber/mo"

	"github.com/dmitrymomot/validated"
)

// Field is the caller-owned state of one interactive input control: its
// check function, the literal last raw input, and the current validation
// state. Field is immutable; Input, Blur, and Reset return new values.
type Field[V any] struct {
	check validated.CheckFunc[V]
	raw   string
	typed bool
	state validated.Field[V]
}

// NewField returns a Field in the Initial state that validates input with
// check on Blur.
func NewField[V any](check validated.CheckFunc[V]) Field[V] {
	return Field[V]{check: check}
}

// Input records a keystroke: the raw text is captured as Unvalidated
// without running the check, so users are not shouted at mid-typing.
func (f Field[V]) Input(raw string) Field[V] {
	f.raw = raw
	f.typed = true
	f.state = validated.Unvalidated[V](raw)
	return f
}

// Blur runs the check against the last recorded raw input, producing Valid
// or Invalid. A field that never received input stays Initial.
func (f Field[V]) Blur() Field[V] {
	if !f.typed {
		return f
	}
	f.state = validated.Validate(f.check, f.raw)
	return f
}

// Reset is the explicit external replacement that returns the field to
// Initial, discarding recorded input. No combinator on the value type does
// this; it is a deliberate caller-level action.
func (f Field[V]) Reset() Field[V] {
	f.raw = ""
	f.typed = false
	f.state = validated.Initial[V]()
	return f
}

// State exposes the underlying validation value for use with the validated
// package combinators.
func (f Field[V]) State() validated.Field[V] {
	return f.state
}

// IsValid reports whether the field's last validation succeeded.
func (f Field[V]) IsValid() bool {
	return f.state.IsValid()
}

// Message returns the current failure message, present only when the last
// validation failed.
func (f Field[V]) Message() mo.Option[string] {
	return f.state.Message()
}

// Value returns the validated typed value, or fallback when the field is
// not Valid.
func (f Field[V]) Value(fallback V) V {
	return f.state.WithDefault(fallback)
}

// Display returns the text the control should show: the rendered value
// when Valid, the user's literal last entry when pending or failing, and
// the empty string before any entry.
func (f Field[V]) Display(render func(V) string) string {
	return f.state.Render(render)
}

// Validity is the slice of a field a submit gate needs.
type Validity interface {
	IsValid() bool
}

// Ready reports whether every field validates, typically driving submit
// enablement. An empty field list is ready.
func Ready(fields ...Validity) bool {
	for _, f := range fields {
		if !f.IsValid() {
			return false
		}
	}
	return true
}
