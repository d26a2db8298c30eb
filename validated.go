package validated

import "github.com/samber/mo"

// state discriminates the four variants of Field. The zero value is
// stateInitial so that the zero Field is Initial.
type state uint8

const (
	stateInitial state = iota
	stateUnvalidated
	stateValid
	stateInvalid
)

// CheckFunc parses raw user input into a typed value. A non-nil error
// rejects the input; err.Error() becomes the message displayed to the user.
type CheckFunc[V any] func(raw string) (V, error)

// Field tracks a single piece of caller-supplied input together with its
// validation status. It is an immutable tagged union: every operation
// returns a new Field rather than mutating the receiver.
//
// Exactly one variant is active at a time. Unvalidated and Invalid always
// carry the literal last raw string supplied by the caller, never the typed
// value; only Valid carries the typed value.
type Field[V any] struct {
	state   state
	raw     string
	value   V
	message string
}

// Initial returns a Field for which no input has been supplied yet.
// It is equivalent to the zero value of Field[V].
func Initial[V any]() Field[V] {
	return Field[V]{}
}

// Unvalidated returns a Field holding raw input that has been captured but
// not yet run through a validation function.
func Unvalidated[V any](raw string) Field[V] {
	return Field[V]{state: stateUnvalidated, raw: raw}
}

// Valid returns a Field holding a successfully validated value.
func Valid[V any](value V) Field[V] {
	return Field[V]{state: stateValid, value: value}
}

func invalid[V any](message, raw string) Field[V] {
	return Field[V]{state: stateInvalid, message: message, raw: raw}
}

// Validate runs check against raw exactly once. A nil error produces Valid
// with the parsed value; a non-nil error produces Invalid carrying the
// error's message together with raw, so the offending input can be
// redisplayed. Validate never panics and never signals failure out-of-band:
// failure is a value.
func Validate[V any](check CheckFunc[V], raw string) Field[V] {
	v, err := check(raw)
	if err != nil {
		return invalid[V](err.Error(), raw)
	}
	return Valid(v)
}

// carry rebuilds a non-Valid field under a different value type, keeping the
// raw and message payloads intact. Callers must not pass a Valid field: the
// typed value cannot cross type parameters and would be dropped.
func carry[V, W any](f Field[V]) Field[W] {
	return Field[W]{state: f.state, raw: f.raw, message: f.message}
}

// Map applies fn to the payload of a Valid field, producing a Valid field of
// the new type. Initial, Unvalidated, and Invalid pass through with their
// payloads unchanged.
func Map[V, W any](fn func(V) W, f Field[V]) Field[W] {
	if f.state != stateValid {
		return carry[V, W](f)
	}
	return Valid(fn(f.value))
}

// AndThen chains a further validation step onto a Valid field and returns
// fn's result verbatim, which may widen the state (a Valid can become
// Invalid under a stricter check). Initial, Unvalidated, and Invalid
// short-circuit and propagate unchanged, carrying their own payloads.
func AndThen[V, W any](fn func(V) Field[W], f Field[V]) Field[W] {
	if f.state != stateValid {
		return carry[V, W](f)
	}
	return fn(f.value)
}

// AndMap applies a field to an accumulator holding a (usually curried)
// constructor, assembling several independently validated fields into one
// aggregate. The accumulator is inspected first: if it is not Valid it is
// returned unchanged and field is never looked at, its own failure
// discarded in favor of the accumulator's. Only a Valid accumulator
// proceeds to Map its function over field.
//
// Threading the "valid so far" state as the accumulator makes a left-to-
// right fold surface the earliest non-Valid field applied; multiple error
// messages are never accumulated.
func AndMap[V, W any](field Field[V], acc Field[func(V) W]) Field[W] {
	if acc.state != stateValid {
		return carry[func(V) W, W](acc)
	}
	return Map(acc.value, field)
}

// MapMessage rewrites the message of an Invalid field, leaving the carried
// raw string untouched. All other variants pass through unchanged. Useful
// for translating or decorating error text without changing the field's
// validity classification.
func (f Field[V]) MapMessage(fn func(string) string) Field[V] {
	if f.state != stateInvalid {
		return f
	}
	f.message = fn(f.message)
	return f
}

// WithDefault returns the typed value of a Valid field, or fallback for any
// other variant.
func (f Field[V]) WithDefault(fallback V) V {
	if f.state != stateValid {
		return fallback
	}
	return f.value
}

// Message returns the failure message. It is present if and only if the
// field is Invalid.
func (f Field[V]) Message() mo.Option[string] {
	if f.state != stateInvalid {
		return mo.None[string]()
	}
	return mo.Some(f.message)
}

// IsValid reports whether the field is Valid. Both IsValid and IsInvalid
// are false for Initial and Unvalidated, which form an implicit third,
// "pending" classification.
func (f Field[V]) IsValid() bool {
	return f.state == stateValid
}

// IsInvalid reports whether the field is Invalid.
func (f Field[V]) IsInvalid() bool {
	return f.state == stateInvalid
}

// Render projects the field to the string a text control should display:
// render(value) for Valid, the carried raw input for Unvalidated and
// Invalid, and the empty string for Initial. This keeps a control's
// displayed text equal to the user's literal last entry except before any
// entry exists.
func (f Field[V]) Render(render func(V) string) string {
	switch f.state {
	case stateValid:
		return render(f.value)
	case stateUnvalidated, stateInvalid:
		return f.raw
	default:
		return ""
	}
}
