package validated

import "github.com/samber/mo"

// FromOption converts an optional value: present becomes Valid, absent
// becomes Invalid carrying message and raw.
func FromOption[V any](message, raw string, o mo.Option[V]) Field[V] {
	if v, ok := o.Get(); ok {
		return Valid(v)
	}
	return invalid[V](message, raw)
}

// FromOptionInitial converts an optional value where absence is not yet an
// error: present becomes Valid, absent becomes Initial.
func FromOptionInitial[V any](o mo.Option[V]) Field[V] {
	if v, ok := o.Get(); ok {
		return Valid(v)
	}
	return Initial[V]()
}

// FromOptionUnvalidated converts an optional value: present becomes Valid,
// absent becomes Unvalidated carrying raw.
func FromOptionUnvalidated[V any](raw string, o mo.Option[V]) Field[V] {
	if v, ok := o.Get(); ok {
		return Valid(v)
	}
	return Unvalidated[V](raw)
}

// FromResult converts a success/failure result: success becomes Valid,
// failure becomes Invalid with errFn applied to the error and raw carried
// alongside.
func FromResult[V any](errFn func(error) string, raw string, r mo.Result[V]) Field[V] {
	if r.IsError() {
		return invalid[V](errFn(r.Error()), raw)
	}
	return Valid(r.MustGet())
}

// FromResultInitial converts a success/failure result, dropping the error
// detail entirely: success becomes Valid, failure becomes Initial.
func FromResultInitial[V any](r mo.Result[V]) Field[V] {
	if r.IsError() {
		return Initial[V]()
	}
	return Valid(r.MustGet())
}

// FromResultUnvalidated converts a success/failure result: success becomes
// Valid, failure becomes Unvalidated whose payload holds errFn applied to
// the error.
//
// Note the asymmetry: everywhere else the Unvalidated payload is literal
// raw user input, but here it holds a transformed error string. The
// behavior is kept for compatibility with the contract this type
// implements; callers that need to distinguish the two meanings should
// track raw input separately.
func FromResultUnvalidated[V any](errFn func(error) string, r mo.Result[V]) Field[V] {
	if r.IsError() {
		return Unvalidated[V](errFn(r.Error()))
	}
	return Valid(r.MustGet())
}

// Option projects the field to an optional value: Valid becomes present,
// every other variant becomes absent with all detail dropped.
func (f Field[V]) Option() mo.Option[V] {
	if f.state != stateValid {
		return mo.None[V]()
	}
	return mo.Some(f.value)
}
