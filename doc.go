// Package validated provides an immutable, four-state representation of a
// single piece of user input together with its validation status, plus a set
// of pure combinators for transforming and aggregating such values.
//
// A Field[V] is always in exactly one of four states:
//
//   - Initial: no input has been supplied yet
//   - Unvalidated: raw input captured but not yet checked
//   - Valid: validation succeeded, the typed value is held
//   - Invalid: validation failed, the message and the raw input are held
//
// The type is designed to be threaded through state owned entirely by the
// caller, typically one Field per form control. The raw string a user last
// typed is never lost: Unvalidated and Invalid both carry it, so a text
// control can keep displaying the literal last entry while an error label
// shows the failure message.
//
// # Usage
//
//	age := validated.Validate(func(raw string) (int, error) {
//	    n, err := strconv.Atoi(raw)
//	    if err != nil {
//	        return 0, errors.New("must be a number")
//	    }
//	    return n, nil
//	}, "42")
//
//	age.IsValid()       // true
//	age.WithDefault(0)  // 42
//
// Fields transform with Map and chain with AndThen, both of which pass
// non-Valid states through untouched:
//
//	doubled := validated.Map(func(n int) int { return n * 2 }, age)
//
//	adult := validated.AndThen(func(n int) validated.Field[int] {
//	    if n < 18 {
//	        return validated.Validate(failWith("must be at least 18"), "42")
//	    }
//	    return validated.Valid(n)
//	}, age)
//
// Several independently validated fields combine into one aggregate with
// AndMap, folding a curried constructor across the fields. The first
// non-Valid state encountered in fold order is the one surfaced; error
// messages are never accumulated into a list:
//
//	build := func(name string) func(int) Person {
//	    return func(age int) Person { return Person{name, age} }
//	}
//	person := validated.AndMap(ageField,
//	    validated.AndMap(nameField, validated.Valid(build)))
//
// # State and immutability
//
// Every operation returns a new Field; nothing is mutated in place, so
// sharing values across goroutines requires no synchronization. The zero
// value of Field[V] is Initial. No combinator ever transitions a field back
// to Initial; only replacing the value wholesale (or the FromOptionInitial
// and FromResultInitial constructors) produces one.
//
// # Host-type bridges
//
// Conversions to and from mo.Option and mo.Result (github.com/samber/mo)
// let existing parsing or transport code that does not use Field
// interoperate with it. See conversions.go.
package validated
