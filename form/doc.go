// Package form wires the validated.Field value type to the lifecycle of an
// interactive input control: keystrokes capture raw text, blur runs the
// field's check, and a group of fields gates submit enablement.
//
// A form.Field bundles three things the surrounding UI layer would
// otherwise juggle separately: the check function, the literal last raw
// input, and the current validation state. Like the underlying value type
// it is immutable; every event method returns a new Field, so the caller
// owns all state:
//
//	age := form.NewField(checkAge)     // Initial
//	age = age.Input("4")               // Unvalidated("4") on each keystroke
//	age = age.Input("42")
//	age = age.Blur()                   // Valid(42)
//
// Submit buttons enable when every field validates:
//
//	if form.Ready(name, email, age) {
//	    // build and submit the aggregate
//	}
//
// A Catalog translates or decorates error messages without changing a
// field's validity, for example to localize the text a check produced:
//
//	catalog, _ := form.ParseCatalog(messagesYAML)
//	state := age.State().MapMessage(catalog.Rewrite)
package form
