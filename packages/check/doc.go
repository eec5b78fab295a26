// Package check is the fluent assertion surface of resultspec.
//
// An entry point wraps an action result value together with a failure
// context, then each assertion narrows the value to the concrete
// variant it needs, validates one field and returns the same builder so
// calls chain:
//
//	check.Created(res, check.WithContext("when calling GetItem expected")).
//		AtLocation("/items/5").
//		And().
//		AtLocation("/items/5")
//
// Assertions are independent: each one narrows and validates against
// the same underlying value, so chained assertions pass or fail in any
// order. A failed assertion raises a *fail.Error and runs no further
// checks within that call.
//
// Operations parameterized by a type, such as WithFileProviderOfType,
// are package-level generic functions because Go methods cannot take
// type parameters.
package check
