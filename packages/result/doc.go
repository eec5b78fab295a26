// Package result models the polymorphic action results that resultspec
// asserts against.
//
// A Result is an opaque outcome value tagged with the family it belongs
// to (created, file, redirect, content, json). Each family is a closed
// set of concrete variants carrying a fixed set of inspectable fields;
// the check package narrows a Result to one variant before validating
// any field.
//
// Collaborator interfaces (FileProvider, Formatter, URLResolver) stand
// in for the framework pieces a handler attaches to its result. The
// assertion core never invokes them; it only compares them by identity
// or by runtime type.
package result
