// Package fail provides the failure reporting channel shared by every
// resultspec assertion.
//
// An assertion that does not hold raises an *Error by panicking; the
// surrounding runner (or fail.Protect) recovers it and turns it into a
// test failure. Every message follows the same template:
//
//	<context> <subject> <expectation>, but <actual>.
//
// so failures read as a sentence, e.g.
//
//	expected created result location to be "/items/5", but instead received "/items/6".
package fail
