// Package faulty wraps a segment reader and injects open failures.
//
// It is intended for tests of code that must treat storage failures as
// fatal:
//
//	r := faulty.New(base)
//	r.AddRule("_id", faulty.Fault{FailOpenColumn: true})
package faulty
