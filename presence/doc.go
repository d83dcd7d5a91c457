// Package presence resolves which documents of a segment have a value for a field.
//
// A segment store can describe presence three ways, and each maps to one
// Indicator variant:
//
//	AllAbsent   the field has no column in the segment
//	AllPresent  the field has a column but no presence bitmap
//	Explicit    the field has a column and a presence bitmap
//
// AllPresent follows the store convention that a missing presence index
// means the field is dense. Readers rely on it; do not re-derive presence
// from the stored values (an empty byte string is still a value).
//
// A bitmap without a column cannot be resolved and yields
// ErrInconsistentStore.
package presence
