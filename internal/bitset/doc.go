// Package bitset provides an immutable dense bitset for presence tracking.
//
// Dense packs one bit per document into uint64 words. It is used for
// presence bitmaps of fields where most documents carry a value, where a
// flat word array beats a compressed bitmap on both size and lookup cost.
package bitset
