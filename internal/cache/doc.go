// Package cache provides a generic LRU cache.
//
// Field data uses it to keep opened per-(segment, field) sources alive for
// the length of an access session. Entries own no resources, so eviction
// only drops references; the segment reader stays responsible for the
// underlying storage.
package cache
