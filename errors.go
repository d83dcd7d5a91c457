package fielddata

import (
	"errors"
	"fmt"

	"github.com/hupe1980/fielddata/presence"
	"github.com/hupe1980/fielddata/segment"
)

var (
	// ErrStorageOpen indicates an I/O failure while opening a column or
	// presence bitmap. Doc values are expected to be readable at open time,
	// so the failure is not retried.
	ErrStorageOpen = errors.New("cannot load doc values")

	// ErrInconsistentStore indicates a presence bitmap without a column.
	ErrInconsistentStore = presence.ErrInconsistentStore
)

// LoadError reports a failure to open the doc values of a field.
//
// The original underlying error can be accessed via errors.Unwrap; it
// matches ErrStorageOpen or ErrInconsistentStore with errors.Is.
type LoadError struct {
	Field     string
	SegmentID segment.SegmentID
	cause     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("field %q in segment %d: %v", e.Field, e.SegmentID, e.cause)
}

func (e *LoadError) Unwrap() error { return e.cause }
