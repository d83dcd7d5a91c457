package fielddata

import (
	"fmt"

	"github.com/hupe1980/fielddata/presence"
	"github.com/hupe1980/fielddata/segment"
)

// Source is the opened byte-string column of one field in one segment,
// paired with its presence indicator.
//
// A Source is immutable and safe to share across goroutines. It has no
// refresh: if the segment changes, open a new Source. It must not be used
// after the segment reader it came from is closed.
type Source struct {
	field     string
	segmentID segment.SegmentID
	numDocs   int
	column    segment.Column
	presence  presence.Indicator
}

// OpenSource opens the doc values of field in r.
//
// A field without a column is not an error: every document then reports
// no value. Storage failures are returned as a *LoadError matching
// ErrStorageOpen and are not retried; a presence bitmap without a column
// is returned as a *LoadError matching ErrInconsistentStore.
func OpenSource(r segment.Reader, field string) (*Source, error) {
	numDocs := r.NumDocs()

	col, hasColumn, err := r.OpenColumn(field)
	if err != nil {
		return nil, &LoadError{Field: field, SegmentID: r.ID(), cause: fmt.Errorf("%w: open column: %w", ErrStorageOpen, err)}
	}

	bits, hasBits, err := r.OpenPresence(field)
	if err != nil {
		return nil, &LoadError{Field: field, SegmentID: r.ID(), cause: fmt.Errorf("%w: open presence: %w", ErrStorageOpen, err)}
	}

	ind, err := presence.Resolve(numDocs, hasColumn, bits, hasBits)
	if err != nil {
		return nil, &LoadError{Field: field, SegmentID: r.ID(), cause: err}
	}

	if !hasColumn {
		col = segment.EmptyColumn
	}

	return &Source{
		field:     field,
		segmentID: r.ID(),
		numDocs:   numDocs,
		column:    col,
		presence:  ind,
	}, nil
}

// Field returns the field name.
func (s *Source) Field() string { return s.field }

// SegmentID returns the segment the source was opened from.
func (s *Source) SegmentID() segment.SegmentID { return s.segmentID }

// NumDocs returns the number of documents in the segment.
func (s *Source) NumDocs() int { return s.numDocs }

// Presence returns the presence indicator.
func (s *Source) Presence() presence.Indicator { return s.presence }

// Column returns the raw column. Fields absent from the segment return an
// empty column.
func (s *Source) Column() segment.Column { return s.column }
