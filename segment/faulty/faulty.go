package faulty

import (
	"errors"
	"sync"

	"github.com/hupe1980/fielddata/segment"
)

// ErrInjected is the default error returned by injected faults.
var ErrInjected = errors.New("injected fault error")

// Fault defines the failure behavior for one field.
type Fault struct {
	FailOpenColumn   bool
	FailOpenPresence bool
	// OrphanPresence reports a presence bitmap for a field whose column
	// is missing, simulating an inconsistent store.
	OrphanPresence bool
	Err            error
}

// Reader wraps a segment.Reader and injects faults per field.
// It is safe for concurrent use.
type Reader struct {
	segment.Reader

	mu     sync.Mutex
	rules  map[string]Fault
	opened map[string]int
}

// New wraps r.
func New(r segment.Reader) *Reader {
	return &Reader{
		Reader: r,
		rules:  make(map[string]Fault),
		opened: make(map[string]int),
	}
}

// AddRule installs a fault for field, replacing any previous rule.
func (f *Reader) AddRule(field string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fault.Err == nil {
		fault.Err = ErrInjected
	}
	f.rules[field] = fault
}

// ColumnOpens returns how many times OpenColumn was called for field.
func (f *Reader) ColumnOpens(field string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opened[field]
}

func (f *Reader) rule(field string) (Fault, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fault, ok := f.rules[field]
	return fault, ok
}

// OpenColumn implements segment.Reader.
func (f *Reader) OpenColumn(field string) (segment.Column, bool, error) {
	f.mu.Lock()
	f.opened[field]++
	f.mu.Unlock()

	if fault, ok := f.rule(field); ok {
		if fault.FailOpenColumn {
			return nil, false, fault.Err
		}
		if fault.OrphanPresence {
			return nil, false, nil
		}
	}
	return f.Reader.OpenColumn(field)
}

// OpenPresence implements segment.Reader.
func (f *Reader) OpenPresence(field string) (segment.Bitmap, bool, error) {
	if fault, ok := f.rule(field); ok {
		if fault.FailOpenPresence {
			return nil, false, fault.Err
		}
		if fault.OrphanPresence {
			return orphan{}, true, nil
		}
	}
	return f.Reader.OpenPresence(field)
}

type orphan struct{}

func (orphan) Test(uint32) bool { return false }
