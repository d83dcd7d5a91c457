package presence

import "fmt"

// Policy names how presence is decided for a field in a segment.
type Policy uint8

const (
	// PolicyAllAbsent: the segment has no column for the field.
	// No document has a value.
	PolicyAllAbsent Policy = iota
	// PolicyAllPresent: the segment has a column but no presence bitmap.
	// Every document is assumed to have a value.
	PolicyAllPresent
	// PolicyExplicit: the segment has both a column and a presence bitmap.
	// A document has a value iff its bit is set.
	PolicyExplicit
)

func (p Policy) String() string {
	switch p {
	case PolicyAllAbsent:
		return "AllAbsent"
	case PolicyAllPresent:
		return "AllPresent"
	case PolicyExplicit:
		return "Explicit"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(p))
	}
}
