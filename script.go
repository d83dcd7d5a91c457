package fielddata

// ScriptStrings exposes a field's values to scripts as strings.
//
// It is a read-only projection of a BytesValues with a document cursor:
// position it with SetNextDocID, then read Value or Values. Like
// BytesValues it is not safe for concurrent use.
type ScriptStrings struct {
	values *BytesValues
	doc    uint32
	buf    []byte
}

// NewScriptStrings wraps values.
func NewScriptStrings(values *BytesValues) *ScriptStrings {
	return &ScriptStrings{values: values}
}

// SetNextDocID moves the cursor to doc.
func (s *ScriptStrings) SetNextDocID(doc uint32) {
	s.doc = doc
}

// IsEmpty reports whether the current document has no value.
func (s *ScriptStrings) IsEmpty() bool {
	return !s.values.HasValue(s.doc)
}

// Value returns the value of the current document, or "" if it has none.
func (s *ScriptStrings) Value() string {
	if !s.values.HasValue(s.doc) {
		return ""
	}
	s.buf = s.values.ValueInto(s.doc, s.buf)
	return string(s.buf)
}

// Values returns the values of the current document: empty or one element.
func (s *ScriptStrings) Values() []string {
	var out []string
	for v := range s.values.Values(s.doc) {
		out = append(out, string(v))
	}
	return out
}
