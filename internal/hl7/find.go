package hl7

import "strings"

// Find returns the index of the first segment whose probe text contains
// term, ignoring case. The scan always starts at the first segment.
// found is false when nothing matches; that is not an error.
func Find(m *Message, term string) (idx int, found bool, err error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return -1, false, ErrEmptySearchTerm
	}
	if m.Len() == 0 {
		return -1, false, ErrNoMessage
	}

	needle := strings.ToLower(term)
	for i, seg := range m.Segments {
		if strings.Contains(strings.ToLower(seg.Probe()), needle) {
			return i, true, nil
		}
	}
	return -1, false, nil
}
