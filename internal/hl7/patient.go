package hl7

import (
	"fmt"
	"strings"
)

// Unknown is shown for any value the message does not carry.
const Unknown = "-"

// PID field positions, 0-based into Segment.Fields.
const (
	pidID      = 2
	pidName    = 4
	pidBirth   = 6
	pidGender  = 7
	pidAddress = 10
)

type Patient struct {
	ID          string
	Name        string
	DateOfBirth string
	Gender      string
	Address     string
	Found       bool // a PID segment was present
}

// ExtractPatient reads patient fields from the first PID segment. It never
// fails: missing segments or fields come back as Unknown.
func ExtractPatient(m *Message) Patient {
	p := Patient{
		ID:          Unknown,
		Name:        Unknown,
		DateOfBirth: Unknown,
		Gender:      Unknown,
		Address:     Unknown,
	}
	if m == nil {
		return p
	}
	for _, seg := range m.Segments {
		if seg.Name != "PID" {
			continue
		}
		p.Found = true
		p.ID = fieldOrUnknown(seg, pidID)
		p.Name = displayName(fieldOrUnknown(seg, pidName))
		p.DateOfBirth = fieldOrUnknown(seg, pidBirth)
		p.Gender = fieldOrUnknown(seg, pidGender)
		p.Address = fieldOrUnknown(seg, pidAddress)
		return p
	}
	return p
}

// displayName turns "Family^Given^..." into "Given Family".
func displayName(raw string) string {
	if !strings.Contains(raw, "^") {
		return raw
	}
	parts := strings.Split(raw, "^")
	if len(parts) > 1 {
		return fmt.Sprintf("%s %s", parts[1], parts[0])
	}
	return raw
}

func fieldOrUnknown(seg Segment, idx int) string {
	if idx < len(seg.Fields) {
		return seg.Fields[idx]
	}
	return Unknown
}
