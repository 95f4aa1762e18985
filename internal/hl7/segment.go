package hl7

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

const fieldSeparator = "|"

// Segment is one line of a message: the name before the first "|" and
// every value after it, in order. Empty values are kept.
type Segment struct {
	Name   string
	Fields []string
}

// Field returns the n-th field using 1-based HL7 numbering.
func (s Segment) Field(n int) (string, bool) {
	if n < 1 || n > len(s.Fields) {
		return "", false
	}
	return s.Fields[n-1], true
}

// Line rebuilds the original segment line.
func (s Segment) Line() string {
	if len(s.Fields) == 0 {
		return s.Name
	}
	return s.Probe()
}

// Probe is the text matched by Find. Unlike Line it always carries the
// separator after the name.
func (s Segment) Probe() string {
	return s.Name + fieldSeparator + strings.Join(s.Fields, fieldSeparator)
}

// Message is a parsed HL7 file: one Segment per non-blank line.
type Message struct {
	Segments []Segment
}

// Len returns the number of segments; a nil message has none.
func (m *Message) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Segments)
}

// Segment returns the segment at 0-based index i.
func (m *Message) Segment(i int) (Segment, bool) {
	if i < 0 || i >= m.Len() {
		return Segment{}, false
	}
	return m.Segments[i], true
}

// Names lists segment names in file order.
func (m *Message) Names() []string {
	if m == nil {
		return nil
	}
	return lo.Map(m.Segments, func(s Segment, _ int) string {
		return s.Name
	})
}

func normalizeNewlines(text string) string {
	// \r\n first, otherwise it would become two line breaks
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// isBlank reports whether line holds only whitespace or the
// file/group/record/unit separators (0x1c-0x1f) left by MLLP framing.
func isBlank(line string) bool {
	return strings.TrimFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
	}) == ""
}

// SplitSegments returns the non-blank lines of text in order. Lines are
// returned as written; only whitespace-only lines are dropped.
func SplitSegments(text string) []string {
	lines := strings.Split(normalizeNewlines(text), "\n")
	return lo.Filter(lines, func(line string, _ int) bool {
		return !isBlank(line)
	})
}

// SegmentLines returns the 1-based line number of every segment that
// SplitSegments keeps.
func SegmentLines(text string) []int {
	var nums []int
	for i, line := range strings.Split(normalizeNewlines(text), "\n") {
		if !isBlank(line) {
			nums = append(nums, i+1)
		}
	}
	return nums
}

// ParseSegment splits a line on "|". No trimming or unescaping is done and
// custom MSH delimiters are not honoured.
func ParseSegment(line string) Segment {
	parts := strings.Split(line, fieldSeparator)
	return Segment{
		Name:   parts[0],
		Fields: parts[1:],
	}
}

// Parse splits text into segments and parses each one.
func Parse(text string) *Message {
	lines := SplitSegments(text)
	msg := &Message{Segments: make([]Segment, 0, len(lines))}
	for _, line := range lines {
		msg.Segments = append(msg.Segments, ParseSegment(line))
	}
	return msg
}
