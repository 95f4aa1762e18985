package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Zuo-Peng/hl7-viewer/internal/hl7"
	"github.com/olekukonko/tablewriter"
)

const (
	colorReset   = "\033[0m"
	colorName    = "\033[1;34m" // bold blue
	colorDim     = "\033[2m"
	colorHit     = "\033[43m"   // yellow background
	colorBoldRed = "\033[1;31m" // bold red for keyword highlights
)

// Options controls plain-terminal output.
type Options struct {
	Color bool
	Term  string // highlighted in field values when set
}

func (o Options) paint(color, s string) string {
	if !o.Color {
		return s
	}
	return color + s + colorReset
}

// Highlight wraps case-insensitive occurrences of term in bold red ANSI codes.
// Matching walks text rune by rune, so markers never split a character.
func Highlight(text, term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return text
	}
	var b strings.Builder
	i := 0
	for i < len(text) {
		if n := matchFold(text[i:], term); n > 0 {
			b.WriteString(colorBoldRed)
			b.WriteString(text[i : i+n])
			b.WriteString(colorReset)
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String()
}

// matchFold returns the byte length of the prefix of s equal to term under
// Unicode case folding, or 0 when s does not start with term.
func matchFold(s, term string) int {
	n := 0
	for _, tr := range term {
		if n >= len(s) {
			return 0
		}
		sr, size := utf8.DecodeRuneInString(s[n:])
		if sr != tr && !strings.EqualFold(string(sr), string(tr)) {
			return 0
		}
		n += size
	}
	return n
}

// Header prints the file path and MSH summary line.
func Header(w io.Writer, path string, h hl7.Header, opts Options) {
	fmt.Fprintln(w, opts.paint(colorDim, fmt.Sprintf("--- %s [%s] %s %s ---", path, h.MessageType, h.ControlID, h.Timestamp)))
}

// Segments prints one numbered line per segment name. hit marks a search
// match; pass -1 for none.
func Segments(w io.Writer, msg *hl7.Message, hit int, opts Options) {
	width := len(strconv.Itoa(msg.Len()))
	for i, name := range msg.Names() {
		label := fmt.Sprintf("%*d  %s", width, i, name)
		switch {
		case i == hit:
			fmt.Fprintln(w, opts.paint(colorHit, "> "+label))
		default:
			fmt.Fprintln(w, "  "+opts.paint(colorName, label))
		}
	}
}

// Fields prints a segment's fields as a two-column table numbered from 1.
func Fields(w io.Writer, seg hl7.Segment, opts Options) {
	fmt.Fprintf(w, "Segment: %s\n", opts.paint(colorName, seg.Name))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field #", "Value"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for i, v := range seg.Fields {
		if opts.Color && opts.Term != "" {
			v = Highlight(v, opts.Term)
		}
		table.Append([]string{strconv.Itoa(i + 1), v})
	}
	table.Render()
}

// Patient prints the patient information panel.
func Patient(w io.Writer, p hl7.Patient) {
	fmt.Fprintln(w, "Patient Information")
	for _, line := range PatientLines(p) {
		fmt.Fprintln(w, "  "+line)
	}
}

// PatientLines returns the labelled patient values in display order.
func PatientLines(p hl7.Patient) []string {
	return []string{
		"Patient ID: " + p.ID,
		"Name: " + p.Name,
		"DOB: " + p.DateOfBirth,
		"Gender: " + p.Gender,
		"Address: " + p.Address,
	}
}

// Message prints the full dump used when stdout is not a terminal.
func Message(w io.Writer, path string, msg *hl7.Message, opts Options) {
	Header(w, path, hl7.ExtractHeader(msg), opts)
	Segments(w, msg, -1, opts)
	fmt.Fprintln(w)
	Patient(w, hl7.ExtractPatient(msg))
}
