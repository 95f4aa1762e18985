package tui

import (
	"strconv"
	"strings"

	"github.com/Zuo-Peng/hl7-viewer/internal/hl7"
	"github.com/Zuo-Peng/hl7-viewer/internal/render"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldNoWidth = 7
	// segment title, blank line, "Patient Information" and five values
	patientBlockHeight = 8
)

func newFieldTable(width, height int) table.Model {
	t := table.New(
		table.WithColumns(fieldColumns(width)),
		table.WithHeight(height),
		table.WithWidth(width),
	)
	t.SetStyles(fieldTableStyles())
	return t
}

func fieldColumns(width int) []table.Column {
	valueW := width - fieldNoWidth - 4 // cell padding
	if valueW < 10 {
		valueW = 10
	}
	return []table.Column{
		{Title: "Field #", Width: fieldNoWidth},
		{Title: "Value", Width: valueW},
	}
}

// fieldRows numbers fields from 1, matching HL7 field numbering.
func fieldRows(seg hl7.Segment) []table.Row {
	rows := make([]table.Row, 0, len(seg.Fields))
	for i, v := range seg.Fields {
		rows = append(rows, table.Row{strconv.Itoa(i + 1), v})
	}
	return rows
}

func (m model) fieldTableHeight() int {
	h := m.panelHeight() - patientBlockHeight
	if h < 3 {
		h = 3
	}
	return h
}

// renderDetail renders the right panel: segment title, fields, patient panel.
func (m model) renderDetail(width int) string {
	title := "Segment: -"
	if seg, ok := m.selectedSegment(); ok {
		title = "Segment: " + seg.Name
	}

	var patient []string
	patient = append(patient, styleTitle.Render("Patient Information"))
	for _, line := range render.PatientLines(m.sess.Patient()) {
		patient = append(patient, "  "+line)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styleTitle.Render(title),
		m.fields.View(),
		"",
		strings.Join(patient, "\n"),
	)
}
