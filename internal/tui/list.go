package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// linesPerItem is the number of terminal lines each segment occupies.
const linesPerItem = 1

// renderList renders the left panel: segment names with scrolling.
func (m model) renderList(width, height int) string {
	names := m.sess.Names()
	if len(names) == 0 {
		return lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No segments")
	}

	idxWidth := len(fmt.Sprint(len(names) - 1))
	var lines []string
	for i, name := range names {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		lines = append(lines, formatSegmentLine(i, idxWidth, name, width, m.selected && i == m.cursor))
	}

	// Pad remaining lines
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatSegmentLine formats one list row as "[>] idx NAME".
func formatSegmentLine(idx, idxWidth int, name string, width int, selected bool) string {
	nameMax := width - 2 - idxWidth - 1
	if nameMax < 0 {
		nameMax = 0
	}
	if runewidth.StringWidth(name) > nameMax {
		name = runewidth.Truncate(name, nameMax, "")
	}
	num := styleListIndex.Render(fmt.Sprintf("%*d", idxWidth, idx))
	if selected {
		return styleListSelected.Render("> ") + num + " " + styleListSelected.Render(name)
	}
	return "  " + num + " " + styleListNormal.Render(name)
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
