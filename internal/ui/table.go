package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// columnWidths returns per-column display widths: the maximum of the header
// width and the widest cell in that column.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// RenderTable renders headers and rows as a boxed table. Column widths are
// derived from content; rows keep their input order. styles assigns a lipgloss
// style per column and may be nil for unstyled cells. An empty row set still
// renders the header block.
func RenderTable(headers []string, rows [][]string, styles []lipgloss.Style) string {
	widths := columnWidths(headers, rows)

	cellStyle := func(col int) lipgloss.Style {
		if col < len(styles) {
			return styles[col]
		}
		return CellStyle
	}

	rule := func(left, mid, right string) string {
		var sb strings.Builder
		sb.WriteString(BorderStyle.Render(left))
		for i, w := range widths {
			sb.WriteString(BorderStyle.Render(strings.Repeat(horizontal, w+2)))
			if i < len(widths)-1 {
				sb.WriteString(BorderStyle.Render(mid))
			}
		}
		sb.WriteString(BorderStyle.Render(right))
		sb.WriteString("\n")
		return sb.String()
	}

	var sb strings.Builder

	// Top border
	sb.WriteString(rule(topLeft, topT, topRight))

	// Header row
	sb.WriteString(BorderStyle.Render(vertical))
	for i, h := range headers {
		cell := " " + padRight(h, widths[i]) + " "
		sb.WriteString(HeaderStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(vertical))
	}
	sb.WriteString("\n")

	// Header separator
	sb.WriteString(rule(leftT, cross, rightT))

	// Data rows
	for _, row := range rows {
		sb.WriteString(BorderStyle.Render(vertical))
		for i := range headers {
			var value string
			if i < len(row) {
				value = row[i]
			}
			cell := " " + padRight(value, widths[i]) + " "
			sb.WriteString(cellStyle(i).Render(cell))
			sb.WriteString(BorderStyle.Render(vertical))
		}
		sb.WriteString("\n")
	}

	// Bottom border
	sb.WriteString(rule(bottomLeft, bottomT, bottomRight))

	return sb.String()
}
