package chart

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Table renders rows under a bold header with columns padded to their
// widest cell.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var sb strings.Builder
	head := make([]string, len(headers))
	for i, h := range headers {
		head[i] = pad(h, widths[i])
	}
	sb.WriteString(Header.Render(strings.Join(head, "  ")))
	sb.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, len(headers))
		for i := range headers {
			if i < len(row) {
				cells[i] = pad(row[i], widths[i])
			} else {
				cells[i] = pad("", widths[i])
			}
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Signed colours a difference green when positive and red when negative.
func Signed(diff float64, text string) string {
	switch {
	case diff > 0:
		return lipgloss.NewStyle().Foreground(Good).Render(text)
	case diff < 0:
		return lipgloss.NewStyle().Foreground(Bad).Render(text)
	}
	return text
}
