// Package chart renders score comparisons for the terminal.
package chart

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

const (
	studentGlyph = "█"
	cohortGlyph  = "▒"
)

// Bar is one labelled pair of percentages.
type Bar struct {
	Label   string
	Student float64
	Cohort  float64
}

// BarChart draws a student's score next to the class average for each label.
type BarChart struct {
	Title string
	Bars  []Bar
	Width int
}

// NewBarChart creates a chart whose rows fit in width columns.
func NewBarChart(title string, width int) *BarChart {
	return &BarChart{Title: title, Width: width}
}

// Add appends a row.
func (c *BarChart) Add(label string, student, cohort float64) {
	c.Bars = append(c.Bars, Bar{Label: label, Student: student, Cohort: cohort})
}

// View renders the chart.
func (c *BarChart) View() string {
	labelWidth := len("Class")
	for _, b := range c.Bars {
		if w := lipgloss.Width(b.Label); w > labelWidth {
			labelWidth = w
		}
	}

	// label, two spaces, bar, value like " 100.0%"
	barWidth := c.Width - labelWidth - 2 - 8
	if barWidth < 10 {
		barWidth = 10
	}

	var sb strings.Builder
	if c.Title != "" {
		sb.WriteString(Title.Render(c.Title))
		sb.WriteString("\n\n")
	}
	for i, b := range c.Bars {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(pad(b.Label, labelWidth) + "  " + bar(b.Student, barWidth, studentGlyph, Student) + value(b.Student) + "\n")
		sb.WriteString(pad("", labelWidth) + "  " + bar(b.Cohort, barWidth, cohortGlyph, Cohort) + value(b.Cohort) + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(Hint.Render(fmt.Sprintf("%s student   %s class average", studentGlyph, cohortGlyph)))
	return Card.Render(sb.String())
}

// Filled returns how many cells of a width-wide bar a percentage fills.
func Filled(percent float64, width int) int {
	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return filled
}

func bar(percent float64, width int, glyph string, c color.Color) string {
	filled := Filled(percent, width)
	return lipgloss.NewStyle().Foreground(c).Render(strings.Repeat(glyph, filled)) +
		strings.Repeat(" ", width-filled)
}

func value(percent float64) string {
	return fmt.Sprintf(" %6.1f%%", percent)
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
