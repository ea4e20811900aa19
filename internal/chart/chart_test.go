package chart_test

import (
	"strings"
	"testing"

	"github.com/remaimber-it/scorecard/internal/chart"
)

func TestFilled_Clamps(t *testing.T) {
	tests := []struct {
		percent float64
		want    int
	}{
		{0, 0},
		{50, 20},
		{100, 40},
		{130, 40},
		{-5, 0},
	}

	for _, tt := range tests {
		if got := chart.Filled(tt.percent, 40); got != tt.want {
			t.Errorf("Filled(%v, 40): expected %d, got %d", tt.percent, tt.want, got)
		}
	}
}

func TestBarChart_View(t *testing.T) {
	c := chart.NewBarChart("Student 1", 60)
	c.Add("Math (A)", 90, 70)
	c.Add("Overall", 60, 65)

	out := c.View()
	for _, want := range []string{"Student 1", "Math (A)", "Overall", "90.0%", "70.0%", "65.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if !strings.Contains(out, "█") || !strings.Contains(out, "▒") {
		t.Error("expected both student and class bars")
	}
}

func TestBarChart_FullBarIsLongerThanHalfBar(t *testing.T) {
	full := chart.NewBarChart("", 60)
	full.Add("A", 100, 0)
	half := chart.NewBarChart("", 60)
	half.Add("A", 50, 0)

	f := strings.Count(full.View(), "█")
	h := strings.Count(half.View(), "█")
	// the legend holds one glyph of each kind
	if f <= h || h <= 1 {
		t.Errorf("expected 100%% bar (%d cells) to exceed 50%% bar (%d cells)", f, h)
	}
}

func TestTable(t *testing.T) {
	out := chart.Table(
		[]string{"Subject", "Score"},
		[][]string{{"Math", "90.0"}, {"Non-verbal", "5.0"}},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "Math        90.0") {
		t.Errorf("expected padded first row, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Non-verbal  5.0") {
		t.Errorf("expected padded second row, got %q", lines[2])
	}
}
