package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/scorecard/internal/chart"
	"github.com/remaimber-it/scorecard/internal/domain/record"
	"github.com/remaimber-it/scorecard/internal/service"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <student-id>",
		Short: "Show one student's scores, strengths, weaknesses and recommendations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weakOnly, _ := cmd.Flags().GetBool("weaknesses-only")
			width, _ := cmd.Flags().GetInt("width")

			svc, closeFn, err := openService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			rep, err := svc.StudentReport(context.Background(), args[0])
			if err != nil {
				return err
			}
			renderReport(cmd.OutOrStdout(), rep, weakOnly, width)
			return nil
		},
	}
	cmd.Flags().Bool("weaknesses-only", false, "Only show advice for the two weakest sections")
	cmd.Flags().Int("width", 72, "Chart width in columns")
	return cmd
}

func renderReport(w io.Writer, rep *service.StudentReport, weakOnly bool, width int) {
	fmt.Fprintln(w, chart.Title.Render("Student "+rep.StudentID))
	fmt.Fprintln(w)

	rows := make([][]string, 0, len(rep.Sections)+1)
	for _, s := range rep.Sections {
		rows = append(rows, []string{
			s.Subject,
			strconv.Itoa(s.Correct),
			strconv.Itoa(s.Total),
			pct(s.Score),
			pct(s.ClassAverage),
			chart.Signed(s.Difference, signed(s.Difference)),
			s.Standing,
		})
	}
	rows = append(rows, []string{"Overall", "", "", pct(rep.OverallScore), pct(rep.ClassAverage), chart.Signed(rep.Difference, signed(rep.Difference)), ""})
	fmt.Fprint(w, chart.Table([]string{"Subject", "Correct", "Total", "Score", "Class", "Diff", "Standing"}, rows))
	fmt.Fprintln(w)

	bars := chart.NewBarChart("Score vs class average", width)
	for _, s := range rep.Sections {
		bars.Add(s.Section.Label(), s.Score, s.ClassAverage)
	}
	bars.Add("Overall", rep.OverallScore, rep.ClassAverage)
	fmt.Fprintln(w, bars.View())
	fmt.Fprintln(w)

	fmt.Fprintln(w, chart.Header.Render("Strengths:"), labels(rep.Strengths))
	fmt.Fprintln(w, chart.Header.Render("Areas to improve:"), labels(rep.Weaknesses))
	fmt.Fprintln(w)

	fmt.Fprintln(w, chart.Title.Render("Recommendations"))
	if weakOnly {
		for _, line := range rep.WeaknessAdvice {
			fmt.Fprintln(w, "- "+line)
		}
		return
	}
	for _, sec := range record.Sections() {
		lines := rep.Recommendations[sec]
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintln(w, chart.Header.Render(sec.Label()))
		for _, line := range lines {
			fmt.Fprintln(w, "- "+line)
		}
	}
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func signed(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	if v > 0 {
		s = "+" + s
	}
	return s
}

func labels(sections []record.Section) string {
	if len(sections) == 0 {
		return "-"
	}
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.Label()
	}
	return strings.Join(out, ", ")
}
