package metrics

import (
	"sort"

	"github.com/remaimber-it/scorecard/internal/domain/record"
)

const (
	// standingMargin is the band around the cohort average treated as "at average".
	standingMargin = 5.0
	topN           = 2
)

// Comparison is one section of a student set against the cohort.
type Comparison struct {
	Section  record.Section `json:"section"`
	Score    float64        `json:"score"`
	AvgScore float64        `json:"avg_score"`
	Diff     float64        `json:"diff"`
}

// Classification lists a student's strongest and weakest sections relative
// to the cohort. With fewer than four sections the two lists may overlap.
type Classification struct {
	Strengths  []record.Section `json:"strengths"`
	Weaknesses []record.Section `json:"weaknesses"`
	Comparison []Comparison     `json:"comparison"`
}

// Classify ranks every student's sections by distance from the cohort average.
func Classify(sections []SectionAggregate, averages *CohortAverages) (map[string]Classification, error) {
	byStudent := make(map[string][]SectionAggregate)
	for _, s := range sections {
		byStudent[s.StudentID] = append(byStudent[s.StudentID], s)
	}

	out := make(map[string]Classification, len(byStudent))
	for id, rows := range byStudent {
		c, err := ClassifyStudent(rows, averages)
		if err != nil {
			return nil, err
		}
		out[id] = c
	}
	return out, nil
}

// ClassifyStudent classifies a single student's section rows.
func ClassifyStudent(rows []SectionAggregate, averages *CohortAverages) (Classification, error) {
	comparison, err := Compare(rows, averages)
	if err != nil {
		return Classification{}, err
	}

	ranked := make([]Comparison, len(comparison))
	copy(ranked, comparison)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Diff > ranked[j].Diff })

	n := min(topN, len(ranked))
	strengths := make([]record.Section, 0, n)
	for _, c := range ranked[:n] {
		strengths = append(strengths, c.Section)
	}
	weaknesses := make([]record.Section, 0, n)
	for i := len(ranked) - 1; i >= len(ranked)-n; i-- {
		weaknesses = append(weaknesses, ranked[i].Section)
	}

	return Classification{
		Strengths:  strengths,
		Weaknesses: weaknesses,
		Comparison: comparison,
	}, nil
}

// Compare pairs each row with its cohort average, keeping row order.
func Compare(rows []SectionAggregate, averages *CohortAverages) ([]Comparison, error) {
	out := make([]Comparison, 0, len(rows))
	for _, r := range rows {
		avg, ok := averages.For(r.Section)
		if !ok {
			return nil, &LookupInconsistencyError{StudentID: r.StudentID, Section: r.Section}
		}
		out = append(out, Comparison{
			Section:  r.Section,
			Score:    r.ScorePercentage,
			AvgScore: avg,
			Diff:     r.ScorePercentage - avg,
		})
	}
	return out, nil
}

// Standing labels a diff the way the section table shows it.
func Standing(diff float64) string {
	switch {
	case diff > standingMargin:
		return "Above Average"
	case diff < -standingMargin:
		return "Below Average"
	default:
		return "Average"
	}
}
