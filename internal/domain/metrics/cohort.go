package metrics

import (
	"sort"

	"github.com/remaimber-it/scorecard/internal/domain/record"
)

// SectionAverage is the cohort mean for one section.
type SectionAverage struct {
	Section            record.Section `json:"section"`
	AvgScorePercentage float64        `json:"avg_score_percentage"`
}

// CohortAverages holds per-section means and the overall mean.
// Each student's percentage counts once regardless of question count.
type CohortAverages struct {
	Sections []SectionAverage `json:"sections"`
	Overall  float64          `json:"overall"`
}

// For looks up the average for a section.
func (c *CohortAverages) For(section record.Section) (float64, bool) {
	for _, s := range c.Sections {
		if s.Section == section {
			return s.AvgScorePercentage, true
		}
	}
	return 0, false
}

// Averages computes unweighted cohort means. Sections nobody holds are absent.
func Averages(sections []SectionAggregate, overall []OverallAggregate) *CohortAverages {
	sums := make(map[record.Section]float64)
	counts := make(map[record.Section]int)
	for _, s := range sections {
		sums[s.Section] += s.ScorePercentage
		counts[s.Section]++
	}

	out := &CohortAverages{Sections: make([]SectionAverage, 0, len(sums))}
	for sec, sum := range sums {
		out.Sections = append(out.Sections, SectionAverage{
			Section:            sec,
			AvgScorePercentage: sum / float64(counts[sec]),
		})
	}
	sort.Slice(out.Sections, func(i, j int) bool { return out.Sections[i].Section < out.Sections[j].Section })

	if len(overall) > 0 {
		var total float64
		for _, o := range overall {
			total += o.OverallScore
		}
		out.Overall = total / float64(len(overall))
	}
	return out
}
