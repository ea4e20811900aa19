package service

import (
	"github.com/remaimber-it/scorecard/internal/domain/metrics"
	"github.com/remaimber-it/scorecard/internal/domain/record"
	"github.com/remaimber-it/scorecard/internal/store"
)

// SectionRow is one line of a student's section table.
type SectionRow struct {
	Subject      string         `json:"subject"`
	Section      record.Section `json:"section"`
	Correct      int            `json:"correct"`
	Total        int            `json:"total"`
	Score        float64        `json:"score"`
	ClassAverage float64        `json:"class_average"`
	Difference   float64        `json:"difference"`
	Standing     string         `json:"standing"`
}

// StudentReport is everything shown for a selected student.
type StudentReport struct {
	StudentID       string                      `json:"student_id"`
	Sections        []SectionRow                `json:"sections"`
	OverallScore    float64                     `json:"overall_score"`
	ClassAverage    float64                     `json:"class_average"`
	Difference      float64                     `json:"difference"`
	Strengths       []record.Section            `json:"strengths"`
	Weaknesses      []record.Section            `json:"weaknesses"`
	Recommendations map[record.Section][]string `json:"recommendations"`
	WeaknessAdvice  []string                    `json:"weakness_advice"`
	CohortSections  []metrics.SectionAverage    `json:"cohort_sections"`
}

// Report extracts one student's view from a pipeline run.
func (a *Analysis) Report(studentID string) (*StudentReport, error) {
	rows, overall, ok := a.Aggregates.Student(studentID)
	if !ok {
		return nil, store.ErrNotFound
	}
	class := a.Classifications[studentID]

	sections := make([]SectionRow, 0, len(rows))
	for i, r := range rows {
		cmp := class.Comparison[i]
		sections = append(sections, SectionRow{
			Subject:      r.Section.Name(),
			Section:      r.Section,
			Correct:      r.Correct,
			Total:        r.Total,
			Score:        r.ScorePercentage,
			ClassAverage: cmp.AvgScore,
			Difference:   cmp.Diff,
			Standing:     metrics.Standing(cmp.Diff),
		})
	}

	return &StudentReport{
		StudentID:       studentID,
		Sections:        sections,
		OverallScore:    overall.OverallScore,
		ClassAverage:    a.Averages.Overall,
		Difference:      overall.OverallScore - a.Averages.Overall,
		Strengths:       class.Strengths,
		Weaknesses:      class.Weaknesses,
		Recommendations: a.AllSections[studentID].AllSections,
		WeaknessAdvice:  nonNil(a.Weaknesses[studentID].Weaknesses),
		CohortSections:  a.Averages.Sections,
	}, nil
}
