package metrics_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/remaimber-it/scorecard/internal/domain/metrics"
	"github.com/remaimber-it/scorecard/internal/domain/record"
)

// answers builds n records for one student/section with the first k correct.
func answers(studentID string, section record.Section, k, n int) []record.QuestionRecord {
	out := make([]record.QuestionRecord, n)
	for i := range out {
		out[i] = record.QuestionRecord{StudentID: studentID, Section: section, IsCorrect: i < k}
	}
	return out
}

func dataset(parts ...[]record.QuestionRecord) []record.QuestionRecord {
	var out []record.QuestionRecord
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestAggregate_EmptyDataset(t *testing.T) {
	_, err := metrics.Aggregate(nil)
	if !errors.Is(err, metrics.ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}

	_, err = metrics.AggregateRaw([]record.Raw{})
	if !errors.Is(err, metrics.ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset from raw input, got %v", err)
	}
}

func TestAggregate_Invariants(t *testing.T) {
	records := dataset(
		answers("2", record.SectionVerbal, 3, 7),
		answers("1", record.SectionMath, 8, 10),
		answers("1", record.SectionVerbal, 0, 4),
		answers("2", record.SectionMath, 5, 5),
	)

	agg, err := metrics.Aggregate(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(agg.Sections) != 4 {
		t.Fatalf("expected 4 section rows, got %d", len(agg.Sections))
	}
	for _, s := range agg.Sections {
		if s.Correct < 0 || s.Correct > s.Total || s.Total == 0 {
			t.Errorf("invalid counts in %+v", s)
		}
		if want := 100 * float64(s.Correct) / float64(s.Total); s.ScorePercentage != want {
			t.Errorf("%s/%s: expected %v, got %v", s.StudentID, s.Section, want, s.ScorePercentage)
		}
	}

	// grouping order: student, then section
	first := agg.Sections[0]
	if first.StudentID != "1" || first.Section != record.SectionMath {
		t.Errorf("expected first row 1/A, got %s/%s", first.StudentID, first.Section)
	}

	if len(agg.Overall) != 2 {
		t.Fatalf("expected 2 overall rows, got %d", len(agg.Overall))
	}
	one := agg.Overall[0]
	if one.StudentID != "1" || one.Correct != 8 || one.Total != 14 {
		t.Errorf("unexpected overall row %+v", one)
	}
}

func TestAggregateRaw_NormalisesStrings(t *testing.T) {
	agg, err := metrics.AggregateRaw([]record.Raw{
		{StudentID: "1", Section: "A", IsCorrect: "true"},
		{StudentID: "1", Section: "A", IsCorrect: false},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agg.Sections[0].ScorePercentage != 50 {
		t.Errorf("expected 50%%, got %v", agg.Sections[0].ScorePercentage)
	}

	_, err = metrics.AggregateRaw([]record.Raw{{StudentID: "1", Section: "A", IsCorrect: "maybe"}})
	var malformed *record.MalformedRecordError
	if !errors.As(err, &malformed) {
		t.Errorf("expected MalformedRecordError, got %v", err)
	}
}

func TestAverages_Unweighted(t *testing.T) {
	records := dataset(
		answers("1", record.SectionMath, 8, 10),
		answers("2", record.SectionMath, 3, 5),
	)
	agg, err := metrics.Aggregate(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	avg := metrics.Averages(agg.Sections, agg.Overall)

	got, ok := avg.For(record.SectionMath)
	if !ok {
		t.Fatal("expected an average for section A")
	}
	if got != 70 {
		t.Errorf("expected unweighted mean 70, got %v", got)
	}
	if avg.Overall != 70 {
		t.Errorf("expected overall 70, got %v", avg.Overall)
	}
	if _, ok := avg.For(record.SectionVerbal); ok {
		t.Error("expected no average for a section nobody holds")
	}
}

func TestClassify_FourSections(t *testing.T) {
	records := dataset(
		answers("1", record.SectionMath, 9, 10),
		answers("1", record.SectionVerbal, 2, 10),
		answers("1", record.SectionNonVerbal, 6, 10),
		answers("1", record.SectionComprehension, 4, 10),
		answers("2", record.SectionMath, 5, 10),
		answers("2", record.SectionVerbal, 5, 10),
		answers("2", record.SectionNonVerbal, 5, 10),
		answers("2", record.SectionComprehension, 5, 10),
	)
	agg, _ := metrics.Aggregate(records)
	avg := metrics.Averages(agg.Sections, agg.Overall)

	got, err := metrics.Classify(agg.Sections, avg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := got["1"]
	// diffs: A +20, B -15, C +5, D -5
	wantStrengths := []record.Section{record.SectionMath, record.SectionNonVerbal}
	wantWeaknesses := []record.Section{record.SectionVerbal, record.SectionComprehension}
	if !reflect.DeepEqual(c.Strengths, wantStrengths) {
		t.Errorf("expected strengths %v, got %v", wantStrengths, c.Strengths)
	}
	if !reflect.DeepEqual(c.Weaknesses, wantWeaknesses) {
		t.Errorf("expected weaknesses %v, got %v", wantWeaknesses, c.Weaknesses)
	}
	if len(c.Comparison) != 4 || c.Comparison[0].Section != record.SectionMath {
		t.Errorf("expected comparison in row order, got %+v", c.Comparison)
	}
	if math.Abs(c.Comparison[0].Diff-20) > 1e-9 {
		t.Errorf("expected diff 20 for A, got %v", c.Comparison[0].Diff)
	}
}

func TestClassify_TiesKeepRowOrder(t *testing.T) {
	records := dataset(
		answers("1", record.SectionMath, 5, 10),
		answers("1", record.SectionVerbal, 5, 10),
		answers("1", record.SectionNonVerbal, 5, 10),
		answers("1", record.SectionComprehension, 5, 10),
	)
	agg, _ := metrics.Aggregate(records)
	avg := metrics.Averages(agg.Sections, agg.Overall)

	c, err := metrics.ClassifyStudent(agg.Sections, avg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(c.Strengths, []record.Section{"A", "B"}) {
		t.Errorf("expected strengths [A B], got %v", c.Strengths)
	}
	if !reflect.DeepEqual(c.Weaknesses, []record.Section{"D", "C"}) {
		t.Errorf("expected weaknesses [D C], got %v", c.Weaknesses)
	}
}

func TestClassify_FewerSectionsOverlap(t *testing.T) {
	records := dataset(
		answers("1", record.SectionMath, 9, 10),
		answers("1", record.SectionVerbal, 3, 10),
		answers("2", record.SectionMath, 5, 10),
		answers("2", record.SectionVerbal, 9, 10),
	)
	agg, _ := metrics.Aggregate(records)
	avg := metrics.Averages(agg.Sections, agg.Overall)

	got, err := metrics.Classify(agg.Sections, avg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := got["1"]
	if c.Strengths[0] != record.SectionMath {
		t.Errorf("expected A as top strength, got %v", c.Strengths)
	}
	if c.Weaknesses[0] != record.SectionVerbal {
		t.Errorf("expected B as top weakness, got %v", c.Weaknesses)
	}
	if len(c.Strengths) != 2 || len(c.Weaknesses) != 2 {
		t.Errorf("expected overlapping lists of two, got %v / %v", c.Strengths, c.Weaknesses)
	}
}

func TestClassify_MissingAverage(t *testing.T) {
	rows := []metrics.SectionAggregate{{StudentID: "1", Section: record.SectionNonVerbal, Correct: 1, Total: 1, ScorePercentage: 100}}
	avg := &metrics.CohortAverages{Sections: []metrics.SectionAverage{{Section: record.SectionMath, AvgScorePercentage: 50}}}

	_, err := metrics.Classify(rows, avg)
	var inconsistency *metrics.LookupInconsistencyError
	if !errors.As(err, &inconsistency) {
		t.Fatalf("expected LookupInconsistencyError, got %v", err)
	}
	if inconsistency.Section != record.SectionNonVerbal || inconsistency.StudentID != "1" {
		t.Errorf("unexpected error fields %+v", inconsistency)
	}
}

func TestPipeline_Idempotent(t *testing.T) {
	records := dataset(
		answers("1", record.SectionMath, 7, 9),
		answers("1", record.SectionVerbal, 2, 6),
		answers("2", record.SectionMath, 3, 9),
		answers("2", record.SectionComprehension, 6, 6),
	)

	run := func() (*metrics.Aggregates, *metrics.CohortAverages, map[string]metrics.Classification) {
		agg, err := metrics.Aggregate(records)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		avg := metrics.Averages(agg.Sections, agg.Overall)
		c, err := metrics.Classify(agg.Sections, avg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return agg, avg, c
	}

	agg1, avg1, c1 := run()
	agg2, avg2, c2 := run()
	if !reflect.DeepEqual(agg1, agg2) || !reflect.DeepEqual(avg1, avg2) || !reflect.DeepEqual(c1, c2) {
		t.Error("expected identical output across runs")
	}
}

func TestStanding(t *testing.T) {
	tests := []struct {
		diff float64
		want string
	}{
		{5.1, "Above Average"},
		{5, "Average"},
		{0, "Average"},
		{-5, "Average"},
		{-5.1, "Below Average"},
	}

	for _, tt := range tests {
		if got := metrics.Standing(tt.diff); got != tt.want {
			t.Errorf("Standing(%v): expected %q, got %q", tt.diff, tt.want, got)
		}
	}
}
