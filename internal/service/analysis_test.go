package service_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/scorecard/internal/domain/metrics"
	"github.com/remaimber-it/scorecard/internal/domain/record"
	"github.com/remaimber-it/scorecard/internal/service"
	"github.com/remaimber-it/scorecard/internal/store"
)

func newService(t *testing.T) *service.AnalysisService {
	t.Helper()
	s, err := store.Open(context.Background(), store.DriverSQLite, filepath.Join(t.TempDir(), "svc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return service.NewAnalysisService(s, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// answers returns correct then incorrect rows for one student and section.
func answers(studentID, section string, correct, total int) []record.Raw {
	out := make([]record.Raw, total)
	for i := range out {
		out[i] = record.Raw{StudentID: studentID, Section: section, IsCorrect: strconv.FormatBool(i < correct)}
	}
	return out
}

func concat(parts ...[]record.Raw) []record.Raw {
	var out []record.Raw
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// classroom: student 1 scores 90% in A and 30% in B, student 2 scores 50% and 90%.
func classroom() []record.Raw {
	return concat(
		answers("1", "A", 9, 10),
		answers("1", "B", 3, 10),
		answers("2", "A", 5, 10),
		answers("2", "B", 9, 10),
	)
}

func TestImport_AddsThenReplaces(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	sum, err := svc.Import(ctx, "class.csv", classroom())
	require.NoError(t, err)
	assert.NotEmpty(t, sum.UploadID)
	assert.Equal(t, 2, sum.Students)
	assert.Equal(t, 40, sum.Records)
	assert.Equal(t, []string{"1", "2"}, sum.Added)
	assert.Empty(t, sum.Replaced)
	assert.Equal(t, 2, sum.TotalStudents)

	sum, err = svc.Import(ctx, "retake.csv", concat(answers("2", "C", 1, 4), answers("3", "A", 2, 2)))
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, sum.Replaced)
	assert.Equal(t, []string{"3"}, sum.Added)
	assert.Equal(t, 3, sum.TotalStudents)

	rows, err := svc.StudentRecords(ctx, "2")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	for _, r := range rows {
		assert.Equal(t, record.SectionNonVerbal, r.Section)
	}

	uploads, err := svc.Uploads(ctx)
	require.NoError(t, err)
	assert.Len(t, uploads, 2)
}

func TestImport_RejectsMalformed(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Import(ctx, "bad.csv", []record.Raw{{StudentID: "1", Section: "A", IsCorrect: "maybe"}})
	var malformed *record.MalformedRecordError
	require.ErrorAs(t, err, &malformed)

	_, err = svc.Import(ctx, "empty.csv", nil)
	require.ErrorIs(t, err, metrics.ErrEmptyDataset)

	ids, err := svc.Students(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStudentReport_Classroom(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	_, err := svc.Import(ctx, "class.csv", classroom())
	require.NoError(t, err)

	rep, err := svc.StudentReport(ctx, "1")
	require.NoError(t, err)

	require.Len(t, rep.Sections, 2)
	assert.Equal(t, "Math", rep.Sections[0].Subject)
	assert.InDelta(t, 90.0, rep.Sections[0].Score, 1e-9)
	assert.InDelta(t, 70.0, rep.Sections[0].ClassAverage, 1e-9)
	assert.Equal(t, "Above Average", rep.Sections[0].Standing)
	assert.InDelta(t, -30.0, rep.Sections[1].Difference, 1e-9)
	assert.Equal(t, "Below Average", rep.Sections[1].Standing)

	assert.InDelta(t, 60.0, rep.OverallScore, 1e-9)
	assert.InDelta(t, 65.0, rep.ClassAverage, 1e-9)

	assert.Equal(t, record.SectionMath, rep.Strengths[0])
	assert.Equal(t, record.SectionVerbal, rep.Weaknesses[0])
	assert.Len(t, rep.Recommendations, 4)
	assert.NotEmpty(t, rep.WeaknessAdvice)
	assert.Len(t, rep.CohortSections, 2)
}

func TestStudentReport_Errors(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.StudentReport(ctx, "1")
	require.ErrorIs(t, err, metrics.ErrEmptyDataset)

	_, err = svc.Import(ctx, "class.csv", classroom())
	require.NoError(t, err)

	_, err = svc.StudentReport(ctx, "42")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCohortAndEvaluate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Cohort(ctx)
	require.ErrorIs(t, err, metrics.ErrEmptyDataset)
	_, err = svc.Evaluate(ctx)
	require.ErrorIs(t, err, metrics.ErrEmptyDataset)

	_, err = svc.Import(ctx, "class.csv", classroom())
	require.NoError(t, err)

	cohort, err := svc.Cohort(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, cohort.Students)
	assert.InDelta(t, 65.0, cohort.Overall, 1e-9)

	res, err := svc.Evaluate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 95.0, res.Accuracy)
	assert.Equal(t, 93.0, res.Precision)
	assert.Len(t, res.Predictions, 2)
}
