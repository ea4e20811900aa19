// internal/service/analysis.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/remaimber-it/scorecard/internal/domain/evaluation"
	"github.com/remaimber-it/scorecard/internal/domain/metrics"
	"github.com/remaimber-it/scorecard/internal/domain/recommendation"
	"github.com/remaimber-it/scorecard/internal/domain/record"
	"github.com/remaimber-it/scorecard/internal/id"
	"github.com/remaimber-it/scorecard/internal/store"
)

// AnalysisService runs the metrics pipeline over the persisted dataset.
// Nothing is cached: every call reloads and recomputes.
type AnalysisService struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewAnalysisService creates an AnalysisService.
func NewAnalysisService(s store.Store, logger *slog.Logger) *AnalysisService {
	return &AnalysisService{
		store:  s,
		logger: logger,
		now:    time.Now,
	}
}

// ImportSummary describes the result of merging an upload into the dataset.
type ImportSummary struct {
	UploadID      string   `json:"upload_id"`
	Students      int      `json:"students"`
	Records       int      `json:"records"`
	Replaced      []string `json:"replaced"`
	Added         []string `json:"added"`
	TotalStudents int      `json:"total_students"`
}

// Import normalises raw rows and replaces the uploaded students' records.
func (s *AnalysisService) Import(ctx context.Context, filename string, raw []record.Raw) (*ImportSummary, error) {
	if len(raw) == 0 {
		return nil, metrics.ErrEmptyDataset
	}
	records, err := record.Normalize(raw)
	if err != nil {
		return nil, err
	}

	students := record.StudentIDs(records)
	upload := store.Upload{
		ID:        id.GenerateID(),
		Filename:  filename,
		Students:  len(students),
		Records:   len(records),
		CreatedAt: s.now(),
	}
	res, err := s.store.ReplaceStudents(ctx, upload, records)
	if err != nil {
		return nil, fmt.Errorf("replace students: %w", err)
	}

	all, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	s.logger.Info("dataset updated",
		"upload_id", upload.ID,
		"filename", filename,
		"records", len(records),
		"replaced", len(res.Replaced),
		"added", len(res.Added),
		"total_students", len(all),
	)

	return &ImportSummary{
		UploadID:      upload.ID,
		Students:      len(students),
		Records:       len(records),
		Replaced:      nonNil(res.Replaced),
		Added:         nonNil(res.Added),
		TotalStudents: len(all),
	}, nil
}

// Analysis is one full pipeline run over the dataset.
type Analysis struct {
	Records         []record.QuestionRecord
	Aggregates      *metrics.Aggregates
	Averages        *metrics.CohortAverages
	Classifications map[string]metrics.Classification
	AllSections     map[string]recommendation.Recommendation
	Weaknesses      map[string]recommendation.Recommendation
}

// Analyze loads the dataset and runs every pipeline stage.
func (s *AnalysisService) Analyze(ctx context.Context) (*Analysis, error) {
	records, err := s.store.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return Run(records)
}

// Run executes the pipeline on an in-memory dataset.
func Run(records []record.QuestionRecord) (*Analysis, error) {
	agg, err := metrics.Aggregate(records)
	if err != nil {
		return nil, err
	}
	avg := metrics.Averages(agg.Sections, agg.Overall)

	classes, err := metrics.Classify(agg.Sections, avg)
	if err != nil {
		return nil, err
	}
	all, err := recommendation.Recommend(agg.Sections, avg, recommendation.ModeAllSections, nil)
	if err != nil {
		return nil, err
	}
	weak, err := recommendation.Recommend(agg.Sections, avg, recommendation.ModeWeaknessesOnly, classes)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Records:         records,
		Aggregates:      agg,
		Averages:        avg,
		Classifications: classes,
		AllSections:     all,
		Weaknesses:      weak,
	}, nil
}

// Students lists the student ids in the dataset.
func (s *AnalysisService) Students(ctx context.Context) ([]string, error) {
	return s.store.ListStudents(ctx)
}

// StudentRecords returns the raw rows for one student.
func (s *AnalysisService) StudentRecords(ctx context.Context, studentID string) ([]record.QuestionRecord, error) {
	return s.store.StudentRecords(ctx, studentID)
}

// Uploads returns the upload history.
func (s *AnalysisService) Uploads(ctx context.Context) ([]store.Upload, error) {
	return s.store.ListUploads(ctx)
}

// Records returns the whole dataset.
func (s *AnalysisService) Records(ctx context.Context) ([]record.QuestionRecord, error) {
	return s.store.Records(ctx)
}

// CohortSummary is the class-wide view.
type CohortSummary struct {
	Students int                      `json:"students"`
	Overall  float64                  `json:"overall"`
	Sections []metrics.SectionAverage `json:"sections"`
}

// Cohort computes the cohort averages.
func (s *AnalysisService) Cohort(ctx context.Context) (*CohortSummary, error) {
	records, err := s.store.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	agg, err := metrics.Aggregate(records)
	if err != nil {
		return nil, err
	}
	avg := metrics.Averages(agg.Sections, agg.Overall)
	return &CohortSummary{
		Students: len(agg.Overall),
		Overall:  avg.Overall,
		Sections: avg.Sections,
	}, nil
}

// Evaluate runs the fixed-output evaluation over the dataset.
func (s *AnalysisService) Evaluate(ctx context.Context) (*evaluation.Result, error) {
	records, err := s.store.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, metrics.ErrEmptyDataset
	}
	res := evaluation.Evaluate(records)
	return &res, nil
}

// StudentReport runs the pipeline and extracts one student's report.
func (s *AnalysisService) StudentReport(ctx context.Context, studentID string) (*StudentReport, error) {
	analysis, err := s.Analyze(ctx)
	if err != nil {
		if errors.Is(err, metrics.ErrEmptyDataset) {
			return nil, err
		}
		s.logger.Error("analysis failed", "student_id", studentID, "error", err)
		return nil, err
	}
	return analysis.Report(studentID)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
