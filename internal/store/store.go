package store

import (
	"context"
	"errors"
	"time"

	"github.com/remaimber-it/scorecard/internal/domain/record"
)

var (
	ErrNotFound = errors.New("not found")
)

// Upload describes one accepted upload.
type Upload struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Students  int       `json:"students"`
	Records   int       `json:"records"`
	CreatedAt time.Time `json:"created_at"`
}

// ReplaceResult reports which uploaded students already had rows.
type ReplaceResult struct {
	Replaced []string
	Added    []string
}

// Store is the persisted dataset: student id -> question records.
// Writes replace a student's rows wholesale; the last write wins.
type Store interface {
	ReplaceStudents(ctx context.Context, upload Upload, records []record.QuestionRecord) (ReplaceResult, error)
	Records(ctx context.Context) ([]record.QuestionRecord, error)
	StudentRecords(ctx context.Context, studentID string) ([]record.QuestionRecord, error)
	ListStudents(ctx context.Context) ([]string, error)
	ListUploads(ctx context.Context) ([]Upload, error)
	Close() error
}
