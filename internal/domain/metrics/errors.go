package metrics

import (
	"errors"
	"fmt"

	"github.com/remaimber-it/scorecard/internal/domain/record"
)

// ErrEmptyDataset is returned when aggregation is attempted on zero records.
var ErrEmptyDataset = errors.New("no student data")

// LookupInconsistencyError means a student holds a section that has no cohort
// average. Averages and section tables were built from different data.
type LookupInconsistencyError struct {
	StudentID string
	Section   record.Section
}

func (e *LookupInconsistencyError) Error() string {
	return fmt.Sprintf("no cohort average for section %s (student %q)", e.Section, e.StudentID)
}
