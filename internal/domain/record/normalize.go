package record

import (
	"fmt"
	"strings"
)

// MalformedRecordError reports a raw record that cannot be normalised.
type MalformedRecordError struct {
	Index     int
	StudentID string
	Field     string
	Value     any
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("record %d (student %q): invalid %s value %#v", e.Index, e.StudentID, e.Field, e.Value)
}

// Normalize converts raw upload rows into typed records. is_correct must be
// a bool or exactly "true"/"false"; anything else is a MalformedRecordError.
func Normalize(raw []Raw) ([]QuestionRecord, error) {
	out := make([]QuestionRecord, 0, len(raw))
	for i, r := range raw {
		id := strings.TrimSpace(r.StudentID)
		if id == "" {
			return nil, &MalformedRecordError{Index: i, Field: "student_id", Value: r.StudentID}
		}
		sec, ok := ParseSection(r.Section)
		if !ok {
			return nil, &MalformedRecordError{Index: i, StudentID: id, Field: "section", Value: r.Section}
		}
		correct, ok := parseCorrect(r.IsCorrect)
		if !ok {
			return nil, &MalformedRecordError{Index: i, StudentID: id, Field: "is_correct", Value: r.IsCorrect}
		}
		out = append(out, QuestionRecord{StudentID: id, Section: sec, IsCorrect: correct})
	}
	return out, nil
}

func parseCorrect(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch t {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}
