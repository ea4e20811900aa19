package record

import (
	"fmt"
	"strconv"
	"strings"
)

// Section is one of the four fixed test categories.
type Section string

const (
	SectionMath          Section = "A"
	SectionVerbal        Section = "B"
	SectionNonVerbal     Section = "C"
	SectionComprehension Section = "D"
)

var sectionNames = map[Section]string{
	SectionMath:          "Math",
	SectionVerbal:        "Verbal",
	SectionNonVerbal:     "Non-verbal",
	SectionComprehension: "Comprehension",
}

// Sections returns the sections in canonical order.
func Sections() []Section {
	return []Section{SectionMath, SectionVerbal, SectionNonVerbal, SectionComprehension}
}

// ParseSection accepts a section code such as "A" or " b ".
func ParseSection(s string) (Section, bool) {
	sec := Section(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := sectionNames[sec]
	return sec, ok
}

// Name returns the subject name, or the raw code for unknown sections.
func (s Section) Name() string {
	if n, ok := sectionNames[s]; ok {
		return n
	}
	return string(s)
}

// Label renders the section the way reports show it, e.g. "Math (A)".
func (s Section) Label() string {
	return fmt.Sprintf("%s (%s)", s.Name(), string(s))
}

// QuestionRecord is one answered question.
type QuestionRecord struct {
	StudentID string  `json:"student_id"`
	Section   Section `json:"section"`
	IsCorrect bool    `json:"is_correct"`
}

// Raw is a record as it arrives from an upload. IsCorrect holds a bool or
// one of the literal strings "true"/"false".
type Raw struct {
	StudentID string `json:"student_id"`
	Section   string `json:"section"`
	IsCorrect any    `json:"is_correct"`
}

// CompareStudentIDs orders ids numerically when both are integers and
// lexically otherwise. Numeric ids sort before non-numeric ones.
func CompareStudentIDs(a, b string) int {
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return strings.Compare(a, b)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}
	return strings.Compare(a, b)
}

// StudentIDs returns the distinct student ids in order of first appearance.
func StudentIDs(records []QuestionRecord) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, r := range records {
		if seen[r.StudentID] {
			continue
		}
		seen[r.StudentID] = true
		ids = append(ids, r.StudentID)
	}
	return ids
}

// ForStudent filters records down to one student, preserving order.
func ForStudent(records []QuestionRecord, studentID string) []QuestionRecord {
	var out []QuestionRecord
	for _, r := range records {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out
}
