package metrics

import (
	"sort"

	"github.com/remaimber-it/scorecard/internal/domain/record"
)

// SectionAggregate is one student's result in one section.
type SectionAggregate struct {
	StudentID       string         `json:"student_id"`
	Section         record.Section `json:"section"`
	Correct         int            `json:"correct"`
	Total           int            `json:"total"`
	ScorePercentage float64        `json:"score_percentage"`
}

// OverallAggregate is one student's result across all sections.
type OverallAggregate struct {
	StudentID    string  `json:"student_id"`
	Correct      int     `json:"correct"`
	Total        int     `json:"total"`
	OverallScore float64 `json:"overall_score"`
}

// Aggregates holds both grouping tables, sorted by student id then section.
type Aggregates struct {
	Sections []SectionAggregate
	Overall  []OverallAggregate
}

type sectionKey struct {
	studentID string
	section   record.Section
}

type tally struct {
	correct int
	total   int
}

func (t tally) percentage() float64 {
	return 100 * float64(t.correct) / float64(t.total)
}

// Aggregate groups records by (student, section) and by student.
func Aggregate(records []record.QuestionRecord) (*Aggregates, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	bySection := make(map[sectionKey]*tally)
	byStudent := make(map[string]*tally)
	for _, r := range records {
		k := sectionKey{studentID: r.StudentID, section: r.Section}
		st, ok := bySection[k]
		if !ok {
			st = &tally{}
			bySection[k] = st
		}
		ot, ok := byStudent[r.StudentID]
		if !ok {
			ot = &tally{}
			byStudent[r.StudentID] = ot
		}
		st.total++
		ot.total++
		if r.IsCorrect {
			st.correct++
			ot.correct++
		}
	}

	keys := make([]sectionKey, 0, len(bySection))
	for k := range bySection {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if c := record.CompareStudentIDs(keys[i].studentID, keys[j].studentID); c != 0 {
			return c < 0
		}
		return keys[i].section < keys[j].section
	})

	ids := make([]string, 0, len(byStudent))
	for id := range byStudent {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return record.CompareStudentIDs(ids[i], ids[j]) < 0 })

	agg := &Aggregates{
		Sections: make([]SectionAggregate, 0, len(keys)),
		Overall:  make([]OverallAggregate, 0, len(ids)),
	}
	for _, k := range keys {
		t := bySection[k]
		agg.Sections = append(agg.Sections, SectionAggregate{
			StudentID:       k.studentID,
			Section:         k.section,
			Correct:         t.correct,
			Total:           t.total,
			ScorePercentage: t.percentage(),
		})
	}
	for _, id := range ids {
		t := byStudent[id]
		agg.Overall = append(agg.Overall, OverallAggregate{
			StudentID:    id,
			Correct:      t.correct,
			Total:        t.total,
			OverallScore: t.percentage(),
		})
	}
	return agg, nil
}

// AggregateRaw normalises upload rows and aggregates them.
func AggregateRaw(raw []record.Raw) (*Aggregates, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyDataset
	}
	records, err := record.Normalize(raw)
	if err != nil {
		return nil, err
	}
	return Aggregate(records)
}

// Student returns one student's section rows and overall row.
func (a *Aggregates) Student(studentID string) ([]SectionAggregate, OverallAggregate, bool) {
	var rows []SectionAggregate
	for _, s := range a.Sections {
		if s.StudentID == studentID {
			rows = append(rows, s)
		}
	}
	for _, o := range a.Overall {
		if o.StudentID == studentID {
			return rows, o, true
		}
	}
	return nil, OverallAggregate{}, false
}

// StudentIDs returns the ids in grouping order.
func (a *Aggregates) StudentIDs() []string {
	ids := make([]string, len(a.Overall))
	for i, o := range a.Overall {
		ids[i] = o.StudentID
	}
	return ids
}
