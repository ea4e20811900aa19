package recommendation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/remaimber-it/scorecard/internal/domain/metrics"
	"github.com/remaimber-it/scorecard/internal/domain/record"
)

// Mode selects which rule table Recommend uses.
type Mode int

const (
	// ModeAllSections produces advice for every section.
	ModeAllSections Mode = iota
	// ModeWeaknessesOnly produces advice for the classified weaknesses only.
	ModeWeaknessesOnly
)

func (m Mode) String() string {
	switch m {
	case ModeAllSections:
		return "all-sections"
	case ModeWeaknessesOnly:
		return "weaknesses-only"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// ErrClassificationRequired is returned when weaknesses-only mode is asked
// for without a classification for the student.
var ErrClassificationRequired = errors.New("classification required for weaknesses-only recommendations")

// Recommendation is the advice for one student. Exactly one field is set,
// depending on the mode.
type Recommendation struct {
	AllSections map[record.Section][]string `json:"all_sections,omitempty"`
	Weaknesses  []string                    `json:"weaknesses,omitempty"`
}

// Recommend builds advice for every student in sections.
func Recommend(
	sections []metrics.SectionAggregate,
	averages *metrics.CohortAverages,
	mode Mode,
	classifications map[string]metrics.Classification,
) (map[string]Recommendation, error) {
	byStudent := make(map[string][]metrics.SectionAggregate)
	for _, s := range sections {
		byStudent[s.StudentID] = append(byStudent[s.StudentID], s)
	}

	out := make(map[string]Recommendation, len(byStudent))
	for id, rows := range byStudent {
		var (
			rec Recommendation
			err error
		)
		switch mode {
		case ModeAllSections:
			rec.AllSections, err = allSections(rows, averages)
		case ModeWeaknessesOnly:
			c, ok := classifications[id]
			if !ok {
				return nil, fmt.Errorf("%w: student %q", ErrClassificationRequired, id)
			}
			rec.Weaknesses, err = weaknesses(rows, averages, c.Weaknesses)
		default:
			return nil, fmt.Errorf("unknown recommendation mode %s", mode)
		}
		if err != nil {
			return nil, err
		}
		out[id] = rec
	}
	return out, nil
}

func allSections(rows []metrics.SectionAggregate, averages *metrics.CohortAverages) (map[record.Section][]string, error) {
	out := make(map[record.Section][]string, 4)
	for _, sec := range record.Sections() {
		out[sec] = []string{}
	}
	for _, r := range rows {
		avg, ok := averages.For(r.Section)
		if !ok {
			return nil, &metrics.LookupInconsistencyError{StudentID: r.StudentID, Section: r.Section}
		}
		if _, known := out[r.Section]; !known {
			continue
		}
		out[r.Section] = ForSection(r.Section, r.ScorePercentage, avg)
	}
	return out, nil
}

func weaknesses(rows []metrics.SectionAggregate, averages *metrics.CohortAverages, weak []record.Section) ([]string, error) {
	out := make([]string, 0, len(weak))
	for _, sec := range weak {
		row, ok := findSection(rows, sec)
		if !ok {
			return nil, &metrics.LookupInconsistencyError{StudentID: studentOf(rows), Section: sec}
		}
		avg, ok := averages.For(sec)
		if !ok {
			return nil, &metrics.LookupInconsistencyError{StudentID: row.StudentID, Section: sec}
		}
		if line := ForWeakness(sec, row.ScorePercentage, avg); line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

// ForSection returns the all-sections advice block for one section.
func ForSection(section record.Section, score, avg float64) []string {
	diff := score - avg
	block := allSectionRules[section][PerformanceLevel(score)]
	out := make([]string, len(block))
	for i, line := range block {
		out[i] = render(line, section, score, avg, diff)
	}
	return out
}

// ForWeakness returns the weaknesses-only advice line for one section.
func ForWeakness(section record.Section, score, avg float64) string {
	line, ok := weaknessRules[section][WeaknessTierFor(score)]
	if !ok {
		return ""
	}
	return render(line, section, score, avg, score-avg)
}

func render(line string, section record.Section, score, avg, diff float64) string {
	return strings.NewReplacer(
		"{score}", oneDecimal(score),
		"{avg}", oneDecimal(avg),
		"{diff}", oneDecimal(math.Abs(diff)),
		"{relation}", RelationToAverage(diff),
		"{subject}", section.Name(),
		"{section}", string(section),
	).Replace(line)
}

func oneDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func findSection(rows []metrics.SectionAggregate, sec record.Section) (metrics.SectionAggregate, bool) {
	for _, r := range rows {
		if r.Section == sec {
			return r, true
		}
	}
	return metrics.SectionAggregate{}, false
}

func studentOf(rows []metrics.SectionAggregate) string {
	if len(rows) == 0 {
		return ""
	}
	return rows[0].StudentID
}
