// simulation/simulation.go
package simulation

import (
	"context"
	"math/rand/v2"
	"strconv"

	"github.com/remaimber-it/scorecard/internal/domain/record"
)

// Config controls the size and randomness of a synthetic cohort.
type Config struct {
	Students            int
	QuestionsPerSection int
	Seed                uint64
}

// DefaultConfig is a small class: 20 students, 10 questions per section.
func DefaultConfig() Config {
	return Config{Students: 20, QuestionsPerSection: 10, Seed: 1}
}

// Cohort generates answers for every student in every section. Each student
// gets a per-section ability between 0.2 and 0.95; the same seed always
// yields the same dataset.
func Cohort(cfg Config) []record.QuestionRecord {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x5ca1ab1e))

	out := make([]record.QuestionRecord, 0, cfg.Students*cfg.QuestionsPerSection*4)
	for s := 1; s <= cfg.Students; s++ {
		studentID := strconv.Itoa(s)
		for _, sec := range record.Sections() {
			ability := 0.2 + rng.Float64()*0.75
			for q := 0; q < cfg.QuestionsPerSection; q++ {
				out = append(out, record.QuestionRecord{
					StudentID: studentID,
					Section:   sec,
					IsCorrect: rng.Float64() < ability,
				})
			}
		}
	}
	return out
}

// ToRaw renders records the way an uploaded CSV arrives, with string booleans.
func ToRaw(records []record.QuestionRecord) []record.Raw {
	out := make([]record.Raw, len(records))
	for i, r := range records {
		out[i] = record.Raw{
			StudentID: r.StudentID,
			Section:   string(r.Section),
			IsCorrect: strconv.FormatBool(r.IsCorrect),
		}
	}
	return out
}

// Importer accepts uploads; the analysis service satisfies it.
type Importer interface {
	Import(ctx context.Context, filename string, raw []record.Raw) (int, error)
}

// ImporterFunc adapts a function to Importer.
type ImporterFunc func(ctx context.Context, filename string, raw []record.Raw) (int, error)

func (f ImporterFunc) Import(ctx context.Context, filename string, raw []record.Raw) (int, error) {
	return f(ctx, filename, raw)
}

// SimulateWork uploads a generated cohort one student at a time, the way an
// operator would, and returns the number of records accepted.
func SimulateWork(ctx context.Context, imp Importer, cfg Config) (int, error) {
	records := Cohort(cfg)
	total := 0
	for _, id := range record.StudentIDs(records) {
		n, err := imp.Import(ctx, "student_"+id+".csv", ToRaw(record.ForStudent(records, id)))
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
