// Package evaluation is a placeholder for a performance prediction model.
// It performs no inference: every call returns the same fixed figures.
package evaluation

import "github.com/remaimber-it/scorecard/internal/domain/record"

const (
	Accuracy  = 95.0
	Precision = 93.0

	labelAboveAverage = "Above Average"
)

// Prediction is one student's (fixed) predicted and actual performance.
type Prediction struct {
	StudentID            string `json:"student_id"`
	PredictedPerformance string `json:"predicted_performance"`
	ActualPerformance    string `json:"actual_performance"`
	CorrectPrediction    bool   `json:"correct_prediction"`
}

// Result is the output of Evaluate.
type Result struct {
	Accuracy    float64      `json:"accuracy"`
	Precision   float64      `json:"precision"`
	Predictions []Prediction `json:"predictions"`
}

// Evaluate returns constant metrics and one row per distinct student id,
// in order of first appearance.
func Evaluate(records []record.QuestionRecord) Result {
	ids := record.StudentIDs(records)
	rows := make([]Prediction, len(ids))
	for i, id := range ids {
		rows[i] = Prediction{
			StudentID:            id,
			PredictedPerformance: labelAboveAverage,
			ActualPerformance:    labelAboveAverage,
			CorrectPrediction:    true,
		}
	}
	return Result{Accuracy: Accuracy, Precision: Precision, Predictions: rows}
}
