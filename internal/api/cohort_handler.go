package api

import (
	"net/http"

	"github.com/remaimber-it/scorecard/internal/domain/metrics"
	"github.com/remaimber-it/scorecard/internal/ingest"
)

// getCohort returns the class averages.
// @Summary      Cohort averages
// @Description  Unweighted mean of student scores per section and overall.
// @Tags         Cohort
// @Produce      json
// @Success      200  {object}  service.CohortSummary
// @Failure      404  {object}  map[string]string  "no data"
// @Failure      500  {object}  map[string]string
// @Router       /cohort [get]
func (h *Handler) getCohort(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analysis.Cohort(r.Context())
	if h.handleError(w, err, "cohort") {
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// getEvaluation returns the prediction model evaluation.
// @Summary      Model evaluation
// @Description  Placeholder figures; no model is trained.
// @Tags         Cohort
// @Produce      json
// @Success      200  {object}  evaluation.Result
// @Failure      404  {object}  map[string]string  "no data"
// @Router       /evaluation [get]
func (h *Handler) getEvaluation(w http.ResponseWriter, r *http.Request) {
	result, err := h.analysis.Evaluate(r.Context())
	if h.handleError(w, err, "evaluation") {
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// exportDataset streams the whole dataset as CSV.
// @Summary      Export dataset
// @Tags         Cohort
// @Produce      text/csv
// @Success      200  {string}  string  "student_id,section,is_correct rows"
// @Failure      404  {object}  map[string]string  "no data"
// @Failure      500  {object}  map[string]string
// @Router       /dataset.csv [get]
func (h *Handler) exportDataset(w http.ResponseWriter, r *http.Request) {
	records, err := h.analysis.Records(r.Context())
	if h.handleError(w, err, "dataset") {
		return
	}
	if len(records) == 0 {
		h.handleError(w, metrics.ErrEmptyDataset, "dataset")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="dataset.csv"`)
	if err := ingest.WriteCSV(w, records); err != nil {
		h.logger.Error("export failed", "error", err)
	}
}
