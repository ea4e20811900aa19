package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/remaimber-it/scorecard/internal/domain/record"
)

// ── Request / Response types ────────────────────────────────────────────────

type StudentsResponse struct {
	Students []string `json:"students"`
}

type RecordsResponse struct {
	StudentID string                  `json:"student_id"`
	Records   []record.QuestionRecord `json:"records"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listStudents lists every student id in the dataset.
// @Summary      List students
// @Description  Returns student ids in the order they were first uploaded.
// @Tags         Students
// @Produce      json
// @Success      200  {object}  StudentsResponse
// @Failure      500  {object}  map[string]string
// @Router       /students [get]
func (h *Handler) listStudents(w http.ResponseWriter, r *http.Request) {
	ids, err := h.analysis.Students(r.Context())
	if h.handleError(w, err, "students") {
		return
	}
	if ids == nil {
		ids = []string{}
	}
	respondJSON(w, http.StatusOK, StudentsResponse{Students: ids})
}

// getStudentRecords returns the raw answers for one student.
// @Summary      Get a student's records
// @Tags         Students
// @Produce      json
// @Param        studentID  path      string  true  "Student ID"
// @Success      200        {object}  RecordsResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /students/{studentID}/records [get]
func (h *Handler) getStudentRecords(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "studentID")

	records, err := h.analysis.StudentRecords(r.Context(), studentID)
	if h.handleError(w, err, "student") {
		return
	}
	respondJSON(w, http.StatusOK, RecordsResponse{StudentID: studentID, Records: records})
}

// getStudentReport runs the analysis and returns one student's report.
// @Summary      Get a student's report
// @Description  Section scores against the class average, strengths, weaknesses and recommendations.
// @Tags         Students
// @Produce      json
// @Param        studentID  path      string  true  "Student ID"
// @Success      200        {object}  service.StudentReport
// @Failure      404        {object}  map[string]string  "student not found or no data"
// @Failure      500        {object}  map[string]string
// @Router       /students/{studentID}/report [get]
func (h *Handler) getStudentReport(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "studentID")

	report, err := h.analysis.StudentReport(r.Context(), studentID)
	if h.handleError(w, err, "student") {
		return
	}
	respondJSON(w, http.StatusOK, report)
}
