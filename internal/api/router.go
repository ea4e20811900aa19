// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every route behind the middleware chain:
// RequestID → RealIP → Logging → Recoverer → CORS → routes.
func NewRouter(h *Handler, logger *slog.Logger, corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, Logging(logger), middleware.Recoverer)
	r.Use(CORS(corsOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Students
	r.Get("/students", h.listStudents)
	r.Route("/students/{studentID}", func(sr chi.Router) {
		sr.Get("/records", h.getStudentRecords)
		sr.Get("/report", h.getStudentReport)
	})

	// Uploads
	r.Post("/uploads", h.createUpload)
	r.Get("/uploads", h.listUploads)

	// Cohort
	r.Get("/cohort", h.getCohort)
	r.Get("/evaluation", h.getEvaluation)
	r.Get("/dataset.csv", h.exportDataset)

	return r
}
