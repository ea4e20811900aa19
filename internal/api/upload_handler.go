package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/remaimber-it/scorecard/internal/domain/record"
	"github.com/remaimber-it/scorecard/internal/ingest"
	"github.com/remaimber-it/scorecard/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type UploadResponse struct {
	UploadID      string   `json:"upload_id"`
	Filename      string   `json:"filename"`
	Students      int      `json:"students"`
	Records       int      `json:"records"`
	Replaced      []string `json:"replaced"`
	Added         []string `json:"added"`
	TotalStudents int      `json:"total_students"`
}

type UploadsResponse struct {
	Uploads []store.Upload `json:"uploads"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createUpload merges an uploaded results file into the dataset.
// @Summary      Upload results
// @Description  Accepts a multipart "file" field or a raw text/csv or application/json body.
// @Description  Every student in the upload replaces that student's stored records.
// @Tags         Uploads
// @Accept       mpfd,json,plain
// @Produce      json
// @Param        file  formData  file  false  "CSV or JSON results file"
// @Success      201   {object}  UploadResponse
// @Failure      400   {object}  map[string]string
// @Failure      413   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /uploads [post]
func (h *Handler) createUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	filename, raw, err := h.readUpload(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit))
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(raw) == 0 {
		respondError(w, http.StatusBadRequest, "upload contains no records")
		return
	}

	sum, err := h.analysis.Import(r.Context(), filename, raw)
	if h.handleError(w, err, "upload") {
		return
	}

	respondJSON(w, http.StatusCreated, UploadResponse{
		UploadID:      sum.UploadID,
		Filename:      filename,
		Students:      sum.Students,
		Records:       sum.Records,
		Replaced:      sum.Replaced,
		Added:         sum.Added,
		TotalStudents: sum.TotalStudents,
	})
}

func (h *Handler) readUpload(r *http.Request) (string, []record.Raw, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return "", nil, err
			}
			return "", nil, errors.New("file required")
		}
		defer f.Close()

		raw, err := ingest.Parse(f, ingest.FormatOf(hdr.Filename, hdr.Header.Get("Content-Type")))
		return hdr.Filename, raw, err
	}

	filename := r.URL.Query().Get("filename")
	if filename == "" {
		filename = "upload"
	}
	raw, err := ingest.Parse(r.Body, ingest.FormatOf(filename, r.Header.Get("Content-Type")))
	return filename, raw, err
}

// listUploads returns the upload history, newest first.
// @Summary      List uploads
// @Tags         Uploads
// @Produce      json
// @Success      200  {object}  UploadsResponse
// @Failure      500  {object}  map[string]string
// @Router       /uploads [get]
func (h *Handler) listUploads(w http.ResponseWriter, r *http.Request) {
	uploads, err := h.analysis.Uploads(r.Context())
	if h.handleError(w, err, "uploads") {
		return
	}
	if uploads == nil {
		uploads = []store.Upload{}
	}
	respondJSON(w, http.StatusOK, UploadsResponse{Uploads: uploads})
}
