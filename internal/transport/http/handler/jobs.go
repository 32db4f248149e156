package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	jobapp "github.com/job-board-api/internal/application/job"
	"github.com/job-board-api/internal/domain"
	"github.com/job-board-api/internal/transport/http/middleware"
)

// JobHandler handles job posting endpoints.
type JobHandler struct {
	svc jobapp.Service
}

func NewJobHandler(svc jobapp.Service) *JobHandler { return &JobHandler{svc: svc} }

func (h *JobHandler) Post(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.PostJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	j, err := h.svc.Post(r.Context(), claims.CompanyID, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, JobEnvelope{Message: "Job posted successfully", Job: j})
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	jobs, err := h.svc.List(r.Context(), claims.CompanyID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Job{"jobs": jobs})
}

func (h *JobHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.ClaimsFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var body struct {
		RecipientEmail string `json:"recipientEmail"`
		JobID          string `json:"jobId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	info, err := h.svc.SendApplicationEmail(r.Context(), body.RecipientEmail, body.JobID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, EmailEnvelope{Message: "Email sent successfully", Info: info})
}

func (h *JobHandler) EmailLogs(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	logs, err := h.svc.EmailLogs(r.Context(), claims.CompanyID, chi.URLParam(r, "jobID"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.EmailLog{"logs": logs})
}
