package handler

import (
	"encoding/json"
	"net/http"

	companyapp "github.com/job-board-api/internal/application/company"
	"github.com/job-board-api/internal/domain"
	"github.com/job-board-api/internal/transport/http/middleware"
)

// CompanyHandler handles registration, login and company profile endpoints.
type CompanyHandler struct {
	svc companyapp.Service
}

func NewCompanyHandler(svc companyapp.Service) *CompanyHandler { return &CompanyHandler{svc: svc} }

func (h *CompanyHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.svc.Signup(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, SignupEnvelope{
		Message: "Company registered successfully.",
		Company: result.Company,
		Token:   result.Token,
	})
}

func (h *CompanyHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.svc.Login(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LoginEnvelope{Token: result.Token, CompanyID: result.CompanyID})
}

// Logout exists for API symmetry. Session tokens are stateless, so there is
// nothing to invalidate server-side.
func (h *CompanyHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.ClaimsFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Logged out successfully"})
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	c, err := h.svc.Get(r.Context(), claims.CompanyID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CompanyHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	f, header, err := r.FormFile("logo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing logo field")
		return
	}
	defer f.Close()

	url, err := h.svc.UploadLogo(r.Context(), claims.CompanyID, header.Filename, f, header.Header.Get("Content-Type"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"logo_url": url})
}
