package handler

import (
	"encoding/json"
	"net/http"

	"github.com/job-board-api/internal/application/verification"
	"github.com/job-board-api/internal/domain"
	"github.com/job-board-api/internal/transport/http/middleware"
)

// OTPHandler handles OTP issuance and verification endpoints.
type OTPHandler struct {
	svc verification.Service
}

func NewOTPHandler(svc verification.Service) *OTPHandler { return &OTPHandler{svc: svc} }

func (h *OTPHandler) Send(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var body struct {
		Medium string `json:"medium"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Send(r.Context(), claims.CompanyID, body.Medium); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "OTP sent to " + body.Medium})
}

func (h *OTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var body struct {
		OTP    string `json:"otp"`
		Medium string `json:"medium"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Verify(r.Context(), claims.CompanyID, body.Medium, body.OTP); err != nil {
		httpError(w, err)
		return
	}
	switch body.Medium {
	case domain.MediumEmail:
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Email verified successfully"})
	default:
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Phone number verified successfully"})
	}
}
