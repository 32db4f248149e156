package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/job-board-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockVerificationService struct{ mock.Mock }

func (m *mockVerificationService) Send(ctx context.Context, companyID, medium string) error {
	return m.Called(ctx, companyID, medium).Error(0)
}

func (m *mockVerificationService) Verify(ctx context.Context, companyID, medium, otp string) error {
	return m.Called(ctx, companyID, medium, otp).Error(0)
}

func TestSendOTP_RequiresAuth(t *testing.T) {
	h := NewOTPHandler(&mockVerificationService{})
	rec := httptest.NewRecorder()
	h.Send(rec, httptest.NewRequest(http.MethodPost, "/v1/send-otp", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSendOTP_OK(t *testing.T) {
	svc := &mockVerificationService{}
	svc.On("Send", mock.Anything, "c1", "email").Return(nil)
	h := NewOTPHandler(svc)

	rec := httptest.NewRecorder()
	h.Send(rec, authedRequest(http.MethodPost, "/v1/send-otp", `{"medium":"email"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "OTP sent to email", env.Message)
}

func TestVerifyOTP_BadCode_BadRequest(t *testing.T) {
	svc := &mockVerificationService{}
	svc.On("Verify", mock.Anything, "c1", "email", "000000").
		Return(fmt.Errorf("invalid or expired OTP: %w", domain.ErrBadRequest))
	h := NewOTPHandler(svc)

	rec := httptest.NewRecorder()
	h.Verify(rec, authedRequest(http.MethodPost, "/v1/verify-otp", `{"otp":"000000","medium":"email"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "invalid or expired OTP", env.Message)
}

func TestVerifyOTP_Email_OK(t *testing.T) {
	svc := &mockVerificationService{}
	svc.On("Verify", mock.Anything, "c1", "email", "123456").Return(nil)
	h := NewOTPHandler(svc)

	rec := httptest.NewRecorder()
	h.Verify(rec, authedRequest(http.MethodPost, "/v1/verify-otp", `{"otp":"123456","medium":"email"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Email verified successfully", env.Message)
}

func TestVerifyOTP_Phone_OK(t *testing.T) {
	svc := &mockVerificationService{}
	svc.On("Verify", mock.Anything, "c1", "phone", "123456").Return(nil)
	h := NewOTPHandler(svc)

	rec := httptest.NewRecorder()
	h.Verify(rec, authedRequest(http.MethodPost, "/v1/verify-otp", `{"otp":"123456","medium":"phone"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Phone number verified successfully", env.Message)
}
