package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	companyapp "github.com/job-board-api/internal/application/company"
	"github.com/job-board-api/internal/domain"
	jwtinfra "github.com/job-board-api/internal/infrastructure/jwt"
	"github.com/job-board-api/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCompanyService struct{ mock.Mock }

func (m *mockCompanyService) Signup(ctx context.Context, req domain.SignupRequest) (*companyapp.SignupResult, error) {
	args := m.Called(ctx, req)
	if r, _ := args.Get(0).(*companyapp.SignupResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCompanyService) Login(ctx context.Context, req domain.LoginRequest) (*companyapp.LoginResult, error) {
	args := m.Called(ctx, req)
	if r, _ := args.Get(0).(*companyapp.LoginResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCompanyService) Get(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if c, _ := args.Get(0).(*domain.Company); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCompanyService) UploadLogo(ctx context.Context, companyID, filename string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, companyID, filename, r, contentType)
	return args.String(0), args.Error(1)
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	claims := &jwtinfra.Claims{CompanyID: "c1"}
	return req.WithContext(context.WithValue(req.Context(), middleware.ClaimsKey, claims))
}

func TestSignup_Created(t *testing.T) {
	svc := &mockCompanyService{}
	svc.On("Signup", mock.Anything, mock.AnythingOfType("domain.SignupRequest")).Return(&companyapp.SignupResult{
		Company: &domain.PublicCompany{ID: "c1", Name: "Acme Corp"},
		Token:   "tok123",
	}, nil)
	h := NewCompanyHandler(svc)

	body := `{"name":"Acme Corp","email":"hr@acme.test","phone":"9876543210","password":"Passw0rd","employeeSize":50}`
	rec := httptest.NewRecorder()
	h.Signup(rec, httptest.NewRequest(http.MethodPost, "/v1/signup", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var env SignupEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Company registered successfully.", env.Message)
	assert.Equal(t, "tok123", env.Token)
	require.NotNil(t, env.Company)
	assert.Equal(t, "c1", env.Company.ID)
}

func TestSignup_ValidationErrors(t *testing.T) {
	svc := &mockCompanyService{}
	svc.On("Signup", mock.Anything, mock.Anything).Return(nil, &domain.ValidationError{
		Messages: []string{
			"Company name should have at least 4 characters",
			"Email must be a valid email address",
		},
	})
	h := NewCompanyHandler(svc)

	rec := httptest.NewRecorder()
	h.Signup(rec, httptest.NewRequest(http.MethodPost, "/v1/signup", strings.NewReader(`{}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var env ValidationEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Validation errors", env.Message)
	assert.Len(t, env.Errors, 2)
	assert.Contains(t, env.Errors, "Company name should have at least 4 characters")
}

func TestSignup_MalformedBody(t *testing.T) {
	h := NewCompanyHandler(&mockCompanyService{})
	rec := httptest.NewRecorder()
	h.Signup(rec, httptest.NewRequest(http.MethodPost, "/v1/signup", strings.NewReader(`{not json`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_OK(t *testing.T) {
	svc := &mockCompanyService{}
	svc.On("Login", mock.Anything, mock.Anything).Return(&companyapp.LoginResult{Token: "tok", CompanyID: "c1"}, nil)
	h := NewCompanyHandler(svc)

	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"hr@acme.test","password":"Passw0rd"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	var env LoginEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "tok", env.Token)
	assert.Equal(t, "c1", env.CompanyID)
}

func TestLogin_UnknownEmail_NotFound(t *testing.T) {
	svc := &mockCompanyService{}
	svc.On("Login", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("Company not found: %w", domain.ErrNotFound))
	h := NewCompanyHandler(svc)

	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"no@acme.test","password":"x"}`)))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Company not found", env.Message)
}

func TestLogin_WrongPassword_BadRequest(t *testing.T) {
	svc := &mockCompanyService{}
	svc.On("Login", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("Incorrect password: %w", domain.ErrBadRequest))
	h := NewCompanyHandler(svc)

	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"hr@acme.test","password":"wrong"}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Incorrect password", env.Message)
}

func TestLogout_RequiresClaims(t *testing.T) {
	h := NewCompanyHandler(&mockCompanyService{})

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodGet, "/v1/logout", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	h.Logout(rec, authedRequest(http.MethodGet, "/v1/logout", ""))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGet_ReturnsCompanyForTokenHolder(t *testing.T) {
	svc := &mockCompanyService{}
	svc.On("Get", mock.Anything, "c1").Return(&domain.Company{CompanyID: "c1", Name: "Acme Corp"}, nil)
	h := NewCompanyHandler(svc)

	rec := httptest.NewRecorder()
	h.Get(rec, authedRequest(http.MethodGet, "/v1/company", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme Corp")
	assert.NotContains(t, rec.Body.String(), "password")
}
