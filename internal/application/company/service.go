package company

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/job-board-api/internal/domain"
	"github.com/job-board-api/internal/pkg/id"
	"github.com/job-board-api/internal/pkg/validate"
	"golang.org/x/crypto/bcrypt"
)

// Token lifetimes mirror the issuing flow: a fresh signup gets a full day,
// a returning login gets one hour.
const (
	signupTokenTTL = 24 * time.Hour
	loginTokenTTL  = time.Hour
)

type SignupResult struct {
	Company *domain.PublicCompany
	Token   string
}

type LoginResult struct {
	Token     string
	CompanyID string
}

type Service interface {
	Signup(ctx context.Context, req domain.SignupRequest) (*SignupResult, error)
	Login(ctx context.Context, req domain.LoginRequest) (*LoginResult, error)
	Get(ctx context.Context, companyID string) (*domain.Company, error)
	UploadLogo(ctx context.Context, companyID, filename string, r io.Reader, contentType string) (string, error)
}

type companyStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Company, error)
	Get(ctx context.Context, companyID string) (*domain.Company, error)
	Put(ctx context.Context, c *domain.Company) error
	Update(ctx context.Context, companyID string, updates map[string]interface{}) error
}

type tokenSigner interface {
	Sign(companyID string, ttl time.Duration) (string, error)
}

type logoStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

type service struct {
	repo      companyStore
	signer    tokenSigner
	logoStore logoStore
}

type ServiceDeps struct {
	CompanyRepo companyStore
	JWTProvider tokenSigner
	LogoStore   logoStore
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:      deps.CompanyRepo,
		signer:    deps.JWTProvider,
		logoStore: deps.LogoStore,
	}
}

func (s *service) Signup(ctx context.Context, req domain.SignupRequest) (*SignupResult, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, err
	}
	_, err := s.repo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("this email already exists: %w", domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		// Only a confirmed absence clears the uniqueness check; a store
		// failure must not let a duplicate through.
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	c := &domain.Company{
		CompanyID:    id.New(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		EmployeeSize: req.EmployeeSize,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}
	token, err := s.signer.Sign(c.CompanyID, signupTokenTTL)
	if err != nil {
		return nil, err
	}
	return &SignupResult{Company: c.Public(), Token: token}, nil
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*LoginResult, error) {
	// The password format is deliberately not re-validated here; only the
	// email shape is checked before the lookup.
	if err := validate.Struct(&req); err != nil {
		return nil, err
	}
	c, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("Company not found: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("Incorrect password: %w", domain.ErrBadRequest)
	}
	token, err := s.signer.Sign(c.CompanyID, loginTokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, CompanyID: c.CompanyID}, nil
}

func (s *service) Get(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.repo.Get(ctx, companyID)
}

func (s *service) UploadLogo(ctx context.Context, companyID, filename string, r io.Reader, contentType string) (string, error) {
	key := path.Join("logos", companyID, filename)
	url, err := s.logoStore.Upload(ctx, key, r, contentType)
	if err != nil {
		return "", err
	}
	if err := s.repo.Update(ctx, companyID, map[string]interface{}{"logo_url": url}); err != nil {
		return "", err
	}
	return url, nil
}
