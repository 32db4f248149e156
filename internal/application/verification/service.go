package verification

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/job-board-api/internal/domain"
	"github.com/job-board-api/internal/infrastructure/smtp"
	"github.com/job-board-api/internal/infrastructure/sns"
)

// otpTTL is how long an issued code stays valid. A code is accepted strictly
// before its expiry instant; at exactly otpTTL after issuance it is rejected.
const otpTTL = time.Hour

type Service interface {
	// Send issues a fresh OTP for the medium, replacing any outstanding one,
	// and dispatches it over the matching channel.
	Send(ctx context.Context, companyID, medium string) error
	// Verify consumes the outstanding OTP. A valid, unexpired code marks the
	// medium verified and is cleared in the same write; anything else leaves
	// the stored state untouched.
	Verify(ctx context.Context, companyID, medium, otp string) error
}

type companyStore interface {
	Get(ctx context.Context, companyID string) (*domain.Company, error)
	SetVerificationCode(ctx context.Context, companyID, medium, code string, expiresAt int64) error
	ClearVerificationCode(ctx context.Context, companyID, medium, code string) error
	ConsumeVerificationCode(ctx context.Context, companyID, medium, code string, now time.Time) error
}

type service struct {
	repo          companyStore
	mailer        smtp.Mailer
	smsSender     sns.SMSSender
	countryPrefix string
}

type ServiceDeps struct {
	CompanyRepo      companyStore
	Mailer           smtp.Mailer
	SMSSender        sns.SMSSender
	SMSCountryPrefix string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:          deps.CompanyRepo,
		mailer:        deps.Mailer,
		smsSender:     deps.SMSSender,
		countryPrefix: deps.SMSCountryPrefix,
	}
}

func (s *service) Send(ctx context.Context, companyID, medium string) error {
	if !domain.ValidMedium(medium) {
		return fmt.Errorf("medium must be either %q or %q: %w", domain.MediumEmail, domain.MediumPhone, domain.ErrBadRequest)
	}
	c, err := s.repo.Get(ctx, companyID)
	if err != nil {
		return err
	}

	otp, err := generateOTP()
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(otpTTL).Unix()
	if err := s.repo.SetVerificationCode(ctx, companyID, medium, otp, expiresAt); err != nil {
		return err
	}

	if err := s.dispatch(ctx, c, medium, otp); err != nil {
		// The code was stored but never reached the company; roll it back so
		// an undelivered code cannot be considered outstanding.
		if clearErr := s.repo.ClearVerificationCode(ctx, companyID, medium, otp); clearErr != nil {
			slog.Warn("failed to roll back undelivered OTP", "company_id", companyID, "medium", medium, "err", clearErr)
		}
		return fmt.Errorf("send OTP via %s: %w", medium, err)
	}
	return nil
}

func (s *service) dispatch(ctx context.Context, c *domain.Company, medium, otp string) error {
	switch medium {
	case domain.MediumEmail:
		body := fmt.Sprintf("<p>Your OTP is: <strong>%s</strong>. It is valid for 1 hour.</p>", otp)
		return s.mailer.SendHTMLEmail(c.Email, "Your OTP Code", body)
	case domain.MediumPhone:
		if s.smsSender == nil {
			return errors.New("sms sender is not configured")
		}
		return s.smsSender.SendSMS(ctx, s.normalizePhone(c.Phone), "Your OTP code is "+otp)
	default:
		return fmt.Errorf("medium must be either %q or %q: %w", domain.MediumEmail, domain.MediumPhone, domain.ErrBadRequest)
	}
}

func (s *service) Verify(ctx context.Context, companyID, medium, otp string) error {
	if !domain.ValidMedium(medium) {
		return fmt.Errorf("medium must be either %q or %q: %w", domain.MediumEmail, domain.MediumPhone, domain.ErrBadRequest)
	}
	return s.repo.ConsumeVerificationCode(ctx, companyID, medium, otp, time.Now())
}

// generateOTP draws a six-digit code uniformly from [100000, 999999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// normalizePhone prepends the configured country prefix when the number
// carries no international prefix.
func (s *service) normalizePhone(phone string) string {
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return s.countryPrefix + phone
}
