package job

import (
	"context"
	"fmt"
	"time"

	"github.com/job-board-api/internal/domain"
	"github.com/job-board-api/internal/infrastructure/smtp"
	"github.com/job-board-api/internal/pkg/id"
)

type Service interface {
	// Post creates a job for the company. Posting is gated on both contact
	// media being verified.
	Post(ctx context.Context, companyID string, req domain.PostJobRequest) (*domain.Job, error)
	List(ctx context.Context, companyID string) ([]domain.Job, error)
	// SendApplicationEmail acknowledges a received application and appends an
	// email log record. Nothing is logged when the send fails.
	SendApplicationEmail(ctx context.Context, recipientEmail, jobID string) (*domain.EmailLog, error)
	// EmailLogs lists the emails sent for one of the company's jobs.
	EmailLogs(ctx context.Context, companyID, jobID string) ([]domain.EmailLog, error)
}

type companyStore interface {
	Get(ctx context.Context, companyID string) (*domain.Company, error)
}

type jobStore interface {
	Put(ctx context.Context, j *domain.Job) error
	Get(ctx context.Context, jobID string) (*domain.Job, error)
	ListByCompany(ctx context.Context, companyID string) ([]domain.Job, error)
}

type emailLogStore interface {
	Put(ctx context.Context, l *domain.EmailLog) error
	ListByJob(ctx context.Context, jobID string) ([]domain.EmailLog, error)
}

type service struct {
	companyRepo companyStore
	jobRepo     jobStore
	logRepo     emailLogStore
	mailer      smtp.Mailer
}

type ServiceDeps struct {
	CompanyRepo  companyStore
	JobRepo      jobStore
	EmailLogRepo emailLogStore
	Mailer       smtp.Mailer
}

func NewService(deps ServiceDeps) Service {
	return &service{
		companyRepo: deps.CompanyRepo,
		jobRepo:     deps.JobRepo,
		logRepo:     deps.EmailLogRepo,
		mailer:      deps.Mailer,
	}
}

func (s *service) Post(ctx context.Context, companyID string, req domain.PostJobRequest) (*domain.Job, error) {
	c, err := s.companyRepo.Get(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !c.EmailVerification.Verified || !c.PhoneVerification.Verified {
		return nil, fmt.Errorf("please verify your email and mobile number to post a job: %w", domain.ErrForbidden)
	}
	j := &domain.Job{
		JobID:           id.New(),
		CompanyID:       companyID,
		Title:           req.Title,
		Description:     req.Description,
		ExperienceLevel: req.ExperienceLevel,
		EndDate:         req.EndDate,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.jobRepo.Put(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *service) List(ctx context.Context, companyID string) ([]domain.Job, error) {
	return s.jobRepo.ListByCompany(ctx, companyID)
}

func (s *service) SendApplicationEmail(ctx context.Context, recipientEmail, jobID string) (*domain.EmailLog, error) {
	if _, err := s.jobRepo.Get(ctx, jobID); err != nil {
		return nil, err
	}
	err := s.mailer.SendEmail(recipientEmail, "Job Application Received",
		"Thank you for applying. We will get back to you soon!")
	if err != nil {
		return nil, fmt.Errorf("send application email: %w", err)
	}
	l := &domain.EmailLog{
		LogID:          id.New(),
		JobID:          jobID,
		RecipientEmail: recipientEmail,
		Status:         domain.EmailStatusSent,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.logRepo.Put(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) EmailLogs(ctx context.Context, companyID, jobID string) ([]domain.EmailLog, error) {
	j, err := s.jobRepo.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.CompanyID != companyID {
		return nil, fmt.Errorf("job belongs to another company: %w", domain.ErrForbidden)
	}
	return s.logRepo.ListByJob(ctx, jobID)
}
