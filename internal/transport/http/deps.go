package http

import (
	"github.com/job-board-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/job-board-api/internal/infrastructure/jwt"
	s3infra "github.com/job-board-api/internal/infrastructure/s3"
	"github.com/job-board-api/internal/infrastructure/smtp"
	"github.com/job-board-api/internal/infrastructure/sns"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	CompanyRepo  *dynamo.CompanyRepo
	JobRepo      *dynamo.JobRepo
	EmailLogRepo *dynamo.EmailLogRepo
	LogoStore    *s3infra.Store
	Mailer       smtp.Mailer
	SMSSender    sns.SMSSender
	JWTProvider  *jwtinfra.Provider
}
