package domain

import "time"

// Email delivery statuses recorded in the log.
const (
	EmailStatusSent = "sent"
)

// EmailLog is an append-only record of an outbound applicant email.
type EmailLog struct {
	LogID          string    `json:"id" dynamodbav:"log_id"`
	JobID          string    `json:"job_id" dynamodbav:"job_id"`
	RecipientEmail string    `json:"recipient_email" dynamodbav:"recipient_email"`
	Status         string    `json:"status" dynamodbav:"status"`
	CreatedAt      time.Time `json:"created" dynamodbav:"created_at"`
}
