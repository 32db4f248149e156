package domain

import "time"

// Job is created by a verified company and never updated or deleted.
type Job struct {
	JobID           string    `json:"id" dynamodbav:"job_id"`
	CompanyID       string    `json:"company_id" dynamodbav:"company_id"`
	Title           string    `json:"title" dynamodbav:"title"`
	Description     string    `json:"description" dynamodbav:"description"`
	ExperienceLevel string    `json:"experience_level" dynamodbav:"experience_level"`
	EndDate         string    `json:"end_date" dynamodbav:"end_date"` // YYYY-MM-DD
	CreatedAt       time.Time `json:"created" dynamodbav:"created_at"`
}

type PostJobRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	ExperienceLevel string `json:"experienceLevel"`
	EndDate         string `json:"endDate"`
}
