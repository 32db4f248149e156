package domain

import "time"

// Company is the aggregate root. Verification state for each contact medium
// is embedded on the document so a single conditional update can check a
// code and flip the verified flag in one write.
type Company struct {
	CompanyID    string    `json:"id" dynamodbav:"company_id"`
	Name         string    `json:"name" dynamodbav:"name"`
	Email        string    `json:"email" dynamodbav:"email"`
	Phone        string    `json:"phone" dynamodbav:"phone"`
	EmployeeSize int       `json:"employee_size" dynamodbav:"employee_size"`
	PasswordHash string    `json:"-" dynamodbav:"password_hash"`
	LogoURL      string    `json:"logo_url,omitempty" dynamodbav:"logo_url"`
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt    time.Time `json:"updated" dynamodbav:"updated_at"`

	EmailVerification MediumVerification `json:"-" dynamodbav:"email_verification"`
	PhoneVerification MediumVerification `json:"-" dynamodbav:"phone_verification"`
}

// MediumVerification tracks the OTP state for one contact medium.
// Code and ExpiresAt are present only while an OTP is outstanding;
// a successful verification clears both and sets Verified.
type MediumVerification struct {
	Verified  bool    `json:"verified" dynamodbav:"verified"`
	Code      *string `json:"-" dynamodbav:"code"`
	ExpiresAt *int64  `json:"-" dynamodbav:"expires_at"` // Unix seconds
}

// Outstanding reports whether an unconsumed OTP exists for the medium.
func (v MediumVerification) Outstanding() bool {
	return v.Code != nil && v.ExpiresAt != nil
}

// Verification mediums. Any other value is a rejected request.
const (
	MediumEmail = "email"
	MediumPhone = "phone"
)

// ValidMedium reports whether m names a supported verification medium.
func ValidMedium(m string) bool {
	return m == MediumEmail || m == MediumPhone
}

type SignupRequest struct {
	Name         string `json:"name" validate:"required,min=4,max=50"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,inphone"`
	Password     string `json:"password" validate:"required,min=8,password"`
	EmployeeSize int    `json:"employeeSize" validate:"required,min=1,max=10000"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

// PublicCompany is the client-facing projection returned by signup.
// It never carries the password hash or verification codes.
type PublicCompany struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	EmployeeSize int    `json:"employeeSize"`
}

// Public projects the company to its client-facing fields.
func (c *Company) Public() *PublicCompany {
	return &PublicCompany{
		ID:           c.CompanyID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		EmployeeSize: c.EmployeeSize,
	}
}
