package dynamo

// DynamoDB attribute names used in update and condition expressions.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldEmailVerification = "email_verification"
	fieldPhoneVerification = "phone_verification"
	fieldVerified          = "verified"
	fieldCode              = "code"
	fieldExpiresAt         = "expires_at"
	fieldUpdatedAt         = "updated_at"
)
