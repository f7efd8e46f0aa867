// internal/i18n/keys.go
package i18n

// Translation keys used across handlers and middleware.
const (
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthAccessDenied       = "auth.access_denied"
	KeyAuthRegistered         = "auth.registered"

	KeyValidationInvalid = "validation.invalid"

	KeyUserNotFound       = "user.not_found"
	KeyUserProfileUpdated = "user.profile_updated"
	KeyUserStatusUpdated  = "user.status_updated"

	KeyOpportunityNotFound = "opportunity.not_found"
	KeyOpportunityCreated  = "opportunity.created"
	KeyOpportunityUpdated  = "opportunity.updated"
	KeyOpportunityDeleted  = "opportunity.deleted"

	KeyApplicationNotFound  = "application.not_found"
	KeyApplicationSubmitted = "application.submitted"
	KeyApplicationUpdated   = "application.updated"

	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
)
