package errors

// Error code constants, format CATEGORY_SPECIFIC_DETAIL.
// The frontend maps these codes to localized messages.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"
	AuthWeakPassword       = "AUTH_WEAK_PASSWORD"
	AuthResetTokenInvalid  = "AUTH_RESET_TOKEN_INVALID"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT"
	ValidationRequired      = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Business profile (PROFILE_) ====================
	ProfileNotFound         = "PROFILE_NOT_FOUND"
	ProfileValidationFailed = "PROFILE_VALIDATION_FAILED"
	ProfileRequired         = "PROFILE_REQUIRED"

	// ==================== Identifier registry (REGISTRY_) ====================
	RegistryIdentifierExists = "REGISTRY_IDENTIFIER_EXISTS"

	// ==================== Documents (DOCUMENT_) ====================
	DocumentNotFound       = "DOCUMENT_NOT_FOUND"
	DocumentTypeRequired   = "DOCUMENT_TYPE_REQUIRED"
	UploadInvalidFileType  = "UPLOAD_INVALID_FILE_TYPE"
	UploadFileTooLarge     = "UPLOAD_FILE_TOO_LARGE"
	UploadFailed           = "UPLOAD_FAILED"

	// ==================== Schemes (SCHEME_) ====================
	SchemeNotFound = "SCHEME_NOT_FOUND"

	// ==================== Notifications (NOTIFICATION_) ====================
	NotificationIDRequired = "NOTIFICATION_ID_REQUIRED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"
)
