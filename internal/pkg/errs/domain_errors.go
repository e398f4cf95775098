package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Payment errors
	ErrPaymentInvalid      = errors.New("payment verification failed")
	ErrTransactionNotFound = errors.New("transaction not found")

	// Call errors
	ErrVendorCallFailed = errors.New("vendor call failed")

	// Voice errors
	ErrVoiceUploadFailed = errors.New("voice upload failed")

	// Video errors
	ErrVideoNotFound = errors.New("video not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
