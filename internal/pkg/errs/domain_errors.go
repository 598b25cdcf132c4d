package errs

import "errors"

// Domain-specific sentinel errors for the payment flows
var (
	// Request validation
	ErrValidation      = errors.New("validation error")
	ErrMissingOrderRef = errors.New("missing order reference")

	// Operator-side configuration
	ErrConfiguration = errors.New("configuration error")

	// External collaborators
	ErrUpstream        = errors.New("upstream call failed")
	ErrUpstreamTimeout = errors.New("upstream call timed out")

	// Processor responses
	ErrUnexpectedResponse = errors.New("unexpected processor response")
	ErrOTPFailed          = errors.New("otp verification failed")

	// Webhook authentication
	ErrAuthentication = errors.New("webhook authentication failed")
)
