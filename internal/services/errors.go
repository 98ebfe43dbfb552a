package services

import "errors"

// Failure taxonomy shared by the services and the HTTP boundary. Auth
// failures are terminal for a request and never mutate state; store failures
// surface as transient and are not retried here.
var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)
