package adapter

import "errors"

// Transport-level sentinel errors mapped from HTTP status codes. The service
// layer translates them into business errors; callers match with errors.Is.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrBackendRejected marks a success=false envelope on an HTTP 2xx
	// response; the backend's own message is attached by the caller.
	ErrBackendRejected = errors.New("backend rejected request")
)
