package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrNoSavedSession     = errors.New("no saved session")

	// ErrSessionExpired is returned for any authenticated call the backend
	// answered with 401. The app reacts with a global sign-out.
	ErrSessionExpired = errors.New("session expired")

	ErrPermissionDenied = errors.New("permission denied")
	ErrRecordNotFound   = errors.New("record not found")
	ErrInvalidData      = errors.New("invalid data provided")
	ErrBackendFailure   = errors.New("the server could not process the request")

	// ErrNotAdmin is the local role-gate failure: no network call was made.
	ErrNotAdmin = errors.New("administrator role required")

	// ErrActivityNotInCache means the targeted record id is not in the
	// locally cached collection; no network call was made.
	ErrActivityNotInCache = errors.New("activity is not in the loaded list")

	// ErrConfirmationDeclined means the user answered no to a confirm
	// prompt; nothing was sent and nothing changed.
	ErrConfirmationDeclined = errors.New("confirmation declined")

	// ErrCriterionInUse blocks deleting a main criterion that sub criteria
	// still reference.
	ErrCriterionInUse = errors.New("main criterion is referenced by sub criteria")

	ErrEmptyCriterionName = errors.New("criterion name is required")
	ErrEmptySectorName    = errors.New("sector name is required")

	// ErrInvalidDateRange means the report period has a start date after
	// its end date, or an unparseable date.
	ErrInvalidDateRange = errors.New("invalid report date range")
)
