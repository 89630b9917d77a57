package utils

import "errors"

var (
	ErrDatabaseError = errors.New("database error")

	// Authorization failures are distinct from not-found so a caller can
	// tell a scope violation apart from a missing record.
	ErrForbidden = errors.New("forbidden")

	ErrMemberNotFound   = errors.New("member not found")
	ErrCampNotFound     = errors.New("camp not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrFollowUpNotFound = errors.New("follow-up not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")

	ErrInvalidDismissType = errors.New("invalid dismiss type")
	ErrInvalidEventDate   = errors.New("event date is missing or unparseable")
	ErrMissingNameColumns = errors.New("spreadsheet has no first name or surname column")
	ErrNoRecipient        = errors.New("member has no contact info for this channel")
	ErrUpdateTokenInvalid = errors.New("update link is invalid or expired")

	// External collaborators (SMS/email gateways, spreadsheet source)
	// fail through this sentinel, never as an unhandled fault.
	ErrGatewayFailure = errors.New("external gateway failure")
)
