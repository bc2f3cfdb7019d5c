package domain

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindStorage
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error is the typed failure every service operation returns. Two errors
// match under errors.Is when their codes are equal, so sentinels below can
// be compared against errors carrying a more specific message.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy of e carrying a more specific message.
func (e *Error) WithMessage(format string, args ...any) *Error {
	cp := *e
	cp.Message = fmt.Sprintf(format, args...)
	return &cp
}

func newError(kind ErrorKind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

var (
	ErrMissingFields  = newError(KindValidation, "MISSING_FIELDS", "required fields are missing")
	ErrInvalidInput   = newError(KindValidation, "INVALID_INPUT", "invalid input")
	ErrInvalidRole    = newError(KindValidation, "INVALID_ROLE", "role must be customer or seller")
	ErrTotalMismatch  = newError(KindValidation, "TOTAL_MISMATCH", "total amount does not match order items")
	ErrUnknownProduct = newError(KindValidation, "UNKNOWN_PRODUCT", "order references an unavailable product")

	ErrUnauthenticated = newError(KindAuthentication, "UNAUTHENTICATED", "authentication required")
	ErrBadCredential   = newError(KindAuthentication, "BAD_CREDENTIAL", "incorrect password")
	ErrTokenExpired    = newError(KindAuthentication, "TOKEN_EXPIRED", "session expired, please log in again")
	ErrTokenInvalid    = newError(KindAuthentication, "TOKEN_INVALID", "invalid session token")
	ErrUnresolvable    = newError(KindAuthentication, "PRINCIPAL_GONE", "account no longer exists")

	ErrForbidden      = newError(KindAuthorization, "FORBIDDEN", "you do not have permission to perform this action")
	ErrVendorPending  = newError(KindAuthorization, "VENDOR_PENDING", "your account is under review; it must be approved before adding products or factories")
	ErrVendorRejected = newError(KindAuthorization, "VENDOR_REJECTED", "your account was rejected by the administration")
	ErrBadSecret      = newError(KindAuthorization, "BAD_SECRET", "invalid admin secret code")

	ErrNotFound           = newError(KindNotFound, "NOT_FOUND", "resource not found")
	ErrUserNotFound       = newError(KindNotFound, "USER_NOT_FOUND", "user not found")
	ErrVendorNotFound     = newError(KindNotFound, "VENDOR_NOT_FOUND", "vendor not found")
	ErrNotFoundOrNotOwned = newError(KindNotFound, "NOT_FOUND_OR_NOT_OWNED", "resource not found")
	ErrOrderNotFound      = newError(KindNotFound, "ORDER_NOT_FOUND", "order not found")

	ErrEmailTaken        = newError(KindConflict, "EMAIL_TAKEN", "email is already registered")
	ErrAdminExists       = newError(KindConflict, "ADMIN_EXISTS", "an administrator already exists")
	ErrInvalidTransition = newError(KindConflict, "INVALID_TRANSITION", "vendor decision cannot be changed")

	ErrStorage = newError(KindStorage, "STORAGE", "internal server error")
)

// Storage wraps an unexpected persistence failure. Errors that already carry
// a kind pass through unchanged.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	cp := *ErrStorage
	cp.Err = err
	return &cp
}

// KindOf reports the kind of err, treating untyped errors as storage failures.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStorage
}
