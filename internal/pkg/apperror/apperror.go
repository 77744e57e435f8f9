package apperror

import "errors"

// Kind classifies an AppError. The HTTP boundary maps each kind to a status code.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindValidation
	// KindInvalidState is an unknown booking state filter. It is a kind of validation error.
	KindInvalidState
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindInvalidState:
		return "invalid_state"
	case KindConflict:
		return "conflict"
	default:
		return "unexpected"
	}
}

// AppError is a custom error type that includes an error kind and a user-facing message.
type AppError struct {
	Kind    Kind   // Error category, translated to a status code at the boundary
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a kind and message.
func New(kind Kind, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, kind Kind, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func NotFound(message string) *AppError {
	return New(KindNotFound, message)
}

func Validation(message string) *AppError {
	return New(KindValidation, message)
}

func InvalidState(message string) *AppError {
	return New(KindInvalidState, message)
}

func Conflict(message string) *AppError {
	return New(KindConflict, message)
}

// KindOf returns the kind of the first AppError in err's chain, or KindUnexpected.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

// IsValidation reports whether err is a validation error, including invalid state filters.
func IsValidation(err error) bool {
	k := KindOf(err)
	return k == KindValidation || k == KindInvalidState
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
