package leagues

import "errors"

// Error kinds. Match them with errors.Is.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrInvalidRelationship = errors.New("invalid relationship")
	ErrConflict            = errors.New("conflict")
	ErrDependencyExists    = errors.New("dependency exists")
	ErrStorage             = errors.New("storage failure")
)

// Error pairs a kind with the message shown to API callers. Err holds the
// underlying cause, if any.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) error {
	return &Error{Kind: ErrValidation, Message: message}
}

func NotFound(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

func InvalidRelationship(message string) error {
	return &Error{Kind: ErrInvalidRelationship, Message: message}
}

func Conflict(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

func DependencyExists(message string) error {
	return &Error{Kind: ErrDependencyExists, Message: message}
}

// Storage wraps an unexpected store error. The message stays generic; the
// cause is kept for logging.
func Storage(message string, err error) error {
	return &Error{Kind: ErrStorage, Message: message, Err: err}
}

// Message returns the caller-facing message for err, falling back to the
// error text for errors outside the taxonomy.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
