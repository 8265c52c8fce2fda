package apperr

// ValidationError is a client error raised by request validation.
// Field, when set, keys the error message in the response body the way
// form-style consumers expect.
type ValidationError struct {
	Message string
	Field   string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NewFieldValidation attributes the message to a single input field
func NewFieldValidation(field, msg string) *ValidationError {
	return &ValidationError{Message: msg, Field: field}
}
