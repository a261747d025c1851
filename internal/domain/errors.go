package domain

// FieldError reports a required field that was missing or empty.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return e.Field + " is required"
}
