package signup

// ValidationError is returned when a submission breaks at least one rule.
type ValidationError struct {
	Messages Result
}

func NewValidationError(messages Result) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "invalid sign-up submission: " + e.Messages.String()
}
