package app

import "errors"

// loginErrorMessage is the user-visible message for a failed credential match.
const loginErrorMessage = "Invalid username or password."

// ValidationError is a client-side draft rejection. It is raised before any
// store call and carries a display-ready message for the form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation checks if the error is a draft validation failure
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
