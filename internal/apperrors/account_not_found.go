package apperrors

import "fmt"

// AccountNotFoundError reports a failed account-name match together with the
// currently active account names, so tool responses can surface an actionable
// hint. It unwraps to ErrNotFound.
type AccountNotFoundError struct {
	Name      string
	Available []string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account '%s' not found", e.Name)
}

func (e *AccountNotFoundError) Unwrap() error {
	return ErrNotFound
}
