package accounts

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is wrapped by a FieldError when a required field is absent.
	ErrMissingField = errors.New("missing field")
	// ErrWrongType is wrapped by a FieldError when a field has an unexpected type.
	ErrWrongType = errors.New("wrong type")
)

// FieldError reports a field that could not be read while building a chart
// from a document.
type FieldError struct {
	Path  string // node location, e.g. "accounts[0].subaccounts[2]"
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: field %q: %v", e.Path, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// DuplicateIDError reports an account ID used by more than one account.
type DuplicateIDError struct {
	ID    string
	Count int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("account id %q used %d times", e.ID, e.Count)
}
