package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")

	ErrUserNotFound   = errors.New("user not found")
	ErrAccountExists  = errors.New("account number already exists")
	ErrCardExists     = errors.New("card number already exists")
	ErrBadCredentials = errors.New("wrong password")
	ErrAccountLocked  = errors.New("account locked after too many failed attempts")

	ErrBookNotFound    = errors.New("book not found")
	ErrBookUnavailable = errors.New("book is not available")
	ErrBookNotBorrowed = errors.New("book not borrowed")

	ErrConfigRange = errors.New("config value out of range")
)

// PolicyError carries a caller-facing business-rule message, e.g. the
// overdue gate or the remaining lock window.
type PolicyError struct {
	Message string
}

func (e *PolicyError) Error() string { return e.Message }

func Policy(message string) error { return &PolicyError{Message: message} }

func IsPolicy(err error) bool {
	var pe *PolicyError
	return errors.As(err, &pe)
}
