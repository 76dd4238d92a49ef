package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
)

// DuplicateKeyError reports a unique-constraint violation. The storage
// adapter decides the offending field from the constraint name; handlers
// never inspect driver error text.
type DuplicateKeyError struct {
	Field string // gstNo, email, ...
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

// ForeignKeyError reports a foreign-key violation on write or delete.
type ForeignKeyError struct {
	Field string // companyId, itemId, ...
}

func (e *ForeignKeyError) Error() string {
	return fmt.Sprintf("referential integrity violation on %s", e.Field)
}

// AsDuplicateKey unwraps err into a DuplicateKeyError, if it is one.
func AsDuplicateKey(err error) (*DuplicateKeyError, bool) {
	var d *DuplicateKeyError
	ok := errors.As(err, &d)
	return d, ok
}

// AsForeignKey unwraps err into a ForeignKeyError, if it is one.
func AsForeignKey(err error) (*ForeignKeyError, bool) {
	var f *ForeignKeyError
	ok := errors.As(err, &f)
	return f, ok
}
