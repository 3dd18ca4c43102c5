// Package validators contains validators found throughout the application
// that have been abstracted away from the main code
package validators

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmailEmpty   = errors.New("no email address provided")
	ErrEmailInvalid = errors.New("invalid email address provided")

	ErrPasswordEmpty    = errors.New("no password provided")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrPasswordMismatch = errors.New("passwords do not match")

	ErrFullNameEmpty   = errors.New("no full name provided")
	ErrFullNameTooLong = errors.New("full name is too long")
)

const (
	minPasswordLength = 8
	maxPasswordLength = 255
	maxFullNameLength = 120
)

func EmailValidator(e string) error {
	if e == "" {
		return ErrEmailEmpty
	}

	addr, err := mail.ParseAddress(e)
	if err != nil || addr.Address != e {
		return ErrEmailInvalid
	}

	return nil
}

// PasswordValidator checks p and that the confirmation matches it
func PasswordValidator(p, confirm string) error {
	if p == "" {
		return ErrPasswordEmpty
	}

	if utf8.RuneCountInString(p) < minPasswordLength {
		return ErrPasswordTooShort
	}

	if len(p) > maxPasswordLength {
		return ErrPasswordTooLong
	}

	if p != confirm {
		return ErrPasswordMismatch
	}

	return nil
}

func FullNameValidator(n string) error {
	if strings.TrimSpace(n) == "" {
		return ErrFullNameEmpty
	}

	if utf8.RuneCountInString(n) > maxFullNameLength {
		return ErrFullNameTooLong
	}

	return nil
}
