package domain

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a referenced row does not exist.
type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "data tidak ditemukan"
	}
	return fmt.Sprintf("%s tidak ditemukan", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError rejects caller input before or instead of a store write.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("%s tidak valid", e.Field)
	}
	return "input tidak valid"
}

func (e ValidationError) Unwrap() error { return e.Err }

// ConflictError reports a write that lost against existing state, such as a
// seat that is already booked.
type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s sudah ada", e.Resource)
	default:
		return "data bentrok"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// FetchError marks a failed read from a backing store. Callers show it as
// "data could not be loaded" and never as an empty result.
type FetchError struct {
	Source string
	Err    error
}

func (e FetchError) Error() string {
	if e.Source == "" {
		return "gagal memuat data"
	}
	return fmt.Sprintf("gagal memuat data %s", e.Source)
}

func (e FetchError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsFetch(err error) bool {
	var target FetchError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
