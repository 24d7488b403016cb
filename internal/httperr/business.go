package httperr

import (
	"errors"
	"fmt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
)

// Kind classifies a business failure so the transport edge can pick a status.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindForbidden    Kind = "forbidden"
	KindBadRequest   Kind = "bad_request"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

func newBusiness(kind Kind, code, format string, args ...any) error {
	return BusinessError{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

func ErrNotFound(code, format string, args ...any) error {
	return newBusiness(KindNotFound, code, format, args...)
}

func ErrForbidden(code, format string, args ...any) error {
	return newBusiness(KindForbidden, code, format, args...)
}

func ErrBadRequest(code, format string, args ...any) error {
	return newBusiness(KindBadRequest, code, format, args...)
}

func ErrConflict(code, format string, args ...any) error {
	return newBusiness(KindConflict, code, format, args...)
}

func ErrUnauthorized(code, format string, args ...any) error {
	return newBusiness(KindUnauthorized, code, format, args...)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf returns the kind of a business error, or "" for anything else.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

// NotFoundOr converts a missing-record error into a NotFound business
// error and returns any other error unchanged.
func NotFoundOr(err error, code, format string, args ...any) error {
	if errors.Is(err, records.ErrNotFound) {
		return ErrNotFound(code, format, args...)
	}
	return err
}

// ConflictOr converts a unique violation into a Conflict business error.
func ConflictOr(err error, code, format string, args ...any) error {
	if errors.Is(err, records.ErrDuplicate) {
		return ErrConflict(code, format, args...)
	}
	return err
}
