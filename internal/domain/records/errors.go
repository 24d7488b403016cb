package records

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// DuplicateError reports a unique constraint violation. Constraint is the
// index name when the backend exposes it.
type DuplicateError struct {
	Constraint string
}

func (e DuplicateError) Error() string {
	if e.Constraint == "" {
		return ErrDuplicate.Error()
	}
	return fmt.Sprintf("%s: %s", ErrDuplicate.Error(), e.Constraint)
}

func (e DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// IsDuplicateOf reports whether err is a unique violation on constraint.
func IsDuplicateOf(err error, constraint string) bool {
	var de DuplicateError
	if errors.As(err, &de) {
		return de.Constraint == constraint
	}
	return false
}
