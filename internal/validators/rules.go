package validators

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrBlankSlot     = errors.New("slots must not contain blank entries")
	ErrDuplicateSlot = errors.New("slots must be unique")
)

var (
	NameRules     = []validation.Rule{validation.Required, validation.Length(1, 100)}
	PhoneRules    = []validation.Rule{validation.Required, validation.Length(3, 20)}
	PasswordRules = []validation.Rule{validation.Required, validation.Length(6, 72)}
	UsernameRules = []validation.Rule{validation.Required, validation.Length(3, 100)}
	TokenRules    = []validation.Rule{validation.Required, validation.Length(1, 32)}
	RoleRule      = validation.In("patient", "admin")
)

// Slots checks a slot list: at least one entry, none blank, no repeats.
var Slots = validation.By(func(value interface{}) error {
	slots, _ := value.([]string)
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		if strings.TrimSpace(s) == "" {
			return ErrBlankSlot
		}
		if _, ok := seen[s]; ok {
			return ErrDuplicateSlot
		}
		seen[s] = struct{}{}
	}
	return nil
})
