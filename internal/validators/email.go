package validators

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// NormalizeEmail lowercases and trims an address before lookup or storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailRules are the rules every stored email address must pass.
var EmailRules = []validation.Rule{
	validation.Required,
	validation.Length(3, 100),
	is.EmailFormat,
}
