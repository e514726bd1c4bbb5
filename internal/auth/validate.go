package auth

import "github.com/go-playground/validator/v10"

const minPasswordLength = 4

var validate = validator.New()

type usernameRules struct {
	Username string `validate:"required,min=3,alphanum"`
}

// IsValidUsername reports whether the name is non-empty, at least three
// characters, and purely alphanumeric. Used only at registration.
func IsValidUsername(username string) bool {
	return validate.Struct(usernameRules{Username: username}) == nil
}

// IsStrongEnoughPassword applies the minimal length rule.
func IsStrongEnoughPassword(password string) bool {
	return len(password) >= minPasswordLength
}
