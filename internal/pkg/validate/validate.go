package validate

import (
	"strings"

	"github.com/go-auth-nosql/internal/domain"
	"github.com/go-auth-nosql/internal/pkg/password"
	"github.com/go-playground/validator/v10"
)

// v is the package-level singleton validator. It is initialised once at
// package load time. Any custom type registrations must be made during init()
// before the first call to Signup.
var v = validator.New()

// Signup validates the signup fields and returns every failing field.
// It aggregates rather than short-circuits so the caller can report all
// problems at once. An empty slice means the input is valid.
func Signup(name, email, pw string) []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(name) == "" {
		errs = append(errs, domain.FieldError{
			Field:   "name",
			Message: "Name is required and cannot be empty.",
		})
	}

	if email == "" || v.Var(email, "required,email") != nil {
		errs = append(errs, domain.FieldError{
			Field:   "email",
			Message: "A valid email address is required.",
		})
	}

	if !password.IsValid(pw) {
		errs = append(errs, domain.FieldError{
			Field:   "password",
			Message: password.PolicyMessage,
		})
	}

	return errs
}
