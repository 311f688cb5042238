package validate

// This package adds struct and field validation as a thin wrapper around the go-playground/validator package.
//
// e.g. internal/config/config.go
//   type Config struct {
//       ...
//       Bookmarks map[string]string `validate:"dive,keys,bookmark_key,endkeys,required"`
//       Ignore    []string          `validate:"dive,glob"`
//   }
//
// Custom tags registered here:
//   bookmark_key  a single ASCII digit, "0" through "9"
//   glob          a pattern accepted by github.com/gobwas/glob

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gobwas/glob"
)

// validatorInstance is a shared validator for the application.
// It is initialized once and reused to avoid repeated allocations.
//
//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails on an empty tag or nil func.
		_ = validatorInst.RegisterValidation("bookmark_key", isBookmarkKey)
		_ = validatorInst.RegisterValidation("glob", isGlob)
	})
	return validatorInst
}

func isBookmarkKey(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

func isGlob(fl validator.FieldLevel) bool {
	_, err := glob.Compile(fl.Field().String())
	return err == nil
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
