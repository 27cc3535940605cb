package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"noteboard-be/internal/pkg/apperror"
	"noteboard-be/internal/pkg/security"
)

// Column limits, mirrored from the model definitions.
const (
	maxUsernameLength    = 50
	maxRoleLength        = 20
	maxTitleLength       = 100
	maxDescriptionLength = 255
	maxContentLength     = 999
	maxTagNameLength     = 100
)

// patchValue resolves an optional PATCH field. A field that is absent, or
// blank after trimming, is not applied.
func patchValue(field *string) (string, bool) {
	if field == nil {
		return "", false
	}
	value := strings.TrimSpace(*field)
	return value, value != ""
}

// required trims value and fails with message when nothing is left.
func required(value, message string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperror.Validation(message)
	}
	return value, nil
}

func checkLength(label, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return apperror.Validation(fmt.Sprintf("%s must be at most %d characters", label, max))
	}
	return nil
}

func hashPassword(hasher security.PasswordHasher, plain string) (string, error) {
	hash, err := hasher.Hash(plain)
	if errors.Is(err, security.ErrPasswordTooLong) {
		return "", apperror.Validation("Password must be at most 72 bytes")
	}
	return hash, err
}
