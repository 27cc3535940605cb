package implementation

import (
	"errors"

	"noteboard-be/internal/pkg/apperror"

	"gorm.io/gorm"
)

// translateWriteError turns a unique index violation into a DuplicateValue
// error. It relies on the connection being opened with TranslateError.
func translateWriteError(err error, duplicateMessage string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Duplicate(duplicateMessage).WithCause(err)
	}
	return err
}
