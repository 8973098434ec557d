package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"yatube/internal/core/errs"
)

// translate maps gorm's errors onto the domain taxonomy so services and
// handlers never have to import gorm. Requires TranslateError on the gorm
// config for duplicate-key detection.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", errs.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", errs.ErrConflict, err)
	default:
		return err
	}
}
