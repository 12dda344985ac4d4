package repository

import (
	"errors"

	"gorm.io/gorm"
)

// duplicateAs replaces a unique violation reported by the driver with
// exists. It relies on the connection being opened with TranslateError.
func duplicateAs(err, exists error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return exists
	}
	return err
}
