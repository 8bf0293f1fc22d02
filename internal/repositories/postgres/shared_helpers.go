package postgres

import (
	"errors"
	"fmt"

	"github.com/SAP-F-2025/tool-assessment-service/internal/repositories"
	"gorm.io/gorm"
)

// scopedDB returns tx when the caller runs inside a transaction
func scopedDB(db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}

// wrapError annotates err with the failed operation and maps missing rows to
// repositories.ErrNotFound
func wrapError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, repositories.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
