package repository

import (
	"errors"
	"fmt"

	"github.com/amirasaad/bankcore/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors.
// This keeps infrastructure concerns (database errors) within the infrastructure layer.
// Traverses the error chain to find GORM errors and maps them to appropriate domain errors.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	// GORM wraps database errors, so we check each level
	currentErr := err
	for currentErr != nil {
		switch {
		case errors.Is(currentErr, gorm.ErrDuplicatedKey):
			return domain.ErrAlreadyExists
		case errors.Is(currentErr, gorm.ErrRecordNotFound):
			return domain.ErrNotFound
		case errors.Is(currentErr, gorm.ErrCheckConstraintViolated):
			return fmt.Errorf("%w: %v", domain.ErrValidation, currentErr)
		}

		currentErr = errors.Unwrap(currentErr)
	}

	// Return original error if no mapping found
	return err
}

// WrapError runs a GORM operation and maps its error. Errors without a
// domain mapping are reported as *domain.PersistenceError for op.
//
// Usage:
//
//	err := WrapError("create account", func() error {
//	    return r.db.WithContext(ctx).Create(&m).Error
//	})
func WrapError(op string, fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	mapped := MapGormErrorToDomain(err)
	if errors.Is(mapped, domain.ErrNotFound) ||
		errors.Is(mapped, domain.ErrAlreadyExists) ||
		errors.Is(mapped, domain.ErrValidation) {
		return mapped
	}
	return domain.NewPersistenceError(op, err)
}
