// Package apperr defines the error kinds shared by the store, the line item
// ledger and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrValidation is matched by every ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is matched by every ConflictError.
	ErrConflict = errors.New("conflict")
)

// NotFoundError reports a referenced row that does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError reports input that breaks a field constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ConflictError reports a unique or foreign key violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

func NotFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// Postgres SQLSTATE codes that map onto the taxonomy.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgInvalidText         = "22P02"
	pgNumericOutOfRange   = "22003"
)

// FromDB translates store errors into the taxonomy. Errors that already
// belong to it, and errors it does not recognise, are returned unchanged.
func FromDB(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) || errors.Is(err, ErrConflict) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity}
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return Conflict("%s already exists (%s)", entity, pgErr.ConstraintName)
	case pgForeignKeyViolation:
		return Conflict("%s references a missing or still referenced row (%s)", entity, pgErr.ConstraintName)
	case pgCheckViolation, pgNotNullViolation:
		return &ValidationError{Field: pgErr.ColumnName, Message: fmt.Sprintf("%s violates %s", entity, pgErr.ConstraintName)}
	case pgInvalidText, pgNumericOutOfRange:
		return &ValidationError{Message: pgErr.Message}
	}
	return err
}

// Status returns the HTTP status for err.
func Status(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
