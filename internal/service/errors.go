package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

// Base kinds. Transport maps these to status codes; anything that wraps none of
// them is an internal error.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrAuthRequired = errors.New("authentication required")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
)

var (
	ErrPlaceNotFound         = fmt.Errorf("%w: place not found", ErrNotFound)
	ErrBookingNotFound       = fmt.Errorf("%w: booking not found", ErrNotFound)
	ErrUserNotFound          = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrFavoriteAlreadyExists = fmt.Errorf("%w: place already in favorites", ErrConflict)
	ErrFavoriteNotFound      = fmt.Errorf("%w: favorite not found", ErrConflict)
	ErrInvalidCredentials    = fmt.Errorf("%w: invalid email or password", ErrAuthRequired)
	ErrInvalidSession        = fmt.Errorf("%w: session expired or revoked", ErrAuthRequired)
	ErrEmailTaken            = fmt.Errorf("%w: email already registered", ErrValidation)
	ErrBookingForbidden      = fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
	ErrAdminRequired         = fmt.Errorf("%w: administrator access required", ErrForbidden)
	ErrImageUploadDisabled   = errors.New("image storage is not configured")
)

// validationError reports a ValidationError for the named field.
func validationError(field, problem string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, problem)
}

func missingField(field string) error {
	return validationError(field, "is required")
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, ports.ErrDuplicate) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Message strips the kind prefix so the caller sees only the specific reason.
func Message(err error) string {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrAuthRequired, ErrForbidden, ErrConflict} {
		if errors.Is(err, kind) {
			return strings.TrimPrefix(err.Error(), kind.Error()+": ")
		}
	}
	return err.Error()
}
