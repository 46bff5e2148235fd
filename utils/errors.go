package utils

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

type ErrorKind string

const (
	KindValidation ErrorKind = "ValidationError"
	KindOrder      ErrorKind = "OrderError"
	KindNotFound   ErrorKind = "NotFound"
	KindDatabase   ErrorKind = "DatabaseError"
)

// AppError carries the kind of failure up to the handler that reports it.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewValidationError(message string, err error) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Err: err}
}

func NewOrderError(message string, err error) *AppError {
	return &AppError{Kind: KindOrder, Message: message, Err: err}
}

func NewNotFoundError(message string, err error) *AppError {
	return &AppError{Kind: KindNotFound, Message: message, Err: err}
}

func NewDatabaseError(message string, err error) *AppError {
	return &AppError{Kind: KindDatabase, Message: message, Err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// HandleError writes err in the ErrorResponse shape with a status matching its kind.
// Database failures are logged and reported with a generic message.
func HandleError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error", nil)
	}
	switch appErr.Kind {
	case KindValidation:
		return ErrorResponse(c, fiber.StatusBadRequest, appErr.Message, appErr.Err)
	case KindOrder:
		return ErrorResponse(c, fiber.StatusUnprocessableEntity, appErr.Message, appErr.Err)
	case KindNotFound:
		return ErrorResponse(c, fiber.StatusNotFound, appErr.Message, appErr.Err)
	default:
		log.Printf("%s %s: %v", c.Method(), c.Path(), appErr)
		return ErrorResponse(c, fiber.StatusInternalServerError, appErr.Message, nil)
	}
}
