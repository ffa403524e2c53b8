package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
)

// Import pipeline error kinds. The processor maps these to the
// error_message persisted on a failed import.
var (
	// ErrOCRNotConfigured means a required OCR binary is missing. This is a
	// deployment problem, not a "no text in document" outcome.
	ErrOCRNotConfigured = errors.New("OCR no configurado")

	// ErrNoText means no extractor could obtain any text from the document.
	ErrNoText = errors.New("no se pudo extraer texto del documento")

	// ErrInvalidAIResponse means the model reply contained no parseable JSON object.
	ErrInvalidAIResponse = errors.New("respuesta de IA inválida")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
