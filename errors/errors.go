package errors

import (
	"errors"
	"fmt"
)

// ErrorCode define el código de error
type ErrorCode string

const (
	// Auth
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeUserExists         ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail       ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone       ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidUserType    ErrorCode = "INVALID_USER_TYPE"

	// Propiedades
	ErrCodeInvalidArea   ErrorCode = "INVALID_AREA"
	ErrCodeInvalidType   ErrorCode = "INVALID_TYPE"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
	ErrCodeNotOwner      ErrorCode = "NOT_OWNER"

	// Consultas / WhatsApp
	ErrCodeInvalidDates    ErrorCode = "INVALID_DATES"
	ErrCodeInvalidGuests   ErrorCode = "INVALID_GUESTS"
	ErrCodeInvalidWhatsapp ErrorCode = "INVALID_WHATSAPP"

	// Base de datos
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validación
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError define un error de la aplicación
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError crea un AppError nuevo
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError extrae el AppError de un error, o nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUserAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")

	ErrPropertyNotFound  = errors.New("propiedad no encontrada")
	ErrOwnerRequired     = errors.New("owner_id requerido")
	ErrOwnerMismatch     = errors.New("la propiedad pertenece a otro usuario")
	ErrOwnerNotOwnerType = errors.New("el usuario no es propietario")

	ErrInquiryNotFound = errors.New("consulta no encontrada")
	ErrInvalidPhone    = errors.New("número de teléfono inválido")
)
