package validator

import (
	"fmt"
	"regexp"
	"time"

	"desdeaca/dto"
	"desdeaca/errors"
	"desdeaca/models"

	"github.com/gin-gonic/gin/binding"
	validatorv10 "github.com/go-playground/validator/v10"
)

const (
	MinTitleLen       = 5
	MinDescriptionLen = 20
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
var phoneRegex = regexp.MustCompile(`^[+]?[0-9\-\s()]{8,20}$`)

// RegisterCustomValidations agrega el tag "sanjuanarea" al validador
// que usa gin para binding.
func RegisterCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validatorv10.Validate); ok {
		v.RegisterValidation("sanjuanarea", func(fl validatorv10.FieldLevel) bool {
			return models.ValidArea(fl.Field().String())
		})
	}
}

// ValidateProperty valida un alta de propiedad y devuelve TODOS los
// problemas juntos, no solo el primero, para que el cliente pueda
// mostrarlos de una.
func ValidateProperty(req *dto.PropertyRequest) []string {
	var errs []string

	if req.OwnerID == 0 {
		errs = append(errs, "owner_id es requerido")
	}
	if len(req.Title) < MinTitleLen {
		errs = append(errs, fmt.Sprintf("el título debe tener al menos %d caracteres", MinTitleLen))
	}
	if len(req.Description) < MinDescriptionLen {
		errs = append(errs, fmt.Sprintf("la descripción debe tener al menos %d caracteres", MinDescriptionLen))
	}
	if !models.ValidArea(req.Area) {
		errs = append(errs, fmt.Sprintf("zona inválida: %q", req.Area))
	}
	if !models.ValidPropertyType(req.PropertyType) {
		errs = append(errs, fmt.Sprintf("tipo de propiedad inválido: %q", req.PropertyType))
	}
	if req.PriceDaily <= 0 {
		errs = append(errs, "el precio diario debe ser mayor a cero")
	}
	if req.Capacity < 1 {
		errs = append(errs, "la capacidad debe ser al menos 1")
	}

	return errs
}

// ValidateRegister valida un registro de usuario.
func ValidateRegister(input *dto.RegisterInput) error {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email, contraseña y nombre son requeridos", nil)
	}
	if !emailRegex.MatchString(input.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Formato de email inválido", nil)
	}
	if len(input.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "La contraseña debe tener al menos 6 caracteres", nil)
	}
	if input.Phone != "" && !phoneRegex.MatchString(input.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Formato de teléfono inválido", nil)
	}
	if input.WhatsappNumber != "" && !phoneRegex.MatchString(input.WhatsappNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Formato de número de WhatsApp inválido", nil)
	}
	if input.UserType != "" && !models.ValidUserType(input.UserType) {
		return errors.NewAppError(errors.ErrCodeInvalidUserType, "Tipo de usuario inválido", nil)
	}
	return nil
}

// ValidateStayDates valida las fechas de una consulta detallada:
// check-in no anterior a hoy (el mismo día vale) y check-out
// estrictamente posterior al check-in.
func ValidateStayDates(checkIn, checkOut time.Time, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, now.Location())
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, now.Location())

	if in.Before(today) {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "La fecha de entrada no puede ser anterior a hoy", nil)
	}
	if !out.After(in) {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "La fecha de salida debe ser posterior a la fecha de entrada", nil)
	}
	return nil
}

// ValidateEmail valida formato de email.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email inválido", nil)
	}
	return nil
}
