package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator - envoltura para usar go-playground/validator desde Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implementa la interfaz echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New crea y configura el validador.
func New() *CustomValidator {
	v := validator.New()

	// Los errores de validación se reportan con el nombre JSON del campo,
	// que es el que el cliente envió.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerNullTypes(v)

	return &CustomValidator{validator: v}
}
