package errors

import "fmt"

var (
	// Generales
	ErrNotFound              = fmt.Errorf("registro no encontrado")
	ErrConflicto             = fmt.Errorf("el equipo_id ya está registrado")
	ErrBaseDatosNoDisponible = fmt.Errorf("base de datos no disponible")
	ErrTablaFaltante         = fmt.Errorf("la tabla computadores no existe")

	// Imágenes
	ErrImagenInvalida = fmt.Errorf("la imagen no tiene un formato data-URI válido")
)

// HttpError asocia un error interno con el código y mensaje que ve el cliente.
type HttpError struct {
	Code     int
	Message  string
	Err      error
	Detalles interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, detalles interface{}) *HttpError {
	return &HttpError{
		Code:     code,
		Message:  message,
		Err:      err,
		Detalles: detalles,
	}
}
