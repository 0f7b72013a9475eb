package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "computadores-api/pkg/errors"
)

// ErrorResponse traduce cualquier error del pipeline al envelope de error
// del API: {error, detalles?}.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
			)
		}
		body := map[string]interface{}{"error": httpErr.Message}
		if httpErr.Detalles != nil {
			body["detalles"] = httpErr.Detalles
		}
		return c.JSON(httpErr.Code, body)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return validationErrorResponse(c, validationErrors)
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]interface{}{"error": "Computador no encontrado"})
	case errors.Is(err, apperrors.ErrConflicto):
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": apperrors.ErrConflicto.Error()})
	case errors.Is(err, apperrors.ErrBaseDatosNoDisponible):
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": apperrors.ErrBaseDatosNoDisponible.Error()})
	}

	logger.Error("Error inesperado", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error":    "Error interno del servidor",
		"detalles": err.Error(),
	})
}

// validationErrorResponse separa los campos ausentes de los inválidos para
// que el cliente reciba la lista exacta de lo que faltó.
func validationErrorResponse(c echo.Context, errs validator.ValidationErrors) error {
	var faltantes []string
	var invalidos []string
	for _, fe := range errs {
		if fe.Tag() == "required" {
			faltantes = append(faltantes, fe.Field())
		} else {
			invalidos = append(invalidos, fe.Field())
		}
	}

	detalles := map[string]interface{}{}
	if len(faltantes) > 0 {
		detalles["campos_faltantes"] = faltantes
	}
	if len(invalidos) > 0 {
		detalles["campos_invalidos"] = invalidos
	}

	mensaje := "Datos inválidos"
	if len(faltantes) > 0 {
		mensaje = "Campos requeridos faltantes"
	}

	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"error":    mensaje,
		"detalles": detalles,
	})
}
