package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"computadores-api/internal/bootstrap"
)

// RequireDatabase bloquea los endpoints de registros hasta que el arranque
// haya confirmado que la tabla remota es alcanzable.
func RequireDatabase(probe *bootstrap.Probe) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !probe.DatabaseReady() {
				return c.JSON(http.StatusInternalServerError, map[string]interface{}{
					"error": "Base de datos no disponible",
				})
			}
			return next(c)
		}
	}
}
