package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"computadores-api/internal/bootstrap"
	"computadores-api/pkg/filestorage"
)

const version = "1.0.0"

type SaludController struct {
	probe *bootstrap.Probe
	store filestorage.ImageStore
}

func NewSaludController(probe *bootstrap.Probe, store filestorage.ImageStore) *SaludController {
	return &SaludController{
		probe: probe,
		store: store,
	}
}

// Health no pasa por el gate de readiness: reporta el estado aunque la
// base de datos todavía no esté confirmada.
func (c *SaludController) Health(ctx echo.Context) error {
	database := "no disponible"
	if c.probe.DatabaseReady() {
		database = "conectada"
	}

	storage := "disponible"
	if err := c.store.Healthy(ctx.Request().Context()); err != nil {
		storage = "no disponible"
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"database":  database,
		"storage":   storage,
		"uptime":    int64(c.probe.Uptime().Seconds()),
		"mode":      c.probe.StorageMode(),
		"version":   version,
	})
}
