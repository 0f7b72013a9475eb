package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"computadores-api/internal/services"
	"computadores-api/pkg/utils"
)

type EstadisticasController struct {
	computadorService services.ComputadorServiceInterface
	logger            *zap.Logger
}

func NewEstadisticasController(service services.ComputadorServiceInterface, logger *zap.Logger) *EstadisticasController {
	return &EstadisticasController{
		computadorService: service,
		logger:            logger,
	}
}

func (c *EstadisticasController) GetEstadisticas(ctx echo.Context) error {
	res, err := c.computadorService.GetEstadisticas(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetEstadisticas: error al agregar", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, res)
}
