package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"computadores-api/internal/dto"
	"computadores-api/internal/services"
	apperrors "computadores-api/pkg/errors"
	"computadores-api/pkg/utils"
)

type ComputadorController struct {
	computadorService services.ComputadorServiceInterface
	logger            *zap.Logger
}

func NewComputadorController(
	service services.ComputadorServiceInterface,
	logger *zap.Logger,
) *ComputadorController {
	return &ComputadorController{
		computadorService: service,
		logger:            logger,
	}
}

func (c *ComputadorController) GetComputadores(ctx echo.Context) error {
	filtro := dto.ListFilterDTO{
		Estado:       ctx.QueryParam("estado"),
		Responsable:  ctx.QueryParam("responsable"),
		EquipoID:     ctx.QueryParam("equipo_id"),
		SerialNumber: ctx.QueryParam("serial_number"),
		Revisor:      ctx.QueryParam("revisor"),
	}

	res, err := c.computadorService.GetComputadores(ctx.Request().Context(), filtro)
	if err != nil {
		c.logger.Error("GetComputadores: error al listar", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *ComputadorController) FindComputador(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.computadorService.FindComputador(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *ComputadorController) CreateComputador(ctx echo.Context) error {
	var payload dto.CreateComputadorDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición inválido", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.computadorService.CreateComputador(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateComputador: error al crear", zap.String("equipo_id", payload.EquipoID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusCreated, res)
}

func (c *ComputadorController) UpdateComputador(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateComputadorDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición inválido", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.computadorService.UpdateComputador(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateComputador: error al actualizar", zap.Int64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *ComputadorController) DeleteComputador(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.computadorService.DeleteComputador(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteComputador: error al eliminar", zap.Int64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"message": "Computador eliminado correctamente",
	})
}

func parseID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"Formato de ID inválido",
			err,
			map[string]interface{}{"param": ctx.Param("id")},
		)
	}
	return id, nil
}
