package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"computadores-api/internal/entities"
	"computadores-api/internal/services"
	"computadores-api/pkg/utils"
)

type ExportController struct {
	computadorService services.ComputadorServiceInterface
	logger            *zap.Logger
}

func NewExportController(service services.ComputadorServiceInterface, logger *zap.Logger) *ExportController {
	return &ExportController{
		computadorService: service,
		logger:            logger,
	}
}

// GetExport devuelve las filas aplanadas como JSON; con ?format=xlsx
// genera la planilla real.
func (c *ExportController) GetExport(ctx echo.Context) error {
	filas, err := c.computadorService.GetExport(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetExport: error al exportar", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		return c.respondWithXLSX(ctx, filas)
	}

	return ctx.JSON(http.StatusOK, filas)
}

var exportHeaders = []interface{}{
	"Equipo ID", "Serial Number", "Etiqueta Activo", "Responsable", "Cargo", "Estado",
	"Windows Update", "Ubicación", "Notas", "Problemas Detectados", "Fecha Revisión",
	"Revisor", "Imágenes",
}

func filaASlice(fila entities.FilaExport) []interface{} {
	return []interface{}{
		fila.EquipoID, fila.SerialNumber, fila.EtiquetaActivo, fila.Responsable, fila.Cargo,
		fila.Estado, fila.WindowsUpdate, fila.Ubicacion, fila.Notas, fila.ProblemasDetectados,
		fila.FechaRevision, fila.Revisor, fila.Imagenes,
	}
}

func (c *ExportController) respondWithXLSX(ctx echo.Context, filas []entities.FilaExport) error {
	f := excelize.NewFile()
	sheet := "Computadores"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &exportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "M1", style)

	for i, fila := range filas {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		datos := filaASlice(fila)
		f.SetSheetRow(sheet, cell, &datos)
	}

	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="computadores.xlsx"`)
	ctx.Response().WriteHeader(http.StatusOK)

	return f.Write(ctx.Response().Writer)
}
