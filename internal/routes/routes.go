package routes

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"computadores-api/internal/bootstrap"
	"computadores-api/internal/controllers"
	"computadores-api/internal/repositories"
	"computadores-api/internal/services"
	"computadores-api/pkg/config"
	"computadores-api/pkg/filestorage"
	"computadores-api/pkg/middleware"
)

// endpoints enumera las rutas disponibles para la respuesta 404.
var endpoints = []string{
	"GET /api/health",
	"GET /api/computadores",
	"GET /api/computadores/:id",
	"POST /api/computadores",
	"PUT /api/computadores/:id",
	"DELETE /api/computadores/:id",
	"GET /api/estadisticas",
	"GET /api/export/excel",
	"GET /uploads/*",
}

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	store filestorage.ImageStore,
	probe *bootstrap.Probe,
	cfg *config.Config,
	logger *zap.Logger,
) {
	// --- REPOSITORIOS ---
	computadorRepo := repositories.NewComputadorRepository(dbConn)

	// --- SERVICIOS ---
	imagenService := services.NewImagenService(store, logger)
	computadorService := services.NewComputadorService(computadorRepo, imagenService, logger)

	// --- CONTROLADORES ---
	computadorCtrl := controllers.NewComputadorController(computadorService, logger)
	estadisticasCtrl := controllers.NewEstadisticasController(computadorService, logger)
	exportCtrl := controllers.NewExportController(computadorService, logger)
	saludCtrl := controllers.NewSaludController(probe, store)
	uploadsCtrl := controllers.NewUploadsController(cfg.Storage.Mode, cfg.Storage.UploadsDir, store, logger)

	// --- RUTAS ---
	api := e.Group("/api")
	api.GET("/health", saludCtrl.Health)

	// Los endpoints de registros quedan detrás del gate de readiness.
	registros := api.Group("", middleware.RequireDatabase(probe))
	runComputadorRouter(registros, computadorCtrl)
	registros.GET("/estadisticas", estadisticasCtrl.GetEstadisticas)
	registros.GET("/export/excel", exportCtrl.GetExport)

	e.GET("/uploads/*", uploadsCtrl.ServirArchivo)

	e.RouteNotFound("/*", rutaNoEncontrada)
}

func rutaNoEncontrada(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, map[string]interface{}{
		"error":     "Ruta no encontrada",
		"endpoints": endpoints,
	})
}
