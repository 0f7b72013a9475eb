package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"

	"computadores-api/internal/bootstrap"
	"computadores-api/internal/routes"
	"computadores-api/migrations"
	"computadores-api/pkg/config"
	"computadores-api/pkg/database/postgresql"
	apperrors "computadores-api/pkg/errors"
	"computadores-api/pkg/filestorage"
	applogger "computadores-api/pkg/logger"
	"computadores-api/pkg/middleware"
	"computadores-api/pkg/utils"
	"computadores-api/pkg/validation"
)

func main() {
	e := echo.New()
	e.HideBanner = true
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("configuración inválida", zap.Error(err))
	}

	e.Use(echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic en el pipeline de la petición",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Error interno del servidor", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.Use(middleware.RequestLogger(logger))

	e.Validator = validation.New()

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	if cfg.Postgres.RunMigrations {
		if err := runMigrations(cfg.Postgres.DSN); err != nil {
			logger.Fatal("error aplicando migraciones", zap.Error(err))
		}
		logger.Info("migraciones aplicadas")
	}

	store, err := filestorage.NewStore(cfg)
	if err != nil {
		logger.Fatal("no se pudo inicializar el almacenamiento de imágenes", zap.Error(err))
	}

	probe := bootstrap.NewProbe(cfg.Storage.Mode)

	// La verificación corre aparte: los endpoints de registros responden
	// "base de datos no disponible" hasta que la tabla esté confirmada.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := bootstrap.VerificarTabla(ctx, dbConn); err != nil {
			logger.Fatal("la tabla computadores no es alcanzable", zap.Error(err))
		}
		probe.MarkDatabaseReady()
		logger.Info("tabla computadores verificada, endpoints habilitados")
	}()

	routes.InitRouter(e, dbConn, store, probe, cfg, logger)

	logger.Info("🚀 Servidor iniciado",
		zap.String("port", cfg.Server.Port),
		zap.String("storage_mode", cfg.Storage.Mode),
	)
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("error iniciando el servidor", zap.Error(err))
	}
}

func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
