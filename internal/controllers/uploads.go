package controllers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"computadores-api/pkg/config"
	"computadores-api/pkg/filestorage"
)

// UploadsController sirve los archivos guardados localmente o redirige a
// la URL pública del objeto según el modo de despliegue.
type UploadsController struct {
	modo   string
	dir    string
	store  filestorage.ImageStore
	logger *zap.Logger
}

func NewUploadsController(modo, dir string, store filestorage.ImageStore, logger *zap.Logger) *UploadsController {
	return &UploadsController{
		modo:   modo,
		dir:    dir,
		store:  store,
		logger: logger,
	}
}

func (c *UploadsController) ServirArchivo(ctx echo.Context) error {
	ruta := ctx.Param("*")

	if c.modo == config.StorageModeRemoto {
		url, ok := c.store.PublicURL(ruta)
		if !ok {
			return ctx.JSON(http.StatusNotFound, map[string]interface{}{"error": "Archivo no encontrado"})
		}
		return ctx.Redirect(http.StatusFound, url)
	}

	// Clean ancla la ruta dentro del directorio de uploads.
	limpia := strings.TrimPrefix(path.Clean("/"+ruta), "/")
	full := filepath.Join(c.dir, filepath.FromSlash(limpia))

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return ctx.JSON(http.StatusNotFound, map[string]interface{}{"error": "Archivo no encontrado"})
	}

	f, err := os.Open(full)
	if err != nil {
		c.logger.Error("no se pudo abrir el archivo", zap.String("ruta", full), zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, map[string]interface{}{"error": "Error interno del servidor"})
	}
	defer f.Close()

	ctx.Response().Header().Set("Access-Control-Allow-Origin", "*")
	ctx.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return ctx.Stream(http.StatusOK, tipoContenido(full), f)
}

func tipoContenido(nombre string) string {
	switch strings.ToLower(filepath.Ext(nombre)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
