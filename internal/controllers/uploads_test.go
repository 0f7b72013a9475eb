package controllers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"computadores-api/pkg/config"
	"computadores-api/pkg/filestorage"
)

// stubStore cubre lo mínimo que usa el controlador en modo remoto.
type stubStore struct {
	url string
	ok  bool
}

func (s *stubStore) Save(_ context.Context, _, _ string, _ []byte, _ string) (filestorage.StoredImage, error) {
	return filestorage.StoredImage{}, nil
}
func (s *stubStore) Exists(_ string) bool              { return true }
func (s *stubStore) Delete(_ string) error             { return nil }
func (s *stubStore) PublicURL(_ string) (string, bool) { return s.url, s.ok }
func (s *stubStore) Healthy(_ context.Context) error   { return nil }
func (s *stubStore) Mode() string                      { return config.StorageModeRemoto }

func newLocalUploads(t *testing.T) (*UploadsController, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := filestorage.NewLocalStore(dir, "http://localhost:3000")
	require.NoError(t, err)
	return NewUploadsController(config.StorageModeLocal, dir, store, zap.NewNop()), dir
}

func TestServirArchivo_Local(t *testing.T) {
	ctrl, dir := newLocalUploads(t)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "PC001"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "PC001", "foto.png"), []byte("png falso"), 0o644))

	ctx, rec := newTestContext(http.MethodGet, "/uploads/PC001/foto.png", "")
	ctx.SetParamNames("*")
	ctx.SetParamValues("PC001/foto.png")

	require.NoError(t, ctrl.ServirArchivo(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "png falso", rec.Body.String())
}

func TestServirArchivo_NoEncontrado(t *testing.T) {
	ctrl, _ := newLocalUploads(t)

	ctx, rec := newTestContext(http.MethodGet, "/uploads/PC001/nada.png", "")
	ctx.SetParamNames("*")
	ctx.SetParamValues("PC001/nada.png")

	require.NoError(t, ctrl.ServirArchivo(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Archivo no encontrado", decodeBody(t, rec)["error"])
}

func TestServirArchivo_TraversalAncladoAlDirectorio(t *testing.T) {
	ctrl, dir := newLocalUploads(t)

	// un archivo hermano del directorio de uploads no debe ser alcanzable
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(dir), "secreto.txt"), []byte("x"), 0o644))

	ctx, rec := newTestContext(http.MethodGet, "/uploads/x", "")
	ctx.SetParamNames("*")
	ctx.SetParamValues("../secreto.txt")

	require.NoError(t, ctrl.ServirArchivo(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServirArchivo_RemotoRedirige(t *testing.T) {
	store := &stubStore{url: "https://bucket.example.com/PC001/foto.jpg", ok: true}
	ctrl := NewUploadsController(config.StorageModeRemoto, "", store, zap.NewNop())

	ctx, rec := newTestContext(http.MethodGet, "/uploads/PC001/foto.jpg", "")
	ctx.SetParamNames("*")
	ctx.SetParamValues("PC001/foto.jpg")

	require.NoError(t, ctrl.ServirArchivo(ctx))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://bucket.example.com/PC001/foto.jpg", rec.Header().Get(echo.HeaderLocation))
}

func TestTipoContenido(t *testing.T) {
	assert.Equal(t, "image/jpeg", tipoContenido("a.JPG"))
	assert.Equal(t, "image/png", tipoContenido("a.png"))
	assert.Equal(t, "image/webp", tipoContenido("a.webp"))
	assert.Equal(t, "application/octet-stream", tipoContenido("a.bin"))
}
