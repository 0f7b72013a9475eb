package filestorage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(t.TempDir(), "http://localhost:3000")
	require.NoError(t, err)
	return store
}

func TestLocalStore_SaveYExists(t *testing.T) {
	store := newTestLocalStore(t)

	stored, err := store.Save(context.Background(), "PC-001", "foto.png", []byte("contenido"), "image/png")

	require.NoError(t, err)
	assert.Equal(t, "PC001/foto.png", stored.Ref)
	assert.Equal(t, "http://localhost:3000/uploads/PC001/foto.png", stored.URL)
	assert.Equal(t, int64(len("contenido")), stored.Size)
	assert.Equal(t, KindLocal, stored.Kind)

	assert.True(t, store.Exists(stored.Ref))
	assert.False(t, store.Exists("PC001/otra.png"))
}

func TestLocalStore_Delete(t *testing.T) {
	store := newTestLocalStore(t)

	stored, err := store.Save(context.Background(), "PC-001", "foto.png", []byte("x"), "image/png")
	require.NoError(t, err)

	require.NoError(t, store.Delete(stored.Ref))
	assert.False(t, store.Exists(stored.Ref))

	// borrar algo que ya no está no es un error
	assert.NoError(t, store.Delete(stored.Ref))
}

func TestLocalStore_RechazaRutasQueEscapan(t *testing.T) {
	store := newTestLocalStore(t)

	assert.False(t, store.Exists("../../etc/passwd"))
	assert.Error(t, store.Delete("../fuera.png"))
}

func TestLocalStore_PublicURL(t *testing.T) {
	store := newTestLocalStore(t)

	url, ok := store.PublicURL("PC001/foto.png")
	require.True(t, ok)
	assert.Equal(t, "http://localhost:3000/uploads/PC001/foto.png", url)

	// una URL completa pasa sin tocar
	url, ok = store.PublicURL("https://cdn.example.com/foto.png")
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/foto.png", url)
}

func TestLocalStore_Healthy(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:3000")
	require.NoError(t, err)

	assert.NoError(t, store.Healthy(context.Background()))

	require.NoError(t, os.RemoveAll(dir))
	assert.Error(t, store.Healthy(context.Background()))
}

func TestLocalStore_CreaDirectorioBase(t *testing.T) {
	base := filepath.Join(t.TempDir(), "uploads")

	_, err := NewLocalStore(base, "http://localhost:3000")

	require.NoError(t, err)
	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSanitizeEquipoID(t *testing.T) {
	assert.Equal(t, "PC001", SanitizeEquipoID("PC-001"))
	assert.Equal(t, "equipo", SanitizeEquipoID("../.."))
	assert.Equal(t, "equipo", SanitizeEquipoID(""))
	assert.Equal(t, "Sala3PC", SanitizeEquipoID("Sala 3 / PC"))
}

func TestEsURLCompleta(t *testing.T) {
	assert.True(t, EsURLCompleta("https://bucket.example.com/a.png"))
	assert.True(t, EsURLCompleta("http://localhost/a.png"))
	assert.False(t, EsURLCompleta("PC001/a.png"))
	assert.False(t, EsURLCompleta("/uploads/PC001/a.png"))
}
