package filestorage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"computadores-api/pkg/config"
)

func newTestHybridStore(t *testing.T) *HybridStore {
	t.Helper()
	local, err := NewLocalStore(t.TempDir(), "http://localhost:3000")
	require.NoError(t, err)
	return NewHybridStore(local)
}

func TestHybridStore_ExistsDejaPasarURLs(t *testing.T) {
	store := newTestHybridStore(t)

	assert.True(t, store.Exists("https://bucket.example.com/PC001/vieja.jpg"))
	assert.False(t, store.Exists("PC001/inexistente.png"))
}

func TestHybridStore_SaveEscribeEnLocal(t *testing.T) {
	store := newTestHybridStore(t)

	stored, err := store.Save(context.Background(), "PC-001", "foto.png", []byte("x"), "image/png")

	require.NoError(t, err)
	assert.Equal(t, KindLocal, stored.Kind)
	assert.True(t, store.Exists(stored.Ref))
}

func TestHybridStore_DeleteIgnoraRemotas(t *testing.T) {
	store := newTestHybridStore(t)

	stored, err := store.Save(context.Background(), "PC-001", "foto.png", []byte("x"), "image/png")
	require.NoError(t, err)

	assert.NoError(t, store.Delete("https://bucket.example.com/PC001/vieja.jpg"))
	assert.True(t, store.Exists(stored.Ref))

	require.NoError(t, store.Delete(stored.Ref))
	assert.False(t, store.Exists(stored.Ref))
}

func TestHybridStore_Mode(t *testing.T) {
	assert.Equal(t, config.StorageModeHibrido, newTestHybridStore(t).Mode())
}
