package filestorage

import (
	"context"

	"computadores-api/pkg/config"
)

// HybridStore escribe imágenes nuevas en disco local pero deja pasar
// referencias remotas heredadas (URLs completas) sin tocarlas.
type HybridStore struct {
	local *LocalStore
}

func NewHybridStore(local *LocalStore) *HybridStore {
	return &HybridStore{local: local}
}

func (s *HybridStore) Save(ctx context.Context, equipoID, name string, data []byte, contentType string) (StoredImage, error) {
	return s.local.Save(ctx, equipoID, name, data, contentType)
}

func (s *HybridStore) Exists(ref string) bool {
	if EsURLCompleta(ref) {
		return true
	}
	return s.local.Exists(ref)
}

// Delete solo elimina archivos locales; los objetos remotos heredados
// quedan bajo control del servicio que los aloja.
func (s *HybridStore) Delete(ref string) error {
	if EsURLCompleta(ref) {
		return nil
	}
	return s.local.Delete(ref)
}

func (s *HybridStore) PublicURL(ref string) (string, bool) {
	if EsURLCompleta(ref) {
		return ref, true
	}
	return s.local.PublicURL(ref)
}

func (s *HybridStore) Healthy(ctx context.Context) error {
	return s.local.Healthy(ctx)
}

func (s *HybridStore) Mode() string { return config.StorageModeHibrido }
