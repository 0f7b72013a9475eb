package filestorage

import (
	"fmt"

	"computadores-api/pkg/config"
)

// NewStore construye el backend de imágenes según el modo configurado.
func NewStore(cfg *config.Config) (ImageStore, error) {
	switch cfg.Storage.Mode {
	case config.StorageModeLocal:
		return NewLocalStore(cfg.Storage.UploadsDir, cfg.Storage.PublicBaseURL)
	case config.StorageModeRemoto:
		return NewMinioStore(cfg.Minio)
	case config.StorageModeHibrido:
		local, err := NewLocalStore(cfg.Storage.UploadsDir, cfg.Storage.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		return NewHybridStore(local), nil
	default:
		return nil, fmt.Errorf("STORAGE_MODE desconocido: %q", cfg.Storage.Mode)
	}
}
