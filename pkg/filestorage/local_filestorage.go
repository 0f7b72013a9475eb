package filestorage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"computadores-api/pkg/config"
)

type LocalStore struct {
	basePath string
	baseURL  string
}

func NewLocalStore(basePath, baseURL string) (*LocalStore, error) {
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		if err := os.MkdirAll(basePath, 0o755); err != nil {
			return nil, fmt.Errorf("no se pudo crear el directorio de uploads: %w", err)
		}
	}
	return &LocalStore{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *LocalStore) Save(_ context.Context, equipoID, name string, data []byte, _ string) (StoredImage, error) {
	dir := SanitizeEquipoID(equipoID)
	fullDir := filepath.Join(s.basePath, dir)
	if err := os.MkdirAll(fullDir, 0o755); err != nil {
		return StoredImage{}, err
	}

	fullPath := filepath.Join(fullDir, name)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return StoredImage{}, err
	}

	ref := filepath.ToSlash(filepath.Join(dir, name))
	return StoredImage{
		Ref:  ref,
		URL:  s.baseURL + "/uploads/" + ref,
		Size: int64(len(data)),
		Kind: KindLocal,
	}, nil
}

func (s *LocalStore) Exists(ref string) bool {
	full, err := s.fullPath(ref)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && !info.IsDir()
}

func (s *LocalStore) Delete(ref string) error {
	full, err := s.fullPath(ref)
	if err != nil {
		return err
	}
	// Si el archivo ya no está, la operación se considera exitosa.
	if _, err := os.Stat(full); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(full)
}

func (s *LocalStore) PublicURL(ref string) (string, bool) {
	if EsURLCompleta(ref) {
		return ref, true
	}
	return s.baseURL + "/uploads/" + strings.TrimPrefix(ref, "/"), true
}

func (s *LocalStore) Healthy(_ context.Context) error {
	info, err := os.Stat(s.basePath)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s no es un directorio", s.basePath)
	}
	return nil
}

func (s *LocalStore) Mode() string { return config.StorageModeLocal }

// fullPath resuelve una referencia dentro de basePath rechazando rutas
// que escapan del directorio.
func (s *LocalStore) fullPath(ref string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(ref, "/")))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("referencia fuera del directorio de uploads: %q", ref)
	}
	return filepath.Join(s.basePath, clean), nil
}
