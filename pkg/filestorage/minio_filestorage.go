package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"computadores-api/pkg/config"
)

type MinioStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

// NewMinioStore inicializa el cliente de MinIO y garantiza que el bucket exista.
func NewMinioStore(cfg config.MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		log.Printf("Bucket %s creado\n", cfg.Bucket)
	}

	return &MinioStore{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: cfg.Endpoint,
		useSSL:   cfg.UseSSL,
	}, nil
}

func (s *MinioStore) Save(ctx context.Context, equipoID, name string, data []byte, contentType string) (StoredImage, error) {
	key := SanitizeEquipoID(equipoID) + "/" + name

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return StoredImage{}, fmt.Errorf("no se pudo subir el objeto %s: %w", key, err)
	}

	url, _ := s.PublicURL(key)
	return StoredImage{
		Ref:  key,
		URL:  url,
		Size: int64(len(data)),
		Kind: KindRemota,
	}, nil
}

// Exists conserva las referencias remotas sin comprobar el objeto:
// el bucket es la autoridad y una verificación por item encarecería cada lectura.
func (s *MinioStore) Exists(_ string) bool { return true }

func (s *MinioStore) Delete(ref string) error {
	return s.client.RemoveObject(context.Background(), s.bucket, ref, minio.RemoveObjectOptions{})
}

func (s *MinioStore) PublicURL(ref string) (string, bool) {
	if EsURLCompleta(ref) {
		return ref, true
	}
	if ref == "" {
		return "", false
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, ref), true
}

func (s *MinioStore) Healthy(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("el bucket %s no existe", s.bucket)
	}
	return nil
}

func (s *MinioStore) Mode() string { return config.StorageModeRemoto }
