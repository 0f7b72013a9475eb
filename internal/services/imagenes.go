package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"

	"computadores-api/internal/dto"
	"computadores-api/internal/entities"
	"computadores-api/pkg/config"
	apperrors "computadores-api/pkg/errors"
	"computadores-api/pkg/filestorage"
)

// dataURIPattern reconoce payloads inline `data:image/<subtipo>;base64,<datos>`.
var dataURIPattern = regexp.MustCompile(`^data:image/(\w+);base64,(.+)$`)

// ImagenService normaliza los lotes de imágenes que acompañan un
// create/update y limpia archivos al borrar registros.
type ImagenService struct {
	store  filestorage.ImageStore
	logger *zap.Logger
}

func NewImagenService(store filestorage.ImageStore, logger *zap.Logger) *ImagenService {
	return &ImagenService{
		store:  store,
		logger: logger,
	}
}

// Resolver procesa el lote en orden de envío. Los items con payload inline
// se decodifican y persisten; los items con referencia existente pasan tal
// cual si sobreviven la verificación del backend activo. Un item malformado
// se descarta en silencio sin abortar el lote: el caller nunca ve errores
// parciales. Devuelve el arreglo normalizado y cuántas imágenes nuevas se
// guardaron.
func (s *ImagenService) Resolver(ctx context.Context, equipoID string, items []dto.ImagenInputDTO) ([]entities.Imagen, int) {
	resultado := make([]entities.Imagen, 0, len(items))
	guardadas := 0
	ahora := time.Now()

	for i, item := range items {
		if item.Base64 != "" {
			img, err := s.guardarNueva(ctx, equipoID, item, i, ahora)
			if err != nil {
				s.logger.Warn("imagen descartada del lote",
					zap.String("equipo_id", equipoID),
					zap.Int("indice", i),
					zap.Error(err),
				)
				continue
			}
			resultado = append(resultado, *img)
			guardadas++
			continue
		}

		if img, ok := s.pasarExistente(item); ok {
			resultado = append(resultado, img)
		}
	}

	return resultado, guardadas
}

func (s *ImagenService) guardarNueva(ctx context.Context, equipoID string, item dto.ImagenInputDTO, indice int, ahora time.Time) (*entities.Imagen, error) {
	m := dataURIPattern.FindStringSubmatch(item.Base64)
	if m == nil {
		return nil, apperrors.ErrImagenInvalida
	}
	subtipo := m[1]

	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return nil, fmt.Errorf("base64 inválido: %w", err)
	}

	nombre := fmt.Sprintf("%d-%d.%s", ahora.UnixMilli(), indice, subtipo)
	stored, err := s.store.Save(ctx, equipoID, nombre, data, "image/"+subtipo)
	if err != nil {
		return nil, fmt.Errorf("no se pudo persistir la imagen: %w", err)
	}

	titulo := item.Titulo
	if titulo == "" {
		titulo = fmt.Sprintf("Imagen %d", indice+1)
	}

	return &entities.Imagen{
		Titulo:      titulo,
		Filename:    stored.Ref,
		URL:         stored.URL,
		Size:        stored.Size,
		FechaSubida: ahora,
		Tipo:        stored.Kind,
	}, nil
}

// pasarExistente deja pasar una referencia previa sin modificarla. El
// backend activo decide si la referencia sobrevive (ver ImageStore.Exists).
func (s *ImagenService) pasarExistente(item dto.ImagenInputDTO) (entities.Imagen, bool) {
	ref := item.Filename
	if ref == "" {
		ref = item.URL
	}
	if ref == "" {
		return entities.Imagen{}, false
	}

	if !s.store.Exists(ref) {
		return entities.Imagen{}, false
	}

	tipo := filestorage.Kind(item.Tipo)
	if tipo == "" {
		// Entrada heredada sin etiqueta: se clasifica una única vez aquí.
		if filestorage.EsURLCompleta(ref) {
			tipo = filestorage.KindRemota
		} else {
			tipo = filestorage.KindLocal
		}
	}

	url := item.URL
	if url == "" {
		url, _ = s.store.PublicURL(ref)
	}

	fecha := time.Now()
	if item.FechaSubida != nil {
		fecha = *item.FechaSubida
	}

	return entities.Imagen{
		Titulo:      item.Titulo,
		Filename:    ref,
		URL:         url,
		Size:        item.Size,
		FechaSubida: fecha,
		Tipo:        tipo,
	}, true
}

// FiltrarExistentes aplica la verificación de existencia del backend activo
// al arreglo guardado de un registro antes de responder una lectura.
func (s *ImagenService) FiltrarExistentes(imagenes []entities.Imagen) []entities.Imagen {
	resultado := make([]entities.Imagen, 0, len(imagenes))
	for _, img := range imagenes {
		if s.store.Exists(img.Filename) {
			resultado = append(resultado, img)
		}
	}
	return resultado
}

// EliminarAdjuntos borra archivos de forma best-effort: en modo remoto se
// eliminan los objetos del bucket; en los demás modos solo los archivos
// locales. Las fallas individuales se registran y se ignoran.
func (s *ImagenService) EliminarAdjuntos(imagenes []entities.Imagen) {
	remoto := s.store.Mode() == config.StorageModeRemoto

	for _, img := range imagenes {
		if !remoto && !img.EsLocal() {
			continue
		}
		if err := s.store.Delete(img.Filename); err != nil {
			s.logger.Warn("no se pudo eliminar el archivo de la imagen",
				zap.String("filename", img.Filename),
				zap.Error(err),
			)
		}
	}
}
