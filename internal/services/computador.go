package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"computadores-api/internal/dto"
	"computadores-api/internal/entities"
	"computadores-api/internal/repositories"
)

type ComputadorServiceInterface interface {
	GetComputadores(ctx context.Context, filtro dto.ListFilterDTO) ([]entities.Computador, error)
	FindComputador(ctx context.Context, id int64) (*entities.Computador, error)
	CreateComputador(ctx context.Context, payload dto.CreateComputadorDTO) (*dto.CreateComputadorResponseDTO, error)
	UpdateComputador(ctx context.Context, id int64, payload dto.UpdateComputadorDTO) (*entities.Computador, error)
	DeleteComputador(ctx context.Context, id int64) error
	GetEstadisticas(ctx context.Context) (*entities.Estadisticas, error)
	GetExport(ctx context.Context) ([]entities.FilaExport, error)
}

type ComputadorService struct {
	repo     repositories.ComputadorRepositoryInterface
	imagenes *ImagenService
	logger   *zap.Logger
}

func NewComputadorService(
	repo repositories.ComputadorRepositoryInterface,
	imagenes *ImagenService,
	logger *zap.Logger,
) ComputadorServiceInterface {
	return &ComputadorService{
		repo:     repo,
		imagenes: imagenes,
		logger:   logger,
	}
}

func (s *ComputadorService) GetComputadores(ctx context.Context, filtro dto.ListFilterDTO) ([]entities.Computador, error) {
	computadores, err := s.repo.GetComputadores(ctx, filtro)
	if err != nil {
		return nil, err
	}

	for i := range computadores {
		computadores[i].Imagenes = s.imagenes.FiltrarExistentes(computadores[i].Imagenes)
	}
	return computadores, nil
}

func (s *ComputadorService) FindComputador(ctx context.Context, id int64) (*entities.Computador, error) {
	c, err := s.repo.FindComputador(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Imagenes = s.imagenes.FiltrarExistentes(c.Imagenes)
	return c, nil
}

func (s *ComputadorService) CreateComputador(ctx context.Context, payload dto.CreateComputadorDTO) (*dto.CreateComputadorResponseDTO, error) {
	imagenes, guardadas := s.imagenes.Resolver(ctx, payload.EquipoID, payload.Imagenes)

	ahora := time.Now()
	fechaRevision := ahora
	if payload.FechaRevision != nil {
		fechaRevision = *payload.FechaRevision
	}

	c := &entities.Computador{
		EquipoID:            payload.EquipoID,
		SerialNumber:        payload.SerialNumber,
		EtiquetaActivo:      payload.EtiquetaActivo,
		Latitud:             payload.Latitud,
		Longitud:            payload.Longitud,
		DireccionAutomatica: payload.DireccionAutomatica,
		DireccionManual:     payload.DireccionManual,
		Responsable:         payload.Responsable,
		Cargo:               payload.Cargo,
		Estado:              payload.Estado,
		WindowsUpdate:       payload.WindowsUpdate,
		Imagenes:            imagenes,
		Notas:               payload.Notas,
		ProblemasDetectados: payload.ProblemasDetectados,
		FechaRevision:       fechaRevision,
		FechaActualizacion:  ahora,
		Revisor:             payload.Revisor,
	}

	id, err := s.repo.CreateComputador(ctx, c)
	if err != nil {
		s.logger.Error("error creando computador", zap.String("equipo_id", payload.EquipoID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("computador registrado",
		zap.Int64("id", id),
		zap.String("equipo_id", payload.EquipoID),
		zap.Int("imagenes_guardadas", guardadas),
	)

	return &dto.CreateComputadorResponseDTO{
		ID:                id,
		EquipoID:          payload.EquipoID,
		SerialNumber:      payload.SerialNumber,
		ImagenesGuardadas: guardadas,
		Message:           "Computador registrado correctamente",
	}, nil
}

func (s *ComputadorService) UpdateComputador(ctx context.Context, id int64, payload dto.UpdateComputadorDTO) (*entities.Computador, error) {
	anterior, err := s.repo.FindComputador(ctx, id)
	if err != nil {
		return nil, err
	}

	imagenes, _ := s.imagenes.Resolver(ctx, payload.EquipoID, payload.Imagenes)

	c := &entities.Computador{
		EquipoID:            payload.EquipoID,
		SerialNumber:        payload.SerialNumber,
		EtiquetaActivo:      payload.EtiquetaActivo,
		Latitud:             payload.Latitud,
		Longitud:            payload.Longitud,
		DireccionAutomatica: payload.DireccionAutomatica,
		DireccionManual:     payload.DireccionManual,
		Responsable:         payload.Responsable,
		Cargo:               payload.Cargo,
		Estado:              payload.Estado,
		WindowsUpdate:       payload.WindowsUpdate,
		Imagenes:            imagenes,
		Notas:               payload.Notas,
		ProblemasDetectados: payload.ProblemasDetectados,
		FechaRevision:       anterior.FechaRevision,
		Revisor:             payload.Revisor,
	}
	if payload.FechaRevision != nil {
		c.FechaRevision = *payload.FechaRevision
	}

	if err := s.repo.UpdateComputador(ctx, id, c); err != nil {
		s.logger.Error("error actualizando computador", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	// Los adjuntos omitidos del arreglo enviado se eliminan del disco.
	s.imagenes.EliminarAdjuntos(omitidas(anterior.Imagenes, imagenes))

	return s.repo.FindComputador(ctx, id)
}

func (s *ComputadorService) DeleteComputador(ctx context.Context, id int64) error {
	c, err := s.repo.FindComputador(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteComputador(ctx, id); err != nil {
		return err
	}

	s.imagenes.EliminarAdjuntos(c.Imagenes)
	s.logger.Info("computador eliminado", zap.Int64("id", id), zap.String("equipo_id", c.EquipoID))
	return nil
}

func (s *ComputadorService) GetEstadisticas(ctx context.Context) (*entities.Estadisticas, error) {
	return s.repo.GetEstadisticas(ctx)
}

func (s *ComputadorService) GetExport(ctx context.Context) ([]entities.FilaExport, error) {
	computadores, err := s.repo.GetTodosOrdenados(ctx)
	if err != nil {
		return nil, err
	}

	filas := make([]entities.FilaExport, len(computadores))
	for i, c := range computadores {
		filas[i] = aplanarFila(c)
	}
	return filas, nil
}

// aplanarFila produce la fila de exportación con formato de presentación.
func aplanarFila(c entities.Computador) entities.FilaExport {
	titulos := make([]string, 0, len(c.Imagenes))
	for _, img := range c.Imagenes {
		titulos = append(titulos, img.Titulo)
	}

	return entities.FilaExport{
		EquipoID:            c.EquipoID,
		SerialNumber:        c.SerialNumber,
		EtiquetaActivo:      c.EtiquetaActivo.String,
		Responsable:         c.Responsable,
		Cargo:               c.Cargo,
		Estado:              strings.ToUpper(c.Estado),
		WindowsUpdate:       etiquetaWindowsUpdate(c.WindowsUpdate),
		Ubicacion:           mejorUbicacion(c),
		Notas:               c.Notas.String,
		ProblemasDetectados: c.ProblemasDetectados.String,
		FechaRevision:       c.FechaRevision.Format("02/01/2006 15:04"),
		Revisor:             c.Revisor.String,
		Imagenes:            strings.Join(titulos, "; "),
	}
}

func etiquetaWindowsUpdate(valor string) string {
	if valor == entities.WindowsUpdateSi {
		return "Sí"
	}
	return "No"
}

// mejorUbicacion prefiere la dirección automática, luego la manual y por
// último un marcador.
func mejorUbicacion(c entities.Computador) string {
	if c.DireccionAutomatica.Valid && c.DireccionAutomatica.String != "" {
		return c.DireccionAutomatica.String
	}
	if c.DireccionManual.Valid && c.DireccionManual.String != "" {
		return c.DireccionManual.String
	}
	return "Sin ubicación"
}

// omitidas devuelve las imágenes del arreglo anterior cuya referencia ya no
// aparece en el arreglo nuevo.
func omitidas(anteriores, nuevas []entities.Imagen) []entities.Imagen {
	vigentes := make(map[string]struct{}, len(nuevas))
	for _, img := range nuevas {
		vigentes[img.Filename] = struct{}{}
	}

	var sobrantes []entities.Imagen
	for _, img := range anteriores {
		if _, ok := vigentes[img.Filename]; !ok {
			sobrantes = append(sobrantes, img)
		}
	}
	return sobrantes
}
