package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"computadores-api/internal/dto"
	"computadores-api/internal/entities"
	apperrors "computadores-api/pkg/errors"
)

const computadoresTable = "computadores"

const computadoresFields = `id, equipo_id, serial_number, etiqueta_activo, latitud, longitud,
	direccion_automatica, direccion_manual, responsable, cargo, estado, windows_update,
	imagenes, notas, problemas_detectados, fecha_revision, fecha_actualizacion, revisor`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type ComputadorRepositoryInterface interface {
	GetComputadores(ctx context.Context, filtro dto.ListFilterDTO) ([]entities.Computador, error)
	FindComputador(ctx context.Context, id int64) (*entities.Computador, error)
	CreateComputador(ctx context.Context, c *entities.Computador) (int64, error)
	UpdateComputador(ctx context.Context, id int64, c *entities.Computador) error
	DeleteComputador(ctx context.Context, id int64) error
	GetEstadisticas(ctx context.Context) (*entities.Estadisticas, error)
	GetTodosOrdenados(ctx context.Context) ([]entities.Computador, error)
}

type ComputadorRepository struct {
	storage *pgxpool.Pool
}

func NewComputadorRepository(storage *pgxpool.Pool) ComputadorRepositoryInterface {
	return &ComputadorRepository{storage: storage}
}

func (r *ComputadorRepository) GetComputadores(ctx context.Context, filtro dto.ListFilterDTO) ([]entities.Computador, error) {
	builder := psql.Select(computadoresFields).
		From(computadoresTable).
		OrderBy("fecha_revision DESC")

	if filtro.Estado != "" {
		builder = builder.Where(sq.Eq{"estado": filtro.Estado})
	}
	if filtro.Responsable != "" {
		builder = builder.Where(sq.ILike{"responsable": "%" + filtro.Responsable + "%"})
	}
	if filtro.EquipoID != "" {
		builder = builder.Where(sq.ILike{"equipo_id": "%" + filtro.EquipoID + "%"})
	}
	if filtro.SerialNumber != "" {
		builder = builder.Where(sq.ILike{"serial_number": "%" + filtro.SerialNumber + "%"})
	}
	if filtro.Revisor != "" {
		builder = builder.Where(sq.ILike{"revisor": "%" + filtro.Revisor + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, clasificarError(err)
	}
	defer rows.Close()

	return scanComputadores(rows)
}

func (r *ComputadorRepository) FindComputador(ctx context.Context, id int64) (*entities.Computador, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", computadoresFields, computadoresTable)

	var c entities.Computador
	err := r.storage.QueryRow(ctx, query, id).Scan(destinos(&c)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, clasificarError(err)
	}

	normalizar(&c)
	return &c, nil
}

func (r *ComputadorRepository) CreateComputador(ctx context.Context, c *entities.Computador) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (equipo_id, serial_number, etiqueta_activo, latitud, longitud,
			direccion_automatica, direccion_manual, responsable, cargo, estado, windows_update,
			imagenes, notas, problemas_detectados, fecha_revision, fecha_actualizacion, revisor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`, computadoresTable)

	var id int64
	err := r.storage.QueryRow(ctx, query,
		c.EquipoID,
		c.SerialNumber,
		c.EtiquetaActivo,
		c.Latitud,
		c.Longitud,
		c.DireccionAutomatica,
		c.DireccionManual,
		c.Responsable,
		c.Cargo,
		c.Estado,
		c.WindowsUpdate,
		c.Imagenes,
		c.Notas,
		c.ProblemasDetectados,
		c.FechaRevision,
		c.FechaActualizacion,
		c.Revisor,
	).Scan(&id)

	if err != nil {
		return 0, clasificarError(err)
	}
	return id, nil
}

func (r *ComputadorRepository) UpdateComputador(ctx context.Context, id int64, c *entities.Computador) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET equipo_id = $1, serial_number = $2, etiqueta_activo = $3, latitud = $4, longitud = $5,
			direccion_automatica = $6, direccion_manual = $7, responsable = $8, cargo = $9,
			estado = $10, windows_update = $11, imagenes = $12, notas = $13,
			problemas_detectados = $14, fecha_revision = $15, revisor = $16,
			fecha_actualizacion = CURRENT_TIMESTAMP
		WHERE id = $17
	`, computadoresTable)

	result, err := r.storage.Exec(ctx, query,
		c.EquipoID,
		c.SerialNumber,
		c.EtiquetaActivo,
		c.Latitud,
		c.Longitud,
		c.DireccionAutomatica,
		c.DireccionManual,
		c.Responsable,
		c.Cargo,
		c.Estado,
		c.WindowsUpdate,
		c.Imagenes,
		c.Notas,
		c.ProblemasDetectados,
		c.FechaRevision,
		c.Revisor,
		id,
	)
	if err != nil {
		return clasificarError(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ComputadorRepository) DeleteComputador(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", computadoresTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return clasificarError(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetEstadisticas recorre el inventario completo una vez y cuenta en memoria.
// Los contadores dependen del contenido del arreglo JSONB, así que una sola
// pasada resulta más simple que varios agregados SQL.
func (r *ComputadorRepository) GetEstadisticas(ctx context.Context) (*entities.Estadisticas, error) {
	query := fmt.Sprintf(`
		SELECT estado, windows_update, fecha_revision, problemas_detectados,
			latitud, longitud, imagenes
		FROM %s
	`, computadoresTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, clasificarError(err)
	}
	defer rows.Close()

	stats := entities.NewEstadisticas()
	hoy := time.Now()

	for rows.Next() {
		var c entities.Computador
		err := rows.Scan(
			&c.Estado,
			&c.WindowsUpdate,
			&c.FechaRevision,
			&c.ProblemasDetectados,
			&c.Latitud,
			&c.Longitud,
			&c.Imagenes,
		)
		if err != nil {
			return nil, err
		}

		stats.Total++
		stats.PorEstado[c.Estado]++
		stats.PorWindowsUpdate[c.WindowsUpdate]++

		if mismoDia(c.FechaRevision, hoy) {
			stats.RevisadosHoy++
		}
		if c.ProblemasDetectados.Valid && c.ProblemasDetectados.String != "" {
			stats.ConProblemas++
		}
		if c.Latitud.Valid && c.Longitud.Valid {
			stats.ConUbicacion++
		}
		if len(c.Imagenes) > 0 {
			stats.ConImagenes++
		}
		stats.TotalImagenes += len(c.Imagenes)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetTodosOrdenados devuelve el inventario completo ordenado por fecha de
// revisión descendente, para la exportación plana.
func (r *ComputadorRepository) GetTodosOrdenados(ctx context.Context) ([]entities.Computador, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY fecha_revision DESC", computadoresFields, computadoresTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, clasificarError(err)
	}
	defer rows.Close()

	return scanComputadores(rows)
}

func scanComputadores(rows pgx.Rows) ([]entities.Computador, error) {
	computadores := make([]entities.Computador, 0)
	for rows.Next() {
		var c entities.Computador
		if err := rows.Scan(destinos(&c)...); err != nil {
			return nil, err
		}
		normalizar(&c)
		computadores = append(computadores, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return computadores, nil
}

func destinos(c *entities.Computador) []interface{} {
	return []interface{}{
		&c.ID,
		&c.EquipoID,
		&c.SerialNumber,
		&c.EtiquetaActivo,
		&c.Latitud,
		&c.Longitud,
		&c.DireccionAutomatica,
		&c.DireccionManual,
		&c.Responsable,
		&c.Cargo,
		&c.Estado,
		&c.WindowsUpdate,
		&c.Imagenes,
		&c.Notas,
		&c.ProblemasDetectados,
		&c.FechaRevision,
		&c.FechaActualizacion,
		&c.Revisor,
	}
}

// normalizar garantiza que imagenes nunca sea null al leer.
func normalizar(c *entities.Computador) {
	if c.Imagenes == nil {
		c.Imagenes = []entities.Imagen{}
	}
}

func mismoDia(a, b time.Time) bool {
	y1, m1, d1 := a.Local().Date()
	y2, m2, d2 := b.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// clasificarError reescribe códigos de error del servidor Postgres a la
// taxonomía del API. Lo no reconocido conserva el mensaje del proveedor
// para diagnóstico.
func clasificarError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperrors.ErrConflicto
		case "42P01":
			return apperrors.ErrTablaFaltante
		}
		return fmt.Errorf("error de base de datos (%s): %s", pgErr.Code, pgErr.Message)
	}
	return err
}
