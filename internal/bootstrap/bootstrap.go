package bootstrap

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "computadores-api/pkg/errors"
)

// Probe concentra el estado de arranque del servicio. Es el dueño único
// de la bandera "base de datos lista"; el resto del servidor la consulta
// por inyección, nunca por una variable global.
type Probe struct {
	started     time.Time
	dbReady     atomic.Bool
	storageMode string
}

func NewProbe(storageMode string) *Probe {
	return &Probe{
		started:     time.Now(),
		storageMode: storageMode,
	}
}

func (p *Probe) MarkDatabaseReady()  { p.dbReady.Store(true) }
func (p *Probe) DatabaseReady() bool { return p.dbReady.Load() }

func (p *Probe) Uptime() time.Duration { return time.Since(p.started) }
func (p *Probe) StorageMode() string   { return p.storageMode }

// VerificarTabla confirma que la tabla computadores existe en la base remota.
// Devuelve ErrTablaFaltante cuando el código de error del servidor indica
// "undefined_table" (42P01).
func VerificarTabla(ctx context.Context, pool *pgxpool.Pool) error {
	rows, err := pool.Query(ctx, "SELECT 1 FROM computadores LIMIT 1")
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "42P01" {
			return apperrors.ErrTablaFaltante
		}
		return err
	}
	rows.Close()
	return rows.Err()
}
