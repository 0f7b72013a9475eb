package repositories

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib"

	"computadores-api/internal/dto"
	"computadores-api/internal/entities"
	"computadores-api/migrations"
	apperrors "computadores-api/pkg/errors"
	"computadores-api/pkg/filestorage"
)

// Las pruebas de este archivo necesitan un Postgres real. Se omiten si
// TEST_DATABASE_URL no está definida.
func newTestRepository(t *testing.T) ComputadorRepositoryInterface {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definida")
	}

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "."))
	require.NoError(t, db.Close())

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "TRUNCATE computadores RESTART IDENTITY")
		pool.Close()
	})

	_, err = pool.Exec(context.Background(), "TRUNCATE computadores RESTART IDENTITY")
	require.NoError(t, err)

	return NewComputadorRepository(pool)
}

func computadorDePrueba(equipoID string) *entities.Computador {
	return &entities.Computador{
		EquipoID:      equipoID,
		SerialNumber:  "SN-" + equipoID,
		Responsable:   "Ana Rodríguez",
		Cargo:         "Analista",
		Estado:        entities.EstadoOperativo,
		WindowsUpdate: entities.WindowsUpdateSi,
		Imagenes:      []entities.Imagen{},
		FechaRevision: time.Now(),
	}
}

func TestRepository_CreateYFind(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	c := computadorDePrueba("PC-001")
	c.Imagenes = []entities.Imagen{{
		Titulo:      "Frente",
		Filename:    "PC001/1.png",
		URL:         "http://localhost:3000/uploads/PC001/1.png",
		FechaSubida: time.Now(),
		Tipo:        filestorage.KindLocal,
	}}

	id, err := repo.CreateComputador(ctx, c)
	require.NoError(t, err)
	require.NotZero(t, id)

	guardado, err := repo.FindComputador(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "PC-001", guardado.EquipoID)
	require.Len(t, guardado.Imagenes, 1)
	assert.Equal(t, "PC001/1.png", guardado.Imagenes[0].Filename)
	assert.Equal(t, filestorage.KindLocal, guardado.Imagenes[0].Tipo)
}

func TestRepository_EquipoIDDuplicado(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.CreateComputador(ctx, computadorDePrueba("PC-001"))
	require.NoError(t, err)

	_, err = repo.CreateComputador(ctx, computadorDePrueba("PC-001"))
	assert.ErrorIs(t, err, apperrors.ErrConflicto)
}

func TestRepository_FiltrosDeListado(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	a := computadorDePrueba("PC-001")
	a.Estado = entities.EstadoMantenimiento
	a.Responsable = "Luis Pérez"
	_, err := repo.CreateComputador(ctx, a)
	require.NoError(t, err)

	_, err = repo.CreateComputador(ctx, computadorDePrueba("PC-002"))
	require.NoError(t, err)

	porEstado, err := repo.GetComputadores(ctx, dto.ListFilterDTO{Estado: entities.EstadoMantenimiento})
	require.NoError(t, err)
	require.Len(t, porEstado, 1)
	assert.Equal(t, "PC-001", porEstado[0].EquipoID)

	// subcadena sin distinguir mayúsculas
	porResponsable, err := repo.GetComputadores(ctx, dto.ListFilterDTO{Responsable: "luis"})
	require.NoError(t, err)
	require.Len(t, porResponsable, 1)

	todos, err := repo.GetComputadores(ctx, dto.ListFilterDTO{})
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestRepository_OrdenPorFechaRevision(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	viejo := computadorDePrueba("PC-001")
	viejo.FechaRevision = time.Now().Add(-48 * time.Hour)
	_, err := repo.CreateComputador(ctx, viejo)
	require.NoError(t, err)

	_, err = repo.CreateComputador(ctx, computadorDePrueba("PC-002"))
	require.NoError(t, err)

	todos, err := repo.GetTodosOrdenados(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "PC-002", todos[0].EquipoID)
	assert.Equal(t, "PC-001", todos[1].EquipoID)
}

func TestRepository_UpdateYDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.CreateComputador(ctx, computadorDePrueba("PC-001"))
	require.NoError(t, err)

	editado := computadorDePrueba("PC-001")
	editado.Estado = entities.EstadoDanado
	require.NoError(t, repo.UpdateComputador(ctx, id, editado))

	guardado, err := repo.FindComputador(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entities.EstadoDanado, guardado.Estado)

	require.NoError(t, repo.DeleteComputador(ctx, id))

	_, err = repo.FindComputador(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteComputador(ctx, id), apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateComputador(ctx, id, editado), apperrors.ErrNotFound)
}

func TestRepository_Estadisticas(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	a := computadorDePrueba("PC-001")
	a.Imagenes = []entities.Imagen{{Titulo: "1"}, {Titulo: "2"}}
	a.ProblemasDetectados = null.StringFrom("ventilador ruidoso")
	_, err := repo.CreateComputador(ctx, a)
	require.NoError(t, err)

	b := computadorDePrueba("PC-002")
	b.Estado = entities.EstadoDanado
	b.WindowsUpdate = entities.WindowsUpdateNo
	b.FechaRevision = time.Now().Add(-72 * time.Hour)
	_, err = repo.CreateComputador(ctx, b)
	require.NoError(t, err)

	stats, err := repo.GetEstadisticas(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.PorEstado[entities.EstadoOperativo])
	assert.Equal(t, 1, stats.PorEstado[entities.EstadoDanado])
	assert.Equal(t, 0, stats.PorEstado[entities.EstadoMantenimiento])
	assert.Equal(t, 1, stats.PorWindowsUpdate[entities.WindowsUpdateNo])
	assert.Equal(t, 1, stats.RevisadosHoy)
	assert.Equal(t, 1, stats.ConProblemas)
	assert.Equal(t, 1, stats.ConImagenes)
	assert.Equal(t, 2, stats.TotalImagenes)
}
