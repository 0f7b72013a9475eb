package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedComputadores inserta los registros de demostración. Los equipo_id ya
// presentes se dejan intactos.
func SeedComputadores(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Cargando computadores de demostración...")

	query := `
		INSERT INTO computadores (equipo_id, serial_number, etiqueta_activo, latitud, longitud,
			direccion_manual, responsable, cargo, estado, windows_update, imagenes, notas, revisor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, '[]'::jsonb, $11, $12)
		ON CONFLICT (equipo_id) DO NOTHING
	`

	insertados := 0
	for _, c := range computadoresDemo {
		tag, err := db.Exec(ctx, query,
			c.EquipoID, c.SerialNumber, c.EtiquetaActivo, c.Latitud, c.Longitud,
			c.DireccionManual, c.Responsable, c.Cargo, c.Estado, c.WindowsUpdate,
			c.Notas, c.Revisor,
		)
		if err != nil {
			log.Fatalf("❌ Error insertando %s: %v", c.EquipoID, err)
		}
		insertados += int(tag.RowsAffected())
	}

	log.Printf("✅ Carga completada: %d registros nuevos (%d ya existían)", insertados, len(computadoresDemo)-insertados)
}
