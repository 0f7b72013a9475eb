// diagnostico imprime el estado del entorno y la conectividad del servicio:
// variables configuradas, alcance de la base de datos y del backend de
// imágenes. Pensado para correr a mano cuando un despliegue no arranca.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"computadores-api/pkg/config"
	"computadores-api/pkg/filestorage"
)

func main() {
	log.Println("======================================================")
	log.Println("   🔍 Diagnóstico de entorno — computadores-api")
	log.Println("======================================================")

	cfg := config.New()

	reportarEntorno()
	reportarBaseDatos(cfg)
	reportarAlmacenamiento(cfg)

	log.Println("======================================================")
}

func reportarEntorno() {
	log.Println("▶️  Variables de entorno:")
	variables := []string{
		"DATABASE_URL", "PORT", "STORAGE_MODE", "UPLOADS_DIR", "PUBLIC_BASE_URL",
		"MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_BUCKET", "MINIO_SSL",
		"RUN_MIGRATIONS",
	}
	for _, v := range variables {
		if _, ok := os.LookupEnv(v); ok {
			log.Printf("   ✅ %s definida", v)
		} else {
			log.Printf("   ⚠️  %s sin definir (se usa el valor por defecto)", v)
		}
	}
}

func reportarBaseDatos(cfg *config.Config) {
	log.Println("▶️  Base de datos:")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Printf("   ❌ No se pudo crear el pool: %v", err)
		return
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Printf("   ❌ Ping fallido: %v", err)
		return
	}
	log.Println("   ✅ Conexión establecida")

	var total int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM computadores").Scan(&total); err != nil {
		log.Printf("   ❌ La tabla computadores no responde: %v", err)
		return
	}
	log.Printf("   ✅ Tabla computadores presente (%d registros)", total)
}

func reportarAlmacenamiento(cfg *config.Config) {
	log.Printf("▶️  Almacenamiento (modo %s):", cfg.Storage.Mode)

	store, err := filestorage.NewStore(cfg)
	if err != nil {
		log.Printf("   ❌ No se pudo inicializar: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := store.Healthy(ctx); err != nil {
		log.Printf("   ❌ Backend no disponible: %v", err)
		return
	}
	log.Printf("   ✅ Backend %s disponible", store.Mode())
}
