package main

import (
	"flag"
	"log"

	"computadores-api/pkg/config"
	"computadores-api/pkg/database/postgresql"
	"computadores-api/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("   🌱 Seeder de computadores-api")
	log.Println("======================================================")

	runDemo := flag.Bool("demo", false, "Cargar computadores de demostración")
	flag.Parse()

	if !*runDemo {
		log.Println("❌ No se eligió ningún seeder.")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Ejemplo: go run ./seeders/cmd/seed -demo")
		return
	}

	cfg := config.New()
	log.Println("📦 DSN en uso:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	seeders.SeedComputadores(dbPool)
}
