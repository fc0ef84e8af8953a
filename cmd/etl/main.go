package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/db"
	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/env"
	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/ingest"
	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/logger"
	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/store"
)

const component = "ETL"

// Bulk-loads an existing CSV export into the contracts table. Headers may
// be either the legacy display labels or the catalog keys.
func main() {
	_ = godotenv.Load()

	var (
		file     = flag.String("file", "", "path to the CSV file to import")
		encoding = flag.String("encoding", "utf8", "file encoding: utf8 or latin1")
		dbPath   = flag.String("db", env.GetString("DB_PATH", "contratos.db"), "path to the SQLite database")
	)
	flag.Parse()

	appLogger := logger.New(env.GetString("LOG_LEVEL", "info"))
	defer appLogger.Sync()

	if *file == "" {
		appLogger.Error(component, "Missing required -file flag")
		flag.Usage()
		os.Exit(2)
	}
	if *encoding != "utf8" && *encoding != "latin1" {
		appLogger.Fatal(component, "Unsupported encoding %q, want utf8 or latin1", *encoding)
	}

	database, err := db.New(*dbPath)
	if err != nil {
		appLogger.Fatal(component, "Failed to open database: %v", err)
	}
	defer database.Close()

	ctx := context.Background()
	if err := store.EnsureSchema(ctx, database); err != nil {
		appLogger.Fatal(component, "Failed to ensure schema: %v", err)
	}

	df, err := ingest.ReadCSV(*file, *encoding)
	if err != nil {
		appLogger.Fatal(component, "Failed to read %s: %v", *file, err)
	}
	appLogger.Info(component, "Read %s: rows=%d cols=%d", *file, df.Nrow(), df.Ncol())

	summary := ingest.Load(ctx, df, store.NewStorage(database), appLogger)
	if summary.Inserted == 0 && summary.Rows > 0 {
		appLogger.Fatal(component, "Import inserted nothing: rows=%d failed=%d", summary.Rows, summary.Failed)
	}
}
