package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/db"
	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/env"
	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/logger"
	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/store"
)

const component = "API"

func main() {
	_ = godotenv.Load()

	cfg := config{
		addr:   env.GetString("ADDR", ":8080"),
		dbPath: env.GetString("DB_PATH", "contratos.db"),
	}

	appLogger := logger.New(env.GetString("LOG_LEVEL", "info"))
	defer appLogger.Sync()

	database, err := db.New(cfg.dbPath)
	if err != nil {
		appLogger.Fatal(component, "Failed to open database: %v", err)
	}
	defer database.Close()

	if err := store.EnsureSchema(context.Background(), database); err != nil {
		appLogger.Fatal(component, "Failed to ensure schema: %v", err)
	}
	appLogger.Info(component, "Database ready at %s", cfg.dbPath)

	app := &application{
		config: cfg,
		store:  store.NewStorage(database),
		logger: appLogger,
	}

	mux := app.mount()

	if err := app.run(mux); err != nil {
		appLogger.Fatal(component, "Server stopped: %v", err)
	}
}
