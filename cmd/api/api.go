package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/logger"
	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/store"
)

type application struct {
	config config
	store  *store.Storage
	logger *logger.Logger
}

type config struct {
	addr   string
	dbPath string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Get("/catalog", app.handleGetCatalog)
		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", app.handleListContracts)
			r.Post("/", app.handleCreateContract)
			r.Post("/search", app.handleSearchContracts)
			r.Get("/alerts", app.handleListAlerts)
			r.Get("/{id}", app.handleGetContract)
			r.Put("/{id}", app.handleUpdateContract)
			r.Delete("/{id}", app.handleDeleteContract)
		})
		r.Get("/dashboard", app.handleGetDashboard)
		r.Get("/export", app.handleExport)
	})

	return r
}

func (app *application) run(mux http.Handler) error {

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 120,
		ReadTimeout:  time.Second * 40,
		IdleTimeout:  time.Minute,
	}

	app.logger.Info(component, "Server started on %s", app.config.addr)
	return srv.ListenAndServe()
}
