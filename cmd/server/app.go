package main

import (
	"net/http"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Kaiser28/comptable-dashboard/httpx"
	"github.com/Kaiser28/comptable-dashboard/internal/handlers"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/Kaiser28/comptable-dashboard/internal/render"
	"github.com/Kaiser28/comptable-dashboard/internal/services"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
	db  *gorm.DB
	log zerolog.Logger
}

// NewApp wires services and handlers on a fresh mux.
func NewApp(db *gorm.DB, firm models.Cabinet, asm render.Assembler, log zerolog.Logger) *App {
	app := &App{mux: http.NewServeMux(), db: db, log: log}

	clients := services.NewClientService(db, log)
	acts := services.NewActService(db, clients, asm, firm, log)
	handlers.NewClientHandler(clients, log).Register(app.mux)
	handlers.NewActHandler(acts, log).Register(app.mux)

	app.mux.HandleFunc("GET /health", app.health)
	app.mux.HandleFunc("GET /healthz", app.health)
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

func (a *App) health(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		a.log.Error().Err(err).Msg("health check")
		httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
