package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Kaiser28/comptable-dashboard/httpx"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/Kaiser28/comptable-dashboard/internal/services"
)

type ClientHandler struct {
	svc *services.ClientService
	log zerolog.Logger
}

func NewClientHandler(svc *services.ClientService, log zerolog.Logger) *ClientHandler {
	return &ClientHandler{svc: svc, log: log}
}

func (h *ClientHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /clients", h.Create)
	mux.HandleFunc("GET /clients/{id}", h.Get)
	mux.HandleFunc("POST /clients/{id}/associes", h.AddAssocie)
}

// Create: POST /clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c models.Client
	if err := httpx.DecodeJSON(w, r, &c); err != nil {
		invalidJSON(w, err)
		return
	}
	if err := h.svc.Create(r.Context(), &c); err != nil {
		writeError(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, c)
}

// Get: GET /clients/{id}, with associés
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		badID(w)
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

// AddAssocie: POST /clients/{id}/associes
func (h *ClientHandler) AddAssocie(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		badID(w)
		return
	}
	var a models.Associe
	if err := httpx.DecodeJSON(w, r, &a); err != nil {
		invalidJSON(w, err)
		return
	}
	if err := h.svc.AddAssocie(r.Context(), id, &a); err != nil {
		writeError(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, a)
}
