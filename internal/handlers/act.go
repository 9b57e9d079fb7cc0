package handlers

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Kaiser28/comptable-dashboard/httpx"
	"github.com/Kaiser28/comptable-dashboard/internal/docs"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/Kaiser28/comptable-dashboard/internal/services"
	"github.com/Kaiser28/comptable-dashboard/validation"
)

type ActHandler struct {
	svc *services.ActService
	log zerolog.Logger
}

func NewActHandler(svc *services.ActService, log zerolog.Logger) *ActHandler {
	return &ActHandler{svc: svc, log: log}
}

func (h *ActHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /clients/{id}/acts", h.List)
	mux.HandleFunc("POST /clients/{id}/acts", h.Create)
	mux.HandleFunc("POST /clients/{id}/acts/preview", h.Preview)
	mux.HandleFunc("GET /acts/{id}", h.Get)
	mux.HandleFunc("POST /acts/{id}", h.Update)
	mux.HandleFunc("POST /acts/{id}/status", h.Status)
	mux.HandleFunc("GET /acts/{id}/documents/{kind}", h.Document)
}

type actResponse struct {
	Act       models.Act            `json:"act"`
	Documents []docs.Kind           `json:"documents,omitempty"`
	Errors    validation.Violations `json:"errors,omitempty"`
	Warnings  validation.Violations `json:"warnings,omitempty"`
	Accepted  *bool                 `json:"accepted,omitempty"`
}

func (h *ActHandler) decode(w http.ResponseWriter, r *http.Request) (models.Act, bool) {
	var act models.Act
	if err := httpx.DecodeJSON(w, r, &act); err != nil {
		invalidJSON(w, err)
		return act, false
	}
	if act.Payload == nil {
		httpx.JSONError(w, http.StatusBadRequest, "unknown_act_type", nil)
		return act, false
	}
	return act, true
}

// Preview: POST /clients/{id}/acts/preview, returns computed fields and violations without storing
func (h *ActHandler) Preview(w http.ResponseWriter, r *http.Request) {
	clientID, err := httpx.PathID(r, "id")
	if err != nil {
		badID(w)
		return
	}
	act, ok := h.decode(w, r)
	if !ok {
		return
	}
	act.ClientID = clientID
	act, rep, err := h.svc.Evaluate(r.Context(), act)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	accepted := rep.Accepted()
	httpx.JSON(w, http.StatusOK, actResponse{Act: act, Errors: rep.Errors, Warnings: rep.Warnings, Accepted: &accepted})
}

// Create: POST /clients/{id}/acts
func (h *ActHandler) Create(w http.ResponseWriter, r *http.Request) {
	clientID, err := httpx.PathID(r, "id")
	if err != nil {
		badID(w)
		return
	}
	act, ok := h.decode(w, r)
	if !ok {
		return
	}
	act.ClientID = clientID
	saved, rep, err := h.svc.Create(r.Context(), act)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, actResponse{Act: saved, Documents: docs.KindsFor(saved.Type()), Warnings: rep.Warnings})
}

// List: GET /clients/{id}/acts
func (h *ActHandler) List(w http.ResponseWriter, r *http.Request) {
	clientID, err := httpx.PathID(r, "id")
	if err != nil {
		badID(w)
		return
	}
	acts, err := h.svc.ListByClient(r.Context(), clientID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": acts, "total": len(acts)})
}

// Get: GET /acts/{id}
func (h *ActHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		badID(w)
		return
	}
	act, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, actResponse{Act: act, Documents: docs.KindsFor(act.Type())})
}

// Update: POST /acts/{id}
func (h *ActHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		badID(w)
		return
	}
	act, ok := h.decode(w, r)
	if !ok {
		return
	}
	saved, rep, err := h.svc.Update(r.Context(), id, act)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, actResponse{Act: saved, Documents: docs.KindsFor(saved.Type()), Warnings: rep.Warnings})
}

// Status: POST /acts/{id}/status {"statut": "validé"}
func (h *ActHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		badID(w)
		return
	}
	var req struct {
		Statut models.Statut `json:"statut"`
	}
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		invalidJSON(w, err)
		return
	}
	act, err := h.svc.Transition(r.Context(), id, req.Statut)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, actResponse{Act: act})
}

// Document: GET /acts/{id}/documents/{kind}
func (h *ActHandler) Document(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		badID(w)
		return
	}
	kind, err := docs.ParseKind(r.PathValue("kind"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	g, err := h.svc.Document(r.Context(), id, kind)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	w.Header().Set("Content-Type", g.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, g.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(g.Data)
}
