package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Kaiser28/comptable-dashboard/httpx"
	"github.com/Kaiser28/comptable-dashboard/internal/docs"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/Kaiser28/comptable-dashboard/internal/services"
)

// writeError maps service and template errors to HTTP answers.
func writeError(w http.ResponseWriter, log zerolog.Logger, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		code := "validation_failed"
		if verr.Stored {
			code = "act_has_violations"
		}
		httpx.Violations(w, code, verr.Violations)
	case errors.Is(err, services.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
	case errors.Is(err, services.ErrActSigned):
		httpx.JSONError(w, http.StatusConflict, "act_signed", nil)
	case errors.Is(err, services.ErrInvalidTransition):
		httpx.JSONError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, docs.ErrUnknownKind):
		httpx.JSONError(w, http.StatusNotFound, "unknown_document", nil)
	case errors.Is(err, docs.ErrWrongActType):
		httpx.JSONError(w, http.StatusUnprocessableEntity, "document_not_applicable", err.Error())
	case errors.Is(err, docs.ErrMissingClient), errors.Is(err, docs.ErrNoShareholders):
		httpx.JSONError(w, http.StatusUnprocessableEntity, "missing_context", err.Error())
	case errors.Is(err, models.ErrUnknownActType):
		httpx.JSONError(w, http.StatusBadRequest, "unknown_act_type", nil)
	default:
		log.Error().Err(err).Msg("request failed")
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}

func badID(w http.ResponseWriter) {
	httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
}

func invalidJSON(w http.ResponseWriter, err error) {
	if errors.Is(err, models.ErrUnknownActType) {
		httpx.JSONError(w, http.StatusBadRequest, "unknown_act_type", nil)
		return
	}
	httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
}
