package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/Kaiser28/comptable-dashboard/internal/render"
	"github.com/Kaiser28/comptable-dashboard/internal/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// unique in-memory database per test
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Client{}, &models.Associe{}, &models.Acte{}))
	return db
}

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	db := setupTestDB(t)
	clients := services.NewClientService(db, zerolog.Nop())
	acts := services.NewActService(db, clients, render.Text{}, models.Cabinet{Nom: "Cabinet Martin"}, zerolog.Nop())
	mux := http.NewServeMux()
	NewClientHandler(clients, zerolog.Nop()).Register(mux)
	NewActHandler(acts, zerolog.Nop()).Register(mux)
	return mux
}

func do(mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// seed creates a client held by Paul (president, 60) and Claire (40).
// It returns the client id and Claire's id.
func seed(t *testing.T, mux http.Handler) (uint, uint) {
	t.Helper()
	w := do(mux, http.MethodPost, "/clients", `{"raison_sociale":"Atelier Durand","capital_social":"10000","nb_actions":100,"siren":"123456789","ville":"Lyon"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	clientID := uint(decode(t, w)["id"].(float64))

	w = do(mux, http.MethodPost, fmt.Sprintf("/clients/%d/associes", clientID), `{"civilite":"M.","nom":"Durand","prenom":"Paul","nombre_actions":60,"est_president":true}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = do(mux, http.MethodPost, fmt.Sprintf("/clients/%d/associes", clientID), `{"civilite":"Mme","nom":"Morel","prenom":"Claire","nombre_actions":40}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return clientID, uint(decode(t, w)["id"].(float64))
}

func cessionJSON(cedant uint, n int) string {
	return fmt.Sprintf(`{"type":"cession_actions","date_acte":"2026-03-01","payload":{
		"cedant_id":%d,"cessionnaire_civilite":"M.","cessionnaire_nom":"Petit","cessionnaire_prenom":"Marc",
		"cessionnaire_adresse":"4 rue Victor Hugo, 69002 Lyon","cessionnaire_nationalite":"française",
		"nombre_actions":%d,"prix_unitaire":"50","date_agrement":"2026-03-01","modalites_paiement":"comptant"}}`, cedant, n)
}

func TestClientEndpoints(t *testing.T) {
	mux := newMux(t)
	clientID, _ := seed(t, mux)

	w := do(mux, http.MethodGet, fmt.Sprintf("/clients/%d", clientID), "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, "Atelier Durand", got["raison_sociale"])
	assert.Len(t, got["associes"], 2)

	w = do(mux, http.MethodPost, fmt.Sprintf("/clients/%d/associes", clientID), `{"nom":"Roux","nombre_actions":1,"est_president":true}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "validation_failed", decode(t, w)["error"])

	w = do(mux, http.MethodGet, "/clients/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(mux, http.MethodGet, "/clients/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_id", decode(t, w)["error"])

	w = do(mux, http.MethodPost, "/clients", `{"raison_sociale":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_json", decode(t, w)["error"])
}

func TestPreviewReportsViolationsWithoutStoring(t *testing.T) {
	mux := newMux(t)
	clientID, claire := seed(t, mux)

	w := do(mux, http.MethodPost, fmt.Sprintf("/clients/%d/acts/preview", clientID), cessionJSON(claire, 41))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode(t, w)
	assert.Equal(t, false, got["accepted"])
	assert.Contains(t, got["errors"].(map[string]any)["nombre_actions"], "ne détient que 40 actions")

	blank := strings.Replace(cessionJSON(claire, 10), `"date_acte":"2026-03-01"`, `"date_acte":""`, 1)
	w = do(mux, http.MethodPost, fmt.Sprintf("/clients/%d/acts/preview", clientID), blank)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Ce champ est obligatoire", decode(t, w)["errors"].(map[string]any)["date_acte"])

	w = do(mux, http.MethodPost, fmt.Sprintf("/clients/%d/acts/preview", clientID), cessionJSON(claire, 10))
	require.Equal(t, http.StatusOK, w.Code)
	got = decode(t, w)
	assert.Equal(t, true, got["accepted"])
	payload := got["act"].(map[string]any)["payload"].(map[string]any)
	assert.Equal(t, "500", payload["prix_total"])

	w = do(mux, http.MethodGet, fmt.Sprintf("/clients/%d/acts", clientID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["total"])
}

func TestCreateRejectsInvalidAct(t *testing.T) {
	mux := newMux(t)
	clientID, claire := seed(t, mux)

	w := do(mux, http.MethodPost, fmt.Sprintf("/clients/%d/acts", clientID), cessionJSON(claire, 41))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	got := decode(t, w)
	assert.Equal(t, "validation_failed", got["error"])
	assert.Contains(t, got["details"], "nombre_actions")

	w = do(mux, http.MethodPost, fmt.Sprintf("/clients/%d/acts", clientID), `{"type":"fusion","payload":{}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "unknown_act_type", decode(t, w)["error"])

	w = do(mux, http.MethodPost, fmt.Sprintf("/clients/%d/acts", clientID), `{"date_acte":"2026-03-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(mux, http.MethodPost, "/clients/999/acts", cessionJSON(claire, 10))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestActLifecycle(t *testing.T) {
	mux := newMux(t)
	clientID, claire := seed(t, mux)

	w := do(mux, http.MethodPost, fmt.Sprintf("/clients/%d/acts", clientID), cessionJSON(claire, 10))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	got := decode(t, w)
	act := got["act"].(map[string]any)
	id := uint(act["id"].(float64))
	assert.Equal(t, "brouillon", act["statut"])
	assert.Equal(t, []any{"statuts", "acte_cession", "attestation_cession"}, got["documents"])

	w = do(mux, http.MethodGet, fmt.Sprintf("/clients/%d/acts", clientID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["total"])

	w = do(mux, http.MethodPost, fmt.Sprintf("/acts/%d", id), cessionJSON(claire, 20))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "1000", decode(t, w)["act"].(map[string]any)["payload"].(map[string]any)["prix_total"])

	w = do(mux, http.MethodPost, fmt.Sprintf("/acts/%d/status", id), `{"statut":"signé"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "invalid_transition", decode(t, w)["error"])

	w = do(mux, http.MethodPost, fmt.Sprintf("/acts/%d/status", id), `{"statut":"validé"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = do(mux, http.MethodPost, fmt.Sprintf("/acts/%d/status", id), `{"statut":"signé"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "signé", decode(t, w)["act"].(map[string]any)["statut"])

	w = do(mux, http.MethodPost, fmt.Sprintf("/acts/%d", id), cessionJSON(claire, 5))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "act_signed", decode(t, w)["error"])

	w = do(mux, http.MethodGet, fmt.Sprintf("/acts/%d", id), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "signé", decode(t, w)["act"].(map[string]any)["statut"])

	w = do(mux, http.MethodGet, "/acts/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentDownload(t *testing.T) {
	mux := newMux(t)
	clientID, claire := seed(t, mux)

	w := do(mux, http.MethodPost, fmt.Sprintf("/clients/%d/acts", clientID), cessionJSON(claire, 10))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	act := decode(t, w)["act"].(map[string]any)
	id := uint(act["id"].(float64))

	w = do(mux, http.MethodGet, fmt.Sprintf("/acts/%d/documents/acte_cession", id), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), fmt.Sprintf(`filename="acte_cession-%s.txt"`, act["reference"]))
	body := strings.ReplaceAll(w.Body.String(), "\u00a0", " ")
	assert.Contains(t, body, "cinq cents euros")
	assert.Contains(t, body, "Cabinet Martin")

	w = do(mux, http.MethodGet, fmt.Sprintf("/acts/%d/documents/acte_augmentation", id), "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "document_not_applicable", decode(t, w)["error"])

	w = do(mux, http.MethodGet, fmt.Sprintf("/acts/%d/documents/bail", id), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "unknown_document", decode(t, w)["error"])
}
