package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/Kaiser28/comptable-dashboard/internal/render"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Client{}, &models.Associe{}, &models.Acte{}))
	return db
}

type fixture struct {
	clients *ClientService
	acts    *ActService
	client  *models.Client
	paul    models.Associe
	claire  models.Associe
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := setupTestDB(t)
	clients := NewClientService(db, zerolog.Nop())
	acts := NewActService(db, clients, render.Text{}, models.Cabinet{Nom: "Cabinet Martin"}, zerolog.Nop())
	ctx := context.Background()

	c := &models.Client{RaisonSociale: "Atelier Durand", CapitalSocial: decimal.NewFromInt(10000), NbActions: 100, Ville: "Lyon"}
	require.NoError(t, clients.Create(ctx, c))
	paul := models.Associe{Civilite: "M.", Nom: "Durand", Prenom: "Paul", NombreActions: 60, EstPresident: true}
	require.NoError(t, clients.AddAssocie(ctx, c.ID, &paul))
	claire := models.Associe{Civilite: "Mme", Nom: "Morel", Prenom: "Claire", NombreActions: 40}
	require.NoError(t, clients.AddAssocie(ctx, c.ID, &claire))
	return fixture{clients: clients, acts: acts, client: c, paul: paul, claire: claire}
}

func (f fixture) cession(n int64) models.Act {
	d := models.NewDate(2026, 3, 1)
	return models.Act{
		ClientID: f.client.ID,
		DateActe: &d,
		Payload: &models.Cession{
			CedantID:                models.Uint(f.claire.ID),
			CessionnaireCivilite:    "M.",
			CessionnaireNom:         "Petit",
			CessionnairePrenom:      "Marc",
			CessionnaireAdresse:     "4 rue Victor Hugo, 69002 Lyon",
			CessionnaireNationalite: "française",
			NombreActions:           models.Int64(n),
			PrixUnitaire:            models.Amount("50"),
			DateAgrement:            &d,
			ModalitesPaiement:       "comptant",
		},
	}
}
