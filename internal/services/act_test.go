package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Kaiser28/comptable-dashboard/internal/docs"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
)

func TestEvaluateDoesNotPersist(t *testing.T) {
	f := setup(t)
	act, rep, err := f.acts.Evaluate(context.Background(), f.cession(10))
	require.NoError(t, err)
	assert.True(t, rep.Accepted())
	assert.Equal(t, "500", act.Payload.(*models.Cession).PrixTotal.Decimal.String())

	list, err := f.acts.ListByClient(context.Background(), f.client.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEvaluateWarnsOnUnregisteredCapital(t *testing.T) {
	f := setup(t)
	d := models.NewDate(2026, 3, 1)
	_, rep, err := f.acts.Evaluate(context.Background(), models.Act{
		ClientID: f.client.ID,
		DateActe: &d,
		Payload: &models.Augmentation{
			AncienCapital:          models.Amount("12000"),
			MontantAugmentation:    models.Amount("3000"),
			Modalite:               models.ModaliteNumeraire,
			ActionsExistantes:      models.Int64(100),
			NombreNouvellesActions: models.Int64(25),
			Quorum:                 models.Amount("100"),
			VotesPour:              models.Int64(100),
			VotesContre:            models.Int64(0),
		},
	})
	require.NoError(t, err)
	assert.True(t, rep.Accepted())
	assert.Contains(t, rep.Warnings["ancien_capital"], "10\u00a0000,00")
	assert.False(t, rep.Warnings.Has("actions_existantes"))
}

func TestEvaluateUnknownClient(t *testing.T) {
	f := setup(t)
	a := f.cession(10)
	a.ClientID = 999
	_, _, err := f.acts.Evaluate(context.Background(), a)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePersistsOnlyAcceptedActs(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, rep, err := f.acts.Create(ctx, f.cession(41))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.False(t, rep.Accepted())
	assert.Contains(t, verr.Violations["nombre_actions"], "ne détient que 40 actions")
	assert.False(t, errors.Is(err, ErrUnresolved))

	saved, _, err := f.acts.Create(ctx, f.cession(10))
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Len(t, saved.Reference, 36)
	assert.Equal(t, models.StatutBrouillon, saved.Statut)

	got, err := f.acts.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "500", got.Payload.(*models.Cession).PrixTotal.Decimal.String())

	list, err := f.acts.ListByClient(ctx, f.client.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateIgnoresClientSuppliedStatus(t *testing.T) {
	f := setup(t)
	a := f.cession(10)
	a.Statut = models.StatutSigne
	saved, _, err := f.acts.Create(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, models.StatutBrouillon, saved.Statut)
}

func TestUpdate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	saved, _, err := f.acts.Create(ctx, f.cession(10))
	require.NoError(t, err)

	updated, _, err := f.acts.Update(ctx, saved.ID, f.cession(20))
	require.NoError(t, err)
	assert.Equal(t, saved.Reference, updated.Reference)
	assert.Equal(t, "1000", updated.Payload.(*models.Cession).PrixTotal.Decimal.String())

	_, _, err = f.acts.Update(ctx, saved.ID, f.cession(50))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	d := models.NewDate(2026, 6, 30)
	_, _, err = f.acts.Update(ctx, saved.ID, models.Act{DateActe: &d, Payload: &models.AGOrdinaire{}})
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Violations, "type")

	_, _, err = f.acts.Update(ctx, 999, f.cession(10))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransitions(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	saved, _, err := f.acts.Create(ctx, f.cession(10))
	require.NoError(t, err)

	_, err = f.acts.Transition(ctx, saved.ID, models.StatutSigne)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.acts.Transition(ctx, saved.ID, "archivé")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	act, err := f.acts.Transition(ctx, saved.ID, models.StatutValide)
	require.NoError(t, err)
	assert.Equal(t, models.StatutValide, act.Statut)

	act, err = f.acts.Transition(ctx, saved.ID, models.StatutSigne)
	require.NoError(t, err)
	assert.True(t, act.IsSigned())

	_, _, err = f.acts.Update(ctx, saved.ID, f.cession(5))
	assert.ErrorIs(t, err, ErrActSigned)

	_, err = f.acts.Transition(ctx, saved.ID, models.StatutBrouillon)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

// signBeforeNextUpdate marks act id as signé inside the next UPDATE issued
// through db, just before gorm writes it.
func signBeforeNextUpdate(t *testing.T, db *gorm.DB, id uint) {
	t.Helper()
	fired := false
	err := db.Callback().Update().Before("gorm:update").Register("test:sign_act", func(tx *gorm.DB) {
		if fired {
			return
		}
		fired = true
		if err := tx.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE actes SET statut = ? WHERE id = ?", models.StatutSigne, id).Error; err != nil {
			t.Errorf("sign act: %v", err)
		}
	})
	require.NoError(t, err)
}

func TestUpdateLosesToConcurrentSignature(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	saved, _, err := f.acts.Create(ctx, f.cession(10))
	require.NoError(t, err)
	_, err = f.acts.Transition(ctx, saved.ID, models.StatutValide)
	require.NoError(t, err)

	signBeforeNextUpdate(t, f.acts.DB, saved.ID)
	_, _, err = f.acts.Update(ctx, saved.ID, f.cession(20))
	assert.ErrorIs(t, err, ErrActSigned)

	got, err := f.acts.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatutSigne, got.Statut)
	assert.Equal(t, int64(10), *got.Payload.(*models.Cession).NombreActions)
}

func TestTransitionLosesToConcurrentChange(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	saved, _, err := f.acts.Create(ctx, f.cession(10))
	require.NoError(t, err)

	signBeforeNextUpdate(t, f.acts.DB, saved.ID)
	_, err = f.acts.Transition(ctx, saved.ID, models.StatutValide)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := f.acts.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatutSigne, got.Statut)
}

func TestValidationRerunOnValidate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	saved, _, err := f.acts.Create(ctx, f.cession(30))
	require.NoError(t, err)

	// the seller's holding shrinks after the act was drafted
	require.NoError(t, f.acts.DB.Model(&models.Associe{}).Where("id = ?", f.claire.ID).Update("nombre_actions", 20).Error)

	_, err = f.acts.Transition(ctx, saved.ID, models.StatutValide)
	assert.ErrorIs(t, err, ErrUnresolved)

	_, err = f.acts.Document(ctx, saved.ID, docs.KindActeCession)
	assert.ErrorIs(t, err, ErrUnresolved)
}

func TestDocument(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	saved, _, err := f.acts.Create(ctx, f.cession(10))
	require.NoError(t, err)

	g, err := f.acts.Document(ctx, saved.ID, docs.KindActeCession)
	require.NoError(t, err)
	assert.Equal(t, "acte_cession-"+saved.Reference+".txt", g.Name)
	assert.Equal(t, "text/plain; charset=utf-8", g.ContentType)
	body := strings.ReplaceAll(string(g.Data), "\u00a0", " ")
	assert.Contains(t, body, "soit un prix total de 500,00 € (cinq cents euros)")
	assert.Contains(t, body, "Document préparé par Cabinet Martin")

	_, err = f.acts.Document(ctx, saved.ID, docs.KindProcesVerbal)
	assert.ErrorIs(t, err, docs.ErrWrongActType)

	_, err = f.acts.Document(ctx, 999, docs.KindActeCession)
	assert.ErrorIs(t, err, ErrNotFound)
}
