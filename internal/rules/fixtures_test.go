package rules

import (
	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

func dateActe() *models.Date {
	d := models.NewDate(2026, 3, 1)
	return &d
}

func testContext() Context {
	return Context{
		Client: &models.Client{RaisonSociale: "Atelier Durand", CapitalSocial: decimal.NewFromInt(10000), NbActions: 100},
		Associes: []models.Associe{
			{ID: 1, Civilite: "M.", Nom: "Durand", Prenom: "Paul", NombreActions: 60, EstPresident: true},
			{ID: 2, Civilite: "Mme", Nom: "Morel", Prenom: "Claire", NombreActions: 40},
		},
	}
}

func validCession() *models.Cession {
	return &models.Cession{
		CedantID:                models.Uint(2),
		CessionnaireCivilite:    "Mme",
		CessionnaireNom:         "Petit",
		CessionnairePrenom:      "Anne",
		CessionnaireAdresse:     "4 rue Victor Hugo, 69002 Lyon",
		CessionnaireNationalite: "française",
		NombreActions:           models.Int64(10),
		PrixUnitaire:            models.Amount("50"),
		DateAgrement:            dateActe(),
		ModalitesPaiement:       "comptant par virement",
	}
}

func validAugmentation() *models.Augmentation {
	return &models.Augmentation{
		AncienCapital:          models.Amount("10000"),
		MontantAugmentation:    models.Amount("5000"),
		Modalite:               models.ModaliteNumeraire,
		ActionsExistantes:      models.Int64(100),
		NombreNouvellesActions: models.Int64(50),
		Quorum:                 models.Amount("100"),
		VotesPour:              models.Int64(100),
		VotesContre:            models.Int64(0),
	}
}

func validRachat() *models.Reduction {
	return &models.Reduction{
		AncienCapital:          models.Amount("10000"),
		NombreActions:          models.Int64(100),
		MontantReduction:       models.Amount("2000"),
		Modalite:               models.ModaliteRachatAnnulation,
		NombreActionsRachetees: models.Int64(20),
		PrixRachatParAction:    models.Amount("100"),
		VotesPour:              models.Int64(80),
		VotesContre:            models.Int64(20),
		Motif:                  "Rachat des actions d'un associé sortant",
	}
}

func validAG() *models.AGOrdinaire {
	return &models.AGOrdinaire{
		HeureAssemblee:   "10:00",
		ExerciceClos:     "2025",
		ResultatExercice: models.Amount("15000"),
		Affectation:      models.AffectationReport,
		VotesPour:        models.Int64(90),
		VotesContre:      models.Int64(10),
		VotesAbstention:  models.Int64(0),
	}
}

func act(p models.Payload) models.Act {
	return models.Act{ClientID: 1, DateActe: dateActe(), Statut: models.StatutBrouillon, Payload: p}
}
