package docs

import (
	"strings"

	"github.com/Kaiser28/comptable-dashboard/internal/calc"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

func testClient() *models.Client {
	return &models.Client{
		RaisonSociale:  "Atelier Durand",
		FormeJuridique: "SAS",
		SIREN:          "123456789",
		RCS:            "Lyon",
		CapitalSocial:  decimal.NewFromInt(10000),
		NbActions:      100,
		Adresse:        "12 quai Saint-Vincent",
		CodePostal:     "69001",
		Ville:          "Lyon",
		Objet:          "La fabrication et la vente de meubles",
		Duree:          99,
	}
}

func testAssocies() []models.Associe {
	return []models.Associe{
		{ID: 1, Civilite: "M.", Nom: "Durand", Prenom: "Paul", Nationalite: "française", LieuNaissance: "Lyon", Adresse: "3 rue Mercière, 69002 Lyon", NombreActions: 60, EstPresident: true},
		{ID: 2, Civilite: "Mme", Nom: "Morel", Prenom: "Claire", Nationalite: "française", NombreActions: 40},
	}
}

// input builds a template input the way the service does: computed fields
// are filled before the template runs.
func input(p models.Payload) Input {
	d := models.NewDate(2026, 3, 1)
	a := calc.Apply(models.Act{ClientID: 1, DateActe: &d, Statut: models.StatutValide, Payload: p})
	return Input{Act: a, Client: testClient(), Associes: testAssocies()}
}

func cession() *models.Cession {
	agrement := models.NewDate(2026, 2, 15)
	return &models.Cession{
		CedantID:                models.Uint(2),
		CessionnaireCivilite:    "M.",
		CessionnaireNom:         "Petit",
		CessionnairePrenom:      "Marc",
		CessionnaireAdresse:     "4 rue Victor Hugo, 69002 Lyon",
		CessionnaireNationalite: "française",
		NombreActions:           models.Int64(10),
		PrixUnitaire:            models.Amount("50"),
		DateAgrement:            &agrement,
		ModalitesPaiement:       "comptant par virement",
	}
}

func augmentation() *models.Augmentation {
	return &models.Augmentation{
		AncienCapital:          models.Amount("10000"),
		MontantAugmentation:    models.Amount("5000"),
		Modalite:               models.ModaliteNumeraire,
		ActionsExistantes:      models.Int64(100),
		NombreNouvellesActions: models.Int64(50),
		Quorum:                 models.Amount("100"),
		VotesPour:              models.Int64(100),
		VotesContre:            models.Int64(0),
		BanqueDepositaire:      "Banque Rhône-Alpes",
	}
}

func rachat() *models.Reduction {
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

func assemblee() *models.AGOrdinaire {
	return &models.AGOrdinaire{
		HeureAssemblee:    "09:30",
		ExerciceClos:      "2025",
		ResultatExercice:  models.Amount("15000"),
		Affectation:       models.AffectationMixte,
		MontantDividendes: models.Amount("5000"),
		MontantReserves:   models.Amount("10000"),
		VotesPour:         models.Int64(90),
		VotesContre:       models.Int64(10),
		VotesAbstention:   models.Int64(0),
		Quitus:            true,
	}
}

// text renders d with ordinary spaces so expectations stay readable.
func text(d *Document) string {
	return strings.ReplaceAll(d.Text(), "\u00a0", " ")
}
