package rules

import (
	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/Kaiser28/comptable-dashboard/validation"
)

func validateCession(p *models.Cession, ctx Context, v validation.Violations) {
	validation.Present("cedant_id", p.CedantID != nil, v)
	validation.Required("cessionnaire_civilite", p.CessionnaireCivilite, v)
	validation.Required("cessionnaire_nom", p.CessionnaireNom, v)
	validation.Required("cessionnaire_prenom", p.CessionnairePrenom, v)
	validation.Required("cessionnaire_adresse", p.CessionnaireAdresse, v)
	validation.Required("cessionnaire_nationalite", p.CessionnaireNationalite, v)
	nombreOK := validation.MinInt("nombre_actions", p.NombreActions, 1, v)
	validation.MinDecimal("prix_unitaire", p.PrixUnitaire, centime, v)
	validation.Present("date_agrement", p.DateAgrement != nil, v)
	validation.Required("modalites_paiement", p.ModalitesPaiement, v)

	if p.CedantID == nil {
		return
	}
	cedant := findAssocie(ctx.Associes, *p.CedantID)
	if cedant == nil {
		v.Add("cedant_id", "Le cédant ne figure pas parmi les associés de la société")
		return
	}
	if nombreOK && *p.NombreActions > cedant.NombreActions {
		v.Addf("nombre_actions", "Le cédant ne détient que %d actions : la cession ne peut porter sur %d actions",
			cedant.NombreActions, *p.NombreActions)
	}
}

func findAssocie(associes []models.Associe, id uint) *models.Associe {
	for i := range associes {
		if associes[i].ID == id {
			return &associes[i]
		}
	}
	return nil
}
