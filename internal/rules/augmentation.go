package rules

import (
	"fmt"
	"strings"

	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/Kaiser28/comptable-dashboard/validation"
)

var modalitesAugmentation = []string{
	models.ModaliteNumeraire,
	models.ModaliteNature,
	models.ModaliteIncorporationReserves,
}

func validateAugmentation(p *models.Augmentation, v validation.Violations) {
	validation.MinDecimal("ancien_capital", p.AncienCapital, un, v)
	validation.MinDecimal("montant_augmentation", p.MontantAugmentation, un, v)
	validation.OneOf("modalite", p.Modalite, modalitesAugmentation, v)
	nouvellesOK := validation.MinInt("nombre_nouvelles_actions", p.NombreNouvellesActions, 1, v)
	validation.RangeDecimal("quorum", p.Quorum, cinquante, cent, v)
	votes("votes_pour", p.VotesPour, v)
	votes("votes_contre", p.VotesContre, v)

	if p.EnNature() {
		validation.Required("description_apport", p.DescriptionApport, v)
		validation.PositiveDecimal("montant_apport_nature", p.MontantApportNature, v)
	}

	// Above the legal thresholds an appraiser is mandatory whatever the
	// "commissaire désigné" toggle says.
	if strings.TrimSpace(p.CommissaireNom) == "" {
		switch {
		case p.CommissaireObligatoire:
			v.Add("commissaire_nom", "Un commissaire aux apports est obligatoire (apport en nature supérieur à 30 000 € ou à 50 % du capital) : son nom doit être renseigné")
		case p.CommissaireDesigne:
			v.Add("commissaire_nom", validation.MsgRequired)
		}
	}

	var attribuees int64
	for i, na := range p.NouveauxAssocies {
		prefix := fmt.Sprintf("nouveaux_associes[%d].", i)
		validation.Required(prefix+"nom", na.Nom, v)
		if validation.MinInt(prefix+"nombre_actions", na.NombreActions, 1, v) {
			attribuees += *na.NombreActions
		}
		if na.MontantApport.Valid && na.MontantApport.Decimal.IsNegative() {
			v.Add(prefix+"montant_apport", "Le montant de l'apport ne peut être négatif")
		}
	}
	if nouvellesOK && attribuees > *p.NombreNouvellesActions {
		v.Addf("nouveaux_associes", "Les nouveaux associés reçoivent %d actions pour %d actions nouvelles émises",
			attribuees, *p.NombreNouvellesActions)
	}
}
