package rules

import (
	"github.com/Kaiser28/comptable-dashboard/internal/calc"
	"github.com/Kaiser28/comptable-dashboard/internal/format"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/Kaiser28/comptable-dashboard/validation"
)

var modalitesReduction = []string{
	models.ModaliteRachatAnnulation,
	models.ModaliteReductionValeurNominale,
	models.ModaliteCoupAccordeon,
}

// Rules are numbered; the numbers are shown to the user as is.
func validateReduction(p *models.Reduction, v validation.Violations) {
	ancienOK := validation.MinDecimal("ancien_capital", p.AncienCapital, un, v)
	nombreOK := validation.MinInt("nombre_actions", p.NombreActions, 1, v)
	montantOK := validation.MinDecimal("montant_reduction", p.MontantReduction, centime, v)
	validation.OneOf("modalite", p.Modalite, modalitesReduction, v)
	validation.Required("motif", p.Motif, v)

	if ancienOK && montantOK {
		ancien, montant := p.AncienCapital.Decimal, p.MontantReduction.Decimal
		switch {
		case montant.GreaterThan(ancien):
			v.Add("montant_reduction", regle(1, "le montant de la réduction (%s) ne peut excéder le capital actuel (%s)",
				euros(montant), euros(ancien)))
		case ancien.Sub(montant).LessThan(calc.CapitalMinimum):
			v.Add("montant_reduction", regle(2, "le capital après réduction (%s) doit être au moins égal à 1 €",
				euros(ancien.Sub(montant))))
		}
	}

	switch p.Modalite {
	case models.ModaliteRachatAnnulation:
		racheteesOK := validation.MinInt("nombre_actions_rachetees", p.NombreActionsRachetees, 1, v)
		prixOK := validation.MinDecimal("prix_rachat_par_action", p.PrixRachatParAction, centime, v)
		if racheteesOK && prixOK && montantOK {
			attendu := calc.MontantReductionAttendu(p).Decimal
			if !calc.WithinEpsilon(attendu, p.MontantReduction.Decimal) {
				v.Add("montant_reduction", regle(3, "le montant de la réduction (%s) doit être égal au nombre d'actions rachetées multiplié par le prix de rachat (%s)",
					euros(p.MontantReduction.Decimal), euros(attendu)))
			}
		}
		if racheteesOK && nombreOK {
			rachetees, existantes := *p.NombreActionsRachetees, *p.NombreActions
			switch {
			case rachetees > existantes:
				v.Add("nombre_actions_rachetees", regle(4, "le nombre d'actions rachetées (%d) ne peut excéder le nombre d'actions existantes (%d)",
					rachetees, existantes))
			case existantes-rachetees < 1:
				v.Add("nombre_actions_rachetees", regle(5, "au moins une action doit subsister après le rachat"))
			}
		}

	case models.ModaliteReductionValeurNominale:
		ancienneOK := validation.PositiveDecimal("ancienne_valeur_nominale", p.AncienneValeurNominale, v)
		nouvelleOK := validation.PositiveDecimal("nouvelle_valeur_nominale", p.NouvelleValeurNominale, v)
		if ancienneOK && nouvelleOK {
			ancienne, nouvelle := p.AncienneValeurNominale.Decimal, p.NouvelleValeurNominale.Decimal
			if !nouvelle.LessThan(ancienne) {
				v.Add("nouvelle_valeur_nominale", regle(6, "la nouvelle valeur nominale (%s) doit être strictement inférieure à l'ancienne (%s)",
					euros(nouvelle), euros(ancienne)))
			} else if nombreOK && montantOK {
				attendu := calc.MontantReductionAttendu(p).Decimal
				if !calc.WithinEpsilon(attendu, p.MontantReduction.Decimal) {
					v.Add("montant_reduction", regle(7, "le montant de la réduction (%s) doit être égal à la baisse de valeur nominale multipliée par le nombre d'actions (%s)",
						euros(p.MontantReduction.Decimal), euros(attendu)))
				}
			}
		}

	case models.ModaliteCoupAccordeon:
		validation.MinDecimal("nouveau_capital_apres_reduction", p.NouveauCapitalApresReduction, un, v)
		validation.MinDecimal("montant_augmentation_suivante", p.MontantAugmentationSuivante, centime, v)
	}

	// Rule 8 applies to every modality, the accordion included.
	pourOK := votes("votes_pour", p.VotesPour, v)
	contreOK := votes("votes_contre", p.VotesContre, v)
	if pourOK && contreOK {
		pour, exprimes := *p.VotesPour, *p.VotesPour+*p.VotesContre
		switch {
		case exprimes == 0:
			v.Add("votes_pour", regle(8, "aucun vote exprimé, la majorité des deux tiers ne peut être constatée"))
		case 3*pour < 2*exprimes:
			pct := calc.PourcentagePour(p.VotesPour, p.VotesContre).Decimal
			v.Add("votes_pour", regle(8, "la majorité des deux tiers n'est pas atteinte (%s %% des voix exprimées)",
				format.Montant(pct)))
		}
	}
}

// ReductionWarnings returns the non-blocking advisories of a capital
// reduction. They never prevent the act from being accepted.
func ReductionWarnings(act models.Act) validation.Violations {
	w := validation.Violations{}
	p, ok := act.Payload.(*models.Reduction)
	if !ok {
		return w
	}
	p = calc.Reduction(p)

	nominale := p.ValeurNominaleActuelle
	if p.Modalite == models.ModaliteRachatAnnulation && p.PrixRachatParAction.Valid &&
		nominale.Valid && nominale.Decimal.IsPositive() {
		prix := p.PrixRachatParAction.Decimal
		switch {
		case prix.GreaterThan(nominale.Decimal.Mul(deux)):
			w.Addf("prix_rachat_par_action", "Le prix de rachat (%s) est très supérieur à la valeur nominale (%s)",
				euros(prix), euros(nominale.Decimal))
		case prix.LessThan(nominale.Decimal.Div(deux)):
			w.Addf("prix_rachat_par_action", "Le prix de rachat (%s) est très inférieur à la valeur nominale (%s)",
				euros(prix), euros(nominale.Decimal))
		}
	}

	if vn := calc.ValeurNominaleApresReduction(p); vn.Valid && vn.Decimal.LessThan(un) {
		w.Addf("valeur_nominale", "La valeur nominale après réduction (%s) est inférieure à 1 €", euros(vn.Decimal))
	}
	return w
}
