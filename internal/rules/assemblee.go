package rules

import (
	"strings"
	"time"

	"github.com/Kaiser28/comptable-dashboard/internal/calc"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/Kaiser28/comptable-dashboard/validation"
	"github.com/shopspring/decimal"
)

var affectations = []string{
	models.AffectationReport,
	models.AffectationReserves,
	models.AffectationDividendes,
	models.AffectationMixte,
}

// HeureLayout is the wire format of the assembly time.
const HeureLayout = "15:04"

func validateAGOrdinaire(p *models.AGOrdinaire, ctx Context, v validation.Violations) {
	if strings.TrimSpace(p.HeureAssemblee) == "" {
		v.Add("heure_assemblee", validation.MsgRequired)
	} else if _, err := time.Parse(HeureLayout, strings.TrimSpace(p.HeureAssemblee)); err != nil {
		v.Add("heure_assemblee", "Heure invalide, format attendu HH:MM")
	}
	validation.Required("exercice_clos", p.ExerciceClos, v)
	validation.Present("resultat_exercice", p.ResultatExercice.Valid, v)
	validation.OneOf("affectation", p.Affectation, affectations, v)

	switch p.Affectation {
	case models.AffectationDividendes:
		if validation.MinDecimal("montant_dividendes", p.MontantDividendes, decimal.Zero, v) &&
			p.ResultatExercice.Valid && p.ResultatExercice.Decimal.IsPositive() &&
			!p.MontantDividendes.Decimal.Equal(p.ResultatExercice.Decimal) {
			v.Addf("montant_dividendes", "Le montant des dividendes (%s) doit être égal au résultat de l'exercice (%s)",
				euros(p.MontantDividendes.Decimal), euros(p.ResultatExercice.Decimal))
		}
	case models.AffectationMixte:
		for field, part := range map[string]decimal.NullDecimal{
			"montant_dividendes": p.MontantDividendes,
			"montant_reserves":   p.MontantReserves,
			"montant_report":     p.MontantReport,
		} {
			if part.Valid {
				validation.MinDecimal(field, part, decimal.Zero, v)
			}
		}
		if p.ResultatExercice.Valid {
			somme := sumSet(p.MontantDividendes, p.MontantReserves, p.MontantReport)
			if !calc.WithinEpsilon(somme, p.ResultatExercice.Decimal) {
				v.Addf("affectation", "La somme des dividendes, réserves et report à nouveau (%s) doit être égale au résultat de l'exercice (%s)",
					euros(somme), euros(p.ResultatExercice.Decimal))
			}
		}
	}

	pourOK := votes("votes_pour", p.VotesPour, v)
	contreOK := votes("votes_contre", p.VotesContre, v)
	abstentionOK := votes("votes_abstention", p.VotesAbstention, v)
	if pourOK && contreOK && abstentionOK && len(ctx.Associes) > 0 {
		total := calc.TotalVotes(p.VotesPour, p.VotesContre, p.VotesAbstention)
		if attendu := calc.TotalActions(ctx.Associes); total != attendu {
			v.Addf("votes_total", "Le total des votes (%d) doit être égal au nombre d'actions détenues par les associés (%d)",
				total, attendu)
		}
	}
}

func sumSet(values ...decimal.NullDecimal) decimal.Decimal {
	total := decimal.Zero
	for _, d := range values {
		if d.Valid {
			total = total.Add(d.Decimal)
		}
	}
	return total
}
