// Package rules holds the legal-consistency validators of corporate acts.
// Validators are pure: they read the act and its client context and return
// field-scoped violations, never an error.
package rules

import (
	"fmt"

	"github.com/Kaiser28/comptable-dashboard/internal/calc"
	"github.com/Kaiser28/comptable-dashboard/internal/format"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/Kaiser28/comptable-dashboard/validation"
	"github.com/shopspring/decimal"
)

var (
	un        = decimal.NewFromInt(1)
	centime   = decimal.RequireFromString("0.01")
	cinquante = decimal.NewFromInt(50)
	cent      = decimal.NewFromInt(100)
	deux      = decimal.NewFromInt(2)
)

// Context is the client snapshot a validator may read.
type Context struct {
	Client   *models.Client
	Associes []models.Associe
}

// Validate checks act against the rules of its type. Computed fields are
// recomputed from the inputs first so that declared values cannot bypass a
// legal gate. An empty result means the act is accepted.
func Validate(act models.Act, ctx Context) validation.Violations {
	v := validation.Violations{}
	act = calc.Apply(act)

	validation.Present("date_acte", act.DateActe != nil, v)

	switch p := act.Payload.(type) {
	case *models.Cession:
		validateCession(p, ctx, v)
	case *models.Augmentation:
		validateAugmentation(p, v)
	case *models.Reduction:
		validateReduction(p, v)
	case *models.AGOrdinaire:
		validateAGOrdinaire(p, ctx, v)
	default:
		v.Add(validation.Global, "Type d'acte inconnu")
	}
	return v
}

// Warnings returns the non-blocking advisories of act: the reduction
// advisories and the "before" figures that disagree with the client's
// registered capital.
func Warnings(act models.Act, ctx Context) validation.Violations {
	w := ReductionWarnings(act)
	if ctx.Client == nil {
		return w
	}
	switch p := act.Payload.(type) {
	case *models.Augmentation:
		capitalEnregistre("ancien_capital", p.AncienCapital, ctx.Client, w)
		actionsEnregistrees("actions_existantes", p.ActionsExistantes, ctx.Client, w)
	case *models.Reduction:
		capitalEnregistre("ancien_capital", p.AncienCapital, ctx.Client, w)
		actionsEnregistrees("nombre_actions", p.NombreActions, ctx.Client, w)
	}
	return w
}

func capitalEnregistre(field string, val decimal.NullDecimal, c *models.Client, w validation.Violations) {
	if val.Valid && !val.Decimal.Equal(c.CapitalSocial) {
		w.Addf(field, "Le capital indiqué (%s) diffère du capital social enregistré de la société (%s)",
			euros(val.Decimal), euros(c.CapitalSocial))
	}
}

func actionsEnregistrees(field string, n *int64, c *models.Client, w validation.Violations) {
	if n != nil && *n != c.NbActions {
		w.Addf(field, "Le nombre d'actions indiqué (%d) diffère du nombre d'actions enregistré de la société (%d)",
			*n, c.NbActions)
	}
}

func euros(d decimal.Decimal) string {
	return format.Euros(d)
}

func votes(field string, n *int64, v validation.Violations) bool {
	return validation.MinInt(field, n, 0, v)
}

func regle(n int, msg string, args ...any) string {
	return fmt.Sprintf("Règle %d : ", n) + fmt.Sprintf(msg, args...)
}
