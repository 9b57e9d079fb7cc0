// Package calc computes the dependent quantities of an act from its
// independent inputs. Validators and document templates both read these
// values, so every formula lives here exactly once.
package calc

import (
	"github.com/Kaiser28/comptable-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

const (
	// NominalPlaces is the precision kept for per-share values.
	NominalPlaces = 6
	// PercentPlaces is the precision kept for percentages.
	PercentPlaces = 4
)

var (
	// Epsilon tolerates floating drift when reconciling currency amounts.
	Epsilon = decimal.RequireFromString("0.01")

	// SeuilApportNature is the in-kind contribution amount above which an
	// appraiser is mandatory.
	SeuilApportNature = decimal.NewFromInt(30000)
	// SeuilPourcentageApport is the share of the new capital above which an
	// appraiser is mandatory.
	SeuilPourcentageApport = decimal.NewFromInt(50)

	// CapitalMinimum is the statutory floor of the share capital.
	CapitalMinimum = decimal.NewFromInt(1)

	hundred = decimal.NewFromInt(100)
)

// Apply returns a copy of act with every computed field filled in.
// The input act is never modified.
func Apply(act models.Act) models.Act {
	out := act
	switch p := act.Payload.(type) {
	case *models.Cession:
		out.Payload = Cession(p)
	case *models.Augmentation:
		out.Payload = Augmentation(p)
	case *models.Reduction:
		out.Payload = Reduction(p)
	case *models.AGOrdinaire:
		c := *p
		out.Payload = &c
	}
	return out
}

// ValeurNominale is the per-share face value capital / shares, unset when
// either side is missing or the share count is not positive.
func ValeurNominale(capital decimal.NullDecimal, actions *int64) decimal.NullDecimal {
	if !capital.Valid || actions == nil || *actions <= 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(capital.Decimal.DivRound(decimal.NewFromInt(*actions), NominalPlaces))
}

// ValeurNominaleClient is ValeurNominale over a client's registered capital.
func ValeurNominaleClient(c *models.Client) decimal.NullDecimal {
	if c == nil {
		return decimal.NullDecimal{}
	}
	n := c.NbActions
	return ValeurNominale(decimal.NewNullDecimal(c.CapitalSocial), &n)
}

// Cession fills prix_total = nombre_actions × prix_unitaire.
func Cession(p *models.Cession) *models.Cession {
	out := *p
	out.PrixTotal = mulCount(p.PrixUnitaire, p.NombreActions)
	return &out
}

// Augmentation fills the new capital, the nominal value and the in-kind
// appraiser gate.
func Augmentation(p *models.Augmentation) *models.Augmentation {
	out := *p
	out.NouveauCapital = add(p.AncienCapital, p.MontantAugmentation)

	out.ValeurNominale = decimal.NullDecimal{}
	if p.ActionsExistantes != nil && p.NombreNouvellesActions != nil {
		total := *p.ActionsExistantes + *p.NombreNouvellesActions
		out.ValeurNominale = ValeurNominale(out.NouveauCapital, &total)
	}

	out.PourcentageCapital = decimal.NullDecimal{}
	out.CommissaireObligatoire = false
	if p.EnNature() && p.MontantApportNature.Valid {
		apport := p.MontantApportNature.Decimal
		if out.NouveauCapital.Valid && out.NouveauCapital.Decimal.IsPositive() {
			out.PourcentageCapital = decimal.NewNullDecimal(
				apport.Mul(hundred).DivRound(out.NouveauCapital.Decimal, PercentPlaces))
		}
		out.CommissaireObligatoire = CommissaireObligatoire(apport, out.PourcentageCapital)
	}
	return &out
}

// CommissaireObligatoire reports whether the law mandates an appraiser for
// an in-kind contribution of apport representing pourcentage of the capital.
func CommissaireObligatoire(apport decimal.Decimal, pourcentage decimal.NullDecimal) bool {
	if apport.GreaterThan(SeuilApportNature) {
		return true
	}
	return pourcentage.Valid && pourcentage.Decimal.GreaterThan(SeuilPourcentageApport)
}

// Reduction fills the current nominal value, the resulting capital and the
// accordion final capital.
func Reduction(p *models.Reduction) *models.Reduction {
	out := *p
	out.ValeurNominaleActuelle = ValeurNominale(p.AncienCapital, p.NombreActions)
	out.NouveauCapital = CapitalApresReduction(p.AncienCapital, p.MontantReduction)
	out.CapitalFinal = decimal.NullDecimal{}
	if p.Modalite == models.ModaliteCoupAccordeon {
		out.CapitalFinal = add(p.NouveauCapitalApresReduction, p.MontantAugmentationSuivante)
	}
	return &out
}

// CapitalApresReduction is ancien − montant, unset below the statutory floor.
func CapitalApresReduction(ancien, montant decimal.NullDecimal) decimal.NullDecimal {
	if !ancien.Valid || !montant.Valid {
		return decimal.NullDecimal{}
	}
	n := ancien.Decimal.Sub(montant.Decimal)
	if n.LessThan(CapitalMinimum) {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(n)
}

// MontantReductionAttendu is the reduction amount implied by the modality
// inputs: shares bought back × price, or nominal decrease × share count.
// It is unset for the accordion modality and when inputs are missing.
func MontantReductionAttendu(p *models.Reduction) decimal.NullDecimal {
	switch p.Modalite {
	case models.ModaliteRachatAnnulation:
		return mulCount(p.PrixRachatParAction, p.NombreActionsRachetees)
	case models.ModaliteReductionValeurNominale:
		if !p.AncienneValeurNominale.Valid || !p.NouvelleValeurNominale.Valid {
			return decimal.NullDecimal{}
		}
		delta := decimal.NewNullDecimal(p.AncienneValeurNominale.Decimal.Sub(p.NouvelleValeurNominale.Decimal))
		return mulCount(delta, p.NombreActions)
	}
	return decimal.NullDecimal{}
}

// ValeurNominaleApresReduction is the per-share value once the reduction is
// done, when it can be derived.
func ValeurNominaleApresReduction(p *models.Reduction) decimal.NullDecimal {
	nouveau := CapitalApresReduction(p.AncienCapital, p.MontantReduction)
	switch p.Modalite {
	case models.ModaliteRachatAnnulation:
		if p.NombreActions == nil || p.NombreActionsRachetees == nil {
			return decimal.NullDecimal{}
		}
		restantes := *p.NombreActions - *p.NombreActionsRachetees
		return ValeurNominale(nouveau, &restantes)
	case models.ModaliteReductionValeurNominale:
		return p.NouvelleValeurNominale
	}
	return decimal.NullDecimal{}
}

// TotalVotes sums the votes that are set.
func TotalVotes(votes ...*int64) int64 {
	var total int64
	for _, v := range votes {
		if v != nil {
			total += *v
		}
	}
	return total
}

// TotalActions sums the share counts of associes.
func TotalActions(associes []models.Associe) int64 {
	var total int64
	for _, a := range associes {
		total += a.NombreActions
	}
	return total
}

// PourcentagePour is for / (for + against) × 100, unset when no vote was cast.
func PourcentagePour(pour, contre *int64) decimal.NullDecimal {
	exprimes := TotalVotes(pour, contre)
	if exprimes == 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromInt(TotalVotes(pour)).Mul(hundred).
		DivRound(decimal.NewFromInt(exprimes), PercentPlaces))
}

// WithinEpsilon reports |a − b| ≤ Epsilon.
func WithinEpsilon(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Epsilon)
}

func add(a, b decimal.NullDecimal) decimal.NullDecimal {
	if !a.Valid || !b.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(a.Decimal.Add(b.Decimal))
}

func mulCount(d decimal.NullDecimal, n *int64) decimal.NullDecimal {
	if !d.Valid || n == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d.Decimal.Mul(decimal.NewFromInt(*n)))
}
