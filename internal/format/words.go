package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

var unites = [...]string{
	"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf",
	"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize", "dix-sept", "dix-huit", "dix-neuf",
}

var dizaines = [...]string{"", "", "vingt", "trente", "quarante", "cinquante", "soixante"}

type echelle struct {
	valeur    uint64
	singulier string
	pluriel   string
}

var echelles = []echelle{
	{1_000_000_000, "milliard", "milliards"},
	{1_000_000, "million", "millions"},
}

// EnLettres spells n as a French cardinal number.
func EnLettres(n int64) string {
	if n < 0 {
		// -(n+1) cannot overflow, even for math.MinInt64
		return "moins " + enLettres(uint64(-(n+1))+1)
	}
	return enLettres(uint64(n))
}

func enLettres(n uint64) string {
	if n == 0 {
		return unites[0]
	}
	var parts []string
	for _, e := range echelles {
		if q := n / e.valeur; q > 0 {
			mot := e.singulier
			if q > 1 {
				mot = e.pluriel
			}
			parts = append(parts, enLettres(q)+" "+mot)
			n %= e.valeur
		}
	}
	if q := n / 1000; q > 0 {
		if q == 1 {
			parts = append(parts, "mille")
		} else {
			// "mille" is invariable and blocks the plural of cent/vingt before it.
			parts = append(parts, sousMille(int(q), false)+" mille")
		}
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, sousMille(int(n), true))
	}
	return strings.Join(parts, " ")
}

// sousMille spells 1..999. final is false when the group is followed by
// "mille", in which case "cents" and "quatre-vingts" lose their s.
func sousMille(n int, final bool) string {
	c, r := n/100, n%100
	var parts []string
	switch {
	case c == 1:
		parts = append(parts, "cent")
	case c > 1:
		if r == 0 && final {
			parts = append(parts, unites[c]+" cents")
		} else {
			parts = append(parts, unites[c]+" cent")
		}
	}
	if r > 0 {
		s := sousCent(r)
		if r == 80 && !final {
			s = "quatre-vingt"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func sousCent(n int) string {
	switch {
	case n < 20:
		return unites[n]
	case n < 70:
		d, u := n/10, n%10
		switch u {
		case 0:
			return dizaines[d]
		case 1:
			return dizaines[d] + " et un"
		default:
			return dizaines[d] + "-" + unites[u]
		}
	case n < 80:
		return "soixante-" + unites[n-60]
	case n == 80:
		return "quatre-vingts"
	default:
		return "quatre-vingt-" + unites[n-80]
	}
}

// MontantEnLettres spells a euro amount, e.g.
// "mille deux cent trente-quatre euros et cinquante-six centimes".
func MontantEnLettres(d decimal.Decimal) string {
	d = d.Round(2)
	prefixe := ""
	if d.IsNegative() {
		prefixe = "moins "
		d = d.Abs()
	}
	euros := d.IntPart()
	centimes := d.Sub(decimal.NewFromInt(euros)).Shift(2).IntPart()

	if euros == 0 && centimes > 0 {
		return prefixe + EnLettres(centimes) + " " + Pluriel(centimes, "centime", "centimes")
	}

	out := EnLettres(euros) + " " + uniteEuro(euros)
	if centimes > 0 {
		out += " et " + EnLettres(centimes) + " " + Pluriel(centimes, "centime", "centimes")
	}
	return prefixe + out
}

func uniteEuro(n int64) string {
	switch {
	case n <= 1:
		return "euro"
	case n%1_000_000 == 0:
		return "d'euros"
	default:
		return "euros"
	}
}

// Pluriel picks the singular form for 0 and 1, the plural otherwise.
func Pluriel(n int64, singulier, pluriel string) string {
	if n > 1 || n < -1 {
		return pluriel
	}
	return singulier
}
