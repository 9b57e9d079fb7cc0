package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// nbsp is the thousands separator used in every rendered amount.
const nbsp = "\u00a0"

var printer = message.NewPrinter(language.French)

var espaces = strings.NewReplacer("\u202f", nbsp, " ", nbsp)

// Nombre renders an integer with French digit grouping ("12 500").
func Nombre(n int64) string {
	return espaces.Replace(printer.Sprintf("%d", n))
}

// Montant renders d with two fixed decimals and French grouping ("1 234,56").
func Montant(d decimal.Decimal) string {
	d = d.Round(2)
	signe := ""
	if d.IsNegative() {
		signe = "-"
		d = d.Abs()
	}
	ent := d.IntPart()
	cts := d.Sub(decimal.NewFromInt(ent)).Shift(2).IntPart()
	return fmt.Sprintf("%s%s,%02d", signe, Nombre(ent), cts)
}

// Euros is Montant followed by the euro sign.
func Euros(d decimal.Decimal) string {
	return Montant(d) + nbsp + "€"
}

// MontantOu renders d when set, the placeholder otherwise.
func MontantOu(d decimal.NullDecimal) string {
	if !d.Valid {
		return Placeholder
	}
	return Montant(d.Decimal)
}

// EurosOu renders d in euros when set, the placeholder otherwise.
func EurosOu(d decimal.NullDecimal) string {
	if !d.Valid {
		return Placeholder
	}
	return Euros(d.Decimal)
}

// Pourcentage renders p with two decimals and a percent sign ("66,67 %").
func Pourcentage(p decimal.Decimal) string {
	return Montant(p) + nbsp + "%"
}
